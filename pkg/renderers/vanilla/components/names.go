package components

// Canonical component names used by the vanilla renderer and default registry.
const (
	NameInput  = "input"
	NameButton = "button"
)

// Script names resolved against the theme's asset URLs or the embedded
// runtime bundle.
const (
	ScriptPasswordToggle = "formkit-input.js"
)
