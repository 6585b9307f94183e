package vanilla

// ChromeClass is a typed identifier for the semantic classes wrapped around
// the rendered controls.
type ChromeClass string

const (
	ClassPage    ChromeClass = "formkit-page"
	ClassForm    ChromeClass = "formkit-form"
	ClassHeader  ChromeClass = "formkit-header"
	ClassFields  ChromeClass = "formkit-fields"
	ClassActions ChromeClass = "formkit-actions"
	ClassErrors  ChromeClass = "formkit-errors"
)
