// Package input holds the interaction state of a single visual input: value
// normalisation on edit, password visibility and focus tracking. Renderers
// consume the InputProps it produces.
package input

import (
	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/normalize"
)

// ChangeFunc receives the normalised value reported by an edit.
type ChangeFunc func(value model.Value)

// Input is the controller behind a rendered input element.
type Input struct {
	config       model.InputConfig
	onChange     ChangeFunc
	showPassword bool
	focused      bool
}

// New constructs an Input. Password fields start masked; every other type
// starts "visible" so toggling is a no-op for them.
func New(config model.InputConfig, onChange ChangeFunc) *Input {
	config.Type = model.ParseFieldType(string(config.Type))
	return &Input{
		config:       config,
		onChange:     onChange,
		showPassword: !config.Type.IsPassword(),
	}
}

// Config returns the configuration the input was built with.
func (in *Input) Config() model.InputConfig {
	return in.config
}

// SetType switches the field type. The next Props call renormalises the
// display value for the new type.
func (in *Input) SetType(fieldType model.FieldType) {
	fieldType = model.ParseFieldType(string(fieldType))
	if fieldType.IsPassword() != in.config.Type.IsPassword() {
		in.showPassword = !fieldType.IsPassword()
	}
	in.config.Type = fieldType
}

// Change handles raw text typed by the user. Disabled inputs and inputs
// without a change handler ignore edits. The reported value is returned so
// callers without a handler can still observe the normalisation.
func (in *Input) Change(raw string) (model.Value, bool) {
	if in.config.Disabled || in.onChange == nil {
		return model.Value{}, false
	}
	value := normalize.ForReport(raw, in.config.Type, in.config.Trim)
	in.onChange(value)
	return value, true
}

// TogglePassword flips password visibility unless the input is disabled.
func (in *Input) TogglePassword() {
	if in.config.Disabled || !in.config.Type.IsPassword() {
		return
	}
	in.showPassword = !in.showPassword
}

func (in *Input) PasswordVisible() bool {
	return in.showPassword
}

func (in *Input) Focus() { in.focused = true }

func (in *Input) Blur() { in.focused = false }

func (in *Input) Focused() bool { return in.focused }

// Props resolves the render state for the stored value and error message.
func (in *Input) Props(id string, stored model.Value, errMessage string, required bool) model.InputProps {
	cfg := in.config
	return model.InputProps{
		ID:               id,
		Name:             id,
		Value:            normalize.ForDisplay(stored, cfg.Type),
		Type:             cfg.Type,
		Label:            cfg.Label,
		Placeholder:      cfg.Placeholder,
		Tip:              cfg.Tip,
		Error:            errMessage,
		Disabled:         cfg.Disabled,
		Required:         required,
		ShowRequiredSign: cfg.ShowRequiredSign,
		ShowSearchIcon:   cfg.ShowSearchIcon || cfg.Type == model.FieldTypeSearch,
		ShowPassword:     in.showPassword,
		Focused:          in.focused,
		ClassName:        cfg.ClassName,
		InputClassName:   cfg.InputClassName,
		LabelClassName:   cfg.LabelClassName,
		ContainerClass:   cfg.ContainerClass,
		Attrs:            cloneAttrs(cfg.Attrs),
	}
}

func cloneAttrs(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}
