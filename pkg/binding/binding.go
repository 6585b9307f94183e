// Package binding connects a named field in a form store to a visual input:
// it registers the field's rules, derives the display value and error from
// the store on every render and forwards edits back to the store.
package binding

import (
	"github.com/goliatone/go-formkit/pkg/errtree"
	"github.com/goliatone/go-formkit/pkg/form"
	"github.com/goliatone/go-formkit/pkg/input"
	"github.com/goliatone/go-formkit/pkg/model"
)

// IDPrefix prefixes the element id derived from a field path so the label's
// for attribute and the input id always agree.
const IDPrefix = "form-input-"

// Option configures a FormInput.
type Option func(*FormInput)

// WithDefault sets the value shown while the store holds nothing for the
// path.
func WithDefault(value model.Value) Option {
	return func(f *FormInput) {
		f.defaultValue = value
		f.hasDefault = true
	}
}

// WithRequired toggles the required rule. Fields are required by default.
func WithRequired(required bool) Option {
	return func(f *FormInput) {
		f.required = required
	}
}

// WithRules registers extra rules after the required one.
func WithRules(rules ...form.Rule) Option {
	return func(f *FormInput) {
		f.rules = append(f.rules, rules...)
	}
}

// WithInput supplies display configuration passed through to the input.
func WithInput(config model.InputConfig) Option {
	return func(f *FormInput) {
		f.config = config
	}
}

// FormInput binds one store path to one input.
type FormInput struct {
	store        form.Store
	path         string
	defaultValue model.Value
	hasDefault   bool
	required     bool
	rules        []form.Rule
	config       model.InputConfig
	input        *input.Input
	mounted      bool
}

// New constructs a binding. The path is not checked against any schema;
// unknown paths behave however the store treats them.
func New(store form.Store, path string, options ...Option) *FormInput {
	f := &FormInput{
		store:    store,
		path:     path,
		required: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	f.input = input.New(f.config, f.OnChange)
	return f
}

// ID returns the element id derived from the path.
func (f *FormInput) ID() string {
	return IDPrefix + f.path
}

func (f *FormInput) Path() string { return f.path }

func (f *FormInput) Required() bool { return f.required }

// Input exposes the underlying input controller (password toggle, focus).
func (f *FormInput) Input() *input.Input { return f.input }

// Mount registers the path with the store: one "Required" rule when the
// field is required, followed by any WithRules rules. A configured default
// is seeded into stores that support it. Mounting twice is harmless.
func (f *FormInput) Mount() {
	var rules []form.Rule
	if f.required {
		rules = append(rules, form.RequiredRule(form.RequiredMessage))
	}
	rules = append(rules, f.rules...)
	f.store.RegisterField(f.path, rules...)

	if f.hasDefault && !f.mounted {
		if setter, ok := f.store.(form.DefaultSetter); ok {
			if _, exists := f.store.Value(f.path); !exists {
				setter.SetDefault(f.path, f.defaultValue)
			}
		}
	}
	f.mounted = true
}

// Value returns the store's value for the path, or the default when the
// store holds none.
func (f *FormInput) Value() model.Value {
	if value, ok := f.store.Value(f.path); ok {
		return value
	}
	if f.hasDefault {
		return f.defaultValue
	}
	return model.Null()
}

// Error resolves the path's current message in the store's error tree.
func (f *FormInput) Error() string {
	message, _ := errtree.Resolve(f.store.Errors(), f.path)
	return message
}

// Props derives the render state from the store. It is safe to call any
// number of times.
func (f *FormInput) Props() model.InputProps {
	props := f.input.Props(f.ID(), f.Value(), f.Error(), f.required)
	props.Name = f.path
	return props
}

// OnChange forwards an already normalised value to the store unchanged.
func (f *FormInput) OnChange(value model.Value) {
	f.store.SetValue(f.path, value)
}

// Change feeds raw text through the input (which normalises it) and on to
// the store. Disabled inputs drop the edit.
func (f *FormInput) Change(raw string) bool {
	_, ok := f.input.Change(raw)
	return ok
}

// Blur marks the field touched in the store.
func (f *FormInput) Blur() {
	f.input.Blur()
	f.store.Touch(f.path)
}
