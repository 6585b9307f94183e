// Package form provides the form store contract consumed by field bindings
// and an in-memory implementation backed by go-playground/validator rules.
package form

import (
	"github.com/goliatone/go-formkit/pkg/errtree"
	"github.com/goliatone/go-formkit/pkg/model"
)

// Store owns field values, validation rules and computed errors. Bindings read
// from it on every render and write to it on every edit.
type Store interface {
	// Value returns the current value for path; ok is false when the store
	// holds nothing for it yet.
	Value(path string) (model.Value, bool)
	// SetValue records an edit for path.
	SetValue(path string, value model.Value)
	// RegisterField declares path and the rules validated against it.
	// Registering again replaces the previous rules.
	RegisterField(path string, rules ...Rule)
	// Touch marks path as visited (a blur).
	Touch(path string)
	// Errors returns the current error tree.
	Errors() errtree.Node
}

// ErrorSetter is implemented by stores that accept externally computed
// messages such as server side validation results.
type ErrorSetter interface {
	SetError(path, message string)
}

// DefaultSetter is implemented by stores that can seed a default value
// without marking the field dirty or triggering validation.
type DefaultSetter interface {
	SetDefault(path string, value model.Value)
}

// Mode controls when a store validates fields.
type Mode string

const (
	// ModeOnBlur validates a field when it is touched and on every change
	// after that.
	ModeOnBlur Mode = "onBlur"
	// ModeOnChange validates on every change.
	ModeOnChange Mode = "onChange"
	// ModeOnSubmit validates only when Submit runs, then on every change.
	ModeOnSubmit Mode = "onSubmit"
)

// Submitter is a Store that can validate everything at once and hand back
// the submitted values.
type Submitter interface {
	Store
	Submit() (map[string]model.Value, bool)
}
