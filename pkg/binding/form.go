package binding

import (
	"net/url"
	"sort"
	"strings"

	"github.com/goliatone/go-formkit/pkg/errtree"
	"github.com/goliatone/go-formkit/pkg/form"
	"github.com/goliatone/go-formkit/pkg/model"
)

// Form mounts one FormInput per field of a definition against a shared
// store.
type Form struct {
	store      form.Submitter
	definition model.Definition
	inputs     []*FormInput
}

// NewForm builds and mounts bindings for every field in def.
func NewForm(store form.Submitter, def model.Definition) *Form {
	f := &Form{
		store:      store,
		definition: def,
		inputs:     make([]*FormInput, 0, len(def.Fields)),
	}
	for _, field := range def.Fields {
		options := []Option{
			WithRequired(field.IsRequired()),
			WithInput(field.Input),
		}
		if field.Default != nil {
			options = append(options, WithDefault(model.ValueOf(field.Default)))
		}
		if field.Validate != "" {
			options = append(options, WithRules(form.TagRule(field.Validate, field.ValidateMessage)))
		}
		binding := New(store, field.Name, options...)
		binding.Mount()
		f.inputs = append(f.inputs, binding)
	}
	return f
}

func (f *Form) Store() form.Submitter { return f.store }

func (f *Form) Inputs() []*FormInput {
	return append([]*FormInput(nil), f.inputs...)
}

// Lookup finds the binding for path.
func (f *Form) Lookup(path string) (*FormInput, bool) {
	for _, in := range f.inputs {
		if in.Path() == path {
			return in, true
		}
	}
	return nil, false
}

// Apply replays a posted HTML form through each binding as an edit followed
// by a blur. Fields missing from values are left untouched.
func (f *Form) Apply(values url.Values) {
	for _, in := range f.inputs {
		raw, ok := values[in.Path()]
		if !ok {
			continue
		}
		text := ""
		if len(raw) > 0 {
			text = raw[0]
		}
		in.Change(text)
		in.Blur()
	}
}

// ApplyErrors maps a backend error payload onto the store and returns the
// messages that belong to the form as a whole. Field messages are returned
// as form-level ones when the store cannot hold external errors.
func (f *Form) ApplyErrors(payload map[string][]string) []string {
	tree, formLevel := errtree.FromPayload(payload)
	flat := errtree.Flatten(tree)
	if len(flat) == 0 {
		return formLevel
	}
	setter, ok := f.store.(form.ErrorSetter)
	paths := make([]string, 0, len(flat))
	for path := range flat {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		if ok {
			setter.SetError(path, flat[path])
			continue
		}
		formLevel = append(formLevel, flat[path])
	}
	return formLevel
}

// Submit validates every field through the store.
func (f *Form) Submit() (map[string]model.Value, bool) {
	return f.store.Submit()
}

// Page assembles the render model: one InputProps per binding and the
// definition's submit button.
func (f *Form) Page(formErrors ...string) model.Page {
	page := model.Page{
		Title:      f.definition.Title,
		Action:     f.definition.Action,
		Method:     strings.ToUpper(strings.TrimSpace(f.definition.Method)),
		Inputs:     make([]model.InputProps, 0, len(f.inputs)),
		FormErrors: formErrors,
	}
	if page.Method == "" {
		page.Method = "POST"
	}
	for _, in := range f.inputs {
		page.Inputs = append(page.Inputs, in.Props())
	}

	submit := f.definition.Submit
	if strings.TrimSpace(submit.Label) == "" {
		submit.Label = "Submit"
	}
	if submit.Type == "" {
		submit.Type = "submit"
	}
	page.Buttons = []model.ButtonProps{submit}
	return page
}
