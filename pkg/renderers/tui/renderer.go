package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"

	"github.com/goliatone/go-formkit/pkg/binding"
	"github.com/goliatone/go-formkit/pkg/errtree"
	"github.com/goliatone/go-formkit/pkg/form"
	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/render"
)

// Renderer drives bound forms from a terminal. Render prints a plain text
// summary of a page; Fill prompts for every field.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	theme        Theme
	maxAttempts  int
	out          io.Writer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output,
// three attempts per field).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		theme:        DefaultTheme,
		maxAttempts:  3,
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(r.out)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the format produced by Render.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// OutputContentType reports the serialization format used by Fill.
func (r *Renderer) OutputContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Render writes one line per input (label, value and any error) followed by
// page-level errors.
func (r *Renderer) Render(ctx context.Context, page model.Page, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	if page.Title != "" {
		b.WriteString(page.Title)
		b.WriteString("\n")
		b.WriteString(strings.Repeat("=", len([]rune(page.Title))))
		b.WriteString("\n")
	}
	for _, props := range page.Inputs {
		label := props.Label
		if label == "" {
			label = props.Name
		}
		if props.Required && props.ShowRequiredSign {
			label += r.theme.RequiredSuffix
		}
		value := props.Value
		if props.Type.IsPassword() && value != "" && !props.ShowPassword {
			value = strings.Repeat("*", len([]rune(value)))
		}
		fmt.Fprintf(&b, "%s: %s\n", label, value)
		switch {
		case props.Error != "":
			fmt.Fprintf(&b, "  %s%s\n", r.theme.ErrorPrefix, props.Error)
		case props.Tip != "":
			fmt.Fprintf(&b, "  %s%s\n", r.theme.InfoPrefix, props.Tip)
		}
	}
	for _, msg := range render.MergeFormErrors(page.FormErrors, opts.FormErrors...) {
		fmt.Fprintf(&b, "%s%s\n", r.theme.ErrorPrefix, msg)
	}
	return []byte(b.String()), nil
}

// Fill prompts for every field of f, submits it and serializes the result.
func (r *Renderer) Fill(ctx context.Context, f *binding.Form) ([]byte, error) {
	values, err := r.Collect(ctx, f)
	if err != nil {
		return nil, err
	}
	return r.serialize(values)
}

// Collect prompts every enabled field, re-prompting while the field resolves
// an error, then submits. Fields that fail only at submit time (for example
// in onSubmit mode) are prompted again.
func (r *Renderer) Collect(ctx context.Context, f *binding.Form) (map[string]model.Value, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if f == nil {
		return nil, errors.New("tui: form is required")
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	for _, in := range f.Inputs() {
		if err := r.promptInput(ctx, in); err != nil {
			return nil, err
		}
	}

	for round := 1; ; round++ {
		values, ok := f.Submit()
		if ok {
			return values, nil
		}

		var failing []*binding.FormInput
		for _, in := range f.Inputs() {
			if in.Error() != "" && !in.Input().Config().Disabled {
				failing = append(failing, in)
			}
		}
		if len(failing) == 0 {
			return nil, fmt.Errorf("tui: form rejected: %s", describeErrors(f.Store().Errors()))
		}
		if r.maxAttempts > 0 && round >= r.maxAttempts {
			return nil, fmt.Errorf("%w: %s", ErrTooManyAttempts, failing[0].Path())
		}
		for _, in := range failing {
			if err := r.promptInput(ctx, in); err != nil {
				return nil, err
			}
		}
	}
}

func (r *Renderer) promptInput(ctx context.Context, in *binding.FormInput) error {
	cfg := in.Input().Config()
	if cfg.Disabled {
		return nil
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		prompt := InputConfig{
			Message: r.label(in, cfg),
			Default: in.Props().Value,
			Help:    help(cfg),
		}

		var (
			answer string
			err    error
		)
		if cfg.Type.IsPassword() {
			answer, err = r.driver.Password(ctx, prompt)
		} else {
			answer, err = r.driver.Input(ctx, prompt)
		}
		if err != nil {
			return err
		}

		in.Input().Focus()
		in.Change(answer)
		in.Blur()

		message := in.Error()
		if message == "" {
			return nil
		}
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+message); err != nil {
			return err
		}
		if r.maxAttempts > 0 && attempt >= r.maxAttempts {
			return fmt.Errorf("%w: %s", ErrTooManyAttempts, in.Path())
		}
	}
}

func (r *Renderer) label(in *binding.FormInput, cfg model.InputConfig) string {
	label := cfg.Label
	if label == "" {
		label = in.Path()
	}
	if in.Required() {
		label += r.theme.RequiredSuffix
	}
	return label
}

func help(cfg model.InputConfig) string {
	if cfg.Tip != "" {
		return cfg.Tip
	}
	return cfg.Placeholder
}

func describeErrors(tree errtree.Node) string {
	flat := errtree.Flatten(tree)
	paths := make([]string, 0, len(flat))
	for path := range flat {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	parts := make([]string, 0, len(paths))
	for _, path := range paths {
		parts = append(parts, path+": "+flat[path])
	}
	return strings.Join(parts, "; ")
}

func (r *Renderer) serialize(values map[string]model.Value) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		encoded := url.Values{}
		for path, value := range values {
			encoded.Set(path, value.Text())
		}
		return []byte(encoded.Encode()), nil
	case OutputFormatPrettyText:
		var b strings.Builder
		for _, path := range form.SortedPaths(values) {
			fmt.Fprintf(&b, "%s=%s\n", path, values[path].Text())
		}
		return []byte(b.String()), nil
	default:
		return json.Marshal(values)
	}
}
