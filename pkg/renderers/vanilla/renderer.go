package vanilla

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/render"
	rendertemplate "github.com/goliatone/go-formkit/pkg/render/template"
	gotemplate "github.com/goliatone/go-formkit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formkit/pkg/renderers/vanilla/components"
	"github.com/goliatone/go-formkit/pkg/theme"
)

const pageTemplate = "templates/page.tmpl"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	registry         *components.Registry
}

// WithTemplatesFS supplies an alternate template bundle. Templates it lacks
// fall back to the embedded bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithComponentRegistry replaces the default input/button components.
func WithComponentRegistry(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// Renderer emits server-rendered HTML forms.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	registry  *components.Registry
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	var cfg config
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engineOptions := []gotemplate.Option{gotemplate.WithExtension(".tmpl")}
		if cfg.templateFS != nil {
			engineOptions = append(engineOptions, gotemplate.WithFS(cfg.templateFS))
		}
		engineOptions = append(engineOptions, gotemplate.WithFS(TemplatesFS()))

		engine, err := gotemplate.New(engineOptions...)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	registry := cfg.registry
	if registry == nil {
		registry = components.NewDefaultRegistry()
	}
	return &Renderer{templates: renderer, registry: registry}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render emits page as an HTML document, or only the form element when
// options.Fragment is set.
func (r *Renderer) Render(ctx context.Context, page model.Page, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	data := components.ComponentData{Template: r.templates}
	if options.Theme != nil {
		data.ThemePartials = options.Theme.Partials
	}

	used := make([]string, 0, 2)
	inputs := make([]string, 0, len(page.Inputs))
	for _, props := range page.Inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := r.component(components.NameInput, inputView(props), data)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: input %q: %w", props.Name, err)
		}
		inputs = append(inputs, out)
		if props.Type.IsPassword() {
			used = appendOnce(used, components.NameInput)
		}
	}

	buttons := make([]string, 0, len(page.Buttons))
	for idx, props := range page.Buttons {
		out, err := r.component(components.NameButton, buttonView(props), data)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: button %d: %w", idx, err)
		}
		buttons = append(buttons, out)
	}

	view := r.pageView(page, options, used)
	view["inputs"] = inputs
	view["buttons"] = buttons

	name := pageTemplate
	if options.Theme != nil {
		if candidate := strings.TrimSpace(options.Theme.Partials[theme.PartialPage]); candidate != "" {
			name = candidate
		}
	}
	result, err := r.templates.RenderTemplate(name, view)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) component(name string, view map[string]any, data components.ComponentData) (string, error) {
	descriptor, ok := r.registry.Descriptor(name)
	if !ok {
		return "", fmt.Errorf("component %q not registered", name)
	}
	var buf bytes.Buffer
	if err := descriptor.Renderer(&buf, view, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type pageScript struct {
	Src    string
	Inline string
	Defer  bool
	Module bool
}

func (r *Renderer) pageView(page model.Page, options render.RenderOptions, used []string) map[string]any {
	method := strings.ToUpper(strings.TrimSpace(page.Method))
	if method == "" {
		method = "POST"
	}

	assetURL := func(string) string { return "" }
	view := map[string]any{
		"fragment":     options.Fragment,
		"title":        page.Title,
		"action":       page.Action,
		"method":       method,
		"hidden":       render.SortedHiddenFields(options.Hidden),
		"formErrors":   render.MergeFormErrors(page.FormErrors, options.FormErrors...),
		"pageClass":    string(ClassPage),
		"formClass":    string(ClassForm),
		"headerClass":  string(ClassHeader),
		"fieldsClass":  string(ClassFields),
		"actionsClass": string(ClassActions),
		"errorsClass":  string(ClassErrors),
	}
	if cfg := options.Theme; cfg != nil {
		view["themeName"] = cfg.Theme
		view["variant"] = cfg.Variant
		view["cssVars"] = inlineCSSVars(cfg.CSSVars)
		if cfg.AssetURL != nil {
			assetURL = cfg.AssetURL
		}
	}

	if href := assetURL("stylesheet"); href != "" {
		view["stylesheetURL"] = href
	} else {
		view["stylesheet"] = embeddedAsset(StylesheetName)
	}

	stylesheets, scripts := r.registry.Assets(used)
	view["stylesheets"] = stylesheets

	resolved := make([]pageScript, 0, len(scripts))
	for _, script := range scripts {
		entry := pageScript{Src: script.Src, Defer: script.Defer, Module: script.Module}
		if entry.Src == "" && script.Name != "" {
			entry.Src = assetURL(script.Name)
			if entry.Src == "" {
				entry.Inline = embeddedAsset(script.Name)
			}
		}
		if entry.Src == "" && entry.Inline == "" {
			continue
		}
		resolved = append(resolved, entry)
	}
	view["scripts"] = resolved
	return view
}

// inlineCSSVars renders custom properties as a style attribute value in
// name order. Values containing characters that could end the declaration
// are dropped.
func inlineCSSVars(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		value := strings.TrimSpace(vars[name])
		if value == "" || strings.ContainsAny(value, ";{}\"<>") || strings.ContainsAny(name, ";:{}\"<> ") {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteByte(';')
	}
	return b.String()
}

func appendOnce(list []string, name string) []string {
	for _, existing := range list {
		if existing == name {
			return list
		}
	}
	return append(list, name)
}
