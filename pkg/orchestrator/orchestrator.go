package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formkit/pkg/binding"
	"github.com/goliatone/go-formkit/pkg/form"
	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/openapi"
	"github.com/goliatone/go-formkit/pkg/render"
	"github.com/goliatone/go-formkit/pkg/renderers/vanilla"
	"github.com/goliatone/go-formkit/pkg/theme"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects the loader used to resolve Request.Source.
func WithLoader(loader *openapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector resolves Request.ThemeName/ThemeVariant into the
// renderer config when the request does not carry one already.
func WithThemeSelector(selector gotheme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeFallbacks supplies partials used when the selected theme does not
// define them.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = fallbacks
	}
}

// WithTransformer registers a Transformer that runs on every definition
// before bindings are mounted.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithStoreOptions configures the memory store created per request.
func WithStoreOptions(options ...form.Option) Option {
	return func(o *Orchestrator) {
		o.storeOptions = append(o.storeOptions, options...)
	}
}

// Orchestrator coordinates the pipeline from definition source to rendered
// output. Missing dependencies fall back to the built-in loader and the
// vanilla renderer.
type Orchestrator struct {
	loader          *openapi.Loader
	registry        *render.Registry
	defaultRenderer string
	themeSelector   gotheme.ThemeSelector
	themeFallbacks  map[string]string
	transformer     Transformer
	storeOptions    []form.Option
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes a single render (and optional submission).
type Request struct {
	// Definition bypasses OpenAPI resolution when set.
	Definition *model.Definition

	// Source locates the OpenAPI document. Ignored when Document is set.
	Source openapi.Source

	// Document holds raw OpenAPI bytes the caller already loaded.
	Document []byte

	// OperationID selects the operation whose request body becomes the form.
	OperationID string

	// Renderer names the renderer to use. Empty selects the default.
	Renderer string

	ThemeName    string
	ThemeVariant string

	// Values are replayed through the bindings as edits followed by blurs.
	Values url.Values

	// Submit validates every field after Values are applied.
	Submit bool

	// SubmitError is added to the page-level errors when Submit fails.
	SubmitError string

	// Errors carries a backend error payload keyed by field path. Field
	// messages attach to the matching inputs; the rest become page errors.
	Errors map[string][]string

	RenderOptions render.RenderOptions
}

// Result is the outcome of Execute.
type Result struct {
	Output      []byte
	ContentType string
	Form        *binding.Form
	// Values and Valid are populated when the request asked for a submit.
	Values map[string]model.Value
	Valid  bool
}

// Generate renders the request and returns only the output bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	result, err := o.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	return result.Output, nil
}

// Execute resolves the definition, mounts bindings, applies posted values,
// optionally submits, and renders the page.
func (o *Orchestrator) Execute(ctx context.Context, req Request) (Result, error) {
	f, err := o.Form(ctx, req)
	if err != nil {
		return Result{}, err
	}

	result := Result{Form: f, Valid: true}
	if req.Submit {
		result.Values, result.Valid = f.Submit()
	}
	var formErrors []string
	if len(req.Errors) > 0 {
		formErrors = f.ApplyErrors(req.Errors)
		result.Valid = false
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	options, err := o.renderOptions(req)
	if err != nil {
		return Result{}, err
	}
	if req.Submit && !result.Valid && req.SubmitError != "" {
		options.FormErrors = render.MergeFormErrors(options.FormErrors, req.SubmitError)
	}

	output, err := renderer.Render(ctx, f.Page(formErrors...), options)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render output: %w", err)
	}
	result.Output = output
	result.ContentType = renderer.ContentType()
	return result, nil
}

// Form resolves the definition and returns mounted bindings with
// Request.Values applied.
func (o *Orchestrator) Form(ctx context.Context, req Request) (*binding.Form, error) {
	def, err := o.Definition(ctx, req)
	if err != nil {
		return nil, err
	}
	store := form.NewMemoryStore(o.storeOptions...)
	f := binding.NewForm(store, def)
	if len(req.Values) > 0 {
		f.Apply(req.Values)
	}
	return f, nil
}

// Definition resolves the request's form definition and runs the
// transformer over it.
func (o *Orchestrator) Definition(ctx context.Context, req Request) (model.Definition, error) {
	if ctx == nil {
		return model.Definition{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return model.Definition{}, err
	}
	if err := o.initialiseErr; err != nil {
		return model.Definition{}, err
	}

	var def model.Definition
	if req.Definition != nil {
		def = cloneDefinition(*req.Definition)
	} else {
		if strings.TrimSpace(req.OperationID) == "" {
			return model.Definition{}, errors.New("orchestrator: operation id is required")
		}
		data, err := o.resolveDocument(ctx, req)
		if err != nil {
			return model.Definition{}, err
		}
		def, err = openapi.LoadDefinition(ctx, data, req.OperationID)
		if err != nil {
			return model.Definition{}, fmt.Errorf("orchestrator: build definition: %w", err)
		}
	}

	if o.transformer != nil {
		if err := o.transformer.Transform(ctx, &def); err != nil {
			return model.Definition{}, fmt.Errorf("orchestrator: transform definition: %w", err)
		}
	}
	if err := def.Validate(); err != nil {
		return model.Definition{}, err
	}
	return def, nil
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) ([]byte, error) {
	if len(req.Document) > 0 {
		return req.Document, nil
	}
	if req.Source == nil {
		return nil, errors.New("orchestrator: source, document or definition is required")
	}
	data, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return data, nil
}

func (o *Orchestrator) renderOptions(req Request) (render.RenderOptions, error) {
	options := req.RenderOptions
	if options.Theme != nil || o.themeSelector == nil {
		return options, nil
	}
	cfg, err := theme.Resolve(o.themeSelector, req.ThemeName, req.ThemeVariant, o.themeFallbacks)
	if err != nil {
		return render.RenderOptions{}, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	options.Theme = cfg
	return options, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = openapi.NewLoader()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		o.registry.MustRegister(renderer)
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}

func cloneDefinition(def model.Definition) model.Definition {
	def.Fields = append([]model.FieldConfig(nil), def.Fields...)
	return def
}
