// Package formkit is the top-level entry point for rendering bound forms.
// It re-exports the orchestrator pipeline for callers that only need to turn
// an OpenAPI operation or a form definition into HTML.
package formkit

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/openapi"
	"github.com/goliatone/go-formkit/pkg/orchestrator"
	"github.com/goliatone/go-formkit/pkg/render"
)

// RenderOptions describes per-request data (hidden fields, page errors,
// theme config) renderers consume.
type RenderOptions = render.RenderOptions

// Definition is a declarative form description.
type Definition = model.Definition

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewLoader constructs the OpenAPI document loader.
func NewLoader(options ...openapi.LoaderOption) *openapi.Loader {
	return openapi.NewLoader(options...)
}

// ParseDefinition decodes a YAML or JSON form definition.
func ParseDefinition(data []byte) (Definition, error) {
	return model.ParseDefinition(data)
}

// GenerateHTML loads the OpenAPI source, builds a form for the requested
// operation, and renders it using the named renderer ("" selects vanilla).
func GenerateHTML(ctx context.Context, source openapi.Source, operationID, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Source:      source,
		OperationID: operationID,
		Renderer:    rendererName,
	})
}

// GenerateHTMLFromDefinition renders a form definition directly, bypassing
// OpenAPI resolution.
func GenerateHTMLFromDefinition(ctx context.Context, def Definition, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Definition: &def,
		Renderer:   rendererName,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices are resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
