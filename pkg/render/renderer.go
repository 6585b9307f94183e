package render

import (
	"context"

	"github.com/goliatone/go-formkit/pkg/model"
)

// Renderer converts a page of form controls into a byte representation
// (HTML, terminal text).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, page model.Page, options RenderOptions) ([]byte, error)
}
