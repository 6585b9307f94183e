package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/render"
)

type stubRenderer struct{ name string }

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(_ context.Context, page model.Page, _ render.RenderOptions) ([]byte, error) {
	return []byte(s.name + ":" + page.Title), nil
}

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "b"})
	registry.MustRegister(stubRenderer{name: "a"})

	if err := registry.Register(stubRenderer{name: "a"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected error for blank name")
	}
	if got := strings.Join(registry.List(), ","); got != "a,b" {
		t.Fatalf("list = %q", got)
	}
	if !registry.Has("a") || registry.Has("c") {
		t.Fatalf("has reported wrong membership")
	}

	out, contentType, err := registry.Render(context.Background(), "b", model.Page{Title: "Login"}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "b:Login" || contentType != "text/plain" {
		t.Fatalf("unexpected output %q (%s)", out, contentType)
	}

	if _, _, err := registry.Render(context.Background(), "missing", model.Page{}, render.RenderOptions{}); err == nil {
		t.Fatalf("expected error for unknown renderer")
	}
}
