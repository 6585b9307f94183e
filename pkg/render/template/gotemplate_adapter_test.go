package template_test

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formkit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formkit/pkg/testsupport"
)

var templatesFS = fstest.MapFS{
	"hello.tmpl":      {Data: []byte("Hello {{ name }}!")},
	"use-global.tmpl": {Data: []byte("env={{ settings.env }}")},
	"use-filter.tmpl": {Data: []byte("{{ name|shout }}")},
	"classes.tmpl":    {Data: []byte(`<div class="{{ base|cn:extra }}"></div>`)},
	"struct.tmpl":     {Data: []byte("{{ Label }}/{{ Count }}")},
	"escape.tmpl":     {Data: []byte("{{ raw }}|{{ raw|safe }}")},
}

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	if result != "Hello Ada!" || written != result {
		t.Fatalf("unexpected output result=%q written=%q", result, written)
	}
}

func TestGoTemplateEngine_RenderInline(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.Render("{{ a }}-{{ b }}", map[string]any{"a": "x", "b": "y"})
	if err != nil {
		t.Fatalf("render inline: %v", err)
	}
	if got != "x-y" {
		t.Fatalf("inline output = %q", got)
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	got, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "env=staging" {
		t.Fatalf("global output = %q", got)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	got, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ADA!" {
		t.Fatalf("filter output = %q", got)
	}

	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}
}

func TestGoTemplateEngine_ClassNamesFilter(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.RenderTemplate("classes", map[string]any{
		"base":  "h-9 px-4 text-sm",
		"extra": "h-12",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != `<div class="h-12 px-4 text-sm"></div>` {
		t.Fatalf("class output = %q", got)
	}
}

func TestGoTemplateEngine_StructContextAndEscaping(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderTemplate("struct", struct {
		Label string
		Count string
	}{Label: "Email", Count: "3"})
	if err != nil {
		t.Fatalf("render struct: %v", err)
	}
	if got != "Email/3" {
		t.Fatalf("struct output = %q", got)
	}

	got, err = engine.RenderTemplate("escape", map[string]any{"raw": "<b>"})
	if err != nil {
		t.Fatalf("render escape: %v", err)
	}
	if got != "&lt;b&gt;|<b>" {
		t.Fatalf("escape output = %q", got)
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without a template source")
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
