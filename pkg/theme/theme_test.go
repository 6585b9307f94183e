package theme_test

import (
	"strings"
	"testing"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formkit/pkg/model"
	"github.com/goliatone/go-formkit/pkg/theme"
)

func TestSelector_DefaultsAndVariants(t *testing.T) {
	selector := theme.NewSelector("", "dark")

	selection, err := selector.Select("", "")
	if err != nil {
		t.Fatalf("select default: %v", err)
	}
	if selection.Theme != theme.DefaultName || selection.Variant != "dark" {
		t.Fatalf("unexpected default selection: %s/%s", selection.Theme, selection.Variant)
	}

	if _, err := selector.Select("missing", ""); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
	if _, err := selector.Select(theme.DefaultName, "sepia"); err == nil {
		t.Fatalf("expected error for unknown variant")
	}
}

func TestRendererConfig_MergesVariant(t *testing.T) {
	manifest := &gotheme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens:  map[string]string{"brand": "#123456", "radius": "4px"},
		Templates: map[string]string{
			theme.PartialInput: "themes/acme/input.tmpl",
		},
		Assets: gotheme.Assets{
			Prefix: "/assets/themes/acme",
			Files:  map[string]string{"stylesheet": "theme.css"},
		},
		Variants: map[string]gotheme.Variant{
			"dark": {
				Tokens:    map[string]string{"brand": "#654321"},
				Templates: map[string]string{theme.PartialButton: "themes/acme/dark/button.tmpl"},
				Assets:    gotheme.Assets{Files: map[string]string{"icons": "icons.dark.svg"}},
			},
		},
	}

	selector := theme.NewSelector("acme", "")
	if err := selector.Register(manifest); err != nil {
		t.Fatalf("register: %v", err)
	}

	cfg, err := theme.Resolve(selector, "acme", "dark", map[string]string{
		theme.PartialPage:   "templates/page.tmpl",
		theme.PartialButton: "templates/components/button.tmpl",
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if cfg.Tokens["brand"] != "#654321" || cfg.Tokens["radius"] != "4px" {
		t.Fatalf("tokens not merged: %v", cfg.Tokens)
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("css vars not derived: %v", cfg.CSSVars)
	}
	if cfg.Partials[theme.PartialInput] != "themes/acme/input.tmpl" {
		t.Fatalf("base partial missing: %v", cfg.Partials)
	}
	if cfg.Partials[theme.PartialButton] != "themes/acme/dark/button.tmpl" {
		t.Fatalf("variant partial should override fallback: %v", cfg.Partials)
	}
	if cfg.Partials[theme.PartialPage] != "templates/page.tmpl" {
		t.Fatalf("fallback partial missing: %v", cfg.Partials)
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("stylesheet url = %q", got)
	}
	if got := cfg.AssetURL("icons"); got != "/assets/themes/acme/icons.dark.svg" {
		t.Fatalf("variant asset url = %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("missing asset url = %q", got)
	}
}

func TestLoadManifest(t *testing.T) {
	data := []byte(`
name: paper
version: 2.0.0
tokens:
  primary: "#000"
assets:
  prefix: /static/paper
  files:
    stylesheet: paper.css
variants:
  contrast:
    tokens:
      primary: "#fff"
`)
	manifest, err := theme.LoadManifest(data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if manifest.Name != "paper" || manifest.Tokens["primary"] != "#000" {
		t.Fatalf("unexpected manifest: %+v", manifest)
	}
	if manifest.Variants["contrast"].Tokens["primary"] != "#fff" {
		t.Fatalf("variant tokens not loaded")
	}

	if _, err := theme.LoadManifest([]byte("version: 1")); err == nil {
		t.Fatalf("expected error for nameless manifest")
	}
}

func TestButtonClasses(t *testing.T) {
	got := theme.ButtonClasses(model.ButtonGhost, model.SizeSmall, "w-32")
	for _, want := range []string{"hover:bg-accent", "h-8", "gap-1.5", "w-32"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
	if strings.Contains(got, " gap-2 ") {
		t.Fatalf("size gap should replace base gap: %q", got)
	}

	fallback := theme.ButtonClasses("unknown", "huge", "")
	if fallback != theme.ButtonClasses(model.ButtonDefault, model.SizeDefault, "") {
		t.Fatalf("unknown tags should fall back to defaults")
	}
}

func TestInputContainerClasses(t *testing.T) {
	if strings.Contains(theme.InputContainerClasses(false, ""), "border-destructive ring-destructive/20") {
		t.Fatalf("error classes applied without an error")
	}
	if !strings.Contains(theme.InputContainerClasses(true, "my-extra"), "my-extra") {
		t.Fatalf("extra container classes dropped")
	}
}
