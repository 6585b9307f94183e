package formkit

import (
	"context"
	"io/fs"
	"strings"
	"testing"
)

func TestAssetsFSContainsRuntimeFiles(t *testing.T) {
	fsys := AssetsFS()
	for _, name := range []string{"formkit.css", "formkit-input.js"} {
		if _, err := fs.ReadFile(fsys, name); err != nil {
			t.Fatalf("expected %s to be readable: %v", name, err)
		}
	}
}

func TestEmbeddedTemplatesIncludeComponents(t *testing.T) {
	data, err := fs.ReadFile(EmbeddedTemplates(), "templates/components/input.tmpl")
	if err != nil {
		t.Fatalf("read input template: %v", err)
	}
	if !strings.Contains(string(data), "data-formkit-input") {
		t.Fatalf("unexpected input template contents")
	}
}

func TestGenerateHTMLFromDefinition(t *testing.T) {
	def, err := ParseDefinition([]byte("title: Login\nfields:\n  - name: user\n  - name: secret\n    type: password\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	html, err := GenerateHTMLFromDefinition(context.Background(), def, "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	out := string(html)
	for _, want := range []string{"<title>Login</title>", `name="user"`, `type="password"`, "data-formkit-toggle"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output", want)
		}
	}
}
