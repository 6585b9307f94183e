// Package testsupport holds helpers shared by package tests.
package testsupport

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formkit/pkg/binding"
	"github.com/goliatone/go-formkit/pkg/form"
	"github.com/goliatone/go-formkit/pkg/model"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MustParseDefinition decodes a YAML form definition or fails the test.
func MustParseDefinition(t *testing.T, data string) model.Definition {
	t.Helper()

	def, err := model.ParseDefinition([]byte(data))
	if err != nil {
		t.Fatalf("parse definition: %v", err)
	}
	return def
}

// NewForm binds def to a fresh in-memory store.
func NewForm(t *testing.T, def model.Definition, opts ...form.Option) *binding.Form {
	t.Helper()

	if err := def.Validate(); err != nil {
		t.Fatalf("invalid definition: %v", err)
	}
	return binding.NewForm(form.NewMemoryStore(opts...), def)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// AssertContains fails when any fragment is missing from out.
func AssertContains(t *testing.T, out string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(out, fragment) {
			t.Errorf("expected output to contain %q\noutput:\n%s", fragment, out)
		}
	}
}

// AssertNotContains fails when any fragment appears in out.
func AssertNotContains(t *testing.T, out string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if strings.Contains(out, fragment) {
			t.Errorf("expected output to omit %q\noutput:\n%s", fragment, out)
		}
	}
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
