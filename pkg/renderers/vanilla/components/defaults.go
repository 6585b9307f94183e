package components

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goliatone/go-formkit/pkg/theme"
)

const templatePrefix = "templates/components/"

// NewDefaultRegistry returns a registry holding the built-in input and
// button components.
func NewDefaultRegistry() *Registry {
	registry := New()

	registry.MustRegister(NameInput, Descriptor{
		Renderer: templateComponentRenderer(theme.PartialInput, templatePrefix+"input.tmpl"),
		Scripts:  []Script{{Name: ScriptPasswordToggle, Defer: true}},
	})
	registry.MustRegister(NameButton, Descriptor{
		Renderer: templateComponentRenderer(theme.PartialButton, templatePrefix+"button.tmpl"),
	})

	return registry
}

func templateComponentRenderer(partialKey, templateName string) Renderer {
	return func(buf *bytes.Buffer, view map[string]any, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("components: template renderer not configured for %q", templateName)
		}

		resolved := templateName
		if candidate := strings.TrimSpace(data.ThemePartials[partialKey]); candidate != "" {
			resolved = candidate
		}

		rendered, err := data.Template.RenderTemplate(resolved, view)
		if err != nil {
			return fmt.Errorf("components: render template %q: %w", resolved, err)
		}
		buf.WriteString(rendered)
		return nil
	}
}
