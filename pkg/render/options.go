package render

import (
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// RenderOptions carry per-request data renderers use without changing the
// page itself.
type RenderOptions struct {
	// Theme supplies tokens, partial overrides and asset URLs. Nil selects the
	// renderer defaults.
	Theme *gotheme.RendererConfig
	// Hidden emits hidden inputs (CSRF tokens, versions) before the controls.
	Hidden map[string]string
	// FormErrors are appended to the page-level errors.
	FormErrors []string
	// Fragment skips the document shell and renders only the form.
	Fragment bool
}

// MergeFormErrors concatenates form-level messages, trimming whitespace and
// dropping blanks and duplicates while keeping order.
func MergeFormErrors(existing []string, extras ...string) []string {
	seen := make(map[string]struct{}, len(existing)+len(extras))
	var out []string
	for _, list := range [][]string{existing, extras} {
		for _, msg := range list {
			msg = strings.TrimSpace(msg)
			if msg == "" {
				continue
			}
			if _, dup := seen[msg]; dup {
				continue
			}
			seen[msg] = struct{}{}
			out = append(out, msg)
		}
	}
	return out
}
