package icons

import (
	"strings"
	"testing"
)

func TestSVGRendersBuiltins(t *testing.T) {
	set := NewSet()
	for _, name := range []string{Asterisk, Eye, EyeOff, Search, Loader} {
		got := set.SVG(name, 12, "text-destructive")
		if !strings.Contains(got, "<svg") {
			t.Fatalf("%s: expected svg root, got %q", name, got)
		}
		if !strings.Contains(got, "text-destructive") {
			t.Fatalf("%s: expected class to survive sanitizing, got %q", name, got)
		}
		if !strings.Contains(got, `width="12"`) {
			t.Fatalf("%s: expected width attribute, got %q", name, got)
		}
	}
}

func TestSVGUnknownGlyph(t *testing.T) {
	if got := NewSet().SVG("missing", 16, ""); got != "" {
		t.Fatalf("expected empty output for unknown glyph, got %q", got)
	}
}

func TestRegisterSanitizesScripts(t *testing.T) {
	set := NewSet()
	if err := set.Register("bad", `<script>alert('x')</script><path d="M0 0h24v24H0z" onclick="steal()"/>`); err != nil {
		t.Fatalf("register: %v", err)
	}
	got := set.SVG("bad", 16, `x" onload="evil()`)
	if strings.Contains(got, "script") || strings.Contains(got, "onclick") || strings.Contains(got, `onload="`) {
		t.Fatalf("expected active content removed, got %q", got)
	}
	if !strings.Contains(got, "<path") {
		t.Fatalf("expected path element retained, got %q", got)
	}
}

func TestRegisterValidatesInput(t *testing.T) {
	set := NewSet()
	if err := set.Register(" ", "<path/>"); err == nil {
		t.Fatalf("expected error for blank name")
	}
	if err := set.Register("empty", "  "); err == nil {
		t.Fatalf("expected error for blank markup")
	}
}

func TestRegisterInvalidatesCache(t *testing.T) {
	set := NewSet()
	first := set.SVG(Search, 16, "")
	if err := set.Register(Search, `<circle cx="1" cy="1" r="1"/>`); err != nil {
		t.Fatalf("register: %v", err)
	}
	second := set.SVG(Search, 16, "")
	if first == second {
		t.Fatalf("expected cache invalidated after re-register")
	}
}
