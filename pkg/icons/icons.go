// Package icons renders the small set of line glyphs used by the components
// (asterisk, eye, eye-off, search, loader). Glyph markup, including glyphs
// registered by callers, is passed through an SVG-only sanitizer before it
// reaches a page.
package icons

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"sync"
)

// Built-in glyph names.
const (
	Asterisk = "asterisk"
	Eye      = "eye"
	EyeOff   = "eye-off"
	Search   = "search"
	Loader   = "loader"
)

var builtin = map[string]string{
	Asterisk: `<path d="M12 6v12"/><path d="M17.196 9 6.804 15"/><path d="m6.804 9 10.392 6"/>`,
	Eye:      `<path d="M2.062 12.348a1 1 0 0 1 0-.696 10.75 10.75 0 0 1 19.876 0 1 1 0 0 1 0 .696 10.75 10.75 0 0 1-19.876 0"/><circle cx="12" cy="12" r="3"/>`,
	EyeOff:   `<path d="M10.733 5.076a10.744 10.744 0 0 1 11.205 6.575 1 1 0 0 1 0 .696 10.747 10.747 0 0 1-1.444 2.49"/><path d="M14.084 14.158a3 3 0 0 1-4.242-4.242"/><path d="M17.479 17.499a10.75 10.75 0 0 1-15.417-5.151 1 1 0 0 1 0-.696 10.75 10.75 0 0 1 4.446-5.143"/><path d="m2 2 20 20"/>`,
	Search:   `<path d="m21 21-4.34-4.34"/><circle cx="11" cy="11" r="8"/>`,
	Loader:   `<path d="M12 2v4"/><path d="m16.2 7.8 2.9-2.9"/><path d="M18 12h4"/><path d="m16.2 16.2 2.9 2.9"/><path d="M12 18v4"/><path d="m4.9 19.1 2.9-2.9"/><path d="M2 12h4"/><path d="m4.9 4.9 2.9 2.9"/>`,
}

// Set is a registry of glyph bodies keyed by name.
type Set struct {
	mu     sync.RWMutex
	glyphs map[string]string
	cache  map[string]string
}

// NewSet returns a set preloaded with the built-in glyphs.
func NewSet() *Set {
	set := &Set{
		glyphs: make(map[string]string, len(builtin)),
		cache:  make(map[string]string),
	}
	for name, body := range builtin {
		set.glyphs[name] = body
	}
	return set
}

var defaultSet = NewSet()

// Default returns the process-wide set used by the renderers.
func Default() *Set {
	return defaultSet
}

// Register adds or replaces a glyph. body holds the inner SVG elements drawn
// on a 24x24 grid.
func (s *Set) Register(name, body string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("icons: glyph name is required")
	}
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("icons: glyph %q has no markup", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.glyphs[name] = body
	for key := range s.cache {
		if strings.HasPrefix(key, name+"|") {
			delete(s.cache, key)
		}
	}
	return nil
}

// Names lists registered glyphs.
func (s *Set) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.glyphs))
	for name := range s.glyphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SVG renders the named glyph at size pixels with the given class list.
// Unknown glyphs render as "".
func (s *Set) SVG(name string, size int, class string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if size <= 0 {
		size = 16
	}
	key := fmt.Sprintf("%s|%d|%s", name, size, class)

	s.mu.RLock()
	if cached, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return cached
	}
	body, ok := s.glyphs[name]
	s.mu.RUnlock()
	if !ok {
		return ""
	}

	markup := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" class="%s" aria-hidden="true">%s</svg>`,
		size, size, html.EscapeString(strings.TrimSpace(class)), body,
	)
	cleaned := sanitize(markup)

	s.mu.Lock()
	s.cache[key] = cleaned
	s.mu.Unlock()
	return cleaned
}

// SVG renders a glyph from the default set.
func SVG(name string, size int, class string) string {
	return defaultSet.SVG(name, size, class)
}
