package form

import (
	"sort"
	"sync"

	"github.com/goliatone/go-formkit/pkg/errtree"
	"github.com/goliatone/go-formkit/pkg/model"
)

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithMode selects when validation runs. Unknown modes fall back to
// ModeOnBlur.
func WithMode(mode Mode) Option {
	return func(s *MemoryStore) {
		switch mode {
		case ModeOnBlur, ModeOnChange, ModeOnSubmit:
			s.mode = mode
		}
	}
}

// WithValues seeds initial values, equivalent to Reset after construction.
func WithValues(values map[string]model.Value) Option {
	return func(s *MemoryStore) {
		for path, value := range values {
			s.values[path] = value
		}
	}
}

// MemoryStore is the in-process Store implementation.
type MemoryStore struct {
	mu sync.RWMutex

	mode      Mode
	values    map[string]model.Value
	defaults  map[string]model.Value
	rules     map[string][]Rule
	order     []string
	touched   map[string]bool
	dirty     map[string]bool
	errors    errtree.Node
	submitted bool
}

var _ Store = (*MemoryStore)(nil)
var _ DefaultSetter = (*MemoryStore)(nil)
var _ Submitter = (*MemoryStore)(nil)

// NewMemoryStore constructs an empty store validating on blur.
func NewMemoryStore(options ...Option) *MemoryStore {
	store := &MemoryStore{
		mode:     ModeOnBlur,
		values:   make(map[string]model.Value),
		defaults: make(map[string]model.Value),
		rules:    make(map[string][]Rule),
		touched:  make(map[string]bool),
		dirty:    make(map[string]bool),
		errors:   errtree.Empty(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(store)
	}
	return store
}

func (s *MemoryStore) Value(path string) (model.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if value, ok := s.values[path]; ok {
		return value, true
	}
	value, ok := s.defaults[path]
	return value, ok
}

func (s *MemoryStore) SetValue(path string, value model.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[path] = value
	s.dirty[path] = true
	if s.shouldValidateOnChange(path) {
		s.validateLocked(path)
	}
}

// SetDefault records a fallback value that Value returns until an edit or a
// reset supplies a real one. Defaults survive Reset.
func (s *MemoryStore) SetDefault(path string, value model.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.defaults[path] = value
}

func (s *MemoryStore) RegisterField(path string, rules ...Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rules[path]; !exists {
		s.order = append(s.order, path)
	}
	s.rules[path] = append([]Rule(nil), rules...)
}

func (s *MemoryStore) Touch(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touched[path] = true
	if s.mode == ModeOnBlur || s.submitted {
		s.validateLocked(path)
	}
}

func (s *MemoryStore) Errors() errtree.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errors
}

// Rules returns a copy of the rules registered for path.
func (s *MemoryStore) Rules(path string) []Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Rule(nil), s.rules[path]...)
}

// Fields lists registered paths in registration order.
func (s *MemoryStore) Fields() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

// Touched reports whether path has been blurred or submitted.
func (s *MemoryStore) Touched(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.touched[path]
}

// Dirty reports whether path received an edit since the last reset.
func (s *MemoryStore) Dirty(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty[path]
}

// SetError attaches an externally computed message (for example a server
// side conflict) to path.
func (s *MemoryStore) SetError(path, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if message == "" {
		s.errors = errtree.Delete(s.errors, path)
		return
	}
	s.errors = errtree.Set(s.errors, path, message)
}

// Validate runs every registered rule now, marking all fields touched, and
// reports whether the form is valid.
func (s *MemoryStore) Validate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateAllLocked()
}

// Submit validates every field and returns a snapshot of the values of all
// registered fields (falling back to defaults, then null) and the verdict.
func (s *MemoryStore) Submit() (map[string]model.Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.submitted = true
	valid := s.validateAllLocked()

	snapshot := make(map[string]model.Value, len(s.order))
	for _, path := range s.order {
		snapshot[path] = s.currentLocked(path)
	}
	return snapshot, valid
}

// Reset replaces all values and clears touched/dirty state and errors.
// Registered rules and defaults seeded through SetDefault are kept.
func (s *MemoryStore) Reset(values map[string]model.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]model.Value, len(values))
	for path, value := range values {
		s.values[path] = value
	}
	s.touched = make(map[string]bool)
	s.dirty = make(map[string]bool)
	s.errors = errtree.Empty()
	s.submitted = false
}

// Snapshot returns the current values (defaults included) keyed by path.
func (s *MemoryStore) Snapshot() map[string]model.Value {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]model.Value, len(s.values)+len(s.defaults))
	for path, value := range s.defaults {
		out[path] = value
	}
	for path, value := range s.values {
		out[path] = value
	}
	return out
}

// SortedPaths returns the keys of values in lexical order.
func SortedPaths(values map[string]model.Value) []string {
	paths := make([]string, 0, len(values))
	for path := range values {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func (s *MemoryStore) shouldValidateOnChange(path string) bool {
	switch {
	case s.mode == ModeOnChange:
		return true
	case s.submitted:
		return true
	case s.mode == ModeOnBlur:
		return s.touched[path]
	default:
		return false
	}
}

func (s *MemoryStore) validateAllLocked() bool {
	valid := true
	for _, path := range s.order {
		s.touched[path] = true
		if !s.validateLocked(path) {
			valid = false
		}
	}
	return valid
}

func (s *MemoryStore) validateLocked(path string) bool {
	message, failed := check(s.currentLocked(path), s.rules[path])
	if failed {
		s.errors = errtree.Set(s.errors, path, message)
		return false
	}
	s.errors = errtree.Delete(s.errors, path)
	return true
}

func (s *MemoryStore) currentLocked(path string) model.Value {
	if value, ok := s.values[path]; ok {
		return value
	}
	return s.defaults[path]
}
