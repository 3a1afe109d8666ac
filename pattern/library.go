package pattern

import (
	"fmt"
	"sort"
	"strings"
)

// Library is a collection of named pattern templates. Names are
// case-insensitive. A library is not safe for concurrent modification.
type Library struct {
	patterns map[string]*Template
}

// EmptyLibrary creates a library without any patterns.
func EmptyLibrary() *Library {
	return &Library{patterns: make(map[string]*Template)}
}

// NewLibrary creates a library holding the built-in patterns.
func NewLibrary() *Library {
	lib := EmptyLibrary()
	for _, t := range builtins() {
		if err := lib.Register(t); err != nil {
			tracer().Errorf("built-in pattern %s: %v", t.Name, err)
		}
	}
	return lib
}

func key(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Register adds a template. The library takes ownership of t.
func (lib *Library) Register(t *Template) error {
	if t == nil || key(t.Name) == "" || len(t.Entities) == 0 {
		return ErrEmptyTemplate
	}
	k := key(t.Name)
	if _, exists := lib.patterns[k]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicatePattern, t.Name)
	}
	lib.patterns[k] = t
	tracer().Debugf("registered pattern %s with %d primitives", k, len(t.Entities))
	return nil
}

// Lookup returns a copy of the named template.
func (lib *Library) Lookup(name string) (*Template, error) {
	t, ok := lib.patterns[key(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPatternNotFound, name)
	}
	return t.Clone(), nil
}

// RequestPattern returns a copy of the named template, or nil if there is
// no such pattern.
func (lib *Library) RequestPattern(name string) *Template {
	t, err := lib.Lookup(name)
	if err != nil {
		tracer().Infof("%v", err)
		return nil
	}
	return t
}

// Names lists the registered pattern names in sorted order.
func (lib *Library) Names() []string {
	names := make([]string, 0, len(lib.patterns))
	for k := range lib.patterns {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
