package ufmt

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// MissingAction specifies how a placeholder with no matching variable is
// rendered.
type MissingAction int

const (
	// MissingEmpty renders nothing. This is the default.
	MissingEmpty MissingAction = iota
	// MissingKeep renders the placeholder as written.
	MissingKeep
)

// Expand writes tmpl to out, replacing each {{name}} with vars[name].
// Unknown names render nothing. An opening "{{" with no closing "}}" ends
// the output there. It returns the number of bytes written.
func Expand(out Sink, tmpl string, vars map[string]string) int {
	return expand(out, tmpl, vars, MissingEmpty)
}

func expand(out Sink, tmpl string, vars map[string]string, missing MissingAction) int {
	n := 0
	for {
		open := strings.Index(tmpl, "{{")
		if open < 0 {
			putString(out, tmpl)
			return n + len(tmpl)
		}
		putString(out, tmpl[:open])
		n += open
		rest := tmpl[open+2:]
		end := strings.Index(rest, "}}")
		if end < 0 {
			return n
		}
		name := rest[:end]
		if v, ok := vars[name]; ok {
			putString(out, v)
			n += len(v)
		} else if missing == MissingKeep {
			ph := tmpl[open : open+2+end+2]
			putString(out, ph)
			n += len(ph)
		}
		tmpl = rest[end+2:]
	}
}

// TemplateOption configures a TemplateSet.
type TemplateOption func(*TemplateSet)

// WithMissingAction sets how unknown placeholders render.
//
// Default: MissingEmpty
func WithMissingAction(a MissingAction) TemplateOption {
	return func(ts *TemplateSet) { ts.missing = a }
}

// TemplateSet holds named templates. It is safe for concurrent use.
type TemplateSet struct {
	mu        sync.RWMutex
	templates map[string]string
	missing   MissingAction
}

// NewTemplateSet creates an empty set.
func NewTemplateSet(opts ...TemplateOption) *TemplateSet {
	ts := &TemplateSet{templates: make(map[string]string)}
	for _, opt := range opts {
		opt(ts)
	}
	return ts
}

// Load adds or replaces the template called name.
func (ts *TemplateSet) Load(name, tmpl string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.templates[name] = tmpl
}

// LoadYAML adds every entry of a YAML mapping of name to template text.
func (ts *TemplateSet) LoadYAML(data []byte) error {
	var m map[string]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("%w: parse templates: %s", ErrInvalidConfig, err)
	}
	ts.mu.Lock()
	defer ts.mu.Unlock()
	for name, tmpl := range m {
		ts.templates[name] = tmpl
	}
	return nil
}

// Get returns the template called name.
func (ts *TemplateSet) Get(name string) (string, bool) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	t, ok := ts.templates[name]
	return t, ok
}

// Names returns the loaded template names in sorted order.
func (ts *TemplateSet) Names() []string {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	names := make([]string, 0, len(ts.templates))
	for name := range ts.templates {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Execute expands the template called name into out. An unknown name writes
// a "[Template 'name' not found]" marker and returns ErrTemplateNotFound.
func (ts *TemplateSet) Execute(out Sink, name string, vars map[string]string) (int, error) {
	tmpl, ok := ts.Get(name)
	if !ok {
		marker := "[Template '" + name + "' not found]"
		putString(out, marker)
		return len(marker), fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return expand(out, tmpl, vars, ts.missing), nil
}
