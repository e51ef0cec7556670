// Package formatter provides a pluggable output formatting system for
// validation reports. Formatters convert a Report to various output
// formats (text, json, github annotations).
package formatter

import (
	"fmt"
	"io"
	"sync"
)

// Formatter converts a validation report to a specific output format.
type Formatter interface {
	// Name returns the formatter name (e.g., "text", "json", "github").
	Name() string

	// Description returns a human-readable description.
	Description() string

	// Format writes the report.
	Format(w io.Writer, rep *Report, opts Options) error
}

// Options configures formatting behavior.
type Options struct {
	// Color enables ANSI color output.
	Color bool

	// Compact minimizes whitespace (for json).
	Compact bool
}

// Registry manages registered formatters.
type Registry struct {
	mu         sync.RWMutex
	formatters map[string]Formatter
	defaultFmt string
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
		defaultFmt: "text",
	}
}

// Register adds a formatter to the registry.
func (r *Registry) Register(f Formatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formatters[f.Name()]; exists {
		return fmt.Errorf("formatter %q already registered", f.Name())
	}

	r.formatters[f.Name()] = f
	return nil
}

// Get returns a formatter by name.
func (r *Registry) Get(name string) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formatters[name]
	return f, ok
}

// Default returns the default formatter.
func (r *Registry) Default() Formatter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formatters[r.defaultFmt]
	if !ok {
		for _, f := range r.formatters {
			return f
		}
		return nil
	}
	return f
}

// List returns all registered formatter names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry is the global formatter registry with the built-in
// formatters pre-registered.
var DefaultRegistry = NewRegistry()

// Register adds a formatter to the default registry.
func Register(f Formatter) error {
	return DefaultRegistry.Register(f)
}

// Get returns a formatter from the default registry.
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

func init() {
	Register(NewTextFormatter())
	Register(NewJSONFormatter())
	Register(NewGitHubFormatter())
}
