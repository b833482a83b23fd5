package registry

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/vk/schemagen/internal/config"
	"github.com/vk/schemagen/internal/generator"
)

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Factory builds a generator from its configuration block. out receives any
// human-readable report the generator produces.
type Factory func(cfg *config.Generator, out io.Writer) (generator.Generator, error)

// Registry holds the generator factories available to a single application
// instance, keyed by generator type.
type Registry struct {
	factories map[string]Factory
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// RegisterGenerator makes a generator type available. Registering the same
// type twice is a programmer error and panics.
func (r *Registry) RegisterGenerator(name string, f Factory) {
	name = strings.ToLower(name)
	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("generator %q already registered", name))
	}
	r.factories[name] = f
}

// Names returns the registered generator types, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewGenerator builds the generator selected by cfg.Type.
func (r *Registry) NewGenerator(cfg *config.Generator, out io.Writer) (generator.Generator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("no generator configured")
	}
	f, ok := r.factories[strings.ToLower(cfg.Type)]
	if !ok {
		return nil, fmt.Errorf("unknown generator type %q (available: %s)", cfg.Type, strings.Join(r.Names(), ", "))
	}
	return f(cfg, out)
}
