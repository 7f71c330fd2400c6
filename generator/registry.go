// Package generator provides a registry of generator handles. A Registry is
// the generator context consulted by tags.ToTag and tags.ToTagSet to resolve
// generator references and display names into FromGenerator tags.
package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	errs "github.com/c360studio/semstreams/errors"
	"github.com/google/uuid"

	"github.com/c360studio/semtags/tags"
)

// Registry errors.
var (
	// ErrEmptyName is returned when registering a generator without a name.
	ErrEmptyName = errors.New("generator name is required")

	// ErrDuplicateName is returned when a display name is already taken.
	ErrDuplicateName = errors.New("generator name already registered")
)

// Generator is an opaque generator handle. Handles compare by identity: two
// registrations never yield equal handles, whatever their names.
type Generator struct {
	id   uuid.UUID
	name string
}

// ID returns the handle's stable identifier.
func (g *Generator) ID() uuid.UUID { return g.id }

// GeneratorName returns the display name.
func (g *Generator) GeneratorName() string { return g.name }

// String returns the display name.
func (g *Generator) String() string { return g.name }

// Tag returns the FromGenerator tag bound to g.
func (g *Generator) Tag() tags.FromGenerator {
	return tags.FromGenerator{Generator: g}
}

// Registry holds generator handles by display name. It is safe for
// concurrent use; registration normally happens once at startup.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*Generator
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		byName: make(map[string]*Generator),
		logger: logger,
	}
}

// NewRegistryFromNames creates a registry holding one generator per name.
func NewRegistryFromNames(names []string, logger *slog.Logger) (*Registry, error) {
	r := NewRegistry(logger)
	for _, name := range names {
		if _, err := r.Register(name); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register creates a handle for a new generator with the given display name.
func (r *Registry) Register(name string) (*Generator, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.WrapInvalid(ErrEmptyName, "Registry", "Register", "validate name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		return nil, errs.WrapInvalid(fmt.Errorf("%w: %s", ErrDuplicateName, name),
			"Registry", "Register", "validate name")
	}

	g := &Generator{id: uuid.New(), name: name}
	r.byName[name] = g
	r.logger.Debug("Registered generator", slog.String("name", name), slog.String("id", g.id.String()))
	return g, nil
}

// Lookup returns the generator registered under name.
func (r *Registry) Lookup(name string) (*Generator, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.byName[name]
	return g, ok
}

// LookupName implements tags.GeneratorContext.
func (r *Registry) LookupName(name string) (tags.Generator, bool) {
	g, ok := r.Lookup(name)
	if !ok {
		return nil, false
	}
	return g, true
}

// Contains reports whether g is a handle issued by this registry.
func (r *Registry) Contains(g tags.Generator) bool {
	handle, ok := g.(*Generator)
	if !ok || handle == nil {
		return false
	}
	registered, ok := r.Lookup(handle.name)
	return ok && registered == handle
}

// Len returns the number of registered generators.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

// All returns the registered generators sorted by name.
func (r *Registry) All() []*Generator {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	out := make([]*Generator, 0, len(r.byName))
	for _, g := range r.byName {
		out = append(out, g)
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b *Generator) int { return strings.Compare(a.name, b.name) })
	return out
}
