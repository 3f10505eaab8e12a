package cache

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory creates an empty, detached cache of one concrete type.
type Factory func() Cache

// Registry maps cache kinds to factories.
//
// Contract:
//   - Concurrency: safe for concurrent use.
//   - Factories must return a new cache on every call.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for kind.
func (r *Registry) Register(kind string, factory Factory) error {
	if strings.TrimSpace(kind) == "" || factory == nil {
		return ErrInvalidKind
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateKind, kind)
	}
	r.factories[kind] = factory
	return nil
}

// MustRegister is like Register but panics on error. Intended for init.
func (r *Registry) MustRegister(kind string, factory Factory) {
	if err := r.Register(kind, factory); err != nil {
		panic(err)
	}
}

// New creates a cache of the given kind.
func (r *Registry) New(kind string) (Cache, error) {
	r.mu.RLock()
	factory, ok := r.factories[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	c := factory()
	if c == nil {
		return nil, fmt.Errorf("%w: %q", ErrNilFactory, kind)
	}
	return c, nil
}

// Kinds returns the registered kinds, sorted.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// DefaultRegistry is the registry containers use unless configured otherwise.
var DefaultRegistry = NewRegistry()

// Register adds a factory to DefaultRegistry.
func Register(kind string, factory Factory) error {
	return DefaultRegistry.Register(kind, factory)
}

// MustRegister adds a factory to DefaultRegistry and panics on error.
func MustRegister(kind string, factory Factory) {
	DefaultRegistry.MustRegister(kind, factory)
}
