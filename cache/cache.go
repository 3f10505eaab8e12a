package cache

import (
	"fmt"
	"time"
)

// ElementType tags caches among the elements of an optimization graph.
const ElementType = "cache"

// Cache is one memoized value owned by a vertex's Container.
//
// Contract:
//   - Extension: concrete caches embed Base and implement Recompute.
//   - Recompute reads vertex and parameter state and writes the payload. It
//     must be idempotent for unchanged inputs and must not modify parameters.
//   - Concurrency: not safe for concurrent Update; payload reads are safe
//     once Update has returned and until the next invalidation.
type Cache interface {
	// Key returns the key this cache was created for.
	Key() Key

	// Kind returns the cache kind tag.
	Kind() string

	// Parameters returns a copy of the parameters the cache depends on.
	Parameters() []Parameter

	// Container returns the owning container, or nil if detached.
	Container() *Container

	// Vertex returns the vertex owning the container.
	// Returns ErrUnowned if the cache is detached.
	Vertex() (Vertex, error)

	// NeedsUpdate reports whether the payload is stale.
	NeedsUpdate() bool

	// Update recomputes the payload if it is stale.
	Update() error

	// Recompute computes the payload from current state.
	Recompute() error

	base() *Base
}

// Base carries the bookkeeping every cache shares. The zero value is a
// detached, stale cache.
type Base struct {
	kind      string
	params    []Parameter
	container *Container
	self      Cache
	fresh     bool
}

func (b *Base) base() *Base {
	return b
}

// attach binds the cache to its container. self is the concrete cache
// embedding b, so Update can reach its Recompute.
func (b *Base) attach(c *Container, key Key, self Cache) {
	b.kind = key.kind
	b.params = key.params
	b.container = c
	b.self = self
	b.fresh = false
}

func (b *Base) detach() {
	b.container = nil
	b.self = nil
}

// Key returns the key this cache was created for.
func (b *Base) Key() Key {
	return Key{kind: b.kind, params: b.params}
}

// Kind returns the cache kind tag.
func (b *Base) Kind() string {
	return b.kind
}

// Parameters returns a copy of the parameters the cache depends on.
func (b *Base) Parameters() []Parameter {
	return b.Key().Parameters()
}

// Container returns the owning container, or nil if detached.
func (b *Base) Container() *Container {
	return b.container
}

// Vertex returns the vertex owning the container.
func (b *Base) Vertex() (Vertex, error) {
	if b.container == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnowned, b.Key())
	}
	if b.container.vertex == nil {
		return nil, fmt.Errorf("%w: %s", ErrNilVertex, b.Key())
	}
	return b.container.vertex, nil
}

// NeedsUpdate reports whether the payload is stale.
func (b *Base) NeedsUpdate() bool {
	return !b.fresh
}

// ElementType returns the graph element tag for caches.
func (b *Base) ElementType() string {
	return ElementType
}

// Update calls Recompute once if the cache is stale and marks it fresh.
// A failed Recompute is returned without retry and leaves the cache stale.
func (b *Base) Update() error {
	if b.fresh {
		return nil
	}
	if b.container == nil || b.self == nil {
		return fmt.Errorf("%w: %s", ErrUnowned, b.Key())
	}

	key := b.Key()
	start := time.Now()
	err := b.self.Recompute()
	b.container.observer.Recomputed(b.container.vertex, key, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("cache: recompute %s: %w", key, err)
	}

	b.fresh = true
	return nil
}
