package cache

import (
	"fmt"
	"iter"
	"slices"
)

// Vertex is the optimization graph node that owns a Container.
type Vertex interface {
	ID() int
}

// Option configures a Container.
type Option func(*Container)

// WithRegistry sets the registry used to create caches by kind.
// Default: DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(c *Container) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithObserver sets the observer notified of resolution, recomputation and
// invalidation.
func WithObserver(o Observer) Option {
	return func(c *Container) {
		if o != nil {
			c.observer = o
		}
	}
}

type entry struct {
	key   Key
	cache Cache
}

// Container holds the caches of one vertex, sorted by Key.
//
// Contract:
//   - Ownership: bound to one vertex for its lifetime; caches it creates
//     point back to it.
//   - Concurrency: not safe for concurrent use. Callers serialize
//     resolution, invalidation and Update per vertex.
type Container struct {
	vertex   Vertex
	registry *Registry
	observer Observer
	entries  []entry
	stale    bool
}

// NewContainer creates an empty container bound to v. It starts out
// needing an update.
func NewContainer(v Vertex, opts ...Option) *Container {
	c := &Container{
		vertex:   v,
		registry: DefaultRegistry,
		observer: noopObserver{},
		stale:    true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Vertex returns the owning vertex.
func (c *Container) Vertex() Vertex {
	return c.vertex
}

// Len returns the number of caches.
func (c *Container) Len() int {
	return len(c.entries)
}

func (c *Container) search(key Key) (int, bool) {
	return slices.BinarySearchFunc(c.entries, key, func(e entry, k Key) int {
		return e.key.Compare(k)
	})
}

// FindCache returns the cache stored under key. It never creates one.
func (c *Container) FindCache(key Key) (Cache, bool) {
	i, ok := c.search(key)
	if !ok {
		return nil, false
	}
	return c.entries[i].cache, true
}

// CreateCache creates the cache for key using the registered factory for
// key.Kind() and stores it. The new cache is stale.
// Returns ErrDuplicateKey if key is already present.
func (c *Container) CreateCache(key Key) (Cache, error) {
	i, ok := c.search(key)
	if ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, key)
	}

	created, err := c.registry.New(key.kind)
	if err != nil {
		return nil, err
	}

	// Detach from the caller's slice so later mutation cannot change the key.
	key = NewKey(key.kind, key.params...)
	created.base().attach(c, key, created)
	c.entries = slices.Insert(c.entries, i, entry{key: key, cache: created})
	c.stale = true
	return created, nil
}

// Remove drops the cache stored under key and detaches it. Holders of the
// removed cache keep their handle, but it can no longer update.
// Reports whether a cache was removed.
func (c *Container) Remove(key Key) bool {
	i, ok := c.search(key)
	if !ok {
		return false
	}
	c.entries[i].cache.base().detach()
	c.entries = slices.Delete(c.entries, i, i+1)
	return true
}

// Keys returns the keys in order.
func (c *Container) Keys() []Key {
	keys := make([]Key, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.key
	}
	return keys
}

// All iterates the caches in key order.
func (c *Container) All() iter.Seq2[Key, Cache] {
	return func(yield func(Key, Cache) bool) {
		for _, e := range c.entries {
			if !yield(e.key, e.cache) {
				return
			}
		}
	}
}

// NeedsUpdate reports whether any cache might be stale.
func (c *Container) NeedsUpdate() bool {
	return c.stale
}

// SetUpdateNeeded sets the container flag. When needed is true every cache
// is marked stale; when false only the container flag is cleared.
func (c *Container) SetUpdateNeeded(needed bool) {
	c.stale = needed
	if !needed {
		return
	}
	for _, e := range c.entries {
		e.cache.base().fresh = false
	}
	c.observer.Invalidated(c.vertex, len(c.entries))
}

// Update brings every stale cache up to date, in key order, and clears the
// container flag. It stops at the first failing cache and leaves the flag set.
func (c *Container) Update() error {
	if !c.stale {
		return nil
	}
	for _, e := range c.entries {
		if err := e.cache.Update(); err != nil {
			return err
		}
	}
	c.stale = false
	return nil
}
