// Package cache provides per-vertex memoization of derived quantities for a
// graph-based least-squares optimizer.
//
// A vertex owns one Container. Edges resolve caches from it by Key: a kind tag
// plus the ordered parameters the computation depends on. Resolving the same
// key twice yields the same Cache, so every edge sharing a vertex and its
// parameters shares a single recomputation. When the vertex moves, the
// container marks every cache stale; each stale cache recomputes once on its
// next Update.
//
// # Defining a cache
//
// Concrete caches embed Base and implement Recompute. They are registered by
// kind so a container can create them on demand:
//
//	type projection struct {
//	    cache.Base
//	    U, V float64
//	}
//
//	func (p *projection) Recompute() error {
//	    v, err := p.Vertex()
//	    if err != nil {
//	        return err
//	    }
//	    p.U, p.V = project(v, p.Parameters())
//	    return nil
//	}
//
//	cache.MustRegister("projection", func() cache.Cache { return &projection{} })
//
// # Resolution
//
//	proj, err := cache.Resolve[*projection](container, "projection", camera)
//
// A key whose stored cache has a different concrete type than requested
// fails with ErrTypeMismatch.
//
// # Concurrency
//
// Container is not synchronized. Resolution and invalidation for one vertex
// must be sequential. Update must complete before payloads are read
// concurrently, and no invalidation may happen while readers are active.
package cache
