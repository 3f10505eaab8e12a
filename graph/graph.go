package graph

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/jonwraymond/vertexcache/cache"
	"github.com/jonwraymond/vertexcache/observe"
)

// PreparePhase names the per-iteration cache update phase.
const PreparePhase = "prepare"

// Option configures a Graph.
type Option func(*Graph)

// WithWorkers bounds how many vertex containers PrepareCaches updates at
// once. Default: GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(g *Graph) {
		if n > 0 {
			g.workers = n
		}
	}
}

// WithRegistry sets the cache registry for vertices added to the graph.
func WithRegistry(r *cache.Registry) Option {
	return func(g *Graph) {
		g.cacheOpts = append(g.cacheOpts, cache.WithRegistry(r))
	}
}

// WithObserver sets the cache observer for vertices added to the graph.
// It must be safe for concurrent use when workers > 1.
func WithObserver(o cache.Observer) Option {
	return func(g *Graph) {
		g.cacheOpts = append(g.cacheOpts, cache.WithObserver(o))
	}
}

// WithMiddleware wraps PrepareCaches with tracing, metrics and logging.
func WithMiddleware(m *observe.Middleware) Option {
	return func(g *Graph) {
		g.middleware = m
	}
}

// Graph holds vertices and parameters and drives the cache prepare phase.
//
// Contract:
//   - Concurrency: not safe for concurrent use. PrepareCaches updates
//     distinct vertices in parallel; nothing else may touch the graph while
//     it runs.
type Graph struct {
	workers    int
	cacheOpts  []cache.Option
	middleware *observe.Middleware
	vertices   map[int]*Vertex
	parameters map[int]*Parameter
	iteration  int
}

// New creates an empty graph.
func New(opts ...Option) *Graph {
	g := &Graph{
		workers:    runtime.GOMAXPROCS(0),
		vertices:   make(map[int]*Vertex),
		parameters: make(map[int]*Parameter),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AddVertex creates a vertex with the graph's cache options.
func (g *Graph) AddVertex(id int, estimate []float64) (*Vertex, error) {
	if _, exists := g.vertices[id]; exists {
		return nil, fmt.Errorf("%w: %d", ErrDuplicateVertex, id)
	}
	v := NewVertex(id, estimate, g.cacheOpts...)
	g.vertices[id] = v
	return v, nil
}

// AddParameter creates a parameter. IDs are unique, which is what makes
// them usable as cache key identity.
func (g *Graph) AddParameter(id int, values ...float64) (*Parameter, error) {
	if _, exists := g.parameters[id]; exists {
		return nil, fmt.Errorf("%w: %d", ErrDuplicateParameter, id)
	}
	p := NewParameter(id, values...)
	g.parameters[id] = p
	return p, nil
}

// Vertex returns the vertex with the given ID.
func (g *Graph) Vertex(id int) (*Vertex, bool) {
	v, ok := g.vertices[id]
	return v, ok
}

// Parameter returns the parameter with the given ID.
func (g *Graph) Parameter(id int) (*Parameter, bool) {
	p, ok := g.parameters[id]
	return p, ok
}

// Vertices returns all vertices ordered by ID.
func (g *Graph) Vertices() []*Vertex {
	return slices.SortedFunc(maps.Values(g.vertices), func(a, b *Vertex) int {
		return cmp.Compare(a.id, b.id)
	})
}

// Iteration returns how many prepare phases have run.
func (g *Graph) Iteration() int {
	return g.iteration
}

// StaleVertices returns the IDs of vertices whose containers need an update,
// in ascending order.
func (g *Graph) StaleVertices() []int {
	var ids []int
	for _, v := range g.Vertices() {
		if v.caches.NeedsUpdate() {
			ids = append(ids, v.id)
		}
	}
	return ids
}

// PrepareCaches updates every stale vertex container. Containers are
// updated in parallel, each by a single goroutine, so payloads are complete
// when it returns. It returns the first error; vertices not yet started
// when the context is canceled or a recompute fails are left stale.
func (g *Graph) PrepareCaches(ctx context.Context) error {
	g.iteration++
	vertices := g.Vertices()
	phase := observe.Phase{Name: PreparePhase, Iteration: g.iteration, Vertices: len(vertices)}

	run := func(ctx context.Context, _ observe.Phase) error {
		return updateContainers(ctx, vertices, g.workers)
	}
	if g.middleware != nil {
		run = g.middleware.Wrap(run)
	}
	return run(ctx, phase)
}

func updateContainers(ctx context.Context, vertices []*Vertex, workers int) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for _, v := range vertices {
		if !v.caches.NeedsUpdate() {
			continue
		}
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := v.caches.Update(); err != nil {
				return fmt.Errorf("graph: vertex %d: %w", v.id, err)
			}
			return nil
		})
	}

	return eg.Wait()
}
