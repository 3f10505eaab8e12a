package graph

import (
	"slices"

	"github.com/jonwraymond/vertexcache/cache"
)

// Parameter is a fixed auxiliary value, such as camera intrinsics, that
// caches may depend on.
type Parameter struct {
	id     int
	values []float64
}

// NewParameter creates a parameter. values is copied.
func NewParameter(id int, values ...float64) *Parameter {
	return &Parameter{id: id, values: slices.Clone(values)}
}

// ID returns the parameter ID.
func (p *Parameter) ID() int {
	return p.id
}

// Values returns a copy of the parameter values.
func (p *Parameter) Values() []float64 {
	return slices.Clone(p.values)
}

// Vertex is an estimated quantity with its own cache container.
type Vertex struct {
	id       int
	estimate []float64
	caches   *cache.Container
}

// NewVertex creates a vertex and its cache container.
func NewVertex(id int, estimate []float64, opts ...cache.Option) *Vertex {
	v := &Vertex{id: id, estimate: slices.Clone(estimate)}
	v.caches = cache.NewContainer(v, opts...)
	return v
}

// ID returns the vertex ID.
func (v *Vertex) ID() int {
	return v.id
}

// Estimate returns a copy of the current estimate.
func (v *Vertex) Estimate() []float64 {
	return slices.Clone(v.estimate)
}

// SetEstimate replaces the estimate and marks every cache of v stale.
func (v *Vertex) SetEstimate(x []float64) {
	v.estimate = slices.Clone(x)
	v.caches.SetUpdateNeeded(true)
}

// Caches returns the vertex's cache container.
func (v *Vertex) Caches() *cache.Container {
	return v.caches
}

// Edge is a constraint over vertices and parameters.
type Edge struct {
	vertices   []*Vertex
	parameters []*Parameter
}

// NewEdge creates an edge.
func NewEdge(vertices []*Vertex, parameters ...*Parameter) *Edge {
	return &Edge{vertices: slices.Clone(vertices), parameters: slices.Clone(parameters)}
}

// Vertex returns the i-th vertex.
func (e *Edge) Vertex(i int) *Vertex {
	return e.vertices[i]
}

// Parameter returns the i-th parameter.
func (e *Edge) Parameter(i int) *Parameter {
	return e.parameters[i]
}

// ResolveCache returns the cache of type T for (kind, params) on v,
// creating it on first use. Edges call it during construction or
// linearization to share per-vertex computations.
func ResolveCache[T cache.Cache](v *Vertex, kind string, params ...*Parameter) (T, error) {
	ps := make([]cache.Parameter, len(params))
	for i, p := range params {
		ps[i] = p
	}
	return cache.Resolve[T](v.caches, kind, ps...)
}
