package observe

import (
	"go.opentelemetry.io/otel/attribute"

	"github.com/jonwraymond/vertexcache/cache"
)

// CacheMeta identifies one cache for telemetry.
type CacheMeta struct {
	Vertex int    // Owning vertex ID, -1 if unknown
	Kind   string // Cache kind tag
	Key    string // Rendered key, kind[param,...]
}

// VertexMeta builds CacheMeta naming only the vertex.
func VertexMeta(v cache.Vertex) CacheMeta {
	if v == nil {
		return CacheMeta{Vertex: -1}
	}
	return CacheMeta{Vertex: v.ID()}
}

// MetaFor builds CacheMeta for a cache key in v's container.
func MetaFor(v cache.Vertex, key cache.Key) CacheMeta {
	meta := VertexMeta(v)
	meta.Kind = key.Kind()
	meta.Key = key.String()
	return meta
}

// Fields returns the meta as log fields.
func (m CacheMeta) Fields() []Field {
	fields := []Field{{Key: "cache.vertex", Value: m.Vertex}}
	if m.Kind != "" {
		fields = append(fields, Field{Key: "cache.kind", Value: m.Kind})
	}
	if m.Key != "" {
		fields = append(fields, Field{Key: "cache.key", Value: m.Key})
	}
	return fields
}

// Attributes returns the low-cardinality metric attributes. The rendered
// key is left out.
func (m CacheMeta) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("cache.kind", m.Kind),
	}
}

// Phase describes one optimizer cache phase, e.g. the per-iteration prepare.
type Phase struct {
	Name      string // Phase name (required)
	Iteration int    // Optimizer iteration, 0 if not applicable
	Vertices  int    // Number of vertices the phase covers
}

// SpanName returns the span name for the phase: cache.<name>.
func (p Phase) SpanName() string {
	return "cache." + p.Name
}

// Validate reports ErrMissingPhaseName for an unnamed phase.
func (p Phase) Validate() error {
	if p.Name == "" {
		return ErrMissingPhaseName
	}
	return nil
}

func (p Phase) attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("phase.name", p.Name),
		attribute.Int("phase.iteration", p.Iteration),
		attribute.Int("phase.vertices", p.Vertices),
	}
}
