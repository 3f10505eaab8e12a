package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jonwraymond/vertexcache/cache"
)

// Metrics records cache and phase metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use; containers
//   of different vertices report concurrently during a parallel update.
// - Errors: implementations must not panic.
type Metrics interface {
	cache.Observer

	// RecordPhase records a cache phase with duration and error status.
	RecordPhase(ctx context.Context, phase Phase, duration time.Duration, err error)
}

type metricsImpl struct {
	resolveTotal      metric.Int64Counter
	recomputeTotal    metric.Int64Counter
	recomputeErrors   metric.Int64Counter
	recomputeDuration metric.Float64Histogram
	invalidateTotal   metric.Int64Counter
	phaseDuration     metric.Float64Histogram
}

// NewMetrics creates the cache instruments on meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	m := &metricsImpl{}
	var err error

	if m.resolveTotal, err = meter.Int64Counter(
		"cache.resolve.total",
		metric.WithDescription("Total number of cache resolutions"),
		metric.WithUnit("{call}"),
	); err != nil {
		return nil, err
	}

	if m.recomputeTotal, err = meter.Int64Counter(
		"cache.recompute.total",
		metric.WithDescription("Total number of cache recomputations"),
		metric.WithUnit("{call}"),
	); err != nil {
		return nil, err
	}

	if m.recomputeErrors, err = meter.Int64Counter(
		"cache.recompute.errors",
		metric.WithDescription("Total number of failed cache recomputations"),
		metric.WithUnit("{error}"),
	); err != nil {
		return nil, err
	}

	if m.recomputeDuration, err = meter.Float64Histogram(
		"cache.recompute.duration_ms",
		metric.WithDescription("Cache recomputation duration in milliseconds"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, err
	}

	if m.invalidateTotal, err = meter.Int64Counter(
		"cache.invalidate.total",
		metric.WithDescription("Total number of caches marked stale"),
		metric.WithUnit("{cache}"),
	); err != nil {
		return nil, err
	}

	if m.phaseDuration, err = meter.Float64Histogram(
		"cache.phase.duration_ms",
		metric.WithDescription("Cache phase duration in milliseconds"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *metricsImpl) Resolved(v cache.Vertex, key cache.Key, created bool) {
	attrs := append(MetaFor(v, key).Attributes(), attribute.Bool("cache.created", created))
	m.resolveTotal.Add(context.Background(), 1, metric.WithAttributes(attrs...))
}

func (m *metricsImpl) Recomputed(v cache.Vertex, key cache.Key, d time.Duration, err error) {
	ctx := context.Background()
	opt := metric.WithAttributes(MetaFor(v, key).Attributes()...)

	m.recomputeTotal.Add(ctx, 1, opt)
	if err != nil {
		m.recomputeErrors.Add(ctx, 1, opt)
	}
	m.recomputeDuration.Record(ctx, durationMs(d), opt)
}

func (m *metricsImpl) Invalidated(_ cache.Vertex, n int) {
	m.invalidateTotal.Add(context.Background(), int64(n))
}

func (m *metricsImpl) RecordPhase(ctx context.Context, phase Phase, duration time.Duration, err error) {
	attrs := append(phase.attributes(), attribute.Bool("phase.error", err != nil))
	m.phaseDuration.Record(ctx, durationMs(duration), metric.WithAttributes(attrs...))
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

type noopMetrics struct{}

func (noopMetrics) Resolved(cache.Vertex, cache.Key, bool)                   {}
func (noopMetrics) Recomputed(cache.Vertex, cache.Key, time.Duration, error) {}
func (noopMetrics) Invalidated(cache.Vertex, int)                            {}
func (noopMetrics) RecordPhase(context.Context, Phase, time.Duration, error) {}
