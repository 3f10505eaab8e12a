package observe

import (
	"context"
	"time"

	"github.com/jonwraymond/vertexcache/cache"
)

// CacheObserver reports container events as metrics and debug logs.
// Pass it to containers with cache.WithObserver.
type CacheObserver struct {
	metrics Metrics
	logger  Logger
}

// NewCacheObserver creates a CacheObserver. Nil arguments disable the
// corresponding signal.
func NewCacheObserver(metrics Metrics, logger Logger) *CacheObserver {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = &noopLogger{}
	}
	return &CacheObserver{metrics: metrics, logger: logger}
}

// CacheObserverFromObserver creates a CacheObserver from an Observer's
// meter and logger.
func CacheObserverFromObserver(obs Observer) (*CacheObserver, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}
	metrics, err := NewMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}
	return NewCacheObserver(metrics, obs.Logger()), nil
}

func (o *CacheObserver) Resolved(v cache.Vertex, key cache.Key, created bool) {
	o.metrics.Resolved(v, key, created)
	if created {
		o.logger.WithCache(MetaFor(v, key)).Debug(context.Background(), "cache created")
	}
}

func (o *CacheObserver) Recomputed(v cache.Vertex, key cache.Key, d time.Duration, err error) {
	o.metrics.Recomputed(v, key, d, err)

	logger := o.logger.WithCache(MetaFor(v, key))
	fields := []Field{{Key: "duration_ms", Value: durationMs(d)}}
	if err != nil {
		fields = append(fields, Field{Key: "error", Value: err.Error()})
		logger.Error(context.Background(), "cache recompute failed", fields...)
		return
	}
	logger.Debug(context.Background(), "cache recomputed", fields...)
}

func (o *CacheObserver) Invalidated(v cache.Vertex, n int) {
	o.metrics.Invalidated(v, n)
	o.logger.WithCache(VertexMeta(v)).Debug(context.Background(), "vertex caches invalidated",
		Field{Key: "count", Value: n},
	)
}

var _ cache.Observer = (*CacheObserver)(nil)
