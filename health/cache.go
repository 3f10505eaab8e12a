package health

import (
	"context"
	"fmt"
	"time"
)

// StaleSource reports vertices whose caches need an update.
// *graph.Graph satisfies it.
type StaleSource interface {
	StaleVertices() []int
}

// CacheChecker checks that every vertex cache container is up to date.
type CacheChecker struct {
	name string
	src  StaleSource
}

// NewCacheChecker creates a checker over src.
func NewCacheChecker(name string, src StaleSource) *CacheChecker {
	return &CacheChecker{name: name, src: src}
}

func (c *CacheChecker) Name() string {
	return c.name
}

// Check reports Healthy when nothing is stale, Degraded listing the stale
// vertex IDs otherwise, and Unhealthy if the context is already done.
func (c *CacheChecker) Check(ctx context.Context) Result {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return Unhealthy("check canceled", fmt.Errorf("%w: %w", ErrCheckFailed, err))
	}

	stale := c.src.StaleVertices()
	if len(stale) == 0 {
		return Healthy("all vertex caches up to date").WithDuration(time.Since(start))
	}

	r := Degraded(fmt.Sprintf("%d vertices have stale caches", len(stale)))
	r.Error = ErrStaleCaches
	return r.WithDetails(map[string]any{"stale_vertices": stale}).WithDuration(time.Since(start))
}

var _ Checker = (*CacheChecker)(nil)
