// Package observe provides observability for vertex caches.
//
// It records cache resolution, recomputation and invalidation as
// OpenTelemetry metrics, traces the optimizer's per-iteration cache phases,
// and writes JSON structured logs. It performs no computation of its own:
// consumers pass a CacheObserver to cache containers and wrap phases with
// Middleware.
package observe
