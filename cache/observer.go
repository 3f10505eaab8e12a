package cache

import "time"

// Observer receives container events, typically for metrics and logs.
//
// Contract:
//   - Methods are called synchronously from the container and must return quickly.
//   - Implementations must not call back into the container.
//   - Concurrency: containers of different vertices may report concurrently.
type Observer interface {
	// Resolved is called after a resolution; created reports a new cache.
	Resolved(v Vertex, key Key, created bool)

	// Recomputed is called after each Recompute call.
	Recomputed(v Vertex, key Key, d time.Duration, err error)

	// Invalidated is called when a container marks its n caches stale.
	Invalidated(v Vertex, n int)
}

type noopObserver struct{}

func (noopObserver) Resolved(Vertex, Key, bool)                   {}
func (noopObserver) Recomputed(Vertex, Key, time.Duration, error) {}
func (noopObserver) Invalidated(Vertex, int)                      {}
