package health

import "errors"

var (
	// ErrCheckFailed indicates a health check failed.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrStaleCaches indicates vertex caches were read while stale.
	ErrStaleCaches = errors.New("health: stale vertex caches")
)
