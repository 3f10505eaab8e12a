// Package health reports whether vertex caches are ready to be read.
//
// After the optimizer's prepare phase every container should be up to date.
// A CacheChecker reports Healthy when no vertex is stale and Degraded with
// the stale vertex IDs otherwise:
//
//	checker := health.NewCacheChecker("caches", g)
//	if r := checker.Check(ctx); r.Status != health.StatusHealthy {
//	    log.Printf("stale caches: %s", r.Message)
//	}
package health
