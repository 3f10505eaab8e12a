// Package graph provides the optimization-graph collaborators that own and
// consume vertex caches: parameters, vertices, edges, and the per-iteration
// prepare phase.
//
// It is a reference boundary for the cache package, not an optimizer. Moving
// a vertex with SetEstimate invalidates its caches; PrepareCaches brings every
// stale container up to date before edges read their caches.
//
//	g := graph.New(graph.WithWorkers(4))
//	cam, _ := g.AddParameter(1, 500, 320, 240)
//	v, _ := g.AddVertex(10, []float64{0, 0, 5})
//
//	proj, err := graph.ResolveCache[*Projection](v, "projection", cam)
//	...
//	v.SetEstimate(step(v.Estimate()))
//	if err := g.PrepareCaches(ctx); err != nil {
//	    return err
//	}
package graph
