package streetrouter

import (
	"github.com/passbi/streetrouter/internal/geo"
	"github.com/passbi/streetrouter/internal/searchstate"
)

// destinationPoint returns the point the admissible heuristic should aim
// at: the destination split's snap point if one is set, else the stop
// vertex's coordinates if a vertex stop condition is set, else false (no
// target — the heuristic is zero and the search explores Dijkstra-style,
// per spec.md §4.6 "Both zero: the entire reachable graph is explored").
func (r *Router) destinationPoint() (geo.Point, bool) {
	if r.dest != nil {
		return r.dest.Point, true
	}
	if r.toVertex >= 0 {
		return r.graph.Vertices.Point(r.toVertex), true
	}
	return geo.Point{}, false
}

// heuristicFor computes the admissible remaining-cost estimate for s,
// computed at most once per retained state (spec.md §4.4).
func (r *Router) heuristicFor(s *searchstate.State) float64 {
	target, ok := r.destinationPoint()
	if !ok {
		return 0
	}
	from := r.graph.Vertices.Point(s.Vertex)
	return geo.Heuristic(from, target, r.variable, r.maxSpeedMPS(), r.reluctance(), r.isWalk())
}
