package visitor

import (
	"github.com/passbi/streetrouter/internal/geo"
	"github.com/passbi/streetrouter/internal/graphmodel"
	"github.com/passbi/streetrouter/internal/searchstate"
)

// StopVisitor harvests the best state reached at each transit-stop-flagged
// vertex, filtered by a minimum travel-time floor so transfers outrun
// trivially short walks (spec.md §4.8), and signals termination once a cap
// of distinct stops has been reached.
type StopVisitor struct {
	graph                *graphmodel.Graph
	variable             geo.Variable
	minTravelTimeSeconds float64
	maxStops             int

	best map[graphmodel.VertexIndex]*searchstate.State
}

// NewStopVisitor builds a StopVisitor over graph's VertexTransitStop-flagged
// vertices. maxStops <= 0 means unbounded.
func NewStopVisitor(graph *graphmodel.Graph, variable geo.Variable, minTravelTimeSeconds float64, maxStops int) *StopVisitor {
	return &StopVisitor{
		graph:                graph,
		variable:             variable,
		minTravelTimeSeconds: minTravelTimeSeconds,
		maxStops:             maxStops,
		best:                 make(map[graphmodel.VertexIndex]*searchstate.State),
	}
}

// VisitVertex records state if its vertex is a transit stop not yet reached,
// or reached with a worse routing variable than state.
func (v *StopVisitor) VisitVertex(state *searchstate.State) {
	if float64(state.DurationFromOriginSeconds) < v.minTravelTimeSeconds {
		return
	}
	if !v.graph.Vertices.Flags(state.Vertex).Has(graphmodel.VertexTransitStop) {
		return
	}

	if existing, ok := v.best[state.Vertex]; ok {
		if state.RoutingVariable(v.variable) >= existing.RoutingVariable(v.variable) {
			return
		}
	}
	v.best[state.Vertex] = state
}

// ShouldBreakSearch reports whether the configured stop cap has been met.
func (v *StopVisitor) ShouldBreakSearch() bool {
	return v.maxStops > 0 && len(v.best) >= v.maxStops
}

// Results returns, per reached stop vertex, its cost under the active
// dominance variable (spec.md §9: "callers should treat it as cost under
// the active dominance variable," despite the historical "reached stops"
// naming suggesting a distance map).
func (v *StopVisitor) Results() map[graphmodel.VertexIndex]float64 {
	out := make(map[graphmodel.VertexIndex]float64, len(v.best))
	for vertex, state := range v.best {
		out[vertex] = state.RoutingVariable(v.variable)
	}
	return out
}
