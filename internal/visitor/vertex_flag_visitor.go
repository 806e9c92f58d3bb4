package visitor

import (
	"github.com/passbi/streetrouter/internal/geo"
	"github.com/passbi/streetrouter/internal/graphmodel"
	"github.com/passbi/streetrouter/internal/searchstate"
)

// VertexFlagVisitor harvests the best state reached at each vertex carrying
// a requested capability flag (e.g. BIKE_SHARE, PARK_AND_RIDE).
//
// A vertex first seen before minTravelTimeSeconds is blacklisted permanently:
// since A* pops states in non-decreasing order, any later visit to that same
// vertex necessarily carries a higher cost than the already-discarded early
// one, so recording it would misrepresent the vertex as reached only at that
// later, worse cost (spec.md §4.8).
type VertexFlagVisitor struct {
	graph                *graphmodel.Graph
	flag                 graphmodel.VertexFlags
	variable             geo.Variable
	minTravelTimeSeconds float64
	maxVertices          int

	best      map[graphmodel.VertexIndex]*searchstate.State
	blacklist map[graphmodel.VertexIndex]bool
}

// NewVertexFlagVisitor builds a VertexFlagVisitor over vertices carrying flag.
// maxVertices <= 0 means unbounded.
func NewVertexFlagVisitor(graph *graphmodel.Graph, flag graphmodel.VertexFlags, variable geo.Variable, minTravelTimeSeconds float64, maxVertices int) *VertexFlagVisitor {
	return &VertexFlagVisitor{
		graph:                graph,
		flag:                 flag,
		variable:             variable,
		minTravelTimeSeconds: minTravelTimeSeconds,
		maxVertices:          maxVertices,
		best:                 make(map[graphmodel.VertexIndex]*searchstate.State),
		blacklist:            make(map[graphmodel.VertexIndex]bool),
	}
}

// VisitVertex records state per the blacklist/minimum-time rules above.
func (v *VertexFlagVisitor) VisitVertex(state *searchstate.State) {
	if !v.graph.Vertices.Flags(state.Vertex).Has(v.flag) {
		return
	}
	if v.blacklist[state.Vertex] {
		return
	}
	if float64(state.DurationFromOriginSeconds) < v.minTravelTimeSeconds {
		v.blacklist[state.Vertex] = true
		delete(v.best, state.Vertex)
		return
	}

	if existing, ok := v.best[state.Vertex]; ok {
		if state.RoutingVariable(v.variable) >= existing.RoutingVariable(v.variable) {
			return
		}
	}
	v.best[state.Vertex] = state
}

// ShouldBreakSearch reports whether the configured vertex cap has been met.
func (v *VertexFlagVisitor) ShouldBreakSearch() bool {
	return v.maxVertices > 0 && len(v.best) >= v.maxVertices
}

// Results returns, per reached flagged vertex, its cost under the active
// dominance variable.
func (v *VertexFlagVisitor) Results() map[graphmodel.VertexIndex]float64 {
	out := make(map[graphmodel.VertexIndex]float64, len(v.best))
	for vertex, state := range v.best {
		out[vertex] = state.RoutingVariable(v.variable)
	}
	return out
}
