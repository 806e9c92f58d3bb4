package streetrouter

import (
	"github.com/passbi/streetrouter/internal/graphmodel"
	"github.com/passbi/streetrouter/internal/searchstate"
	"github.com/passbi/streetrouter/internal/visitor"
)

// GetStateAtEdge returns the lowest-routing-variable state retained for
// edge, or nil if edge was never reached.
func (r *Router) GetStateAtEdge(edge graphmodel.EdgeIndex) *searchstate.State {
	if r.bestStates == nil {
		return nil
	}
	return r.bestStates.GetStateAtEdge(edge)
}

func (r *Router) predecessorEdges(vertex graphmodel.VertexIndex) []graphmodel.EdgeIndex {
	if r.reverse {
		return r.graph.Edges.Outgoing(vertex)
	}
	return r.graph.Edges.Incoming(vertex)
}

// GetStateAtVertex returns the minimum, over vertex's predecessor edges, of
// GetStateAtEdge. Not suitable for final destination snapping since it
// ignores turn costs onto a destination split edge — use GetState for that
// (spec.md §4.7).
func (r *Router) GetStateAtVertex(vertex graphmodel.VertexIndex) *searchstate.State {
	var best *searchstate.State
	for _, edge := range r.predecessorEdges(vertex) {
		s := r.GetStateAtEdge(edge)
		if s == nil {
			continue
		}
		if best == nil || s.RoutingVariable(r.variable) < best.RoutingVariable(r.variable) {
			best = s
		}
	}
	return best
}

// GetState evaluates both directions of split by applying canTurnFrom, turn
// cost, and partial traversal to every admissible predecessor state on each
// adjacent edge, returning the best result across both directions
// (spec.md §4.7).
func (r *Router) GetState(split graphmodel.Split) *searchstate.State {
	type direction struct {
		edge       graphmodel.EdgeIndex
		fromVertex graphmodel.VertexIndex
		partialMM  int64
	}
	directions := []direction{
		{split.Edge, split.Vertex0, split.Distance0MM},
		{split.BackEdge(), split.Vertex1, split.Distance1MM},
	}

	var best *searchstate.State
	for _, dir := range directions {
		for _, predEdge := range r.predecessorEdges(dir.fromVertex) {
			pred := r.GetStateAtEdge(predEdge)
			if pred == nil {
				continue
			}
			if !r.canTurnFrom(pred, dir.edge) {
				continue
			}
			candidate, ok := r.partialTraverse(pred, dir.edge, dir.partialMM)
			if !ok {
				continue
			}
			if best == nil || candidate.RoutingVariable(r.variable) < best.RoutingVariable(r.variable) {
				best = candidate
			}
		}
	}
	return best
}

// GetReachedStops returns, per reached transit-stop vertex, its cost under
// the active dominance variable. Delegates to an installed StopVisitor's
// results if present, else sweeps the best-state index.
func (r *Router) GetReachedStops() map[graphmodel.VertexIndex]float64 {
	if sv, ok := r.visitor.(*visitor.StopVisitor); ok {
		return sv.Results()
	}
	return r.sweepReachedByFlag(graphmodel.VertexTransitStop)
}

// GetReachedVertices returns, per reached vertex carrying flag, its cost
// under the active dominance variable. Delegates to an installed
// VertexFlagVisitor's results if it was built for the same flag, else
// sweeps the best-state index.
func (r *Router) GetReachedVertices(flag graphmodel.VertexFlags) map[graphmodel.VertexIndex]float64 {
	if fv, ok := r.visitor.(*visitor.VertexFlagVisitor); ok {
		return fv.Results()
	}
	return r.sweepReachedByFlag(flag)
}

// AllReachedVertices sweeps the full best-state index, mapping every
// reached vertex (including origins placed directly at a vertex) to its
// cost under the active dominance variable, with no flag filter.
func (r *Router) AllReachedVertices() map[graphmodel.VertexIndex]float64 {
	out := make(map[graphmodel.VertexIndex]float64)
	if r.bestStates == nil {
		return out
	}
	for _, edge := range r.bestStates.Edges() {
		state := r.bestStates.GetStateAtEdge(edge)
		if state == nil {
			continue
		}
		value := state.RoutingVariable(r.variable)
		if existing, ok := out[state.Vertex]; !ok || value < existing {
			out[state.Vertex] = value
		}
	}
	return out
}

func (r *Router) sweepReachedByFlag(flag graphmodel.VertexFlags) map[graphmodel.VertexIndex]float64 {
	out := make(map[graphmodel.VertexIndex]float64)
	if r.bestStates == nil {
		return out
	}
	for _, edge := range r.bestStates.Edges() {
		state := r.bestStates.GetStateAtEdge(edge)
		if state == nil {
			continue
		}
		if !r.graph.Vertices.Flags(state.Vertex).Has(flag) {
			continue
		}
		value := state.RoutingVariable(r.variable)
		if existing, ok := out[state.Vertex]; !ok || value < existing {
			out[state.Vertex] = value
		}
	}
	return out
}
