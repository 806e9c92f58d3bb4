package streetrouter

import (
	"math"

	"github.com/passbi/streetrouter/internal/geo"
	"github.com/passbi/streetrouter/internal/graphmodel"
	"github.com/passbi/streetrouter/internal/profile"
	"github.com/passbi/streetrouter/internal/searchstate"
)

// traverse is the per-edge step: checks traversal permission for the mode,
// computes travel time from length and mode-specific speed, applies the
// WALK reluctance factor under the WEIGHT variable, applies the turn cost
// from the predecessor's BackEdge to edge, advances turn-restriction
// progress (returning ok=false if a required sequence diverges or a
// forbidden one completes), and yields a new State at edge's to-vertex
// (spec.md §4.1).
func (r *Router) traverse(state *searchstate.State, edge graphmodel.EdgeIndex) (*searchstate.State, bool) {
	if !r.graph.Edges.CanTraverse(edge, r.mode) {
		return nil, false
	}

	speed := profile.ResolveSpeedMPS(r.mode, r.graph.Edges.BaseSpeed(edge), r.request)
	if speed <= 0 {
		return nil, false
	}

	turnCostSeconds, progress, legal := r.turnCalc.Traverse(state.TurnRestrictions, state.BackEdge, edge, r.mode)
	if !legal {
		return nil, false
	}

	lengthMM := r.graph.Edges.LengthMM(edge)
	travelSeconds := int64(math.Round((float64(lengthMM) / 1000) / speed))

	weightDelta := travelSeconds
	if r.variable == geo.VariableWeight && r.isWalk() {
		weightDelta = int64(math.Round(float64(travelSeconds) * r.reluctance()))
	}

	next := &searchstate.State{
		Vertex:                    r.graph.Edges.To(edge),
		BackEdge:                  edge,
		BackState:                 state,
		WeightValue:               state.WeightValue + weightDelta + turnCostSeconds,
		DurationSeconds:           state.DurationSeconds + travelSeconds + turnCostSeconds,
		DurationFromOriginSeconds: state.DurationFromOriginSeconds + travelSeconds + turnCostSeconds,
		DistanceMM:                state.DistanceMM + lengthMM,
		StreetMode:                r.mode,
		IsBikeShare:               state.IsBikeShare,
		TurnRestrictions:          progress,
		Idx:                       state.Idx + 1,
	}

	if r.distanceLimitMM > 0 && float64(next.DistanceMM) > r.distanceLimitMM {
		return nil, false
	}
	if r.timeLimitSeconds > 0 && float64(next.DurationSeconds) > r.timeLimitSeconds {
		return nil, false
	}

	return next, true
}

// canTurnFrom reports whether moving from predecessor's BackEdge onto
// candidate is legal under the active turn-restriction table, without
// constructing or enqueuing a new state. Used when reconstructing a
// destination-side state on a split edge (spec.md §4.1).
func (r *Router) canTurnFrom(predecessor *searchstate.State, candidate graphmodel.EdgeIndex) bool {
	_, _, legal := r.turnCalc.Traverse(predecessor.TurnRestrictions, predecessor.BackEdge, candidate, r.mode)
	return legal
}
