package searchstate

import (
	"github.com/passbi/streetrouter/internal/geo"
	"github.com/passbi/streetrouter/internal/graphmodel"
	"github.com/passbi/streetrouter/internal/turns"
)

// State is a node of the search tree: one per (edge, distinct turn-restriction
// progress) pair actually explored, per spec.md §3.
type State struct {
	Vertex graphmodel.VertexIndex

	// BackEdge is the edge by which this state was reached; -1 iff this state
	// represents an origin placed directly at a vertex, not via an edge.
	BackEdge graphmodel.EdgeIndex

	// BackState is the predecessor state. Predecessors are shared by all
	// successors and never mutated once created, so sharing is safe.
	BackState *State

	WeightValue               int64
	DurationSeconds           int64
	DurationFromOriginSeconds int64
	DistanceMM                int64

	// Heuristic is the cached admissible estimate of remaining cost,
	// computed at most once per retained state.
	Heuristic float64

	StreetMode graphmodel.Mode

	// IsBikeShare records that a mode switch occurred at this state's vertex.
	IsBikeShare bool

	// TurnRestrictions is absent (nil) iff this state is not currently
	// mid-restriction.
	TurnRestrictions turns.Progress

	// Idx is this state's depth: the number of predecessors back to an origin.
	Idx int
}

// IsOrigin reports whether this state was seeded directly at a vertex rather
// than reached via a traversed edge.
func (s *State) IsOrigin() bool { return s.BackEdge < 0 }

// RoutingVariable returns the state's cumulative cost under variable as a
// float64, the quantity both priority ordering and dominance comparisons
// operate on. The underlying fields are stored as int64 (spec.md §3); this
// is a lossless widening for any cost within the search's realistic range,
// done here so it can be combined with the continuous Heuristic estimate.
func (s *State) RoutingVariable(variable geo.Variable) float64 {
	switch variable {
	case geo.VariableDistance:
		return float64(s.DistanceMM)
	case geo.VariableWeight:
		return float64(s.WeightValue)
	case geo.VariableDuration:
		return float64(s.DurationSeconds)
	default:
		return float64(s.WeightValue)
	}
}

// PriorityKey returns the A* priority queue ordering key: routing variable
// plus the cached heuristic.
func (s *State) PriorityKey(variable geo.Variable) float64 {
	return s.RoutingVariable(variable) + s.Heuristic
}
