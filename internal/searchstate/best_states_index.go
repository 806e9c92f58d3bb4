package searchstate

import (
	"github.com/passbi/streetrouter/internal/geo"
	"github.com/passbi/streetrouter/internal/graphmodel"
)

// BestStatesIndex is the per-edge non-dominated state collection: both the
// search's pruning structure and, after the search ends, the queryable
// result cloud (spec.md §4.3, §4.7).
type BestStatesIndex struct {
	variable geo.Variable
	byEdge   map[graphmodel.EdgeIndex][]*State
}

// NewBestStatesIndex creates an empty index that compares states under variable.
func NewBestStatesIndex(variable geo.Variable) *BestStatesIndex {
	return &BestStatesIndex{
		variable: variable,
		byEdge:   make(map[graphmodel.EdgeIndex][]*State),
	}
}

// keyFor returns the map key a state's non-dominated set lives under. Real
// edges (BackEdge >= 0) key by themselves. Origin states (BackEdge == -1,
// spec.md §3) carry no edge identity, so each origin vertex gets its own
// synthetic negative key — otherwise two unrelated origins dropped on
// different vertices would be compared against each other as if they sat
// on the same edge.
func keyFor(s *State) graphmodel.EdgeIndex {
	if s.IsOrigin() {
		return graphmodel.EdgeIndex(-2 - int32(s.Vertex))
	}
	return s.BackEdge
}

// Insert adds candidate to the index for its edge's (or origin vertex's)
// non-dominated set. If any existing state there dominates candidate,
// candidate is rejected and Insert returns false. Otherwise every existing
// state candidate dominates is evicted and candidate is retained.
func (idx *BestStatesIndex) Insert(candidate *State) bool {
	edge := keyFor(candidate)
	existing := idx.byEdge[edge]

	for _, other := range existing {
		if Dominates(other, candidate, idx.variable) {
			return false
		}
	}

	kept := existing[:0]
	for _, other := range existing {
		if !Dominates(candidate, other, idx.variable) {
			kept = append(kept, other)
		}
	}
	kept = append(kept, candidate)
	idx.byEdge[edge] = kept
	return true
}

// GetStateAtEdge returns the lowest-routing-variable state retained for edge,
// or nil if none.
func (idx *BestStatesIndex) GetStateAtEdge(edge graphmodel.EdgeIndex) *State {
	states := idx.byEdge[edge]
	if len(states) == 0 {
		return nil
	}
	best := states[0]
	for _, s := range states[1:] {
		if s.RoutingVariable(idx.variable) < best.RoutingVariable(idx.variable) {
			best = s
		}
	}
	return best
}

// StatesAtEdge returns the full non-dominated set retained for edge.
func (idx *BestStatesIndex) StatesAtEdge(edge graphmodel.EdgeIndex) []*State {
	return idx.byEdge[edge]
}

// Contains reports whether candidate is still present (by pointer identity)
// in its edge's non-dominated set, letting the search loop detect and skip
// zombie states popped from the priority queue after being dominated by a
// later insertion (spec.md §4.5 "Ordering").
func (idx *BestStatesIndex) Contains(candidate *State) bool {
	for _, s := range idx.byEdge[keyFor(candidate)] {
		if s == candidate {
			return true
		}
	}
	return false
}

// Edges returns every edge index carrying at least one retained state, for
// sweeping the full result cloud (spec.md §4.7 getReachedStops/getReachedVertices).
func (idx *BestStatesIndex) Edges() []graphmodel.EdgeIndex {
	edges := make([]graphmodel.EdgeIndex, 0, len(idx.byEdge))
	for e := range idx.byEdge {
		edges = append(edges, e)
	}
	return edges
}
