package streetrouter

import (
	"math"

	"github.com/passbi/streetrouter/internal/geo"
	"github.com/passbi/streetrouter/internal/graphmodel"
	"github.com/passbi/streetrouter/internal/profile"
	"github.com/passbi/streetrouter/internal/searchstate"
)

// SetDestinationLatLon snaps (lat, lon) to the nearest linkable edge within
// radiusMeters and enables target-pruning against it.
func (r *Router) SetDestinationLatLon(lat, lon, radiusMeters float64) error {
	split, err := graphmodel.FindSplit(r.graph, geo.PointFromFloat(lat, lon), radiusMeters, r.mode)
	if err != nil {
		return err
	}
	r.dest = &split
	return nil
}

// SetDestinationSplit installs a pre-computed Split as the destination.
func (r *Router) SetDestinationSplit(split graphmodel.Split) {
	r.dest = &split
}

// atDestinationEndpoint reports whether vertex is either endpoint of the
// configured destination split.
func (r *Router) atDestinationEndpoint(vertex graphmodel.VertexIndex) bool {
	return r.dest != nil && (vertex == r.dest.Vertex0 || vertex == r.dest.Vertex1)
}

// partialTraverse applies the turn cost from predecessor's BackEdge onto
// edge plus a partial-length traversal of partialMM (rather than edge's full
// length), used both for live destination-side reconstruction during Route
// and for the post-hoc GetState(split) query (spec.md §4.1, §4.7).
func (r *Router) partialTraverse(predecessor *searchstate.State, edge graphmodel.EdgeIndex, partialMM int64) (*searchstate.State, bool) {
	if !r.graph.Edges.CanTraverse(edge, r.mode) {
		return nil, false
	}
	speed := profile.ResolveSpeedMPS(r.mode, r.graph.Edges.BaseSpeed(edge), r.request)
	if speed <= 0 {
		return nil, false
	}

	turnCostSeconds, progress, legal := r.turnCalc.Traverse(predecessor.TurnRestrictions, predecessor.BackEdge, edge, r.mode)
	if !legal {
		return nil, false
	}

	partialSeconds := int64(math.Round((float64(partialMM) / 1000) / speed))
	weightDelta := partialSeconds
	if r.variable == geo.VariableWeight && r.isWalk() {
		weightDelta = int64(math.Round(float64(partialSeconds) * r.reluctance()))
	}

	return &searchstate.State{
		Vertex:                    r.graph.Edges.To(edge),
		BackEdge:                  edge,
		BackState:                 predecessor,
		WeightValue:               predecessor.WeightValue + weightDelta + turnCostSeconds,
		DurationSeconds:           predecessor.DurationSeconds + partialSeconds + turnCostSeconds,
		DurationFromOriginSeconds: predecessor.DurationFromOriginSeconds + partialSeconds + turnCostSeconds,
		DistanceMM:                predecessor.DistanceMM + partialMM,
		StreetMode:                r.mode,
		IsBikeShare:               predecessor.IsBikeShare,
		TurnRestrictions:          progress,
		Idx:                       predecessor.Idx + 1,
	}, true
}

// considerDestination reconstructs the best reachable state on the
// destination split edge from popped, applying the turn cost from popped's
// BackEdge onto whichever split direction departs popped's vertex, plus the
// corresponding partial traversal, and raises bestValueAtDestination if
// improved (spec.md §4.5 "Destination handling").
func (r *Router) considerDestination(popped *searchstate.State) {
	if r.dest == nil {
		return
	}

	var edge graphmodel.EdgeIndex
	var partialMM int64
	switch popped.Vertex {
	case r.dest.Vertex0:
		edge, partialMM = r.dest.Edge, r.dest.Distance0MM
	case r.dest.Vertex1:
		edge, partialMM = r.dest.BackEdge(), r.dest.Distance1MM
	default:
		return
	}

	candidate, ok := r.partialTraverse(popped, edge, partialMM)
	if !ok {
		return
	}

	value := candidate.RoutingVariable(r.variable)
	if !r.haveDestinationValue || value < r.bestValueAtDestination {
		r.bestValueAtDestination = value
		r.haveDestinationValue = true
	}
}
