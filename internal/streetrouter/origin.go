package streetrouter

import (
	"math"

	"github.com/passbi/streetrouter/internal/geo"
	"github.com/passbi/streetrouter/internal/graphmodel"
	"github.com/passbi/streetrouter/internal/profile"
	"github.com/passbi/streetrouter/internal/searchstate"
)

// SetOriginLatLon snaps (lat, lon) to the nearest linkable edge within
// radiusMeters and seeds two initial states, one on each direction of the
// split edge, with weight equal to the partial distance divided by the
// per-direction speed (spec.md §4.5).
func (r *Router) SetOriginLatLon(lat, lon, radiusMeters float64) error {
	split, err := graphmodel.FindSplit(r.graph, geo.PointFromFloat(lat, lon), radiusMeters, r.mode)
	if err != nil {
		return err
	}
	return r.seedFromSplit(split)
}

// SetOriginSplit seeds from a Split already computed elsewhere (e.g. a
// routecache hit), skipping the snap lookup SetOriginLatLon performs.
func (r *Router) SetOriginSplit(split graphmodel.Split) error {
	return r.seedFromSplit(split)
}

func (r *Router) seedFromSplit(split graphmodel.Split) error {
	r.ensureBestStates()
	forwardSpeed := profile.ResolveSpeedMPS(r.mode, r.graph.Edges.BaseSpeed(split.Edge), r.request)
	backSpeed := profile.ResolveSpeedMPS(r.mode, r.graph.Edges.BaseSpeed(split.BackEdge()), r.request)

	forward := r.seedAlongEdge(split.Edge, split.Vertex1, split.Distance1MM, forwardSpeed)
	back := r.seedAlongEdge(split.BackEdge(), split.Vertex0, split.Distance0MM, backSpeed)

	r.enqueue(forward)
	r.enqueue(back)
	return nil
}

func (r *Router) seedAlongEdge(edge graphmodel.EdgeIndex, toVertex graphmodel.VertexIndex, partialMM int64, speed float64) *searchstate.State {
	var durationSeconds int64
	if speed > 0 {
		durationSeconds = int64(math.Round((float64(partialMM) / 1000) / speed))
	}
	weight := durationSeconds
	if r.variable == geo.VariableWeight && r.isWalk() {
		weight = int64(math.Round(float64(durationSeconds) * r.reluctance()))
	}

	return &searchstate.State{
		Vertex:                    toVertex,
		BackEdge:                  edge,
		BackState:                 nil,
		WeightValue:               weight,
		DurationSeconds:           durationSeconds,
		DurationFromOriginSeconds: durationSeconds,
		DistanceMM:                partialMM,
		StreetMode:                r.mode,
		TurnRestrictions:          r.turnCalc.ActivateAt(edge),
		Idx:                       1,
	}
}

// SetOriginVertex seeds a single state with BackEdge = -1 directly at v.
func (r *Router) SetOriginVertex(v graphmodel.VertexIndex) {
	r.ensureBestStates()
	r.enqueue(&searchstate.State{
		Vertex:     v,
		BackEdge:   -1,
		StreetMode: r.mode,
		Idx:        0,
	})
}

// SetOriginFromStates seeds from a predecessor router's result cloud for
// multi-leg searches (e.g. after car-park or bike-share): each seed inherits
// cumulative values from its predecessor plus switch penalties.
// switchTimeSeconds and switchCostWeight are added to duration and weight
// respectively; isBikeRent flips IsBikeShare on the seeded state.
func (r *Router) SetOriginFromStates(predecessors map[graphmodel.VertexIndex]*searchstate.State, switchTimeSeconds, switchCostWeight float64, legMode graphmodel.Mode, isBikeRent bool) {
	r.ensureBestStates()
	r.mode = legMode
	switchTime := int64(math.Round(switchTimeSeconds))
	switchCost := int64(math.Round(switchCostWeight))
	for vertex, pred := range predecessors {
		r.enqueue(&searchstate.State{
			Vertex:                    vertex,
			BackEdge:                  -1,
			WeightValue:               pred.WeightValue + switchCost,
			DurationSeconds:           pred.DurationSeconds + switchTime,
			DurationFromOriginSeconds: switchTime,
			DistanceMM:                pred.DistanceMM,
			StreetMode:                legMode,
			IsBikeShare:               isBikeRent,
			Idx:                       0,
		})
	}
}

func (r *Router) enqueue(s *searchstate.State) {
	s.Heuristic = r.heuristicFor(s)
	if !r.bestStates.Insert(s) {
		return
	}
	r.queue.push(s)
}
