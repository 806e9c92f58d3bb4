package geoexport

import (
	"github.com/paulmach/go.geojson"

	"github.com/passbi/streetrouter/internal/graphmodel"
	"github.com/passbi/streetrouter/internal/searchstate"
)

// PathFeature walks state's BackState chain back to the origin and renders
// the visited vertices as a single LineString Feature, tagged with the
// terminal state's cumulative cost under each of the three dominance
// variables. Returns nil if state is nil.
func PathFeature(graph *graphmodel.Graph, state *searchstate.State) *geojson.Feature {
	if state == nil {
		return nil
	}

	var coords [][]float64
	for s := state; s != nil; s = s.BackState {
		p := graph.Vertices.Point(s.Vertex)
		coords = append(coords, []float64{p.Lon.ToFloat(), p.Lat.ToFloat()})
	}
	reverse(coords)

	feature := geojson.NewFeature(geojson.NewLineStringGeometry(coords))
	feature.Properties = map[string]interface{}{
		"distance_mm":      state.DistanceMM,
		"duration_seconds": state.DurationSeconds,
		"weight":           state.WeightValue,
		"mode":             state.StreetMode.String(),
	}
	return feature
}

func reverse(coords [][]float64) {
	for i, j := 0, len(coords)-1; i < j; i, j = i+1, j-1 {
		coords[i], coords[j] = coords[j], coords[i]
	}
}
