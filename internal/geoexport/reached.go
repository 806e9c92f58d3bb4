package geoexport

import (
	"github.com/paulmach/go.geojson"

	"github.com/passbi/streetrouter/internal/graphmodel"
)

// ReachedVerticesFeatureCollection renders a reached-vertex cost map (as
// returned by StreetRouter.GetReachedStops, GetReachedVertices or
// AllReachedVertices) as one Point Feature per vertex, tagged with its cost
// under the active dominance variable.
func ReachedVerticesFeatureCollection(graph *graphmodel.Graph, reached map[graphmodel.VertexIndex]float64) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for vertex, cost := range reached {
		p := graph.Vertices.Point(vertex)
		feature := geojson.NewFeature(geojson.NewPointGeometry([]float64{p.Lon.ToFloat(), p.Lat.ToFloat()}))
		feature.Properties = map[string]interface{}{
			"vertex": int32(vertex),
			"cost":   cost,
		}
		fc.AddFeature(feature)
	}

	return fc
}
