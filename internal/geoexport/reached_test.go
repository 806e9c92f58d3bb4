package geoexport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passbi/streetrouter/internal/geo"
	"github.com/passbi/streetrouter/internal/geoexport"
	"github.com/passbi/streetrouter/internal/graphmodel"
)

func TestReachedVerticesFeatureCollection_OneFeaturePerVertex(t *testing.T) {
	vs := graphmodel.NewVertexStore(2)
	v0 := vs.AddVertex(geo.PointFromFloat(0, 0), 0)
	v1 := vs.AddVertex(geo.PointFromFloat(1, 1), 0)
	g := graphmodel.New(vs, graphmodel.NewEdgeStore(2, 0))

	reached := map[graphmodel.VertexIndex]float64{v0: 0, v1: 42.5}

	fc := geoexport.ReachedVerticesFeatureCollection(g, reached)
	require.Len(t, fc.Features, 2)

	seen := map[float64]bool{}
	for _, f := range fc.Features {
		assert.Equal(t, "Point", f.Geometry.Type)
		seen[f.Properties["cost"].(float64)] = true
	}
	assert.True(t, seen[0])
	assert.True(t, seen[42.5])
}
