package graphmodel_test

import (
	"testing"

	"github.com/passbi/streetrouter/internal/graphmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSplit_MidpointYieldsRoughlyEqualPartials(t *testing.T) {
	g, _, _, fwd := buildLine(t)
	midLat, midLon := 0.0, 0.005
	split, err := graphmodel.FindSplit(g, geoPoint(midLat, midLon), 50, graphmodel.ModeWalk)
	require.NoError(t, err)
	assert.Equal(t, fwd, split.Edge)
	assert.InDelta(t, float64(split.Distance0MM), float64(split.Distance1MM), float64(split.Distance0MM)*0.05+50)
}

func TestFindSplit_NoEdgeWithinRadius(t *testing.T) {
	g, _, _, _ := buildLine(t)
	_, err := graphmodel.FindSplit(g, geoPoint(5, 5), 10, graphmodel.ModeWalk)
	assert.ErrorIs(t, err, graphmodel.ErrNoEdgeWithinRadius)
}

func TestFindSplit_RespectsModePermission(t *testing.T) {
	vs := graphmodel.NewVertexStore(2)
	v0 := vs.AddVertex(geoPoint(0, 0), 0)
	v1 := vs.AddVertex(geoPoint(0, 0.01), 0)
	es := graphmodel.NewEdgeStore(2, 1)
	carOnly := graphmodel.DirectionSpec{Permission: graphmodel.PermitCar, Flags: graphmodel.EdgeLinkable}
	es.AddEdgePair(v0, v1, 1000, carOnly, carOnly)
	g := graphmodel.New(vs, es)

	_, err := graphmodel.FindSplit(g, geoPoint(0, 0.005), 50, graphmodel.ModeWalk)
	assert.ErrorIs(t, err, graphmodel.ErrNoEdgeWithinRadius)

	split, err := graphmodel.FindSplit(g, geoPoint(0, 0.005), 50, graphmodel.ModeCar)
	require.NoError(t, err)
	assert.True(t, split.Edge.IsForward())
}

func TestSplit_BackEdge(t *testing.T) {
	g, _, _, fwd := buildLine(t)
	split, err := graphmodel.FindSplit(g, geoPoint(0, 0.005), 50, graphmodel.ModeWalk)
	require.NoError(t, err)
	assert.Equal(t, fwd.Flip(), split.BackEdge())
}
