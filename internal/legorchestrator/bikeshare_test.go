package legorchestrator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passbi/streetrouter/internal/geo"
	"github.com/passbi/streetrouter/internal/graphmodel"
	"github.com/passbi/streetrouter/internal/legorchestrator"
)

func TestPlanBikeShareTrip_PicksTheOnlySharedStation(t *testing.T) {
	vs := graphmodel.NewVertexStore(3)
	origin := vs.AddVertex(geo.PointFromFloat(0, 0), 0)
	station := vs.AddVertex(geo.PointFromFloat(0, 0.005), graphmodel.VertexBikeShare)
	dest := vs.AddVertex(geo.PointFromFloat(0, 0.01), 0)

	es := graphmodel.NewEdgeStore(3, 2)
	spec := graphmodel.DirectionSpec{Permission: graphmodel.PermitWalk, Flags: graphmodel.EdgeLinkable}
	es.AddEdgePair(origin, station, 500, spec, spec)
	es.AddEdgePair(station, dest, 500, spec, spec)

	g := graphmodel.New(vs, es)

	originSplit, err := graphmodel.FindSplit(g, geo.PointFromFloat(0, 0), 50, graphmodel.ModeWalk)
	require.NoError(t, err)
	destSplit, err := graphmodel.FindSplit(g, geo.PointFromFloat(0, 0.01), 50, graphmodel.ModeWalk)
	require.NoError(t, err)

	itinerary, err := legorchestrator.PlanBikeShareTrip(context.Background(), g, legorchestrator.BikeShareTripConfig{
		Origin:           originSplit,
		Destination:      destSplit,
		Variable:         geo.VariableDuration,
		SwitchCostWeight: 60,
		MaxStations:      5,
	})
	require.NoError(t, err)
	require.NotNil(t, itinerary)
	assert.Equal(t, station, itinerary.Station)
	assert.Greater(t, itinerary.TotalCost, itinerary.OutboundCost+itinerary.InboundCost)
}

func TestPlanBikeShareTrip_NoStationReachable(t *testing.T) {
	vs := graphmodel.NewVertexStore(2)
	origin := vs.AddVertex(geo.PointFromFloat(0, 0), 0)
	dest := vs.AddVertex(geo.PointFromFloat(0, 0.01), 0)

	es := graphmodel.NewEdgeStore(2, 1)
	spec := graphmodel.DirectionSpec{Permission: graphmodel.PermitWalk, Flags: graphmodel.EdgeLinkable}
	es.AddEdgePair(origin, dest, 1000, spec, spec)
	g := graphmodel.New(vs, es)

	originSplit, err := graphmodel.FindSplit(g, geo.PointFromFloat(0, 0), 50, graphmodel.ModeWalk)
	require.NoError(t, err)
	destSplit, err := graphmodel.FindSplit(g, geo.PointFromFloat(0, 0.01), 50, graphmodel.ModeWalk)
	require.NoError(t, err)

	_, err = legorchestrator.PlanBikeShareTrip(context.Background(), g, legorchestrator.BikeShareTripConfig{
		Origin:      originSplit,
		Destination: destSplit,
		Variable:    geo.VariableDuration,
	})
	assert.Error(t, err)
}
