package visitor_test

import (
	"testing"

	"github.com/passbi/streetrouter/internal/geo"
	"github.com/passbi/streetrouter/internal/graphmodel"
	"github.com/passbi/streetrouter/internal/searchstate"
	"github.com/passbi/streetrouter/internal/visitor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildStopGraph(t *testing.T) (*graphmodel.Graph, graphmodel.VertexIndex) {
	t.Helper()
	vs := graphmodel.NewVertexStore(2)
	vs.AddVertex(geo.PointFromFloat(0, 0), 0)
	stop := vs.AddVertex(geo.PointFromFloat(0, 0.01), graphmodel.VertexTransitStop)
	es := graphmodel.NewEdgeStore(2, 0)
	return graphmodel.New(vs, es), stop
}

func TestStopVisitor_FiltersByMinTravelTime(t *testing.T) {
	g, stop := buildStopGraph(t)
	v := visitor.NewStopVisitor(g, geo.VariableDuration, 30, 0)

	v.VisitVertex(&searchstate.State{Vertex: stop, DurationFromOriginSeconds: 10, DurationSeconds: 10})
	assert.Empty(t, v.Results())

	v.VisitVertex(&searchstate.State{Vertex: stop, DurationFromOriginSeconds: 40, DurationSeconds: 40})
	results := v.Results()
	require.Len(t, results, 1)
	assert.Equal(t, float64(40), results[stop])
}

func TestStopVisitor_CapTriggersBreak(t *testing.T) {
	g, stop := buildStopGraph(t)
	v := visitor.NewStopVisitor(g, geo.VariableDuration, 0, 1)

	assert.False(t, v.ShouldBreakSearch())
	v.VisitVertex(&searchstate.State{Vertex: stop, DurationSeconds: 5})
	assert.True(t, v.ShouldBreakSearch())
}

func TestStopVisitor_KeepsCheaperOfTwoVisitsToSameStop(t *testing.T) {
	g, stop := buildStopGraph(t)
	v := visitor.NewStopVisitor(g, geo.VariableDuration, 0, 0)

	v.VisitVertex(&searchstate.State{Vertex: stop, DurationSeconds: 50})
	v.VisitVertex(&searchstate.State{Vertex: stop, DurationSeconds: 20})
	v.VisitVertex(&searchstate.State{Vertex: stop, DurationSeconds: 80})

	assert.Equal(t, float64(20), v.Results()[stop])
}

func TestVertexFlagVisitor_BlacklistsVertexSeenTooEarly(t *testing.T) {
	vs := graphmodel.NewVertexStore(1)
	bikeShare := vs.AddVertex(geo.PointFromFloat(0, 0), graphmodel.VertexBikeShare)
	es := graphmodel.NewEdgeStore(1, 0)
	g := graphmodel.New(vs, es)

	v := visitor.NewVertexFlagVisitor(g, graphmodel.VertexBikeShare, geo.VariableDuration, 30, 0)

	v.VisitVertex(&searchstate.State{Vertex: bikeShare, DurationFromOriginSeconds: 5, DurationSeconds: 5})
	assert.Empty(t, v.Results())

	v.VisitVertex(&searchstate.State{Vertex: bikeShare, DurationFromOriginSeconds: 60, DurationSeconds: 60})
	assert.Empty(t, v.Results(), "a vertex blacklisted for an early visit stays blacklisted")
}
