package turns_test

import (
	"testing"

	"github.com/passbi/streetrouter/internal/geo"
	"github.com/passbi/streetrouter/internal/graphmodel"
	"github.com/passbi/streetrouter/internal/turns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildCross constructs a three-way intersection centered on center: a
// straight edge (south to north through center), and a branch turning east,
// so tests can exercise straight/right/u-turn classification.
func buildCross(t *testing.T) (*graphmodel.Graph, map[string]graphmodel.EdgeIndex) {
	t.Helper()
	vs := graphmodel.NewVertexStore(4)
	south := vs.AddVertex(geo.PointFromFloat(-0.01, 0), 0)
	center := vs.AddVertex(geo.PointFromFloat(0, 0), 0)
	north := vs.AddVertex(geo.PointFromFloat(0.01, 0), 0)
	east := vs.AddVertex(geo.PointFromFloat(0, 0.01), 0)

	es := graphmodel.NewEdgeStore(4, 3)
	spec := graphmodel.DirectionSpec{
		Permission: graphmodel.PermitCar,
		Flags:      graphmodel.EdgeLinkable,
	}

	into := es.AddEdgePair(south, center, 1000, spec, spec)
	straight := es.AddEdgePair(center, north, 1000, spec, spec)
	right := es.AddEdgePair(center, east, 1000, spec, spec)

	g := graphmodel.New(vs, es)
	return g, map[string]graphmodel.EdgeIndex{
		"into":     into,
		"straight": straight,
		"right":    right,
	}
}

func TestCalculator_StraightIsCheapestForCar(t *testing.T) {
	g, edges := buildCross(t)
	calc := turns.NewCalculator(g, nil)

	straightCost, _, ok := calc.Traverse(nil, edges["into"], edges["straight"], graphmodel.ModeCar)
	require.True(t, ok)

	rightCost, _, ok := calc.Traverse(nil, edges["into"], edges["right"], graphmodel.ModeCar)
	require.True(t, ok)

	assert.Less(t, straightCost, rightCost)
}

func TestCalculator_UTurnIsMostExpensive(t *testing.T) {
	g, edges := buildCross(t)
	calc := turns.NewCalculator(g, nil)

	uTurnCost, _, ok := calc.Traverse(nil, edges["into"], edges["into"].Flip(), graphmodel.ModeCar)
	require.True(t, ok)

	straightCost, _, ok := calc.Traverse(nil, edges["into"], edges["straight"], graphmodel.ModeCar)
	require.True(t, ok)

	assert.Greater(t, uTurnCost, straightCost)
}

func TestCalculator_WalkModeHasNoTurnCost(t *testing.T) {
	g, edges := buildCross(t)
	calc := turns.NewCalculator(g, nil)

	cost, _, ok := calc.Traverse(nil, edges["into"], edges["right"], graphmodel.ModeWalk)
	require.True(t, ok)
	assert.Equal(t, int64(0), cost)
}

func TestCalculator_OriginHasZeroCost(t *testing.T) {
	g, _ := buildCross(t)
	calc := turns.NewCalculator(g, nil)

	cost, progress, ok := calc.Traverse(nil, -1, 0, graphmodel.ModeCar)
	require.True(t, ok)
	assert.Equal(t, int64(0), cost)
	assert.Nil(t, progress)
}

func TestCalculator_IllegalTurnReportsNotLegal(t *testing.T) {
	g, edges := buildCross(t)
	table := turns.NewTable([]turns.Restriction{
		{From: edges["into"], To: edges["right"], Polarity: turns.NoVia},
	})
	calc := turns.NewCalculator(g, table)

	_, _, ok := calc.Traverse(nil, edges["into"], edges["right"], graphmodel.ModeCar)
	assert.False(t, ok)
}
