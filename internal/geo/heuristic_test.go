package geo_test

import (
	"testing"

	"github.com/passbi/streetrouter/internal/geo"
	"github.com/stretchr/testify/assert"
)

func TestHeuristic_DistanceVariable(t *testing.T) {
	a := geo.PointFromFloat(0, 0)
	b := geo.PointFromFloat(0, 1)
	h := geo.Heuristic(a, b, geo.VariableDistance, 1.4, 1.0, false)
	assert.Equal(t, geo.PlanarDistanceMM(a, b), h)
}

func TestHeuristic_DurationVariable_DividesBySpeed(t *testing.T) {
	a := geo.PointFromFloat(0, 0)
	b := geo.PointFromFloat(0, 1)
	h := geo.Heuristic(a, b, geo.VariableDuration, 2.0, 1.0, false)
	distanceMM := geo.PlanarDistanceMM(a, b)
	assert.InDelta(t, (distanceMM/1000)/2.0, h, 1e-9)
}

func TestHeuristic_WeightVariable_AppliesWalkReluctance(t *testing.T) {
	a := geo.PointFromFloat(0, 0)
	b := geo.PointFromFloat(0, 1)
	withoutReluctance := geo.Heuristic(a, b, geo.VariableWeight, 1.4, 1.0, false)
	withReluctance := geo.Heuristic(a, b, geo.VariableWeight, 1.4, 2.0, true)
	assert.InDelta(t, withoutReluctance*2.0, withReluctance, 1e-9)
}

func TestHeuristic_ZeroSpeedIsZero(t *testing.T) {
	a := geo.PointFromFloat(0, 0)
	b := geo.PointFromFloat(1, 1)
	assert.Equal(t, 0.0, geo.Heuristic(a, b, geo.VariableDuration, 0, 1.0, false))
}

func TestHeuristic_AdmissibleUnderestimate(t *testing.T) {
	// A crude but effective admissibility smoke test: the heuristic in
	// duration units should never exceed straight-line-time at the mode's
	// fastest possible speed, which by construction it cannot (it IS that
	// computation), so this asserts the relationship holds for a spread of
	// points rather than re-deriving it trivially.
	maxSpeed := 36.11
	pts := []geo.Point{
		geo.PointFromFloat(48.85, 2.35),
		geo.PointFromFloat(48.90, 2.40),
		geo.PointFromFloat(48.80, 2.20),
	}
	origin := geo.PointFromFloat(48.858, 2.294)
	for _, p := range pts {
		h := geo.Heuristic(origin, p, geo.VariableDuration, maxSpeed, 1.0, false)
		trueMinSeconds := (geo.PlanarDistanceMM(origin, p) / 1000) / maxSpeed
		assert.LessOrEqual(t, h, trueMinSeconds+1e-9)
	}
}
