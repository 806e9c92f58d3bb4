package geo_test

import (
	"math"
	"testing"

	"github.com/passbi/streetrouter/internal/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedRoundTrip(t *testing.T) {
	f := geo.FixedFromFloat(48.8566)
	assert.InDelta(t, 48.8566, f.ToFloat(), 1e-6)
}

func TestPlanarDistanceMM_ZeroForSamePoint(t *testing.T) {
	p := geo.PointFromFloat(48.8566, 2.3522)
	require.Equal(t, 0.0, geo.PlanarDistanceMM(p, p))
}

func TestPlanarDistanceMM_HorizontalCaseUsesCosLatScale(t *testing.T) {
	// Two points on the same latitude, 0.001 degrees of longitude apart.
	a := geo.PointFromFloat(10, 0)
	b := geo.PointFromFloat(10, 0.001)
	got := geo.PlanarDistanceMM(a, b)
	// Expected scale: cos(10deg) * mmPerFixedDegLat * 0.001 degrees-in-fixed-units
	want := math.Cos(10*math.Pi/180) * geo.MMPerFixedDegLat() * 0.001 * geo.FixedDegreeFactor
	assert.InDelta(t, want, got, 1)
}

func TestPlanarDistanceMM_UsesHigherLatitudeForScale(t *testing.T) {
	// Scaling by the higher latitude should only ever shrink the longitude
	// contribution, never grow it — this is what keeps Heuristic admissible.
	low := geo.PointFromFloat(0, 0)
	high := geo.PointFromFloat(60, 1)
	gotHighFirst := geo.PlanarDistanceMM(high, low)
	gotLowFirst := geo.PlanarDistanceMM(low, high)
	assert.InDelta(t, gotHighFirst, gotLowFirst, 1)
}
