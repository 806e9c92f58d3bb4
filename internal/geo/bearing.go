package geo

import "math"

// BearingDegrees returns the planar bearing from a to b in degrees,
// clockwise from north (0 = north, 90 = east), using the same
// cos(maxLat)-scaled frame as PlanarDistanceMM so it stays consistent with
// turn-angle comparisons derived from edge endpoints rather than true
// great-circle bearing.
func BearingDegrees(a, b Point) float64 {
	maxLat := a.Lat
	if b.Lat > maxLat {
		maxLat = b.Lat
	}
	scaleLon := lonScale(maxLat)

	dx := float64(b.Lon-a.Lon) * scaleLon
	dy := float64(b.Lat-a.Lat) * mmPerFixedDegLat

	radians := math.Atan2(dx, dy)
	degrees := radians * 180 / math.Pi
	if degrees < 0 {
		degrees += 360
	}
	return degrees
}
