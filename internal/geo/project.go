package geo

import "math"

// Projection is the result of projecting a point onto a line segment in the
// same planar-approximated millimeter frame PlanarDistanceMM uses.
type Projection struct {
	// T is the fraction along the segment [a,b] the closest point falls at,
	// clamped to [0, 1].
	T float64
	// PerpendicularMM is the distance from p to the closest point on the
	// (possibly clamped) segment, in millimeters.
	PerpendicularMM float64
}

// ProjectOntoSegment projects p onto the segment a-b using the same
// cos(maxLat)-scaled equirectangular frame as PlanarDistanceMM, so that the
// resulting perpendicular distance and the resulting T-based partial
// lengths stay consistent with the rest of the admissible-heuristic math.
func ProjectOntoSegment(p, a, b Point) Projection {
	maxLat := a.Lat
	if b.Lat > maxLat {
		maxLat = b.Lat
	}
	if p.Lat > maxLat {
		maxLat = p.Lat
	}
	scaleLon := lonScale(maxLat)

	toMM := func(pt Point) (x, y float64) {
		return float64(pt.Lon) * scaleLon, float64(pt.Lat) * mmPerFixedDegLat
	}

	ax, ay := toMM(a)
	bx, by := toMM(b)
	px, py := toMM(p)

	dx, dy := bx-ax, by-ay
	segLenSq := dx*dx + dy*dy

	var t float64
	if segLenSq > 0 {
		t = ((px-ax)*dx + (py-ay)*dy) / segLenSq
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	closestX := ax + t*dx
	closestY := ay + t*dy
	perp := math.Hypot(px-closestX, py-closestY)

	return Projection{T: t, PerpendicularMM: perp}
}
