package graphmodel

// VertexFlags is a bitset of capability flags attached to a vertex.
type VertexFlags uint32

const (
	// VertexBikeShare marks a vertex as a bike-share station.
	VertexBikeShare VertexFlags = 1 << iota
	// VertexParkAndRide marks a vertex as a park-and-ride lot.
	VertexParkAndRide
	// VertexTransitStop marks a vertex with a street-layer ↔ transit-stop mapping.
	VertexTransitStop
)

// Has reports whether all bits in want are set.
func (f VertexFlags) Has(want VertexFlags) bool { return f&want == want }

// EdgeFlags is a bitset of traversal/classification flags attached to one
// direction of an edge pair.
type EdgeFlags uint32

const (
	// EdgeStairs marks an edge as stairs (excluded for BICYCLE and CAR).
	EdgeStairs EdgeFlags = 1 << iota
	// EdgeLinkable marks an edge eligible as an origin/destination snap target.
	EdgeLinkable
	// EdgeBikePath marks a dedicated cycleway.
	EdgeBikePath
	// EdgeSidewalk marks a pedestrian sidewalk.
	EdgeSidewalk
	// EdgeCrossing marks a street crossing.
	EdgeCrossing
	// EdgeRoundabout marks an edge that is part of a roundabout.
	EdgeRoundabout
	// EdgePlatform marks an edge on a transit platform.
	EdgePlatform
)

// Has reports whether all bits in want are set.
func (f EdgeFlags) Has(want EdgeFlags) bool { return f&want == want }

// Permission is a per-mode traversal bit; Mode.Permission (mode.go) maps a
// Mode to its bit. Both live here, rather than in profile, to avoid a
// graphmodel <-> profile import cycle: profile labels edges with
// graphmodel.EdgeFlags, so graphmodel cannot also depend on profile.
type Permission uint8

const (
	PermitWalk Permission = 1 << iota
	PermitBicycle
	PermitCar
)

// Has reports whether all bits in want are set.
func (p Permission) Has(want Permission) bool { return p&want == want }
