// Package geo provides the fixed-point coordinate representation and the
// admissible, Haversine-approximated distance heuristic shared by the
// street graph and the A* router.
//
// Coordinates are stored as int32 fixed-point degrees (degrees * FixedDegreeFactor)
// rather than float64 so that vertex storage is compact and comparisons used
// by the heuristic are deterministic across platforms. Distances derived from
// coordinates are always expressed in millimeters, as float64.
package geo
