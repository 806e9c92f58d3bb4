package graphmodel

import "github.com/passbi/streetrouter/internal/geo"

// Split is the immutable record produced by snapping a geographic point to
// the nearest linkable edge permitting a given mode, per spec.md §3/§4.2.
// It always references the forward edge in a pair; the back edge is
// Edge.Flip().
type Split struct {
	Edge        EdgeIndex
	Vertex0     VertexIndex // from-vertex of Edge
	Vertex1     VertexIndex // to-vertex of Edge
	Distance0MM int64       // partial length from Vertex0 to the snap point
	Distance1MM int64       // partial length from the snap point to Vertex1
	Point       geo.Point
}

// FindSplit returns the closest linkable edge whose forward direction
// permits mode, within radiusMeters, projecting the query point onto each
// candidate edge to get partial distances. Returns ErrNoEdgeWithinRadius if
// nothing qualifies — spec.md §4.2: "the search cannot start (reported, not
// fatal)".
//
// This is a linear scan over edge pairs rather than a spatial index: the
// graph is assumed small enough in test/demo fixtures for that to be
// adequate, and a real spatial index belongs to graph construction, which
// spec.md places out of scope (an external collaborator supplies the graph
// already built).
func FindSplit(g *Graph, query geo.Point, radiusMeters float64, mode Mode) (Split, error) {
	radiusMM := radiusMeters * 1000

	best := Split{}
	bestPerp := radiusMM
	found := false

	count := g.Edges.Count()
	for i := 0; i < count; i += 2 {
		fwd := EdgeIndex(i)
		if !g.Edges.Flags(fwd).Has(EdgeLinkable) {
			continue
		}
		if !g.Edges.CanTraverse(fwd, mode) {
			continue
		}

		v0 := g.Edges.From(fwd)
		v1 := g.Edges.To(fwd)
		a := g.Vertices.Point(v0)
		b := g.Vertices.Point(v1)

		proj := geo.ProjectOntoSegment(query, a, b)
		if proj.PerpendicularMM > bestPerp {
			continue
		}

		lengthMM := g.Edges.LengthMM(fwd)
		d0 := int64(proj.T * float64(lengthMM))
		d1 := lengthMM - d0

		best = Split{
			Edge:        fwd,
			Vertex0:     v0,
			Vertex1:     v1,
			Distance0MM: d0,
			Distance1MM: d1,
			Point:       query,
		}
		bestPerp = proj.PerpendicularMM
		found = true
	}

	if !found {
		return Split{}, ErrNoEdgeWithinRadius
	}
	return best, nil
}

// BackEdge returns the reverse-direction edge of s.Edge.
func (s Split) BackEdge() EdgeIndex { return s.Edge.Flip() }
