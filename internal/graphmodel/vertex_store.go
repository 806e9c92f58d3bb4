package graphmodel

import "github.com/passbi/streetrouter/internal/geo"

// VertexIndex is a dense, zero-based vertex identifier.
type VertexIndex int32

// VertexStore is a columnar vertex table: fixed-point coordinates and a
// capability-flag bitset, indexed by dense VertexIndex.
type VertexStore struct {
	points []geo.Point
	flags  []VertexFlags
}

// NewVertexStore builds an empty VertexStore with room for n vertices.
func NewVertexStore(n int) *VertexStore {
	return &VertexStore{
		points: make([]geo.Point, 0, n),
		flags:  make([]VertexFlags, 0, n),
	}
}

// AddVertex appends a vertex and returns its newly assigned VertexIndex.
func (vs *VertexStore) AddVertex(p geo.Point, flags VertexFlags) VertexIndex {
	vs.points = append(vs.points, p)
	vs.flags = append(vs.flags, flags)
	return VertexIndex(len(vs.points) - 1)
}

// Count returns the number of vertices.
func (vs *VertexStore) Count() int { return len(vs.points) }

// Point returns the fixed-point coordinate of v.
func (vs *VertexStore) Point(v VertexIndex) geo.Point {
	return vs.points[v]
}

// Flags returns the capability flag bitset of v.
func (vs *VertexStore) Flags(v VertexIndex) VertexFlags {
	return vs.flags[v]
}

// Valid reports whether v is a valid, in-range index.
func (vs *VertexStore) Valid(v VertexIndex) bool {
	return v >= 0 && int(v) < len(vs.points)
}

// VerticesWithFlag returns every vertex index carrying all bits in want,
// in ascending index order. The search path never calls this; flag-search
// results come from the visitors and the best-state sweep instead.
func (vs *VertexStore) VerticesWithFlag(want VertexFlags) []VertexIndex {
	var out []VertexIndex
	for i, f := range vs.flags {
		if f.Has(want) {
			out = append(out, VertexIndex(i))
		}
	}
	return out
}
