package graphmodel

// Graph bundles a VertexStore and an EdgeStore into the read-only street
// graph a StreetRouter searches over. It is built once, upstream (by
// internal/graphsource or a test fixture), and never mutated during search.
type Graph struct {
	Vertices *VertexStore
	Edges    *EdgeStore
}

// New constructs a Graph from already-populated stores.
func New(vertices *VertexStore, edges *EdgeStore) *Graph {
	return &Graph{Vertices: vertices, Edges: edges}
}
