// Package graphmodel holds the columnar, edge-indexed street graph: VertexStore,
// EdgeStore, the paired forward/back edge layout, adjacency indexes, and the
// Split type used to snap a geographic point onto the nearest routable edge.
//
// The representation favors dense integer indices and columnar field storage
// because turn costs are edge-to-edge: spec.md requires per-edge (not
// per-vertex) state, and a vertex-keyed adjacency map cannot express the
// "two directions of one edge carry independent speed/permissions/flags"
// invariant that the XOR-paired edge layout gives for free.
//
// The graph is built once, upstream, and is read-only during search: many
// *streetrouter.Router instances may run concurrently over a single Graph
// without locking.
package graphmodel
