package graphmodel

import "errors"

// Sentinel errors for graphmodel operations.
var (
	// ErrVertexOutOfRange is returned when a vertex index is not in [0, VertexCount).
	ErrVertexOutOfRange = errors.New("graphmodel: vertex index out of range")

	// ErrEdgeOutOfRange is returned when an edge index is not in [0, EdgeCount).
	ErrEdgeOutOfRange = errors.New("graphmodel: edge index out of range")

	// ErrOddEdgeAdvance is returned when Cursor.Advance is called while
	// positioned on the odd (back) half of an edge pair.
	ErrOddEdgeAdvance = errors.New("graphmodel: advance only defined on the forward half of an edge pair")

	// ErrNoEdgeWithinRadius is returned by FindSplit when no linkable edge
	// permitting the requested mode lies within the search radius.
	ErrNoEdgeWithinRadius = errors.New("graphmodel: no routable edge within radius")
)
