// Package streetrouter implements the A* search loop over a read-only
// internal/graphmodel.Graph: origin/destination management, heuristic
// calibration, stopping conditions, and result extraction.
//
// The search runs over a container/heap priority queue ordered by one of
// several dominance variables (spec.md §4), with an env-var-tunable
// exploration limit and a context-based timeout checked periodically so a
// caller's cancellation is honored without polling every popped state.
package streetrouter
