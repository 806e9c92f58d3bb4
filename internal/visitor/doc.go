// Package visitor implements the pluggable capability interface that
// harvests results from a running search and signals early termination,
// per spec.md §4.8: "A small capability interface {visitVertex(state),
// shouldBreakSearch() -> bool} with two known variants (stop, flag)."
package visitor
