// Package searchstate holds the per-edge search record produced by A*
// expansion (State), and the non-dominated per-edge state collection
// (BestStatesIndex) that both prunes the search and serves as the final
// queryable result cloud.
//
// A single best-cost-per-vertex map is not enough here: turn costs and
// restrictions mean two states can reach the same vertex by different
// incoming edges with different future cost, so the index tracks the best
// state per edge rather than per vertex, with an explicit exception for
// in-progress turn restrictions (spec.md §9).
package searchstate
