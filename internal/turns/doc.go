// Package turns represents multi-edge turn restrictions and computes the
// scalar turn cost of moving from one edge to the next: a bearing-delta
// cost for the turn itself, plus a hard block when a NoVia restriction's
// edge sequence has been matched in full (spec.md §3/§4.1).
package turns
