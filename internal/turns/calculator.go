package turns

import (
	"math"

	"github.com/passbi/streetrouter/internal/geo"
	"github.com/passbi/streetrouter/internal/graphmodel"
)

// Turn cost constants in seconds. Hard-codes drive-on-right, per spec.md §9:
// "a production implementation parameterizes handedness on construction."
const (
	carStraightCostSeconds = 0
	carRightCostSeconds    = 2
	carLeftCostSeconds     = 5
	carUTurnCostSeconds    = 12

	bicycleTurnCostSeconds  = 1
	bicycleUTurnCostSeconds = 6
)

const straightThresholdDegrees = 20

// Calculator computes the scalar turn cost of moving from one edge to the
// next and advances turn-restriction progress for the move.
type Calculator struct {
	graph *graphmodel.Graph
	table *Table
}

// NewCalculator builds a Calculator for graph, consulting table for
// restriction legality. table may be nil (no restrictions in effect).
func NewCalculator(graph *graphmodel.Graph, table *Table) *Calculator {
	return &Calculator{graph: graph, table: table}
}

// Traverse computes the turn cost in seconds of moving from fromEdge to
// toEdge under mode and advances any restriction progress. legal is false
// if the move violates an active or newly-entered restriction, in which
// case the edge must not be traversed and costSeconds/progressOut are
// meaningless.
func (c *Calculator) Traverse(progressIn Progress, fromEdge, toEdge graphmodel.EdgeIndex, mode graphmodel.Mode) (costSeconds int64, progressOut Progress, legal bool) {
	if fromEdge < 0 {
		// Predecessor is an origin placed at a vertex, not via an edge
		// (spec.md §3): there is no real turn, but toEdge may itself start a
		// restriction, which must begin tracking now rather than be missed.
		return 0, c.ActivateAt(toEdge), true
	}

	if c.table != nil {
		out, ok := c.table.Advance(progressIn, fromEdge, toEdge)
		if !ok {
			return 0, nil, false
		}
		progressOut = out
	}

	return c.cost(fromEdge, toEdge, mode), progressOut, true
}

// ActivateAt returns the turn-restriction progress for a state seeded
// directly onto edge (see Table.ActivateAt). Safe to call with no table
// installed, returning nil.
func (c *Calculator) ActivateAt(edge graphmodel.EdgeIndex) Progress {
	if c.table == nil {
		return nil
	}
	return c.table.ActivateAt(edge)
}

func (c *Calculator) cost(fromEdge, toEdge graphmodel.EdgeIndex, mode graphmodel.Mode) int64 {
	if mode == graphmodel.ModeWalk {
		return 0
	}
	if toEdge == fromEdge.Flip() {
		if mode == graphmodel.ModeBicycle {
			return bicycleUTurnCostSeconds
		}
		return carUTurnCostSeconds
	}

	delta := c.turnDeltaDegrees(fromEdge, toEdge)
	if mode == graphmodel.ModeBicycle {
		return bicycleTurnCostSeconds
	}
	switch {
	case math.Abs(delta) <= straightThresholdDegrees:
		return carStraightCostSeconds
	case delta > 0:
		// Positive delta is a turn to the right under the bearing convention
		// in turnDeltaDegrees (clockwise positive), cheaper under drive-on-right.
		return carRightCostSeconds
	default:
		return carLeftCostSeconds
	}
}

// turnDeltaDegrees computes the signed bearing change from the incoming
// edge's direction of travel to the outgoing edge's, in degrees, clockwise
// positive (i.e. a right turn is positive under drive-on-right convention).
func (c *Calculator) turnDeltaDegrees(fromEdge, toEdge graphmodel.EdgeIndex) float64 {
	inBearing := c.bearing(fromEdge)
	outBearing := c.bearing(toEdge)

	delta := outBearing - inBearing
	for delta > 180 {
		delta -= 360
	}
	for delta < -180 {
		delta += 360
	}
	return delta
}

func (c *Calculator) bearing(edge graphmodel.EdgeIndex) float64 {
	a := c.graph.Vertices.Point(c.graph.Edges.From(edge))
	b := c.graph.Vertices.Point(c.graph.Edges.To(edge))
	return geo.BearingDegrees(a, b)
}
