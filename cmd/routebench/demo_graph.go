package main

import (
	"github.com/passbi/streetrouter/internal/geo"
	"github.com/passbi/streetrouter/internal/graphmodel"
)

// buildDemoGraph assembles a synthetic gridSize x gridSize street grid, one
// degree-thousandth apart, all edges walk/bicycle/car permitted. Used when
// no Postgres graph schema is configured, so routebench has something to
// search over without any setup.
func buildDemoGraph(gridSize int) *graphmodel.Graph {
	vs := graphmodel.NewVertexStore(gridSize * gridSize)
	ids := make([][]graphmodel.VertexIndex, gridSize)
	for row := 0; row < gridSize; row++ {
		ids[row] = make([]graphmodel.VertexIndex, gridSize)
		for col := 0; col < gridSize; col++ {
			lat := float64(row) * 0.001
			lon := float64(col) * 0.001
			ids[row][col] = vs.AddVertex(geo.PointFromFloat(lat, lon), 0)
		}
	}

	es := graphmodel.NewEdgeStore(gridSize*gridSize, gridSize*gridSize*2)
	spec := graphmodel.DirectionSpec{
		Permission: graphmodel.PermitWalk | graphmodel.PermitBicycle | graphmodel.PermitCar,
		Flags:      graphmodel.EdgeLinkable,
	}
	const blockLengthMM = 111000 // ~0.001 degree of latitude/longitude at the equator

	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			if col+1 < gridSize {
				es.AddEdgePair(ids[row][col], ids[row][col+1], blockLengthMM, spec, spec)
			}
			if row+1 < gridSize {
				es.AddEdgePair(ids[row][col], ids[row+1][col], blockLengthMM, spec, spec)
			}
		}
	}

	return graphmodel.New(vs, es)
}
