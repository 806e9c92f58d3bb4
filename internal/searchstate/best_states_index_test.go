package searchstate_test

import (
	"testing"

	"github.com/passbi/streetrouter/internal/geo"
	"github.com/passbi/streetrouter/internal/graphmodel"
	"github.com/passbi/streetrouter/internal/searchstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestStatesIndex_RejectsDominatedCandidate(t *testing.T) {
	idx := searchstate.NewBestStatesIndex(geo.VariableWeight)
	edge := graphmodel.EdgeIndex(4)

	cheap := &searchstate.State{BackEdge: edge, WeightValue: 5}
	require.True(t, idx.Insert(cheap))

	expensive := &searchstate.State{BackEdge: edge, WeightValue: 10}
	assert.False(t, idx.Insert(expensive))

	assert.Same(t, cheap, idx.GetStateAtEdge(edge))
}

func TestBestStatesIndex_EvictsDominatedExisting(t *testing.T) {
	idx := searchstate.NewBestStatesIndex(geo.VariableWeight)
	edge := graphmodel.EdgeIndex(4)

	expensive := &searchstate.State{BackEdge: edge, WeightValue: 10}
	require.True(t, idx.Insert(expensive))

	cheap := &searchstate.State{BackEdge: edge, WeightValue: 5}
	require.True(t, idx.Insert(cheap))

	assert.Same(t, cheap, idx.GetStateAtEdge(edge))
	assert.False(t, idx.Contains(expensive))
}

func TestBestStatesIndex_OriginStatesOnDifferentVerticesDoNotCompete(t *testing.T) {
	idx := searchstate.NewBestStatesIndex(geo.VariableWeight)

	originA := &searchstate.State{Vertex: 0, BackEdge: -1, WeightValue: 100}
	originB := &searchstate.State{Vertex: 1, BackEdge: -1, WeightValue: 1}

	assert.True(t, idx.Insert(originA))
	assert.True(t, idx.Insert(originB))
	assert.True(t, idx.Contains(originA))
	assert.True(t, idx.Contains(originB))
}

func TestBestStatesIndex_GetStateAtEdgeEmptyIsNil(t *testing.T) {
	idx := searchstate.NewBestStatesIndex(geo.VariableWeight)
	assert.Nil(t, idx.GetStateAtEdge(99))
}
