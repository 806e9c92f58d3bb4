package graphsource

import (
	"testing"

	"github.com/passbi/streetrouter/internal/graphmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEdge_ForwardAndReverse(t *testing.T) {
	edgeIndex := map[int64]graphmodel.EdgeIndex{7: 4}

	fwd, err := resolveEdge(edgeIndex, 7, false)
	require.NoError(t, err)
	assert.Equal(t, graphmodel.EdgeIndex(4), fwd)

	back, err := resolveEdge(edgeIndex, 7, true)
	require.NoError(t, err)
	assert.Equal(t, graphmodel.EdgeIndex(5), back)
}

func TestResolveEdge_UnknownID(t *testing.T) {
	_, err := resolveEdge(map[int64]graphmodel.EdgeIndex{}, 99, false)
	assert.Error(t, err)
}
