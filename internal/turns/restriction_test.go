package turns_test

import (
	"testing"

	"github.com/passbi/streetrouter/internal/graphmodel"
	"github.com/passbi/streetrouter/internal/turns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	edgeA graphmodel.EdgeIndex = 0
	edgeB graphmodel.EdgeIndex = 2
	edgeC graphmodel.EdgeIndex = 4
	edgeD graphmodel.EdgeIndex = 6
)

func TestTable_NoRestrictionAppliesIsAlwaysLegal(t *testing.T) {
	table := turns.NewTable(nil)
	progress, ok := table.Advance(nil, edgeA, edgeB)
	assert.True(t, ok)
	assert.Nil(t, progress)
}

func TestTable_OnlyViaForbidsDivergence(t *testing.T) {
	table := turns.NewTable([]turns.Restriction{
		{From: edgeA, Via: []graphmodel.EdgeIndex{edgeB}, To: edgeC, Polarity: turns.OnlyVia},
	})

	_, ok := table.Advance(nil, edgeA, edgeD)
	assert.False(t, ok, "diverging from a required sequence must be illegal")
}

func TestTable_OnlyViaAllowsCompletingTheSequence(t *testing.T) {
	table := turns.NewTable([]turns.Restriction{
		{From: edgeA, Via: []graphmodel.EdgeIndex{edgeB}, To: edgeC, Polarity: turns.OnlyVia},
	})

	progress, ok := table.Advance(nil, edgeA, edgeB)
	require.True(t, ok)
	require.Len(t, progress, 1)

	progress, ok = table.Advance(progress, edgeB, edgeC)
	assert.True(t, ok)
	assert.Empty(t, progress)
}

func TestTable_NoViaForbidsCompletingTheSequence(t *testing.T) {
	table := turns.NewTable([]turns.Restriction{
		{From: edgeA, To: edgeB, Polarity: turns.NoVia},
	})

	_, ok := table.Advance(nil, edgeA, edgeB)
	assert.False(t, ok)
}

func TestTable_NoViaAllowsDivergence(t *testing.T) {
	table := turns.NewTable([]turns.Restriction{
		{From: edgeA, Via: []graphmodel.EdgeIndex{edgeB}, To: edgeC, Polarity: turns.NoVia},
	})

	progress, ok := table.Advance(nil, edgeA, edgeD)
	assert.True(t, ok)
	assert.Empty(t, progress)
}

func TestProgress_EqualComparesKeysAndCounts(t *testing.T) {
	a := turns.Progress{0: 1, 1: 2}
	b := turns.Progress{1: 2, 0: 1}
	c := turns.Progress{0: 1}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
