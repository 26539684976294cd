package rtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteEntryNoMatchReturnsUnchanged(t *testing.T) {
	ctx, err := NewBuilder().Build()
	require.NoError(t, err)

	root := insertEntry(ctx, nil, NewEntry(1, NewPoint(1, 1)))
	newRoot, n := deleteEntry(ctx, root, NewEntry(2, NewPoint(2, 2)), false)
	assert.Equal(t, 0, n)
	assert.Same(t, root, newRoot)
}

func TestDeleteEntryEmptiesTree(t *testing.T) {
	ctx, err := NewBuilder().Build()
	require.NoError(t, err)

	e := NewEntry(1, NewPoint(1, 1))
	root := insertEntry(ctx, nil, e)
	newRoot, n := deleteEntry(ctx, root, e, false)
	assert.Equal(t, 1, n)
	assert.Nil(t, newRoot)
}

func TestDeleteEntrySingleMatchWhenAllFalse(t *testing.T) {
	ctx, err := NewBuilder().Build()
	require.NoError(t, err)

	e1 := NewEntry("dup", NewPoint(1, 1))
	e2 := NewEntry("dup", NewPoint(1, 1))
	var root node
	root = insertEntry(ctx, root, e1)
	root = insertEntry(ctx, root, e2)

	newRoot, n := deleteEntry(ctx, root, e1, false)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, countEntries(newRoot))
}

func TestDeleteAllRemovesEveryMatch(t *testing.T) {
	ctx, err := NewBuilder().Build()
	require.NoError(t, err)

	e := NewEntry("dup", NewPoint(1, 1))
	var root node
	for i := 0; i < 3; i++ {
		root = insertEntry(ctx, root, e)
	}
	root = insertEntry(ctx, root, NewEntry("keep", NewPoint(9, 9)))

	newRoot, n := deleteEntry(ctx, root, e, true)
	assert.Equal(t, 3, n)
	assert.Equal(t, 1, countEntries(newRoot))
}

func TestDeleteEntryPreservesInvariantsUnderChurn(t *testing.T) {
	ctx, err := NewBuilder().MaxChildren(4).MinChildren(2).Build()
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	var root node
	var entries []Entry
	for i := 0; i < 300; i++ {
		e := NewEntry(i, NewPoint(rng.Float64()*100, rng.Float64()*100))
		entries = append(entries, e)
		root = insertEntry(ctx, root, e)
	}

	rng.Shuffle(len(entries), func(i, j int) { entries[i], entries[j] = entries[j], entries[i] })
	remaining := len(entries)
	for _, e := range entries[:150] {
		var n int
		root, n = deleteEntry(ctx, root, e, false)
		require.Equal(t, 1, n)
		remaining--
	}

	assert.Equal(t, remaining, countEntries(root))
	if root != nil {
		assertInvariants(t, ctx, root, true)
	}
}
