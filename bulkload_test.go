package rtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkLoadEmpty(t *testing.T) {
	ctx, err := NewBuilder().Build()
	require.NoError(t, err)
	assert.Nil(t, bulkLoad(ctx, nil))
}

func TestBulkLoadSingle(t *testing.T) {
	ctx, err := NewBuilder().Build()
	require.NoError(t, err)
	root := bulkLoad(ctx, []Entry{NewEntry(1, NewPoint(1, 1))})
	assert.Equal(t, 1, countEntries(root))
}

func TestBulkLoadPreservesAllEntriesAndInvariants(t *testing.T) {
	ctx, err := NewBuilder().MaxChildren(8).MinChildren(3).LoadingFactor(0.7).Build()
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	entries := make([]Entry, 1000)
	for i := range entries {
		entries[i] = NewEntry(i, NewPoint(rng.Float64()*1000, rng.Float64()*1000))
	}

	root := bulkLoad(ctx, entries)
	require.NotNil(t, root)
	assert.Equal(t, len(entries), countEntries(root))
	assertInvariants(t, ctx, root, true)
}

func TestBulkLoadThenSearchFindsEntries(t *testing.T) {
	ctx, err := NewBuilder().MaxChildren(4).MinChildren(2).Build()
	require.NoError(t, err)

	entries := []Entry{
		NewEntry(1, NewPoint(0, 0)),
		NewEntry(2, NewPoint(50, 50)),
		NewEntry(3, NewPoint(100, 100)),
	}
	root := bulkLoad(ctx, entries)

	var got []Entry
	for e := range search(root, Intersects(NewRectangle([]float64{-1, -1}, []float64{1, 1}))) {
		got = append(got, e)
	}
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Value)
}
