package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryItem(x, y float64) splitItem {
	return entrySplitItem(NewEntry(nil, NewPoint(x, y)))
}

func TestQuadraticSplitterRespectsMinChildren(t *testing.T) {
	ctx, err := NewBuilder().MaxChildren(4).MinChildren(2).Build()
	require.NoError(t, err)

	items := []splitItem{
		entryItem(0, 0), entryItem(1, 1),
		entryItem(100, 100), entryItem(101, 101),
		entryItem(102, 102),
	}
	g1, g2 := quadraticSplitter{}.split(ctx, items)

	assert.GreaterOrEqual(t, len(g1), ctx.MinChildren())
	assert.GreaterOrEqual(t, len(g2), ctx.MinChildren())
	assert.Equal(t, len(items), len(g1)+len(g2))
}

func TestQuadraticSplitterSeparatesClusters(t *testing.T) {
	ctx, err := NewBuilder().MaxChildren(4).MinChildren(2).Build()
	require.NoError(t, err)

	items := []splitItem{
		entryItem(0, 0), entryItem(0.1, 0.1), entryItem(0.2, 0),
		entryItem(100, 100), entryItem(100.1, 100.1), entryItem(100, 100.2),
	}
	g1, g2 := quadraticSplitter{}.split(ctx, items)

	near := func(g []splitItem) bool {
		return groupBox(g).Center()[0] < 50
	}
	assert.NotEqual(t, near(g1), near(g2), "clusters should land in different groups")
}

func TestRStarSplitterRespectsMinChildren(t *testing.T) {
	ctx, err := NewBuilder().Star().MaxChildren(4).MinChildren(2).Build()
	require.NoError(t, err)

	items := []splitItem{
		entryItem(0, 0), entryItem(1, 0),
		entryItem(2, 0), entryItem(3, 0),
		entryItem(4, 0),
	}
	g1, g2 := rstarSplitter{}.split(ctx, items)

	assert.GreaterOrEqual(t, len(g1), ctx.MinChildren())
	assert.GreaterOrEqual(t, len(g2), ctx.MinChildren())
	assert.Equal(t, len(items), len(g1)+len(g2))
}

func TestPickSeedsPicksMostWasteful(t *testing.T) {
	items := []splitItem{
		entryItem(0, 0),
		entryItem(1, 1),
		entryItem(1000, 1000),
	}
	i, j := pickSeeds(items)
	assert.ElementsMatch(t, []int{0, 2}, []int{i, j})
}
