package rtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertEntrySingle(t *testing.T) {
	ctx, err := NewBuilder().Build()
	require.NoError(t, err)

	root := insertEntry(ctx, nil, NewEntry(1, NewPoint(1, 1)))
	require.NotNil(t, root)
	assert.Equal(t, 1, countEntries(root))
	assert.True(t, root.isLeaf())
}

func TestInsertEntryGrowsTree(t *testing.T) {
	ctx, err := NewBuilder().MaxChildren(4).MinChildren(2).Build()
	require.NoError(t, err)

	var root node
	for i := 0; i < 50; i++ {
		root = insertEntry(ctx, root, NewEntry(i, NewPoint(float64(i), float64(i))))
	}
	assert.Equal(t, 50, countEntries(root))
	assertInvariants(t, ctx, root, true)
}

func TestInsertEntryStarModeGrowsTree(t *testing.T) {
	ctx, err := NewBuilder().Star().MaxChildren(4).MinChildren(2).Build()
	require.NoError(t, err)

	var root node
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		root = insertEntry(ctx, root, NewEntry(i, NewPoint(rng.Float64()*1000, rng.Float64()*1000)))
	}
	assert.Equal(t, 200, countEntries(root))
	assertInvariants(t, ctx, root, true)
}

// assertInvariants walks the tree checking I1 (fanout bounds), I3 (leaf
// depth homogeneity) and that every node's MBR tightly bounds its
// children (I2).
func assertInvariants(t *testing.T, ctx *Context, root node, isRoot bool) {
	t.Helper()
	if root == nil {
		return
	}
	if !isRoot {
		assert.GreaterOrEqual(t, root.count(), ctx.MinChildren())
	}
	assert.LessOrEqual(t, root.count(), ctx.MaxChildren())

	leafDepths := map[int]bool{}
	var walk func(n node, depth int)
	walk = func(n node, depth int) {
		if leaf, ok := n.(*leafNode); ok {
			leafDepths[depth] = true
			rects := make([]Rectangle, len(leaf.entries))
			for i, e := range leaf.entries {
				rects[i] = e.mbr()
			}
			assert.Equal(t, unionOf(rects), leaf.box)
			return
		}
		nl := n.(*nonLeafNode)
		rects := make([]Rectangle, len(nl.children))
		for i, c := range nl.children {
			rects[i] = c.bounds()
		}
		assert.Equal(t, unionOf(rects), nl.box)
		for _, c := range nl.children {
			assert.GreaterOrEqual(t, c.count(), ctx.MinChildren())
			assert.LessOrEqual(t, c.count(), ctx.MaxChildren())
			walk(c, depth+1)
		}
	}
	walk(root, 0)
	assert.LessOrEqual(t, len(leafDepths), 1, "every leaf must sit at the same depth (I3)")
}
