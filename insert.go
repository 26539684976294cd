package rtree

import (
	"math"
	"sort"
)

// itemRef is anything insertable into the tree at some level: a leaf
// Entry (level 0) or a subtree node produced by R* forced reinsertion,
// which joins a node one level above its own height. Deletion's orphans
// are always leaf Entries.
type itemRef struct {
	entry   Entry
	sub     node
	isEntry bool
}

func (it itemRef) box() Rectangle {
	if it.isEntry {
		return it.entry.mbr()
	}
	return it.sub.bounds()
}

func (it itemRef) level() int {
	if it.isEntry {
		return 0
	}
	return it.sub.height() + 1
}

// reinsertGuard tracks, for a single top-level Add call, which tree
// levels (measured as height-from-leaf) have already used their one
// forced-reinsertion attempt. Threaded explicitly through the recursive
// insertion rather than held as package state, per spec Design Notes §9.
type reinsertGuard struct {
	used map[int]bool
}

func newReinsertGuard() *reinsertGuard { return &reinsertGuard{used: map[int]bool{}} }

func (g *reinsertGuard) tryUse(level int) bool {
	if g.used[level] {
		return false
	}
	g.used[level] = true
	return true
}

func appendItem(n node, it itemRef) node {
	switch t := n.(type) {
	case *leafNode:
		entries := append(append([]Entry(nil), t.entries...), it.entry)
		return newLeaf(entries)
	case *nonLeafNode:
		children := append(append([]node(nil), t.children...), it.sub)
		return newNonLeaf(children)
	default:
		panic("rtree: unknown node variant")
	}
}

func itemsOf(n node) (items []splitItem, isLeaf bool) {
	switch t := n.(type) {
	case *leafNode:
		items = make([]splitItem, len(t.entries))
		for i, e := range t.entries {
			items[i] = entrySplitItem(e)
		}
		return items, true
	case *nonLeafNode:
		items = make([]splitItem, len(t.children))
		for i, c := range t.children {
			items[i] = subSplitItem(c)
		}
		return items, false
	default:
		panic("rtree: unknown node variant")
	}
}

func buildFromItems(isLeaf bool, items []splitItem) node {
	if isLeaf {
		entries := make([]Entry, len(items))
		for i, it := range items {
			entries[i] = it.entry
		}
		return newLeaf(entries)
	}
	children := make([]node, len(items))
	for i, it := range items {
		children[i] = it.sub
	}
	return newNonLeaf(children)
}

func centerDistance(a, b []float64) float64 {
	var sumSq float64
	for i := range a {
		d := a[i] - b[i]
		sumSq += d * d
	}
	return math.Sqrt(sumSq)
}

// rStarRemoveFarthest implements the R* forced-reinsertion step: remove
// the round(0.3*maxChildren) items whose centers are farthest from n's
// own MBR center, returning the shrunken node and the removed items
// ordered so the closest-of-the-removed is reinserted first.
//
// Grounded on the AIS tracker's reInsert (storage/rStarTree.go): same
// p = round(0.3*M), same "sort by distance, descending, peel off the
// front, reinsert starting from the minimum distance" shape.
func rStarRemoveFarthest(ctx *Context, n node) (node, []itemRef) {
	items, isLeaf := itemsOf(n)
	center := n.bounds().Center()

	type scored struct {
		item splitItem
		dist float64
	}
	scoredItems := make([]scored, len(items))
	for i, it := range items {
		scoredItems[i] = scored{item: it, dist: centerDistance(it.box.Center(), center)}
	}
	sort.Slice(scoredItems, func(i, j int) bool { return scoredItems[i].dist > scoredItems[j].dist })

	p := int(math.Round(0.3 * float64(ctx.maxChildren)))
	if p < 1 {
		p = 1
	}
	if p >= len(scoredItems) {
		p = len(scoredItems) - 1
	}

	removedScored := scoredItems[:p]
	keptScored := scoredItems[p:]

	kept := make([]splitItem, len(keptScored))
	for i, s := range keptScored {
		kept[i] = s.item
	}

	// Reinsert starting with the minimum distance among the removed,
	// i.e. ascending order (removedScored is currently descending).
	orphans := make([]itemRef, len(removedScored))
	for i, s := range removedScored {
		orphans[len(removedScored)-1-i] = toItemRef(s.item)
	}

	return buildFromItems(isLeaf, kept), orphans
}

func toItemRef(it splitItem) itemRef {
	if it.isEntry {
		return itemRef{entry: it.entry, isEntry: true}
	}
	return itemRef{sub: it.sub, isEntry: false}
}

// insertDescend places it into the subtree rooted at n (which sits at
// curHeight above the leaves) so that it lands at the given target
// level. It returns the rebuilt replacement for n, a split sibling (nil
// unless n overflowed and had to split), and any orphans produced by a
// forced-reinsertion decision taken along the way.
func insertDescend(ctx *Context, n node, curHeight, level int, it itemRef, guard *reinsertGuard, rootHeight int) (node, node, []itemRef) {
	if curHeight == level {
		n2 := appendItem(n, it)
		return settleOverflow(ctx, n2, curHeight, guard, rootHeight, nil)
	}

	nl := n.(*nonLeafNode)
	childrenAreLeaves := curHeight-1 == 0
	idx := ctx.selector.choose(nl.children, it.box(), childrenAreLeaves)

	newChild, splitChild, orphans := insertDescend(ctx, nl.children[idx], curHeight-1, level, it, guard, rootHeight)

	children := append([]node(nil), nl.children...)
	children[idx] = newChild
	if splitChild != nil {
		children = append(children, splitChild)
	}
	n2 := newNonLeaf(children)
	return settleOverflow(ctx, n2, curHeight, guard, rootHeight, orphans)
}

// settleOverflow checks n2 for overflow and, if present, either performs
// forced reinsertion (R* mode, non-root, level not yet used this
// insertion) or splits via the configured Splitter.
func settleOverflow(ctx *Context, n2 node, curHeight int, guard *reinsertGuard, rootHeight int, orphans []itemRef) (node, node, []itemRef) {
	if n2.count() <= ctx.maxChildren {
		return n2, nil, orphans
	}
	if ctx.star && curHeight < rootHeight && guard.tryUse(curHeight) {
		kept, removed := rStarRemoveFarthest(ctx, n2)
		return kept, nil, append(orphans, removed...)
	}
	items, isLeaf := itemsOf(n2)
	g1, g2 := ctx.splitter.split(ctx, items)
	return buildFromItems(isLeaf, g1), buildFromItems(isLeaf, g2), orphans
}

// insertOne runs one top-level descent of it against root, possibly
// growing the tree by one level if the root itself split.
func insertOne(ctx *Context, root node, it itemRef, guard *reinsertGuard) (node, []itemRef) {
	rootHeight := root.height()
	newRoot, split, orphans := insertDescend(ctx, root, rootHeight, it.level(), it, guard, rootHeight)
	if split != nil {
		newRoot = newNonLeaf([]node{newRoot, split})
	}
	return newRoot, orphans
}

// insertEntry is the full insertion engine entry point: it.level() is
// always 0 for a fresh Entry, but orphans produced along the way may sit
// at any level and are drained from the same per-call guard until none
// remain.
func insertEntry(ctx *Context, root node, e Entry) node {
	if root == nil {
		return newLeaf([]Entry{e})
	}
	guard := newReinsertGuard()
	queue := []itemRef{{entry: e, isEntry: true}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		newRoot, orphans := insertOne(ctx, root, it, guard)
		root = newRoot
		queue = append(queue, orphans...)
	}
	return root
}
