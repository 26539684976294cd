package rtree

import "iter"

// Tree is an immutable R-tree: every mutating method returns a new Tree
// value that shares untouched structure with its predecessor (I5).
// The zero value is not a usable Tree; construct one with New or
// NewBulkLoaded.
type Tree struct {
	root node
	ctx  *Context
	size int
}

// New returns an empty tree configured by ctx.
func New(ctx *Context) Tree {
	return Tree{ctx: ctx}
}

// NewBulkLoaded builds a tree from entries in one Sort-Tile-Recursive
// pass instead of by repeated Add calls.
func NewBulkLoaded(ctx *Context, entries []Entry) Tree {
	return Tree{root: bulkLoad(ctx, entries), ctx: ctx, size: len(entries)}
}

// Add returns a new tree with e inserted. Panics with a
// *DimensionMismatchError if e's geometry does not have exactly
// Context.Dimensions() axes — a caller bug, never a recoverable
// condition (spec: mismatched dimensionality is a programming error).
func (t Tree) Add(e Entry) Tree {
	if got := e.Geometry.Dimensions(); got != t.ctx.dimensions {
		panic(&DimensionMismatchError{Expected: t.ctx.dimensions, Got: got})
	}
	return Tree{root: insertEntry(t.ctx, t.root, e), ctx: t.ctx, size: t.size + 1}
}

// AddAll returns a new tree with every entry in entries inserted, one at
// a time: each gets its own forced-reinsertion budget (spec §4.4), the
// same as calling Add in sequence.
func (t Tree) AddAll(entries []Entry) Tree {
	for _, e := range entries {
		t = t.Add(e)
	}
	return t
}

// Delete returns a new tree with e removed: at most one matching entry
// (by value equality and exact geometry equality) if all is false, or
// every matching entry if all is true. If none match, the returned Tree
// shares the original root unchanged.
func (t Tree) Delete(e Entry, all bool) Tree {
	newRoot, n := deleteEntry(t.ctx, t.root, e, all)
	return Tree{root: newRoot, ctx: t.ctx, size: t.size - n}
}

// DeleteAll returns a new tree with every entry in entries removed, one
// at a time: for each, at most one match if all is false, or every match
// if all is true — the delete-side counterpart of AddAll.
func (t Tree) DeleteAll(entries []Entry, all bool) Tree {
	for _, e := range entries {
		t = t.Delete(e, all)
	}
	return t
}

// Search returns a lazy sequence of every entry for which pred holds.
func (t Tree) Search(pred Predicate) iter.Seq[Entry] {
	return search(t.root, pred)
}

// SearchIntersects returns every entry whose geometry intersects r.
func (t Tree) SearchIntersects(r Rectangle) iter.Seq[Entry] {
	return search(t.root, Intersects(r))
}

// SearchWithin returns every entry within maxDist of r.
func (t Tree) SearchWithin(r Rectangle, maxDist float64) iter.Seq[Entry] {
	return search(t.root, Within(r, maxDist))
}

// Entries returns every entry in the tree, in traversal order.
func (t Tree) Entries() iter.Seq[Entry] {
	return search(t.root, all)
}

// Nearest returns up to k entries closest to r and within maxDist of it,
// ascending by distance.
func (t Tree) Nearest(r Rectangle, maxDist float64, k int) []Entry {
	return nearest(t.root, r, maxDist, k)
}

// Size returns the number of entries in the tree.
func (t Tree) Size() int { return t.size }

// IsEmpty reports whether the tree holds no entries.
func (t Tree) IsEmpty() bool { return t.size == 0 }

// MBR returns the bounding rectangle of every entry in the tree. The
// second return value is false for an empty tree.
func (t Tree) MBR() (Rectangle, bool) {
	if t.root == nil {
		return Rectangle{}, false
	}
	return t.root.bounds(), true
}

// Depth returns the number of levels in the tree, counting the leaf
// level: 0 for an empty tree, 1 for a tree whose root is a leaf.
func (t Tree) Depth() int {
	if t.root == nil {
		return 0
	}
	return t.root.height() + 1
}

// Visit walks the tree's internal structure pre-order, depth-first.
func (t Tree) Visit(v Visitor) {
	visit(t.root, v)
}

// Context returns the configuration this tree was built with.
func (t Tree) Context() *Context { return t.ctx }
