package rtree

// node is the tagged-variant (Leaf | NonLeaf) at the heart of the tree.
// Both variants are immutable once built: every mutation constructs new
// node values and shares untouched siblings by reference (I5).
type node interface {
	bounds() Rectangle
	count() int
	height() int // distance to the leaves: 0 for a leaf, else 1+child height
	isLeaf() bool
}

// leafNode holds entries directly.
type leafNode struct {
	entries []Entry
	box     Rectangle
}

func newLeaf(entries []Entry) *leafNode {
	if len(entries) == 0 {
		panic("rtree: cannot build a leaf with zero entries")
	}
	rects := make([]Rectangle, len(entries))
	for i, e := range entries {
		rects[i] = e.mbr()
	}
	return &leafNode{entries: entries, box: unionOf(rects)}
}

func (n *leafNode) bounds() Rectangle { return n.box }
func (n *leafNode) count() int        { return len(n.entries) }
func (n *leafNode) height() int       { return 0 }
func (n *leafNode) isLeaf() bool      { return true }

// nonLeafNode holds child nodes.
type nonLeafNode struct {
	children []node
	box      Rectangle
	ht       int
}

func newNonLeaf(children []node) *nonLeafNode {
	if len(children) == 0 {
		panic("rtree: cannot build a non-leaf with zero children")
	}
	rects := make([]Rectangle, len(children))
	for i, c := range children {
		rects[i] = c.bounds()
	}
	return &nonLeafNode{children: children, box: unionOf(rects), ht: children[0].height() + 1}
}

func (n *nonLeafNode) bounds() Rectangle { return n.box }
func (n *nonLeafNode) count() int        { return len(n.children) }
func (n *nonLeafNode) height() int       { return n.ht }
func (n *nonLeafNode) isLeaf() bool      { return false }

// allEntries appends every entry reachable from n, depth-first, to dst.
func allEntries(n node, dst []Entry) []Entry {
	if n == nil {
		return dst
	}
	if leaf, ok := n.(*leafNode); ok {
		return append(dst, leaf.entries...)
	}
	nl := n.(*nonLeafNode)
	for _, c := range nl.children {
		dst = allEntries(c, dst)
	}
	return dst
}

// countEntries returns the number of entries reachable from n.
func countEntries(n node) int {
	if n == nil {
		return 0
	}
	if leaf, ok := n.(*leafNode); ok {
		return len(leaf.entries)
	}
	nl := n.(*nonLeafNode)
	total := 0
	for _, c := range nl.children {
		total += countEntries(c)
	}
	return total
}
