package rtree

// Visitor observes a tree's internal structure without mutating it,
// useful for diagnostics and depth/fanout reporting. VisitNonLeaf
// returns false to skip descending into that subtree.
type Visitor interface {
	VisitNonLeaf(bounds Rectangle, height, numChildren int) bool
	VisitLeaf(bounds Rectangle, entries []Entry)
}

// visit walks root pre-order, depth-first: a non-leaf is always reported
// before its children.
func visit(root node, v Visitor) {
	if root == nil {
		return
	}
	if leaf, ok := root.(*leafNode); ok {
		v.VisitLeaf(leaf.box, leaf.entries)
		return
	}
	nl := root.(*nonLeafNode)
	if !v.VisitNonLeaf(nl.box, nl.ht, len(nl.children)) {
		return
	}
	for _, c := range nl.children {
		visit(c, v)
	}
}
