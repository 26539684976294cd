package rtree

import "iter"

// Predicate decides whether a bounding rectangle — either an internal
// node's MBR or a candidate entry's own geometry — is worth descending
// into or reporting. Applying the same predicate at every level lets one
// function prune whole subtrees instead of only filtering leaves.
type Predicate func(bounds Rectangle) bool

// Intersects reports entries whose geometry intersects r, pruning any
// subtree whose MBR does not.
func Intersects(r Rectangle) Predicate {
	return func(b Rectangle) bool { return b.Intersects(r) }
}

// Within reports entries strictly within maxDist of r, measured as the
// minimum distance between bounding rectangles (zero when they intersect).
func Within(r Rectangle, maxDist float64) Predicate {
	return func(b Rectangle) bool { return b.Distance(r) < maxDist }
}

func all(Rectangle) bool { return true }

// search returns a lazy, pull-based sequence of every entry under root
// for which pred holds, walking with an explicit node/child-index frame
// stack rather than recursion so that iteration can suspend mid-traversal
// between yields.
//
// Grounded on the range-over-func iterator shape used by gaissmai/bart's
// table traversal and by barnowlsnest/go-datalib's cursor-style readers,
// adapted here to drive a depth-first R-tree descent.
func search(root node, pred Predicate) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		if root == nil {
			return
		}

		type frame struct {
			n   node
			idx int
		}
		stack := []frame{{n: root}}

		for len(stack) > 0 {
			i := len(stack) - 1
			f := stack[i]

			if leaf, ok := f.n.(*leafNode); ok {
				found := false
				for f.idx < len(leaf.entries) {
					e := leaf.entries[f.idx]
					f.idx++
					if pred(e.mbr()) {
						found = true
						stack[i] = f
						if !yield(e) {
							return
						}
						break
					}
				}
				if found {
					continue
				}
				stack = stack[:i]
				continue
			}

			nl := f.n.(*nonLeafNode)
			descended := false
			for f.idx < len(nl.children) {
				c := nl.children[f.idx]
				f.idx++
				if pred(c.bounds()) {
					stack[i] = f
					stack = append(stack, frame{n: c})
					descended = true
					break
				}
			}
			if descended {
				continue
			}
			stack = stack[:i]
		}
	}
}
