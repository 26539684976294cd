package rtree

// deleteResult carries the outcome of deleting from one subtree: the
// rebuilt replacement (nil if the subtree became empty or was dissolved
// as an underflowing orphan), the Entries freed by condensing an
// underflowing node, how many entries were actually removed, and whether
// an `all == false` caller's single match has already been found (so
// siblings still to be visited should be left untouched).
type deleteResult struct {
	node    node
	orphans []itemRef
	deleted int
	stop    bool
}

// deleteDescend removes entries matching target's value and geometry
// from the subtree rooted at n. isRoot suppresses the minChildren
// underflow rule: the root is exempt from the lower bound (I1).
//
// Grounded on the AIS tracker's condenseTree/findLeaf (storage/
// rStarTree.go) for the overall shape (prune matching leaf entries,
// collect underflowing nodes as orphans, propagate upward), adapted to
// return new values instead of mutating parent pointers.
func deleteDescend(ctx *Context, n node, target Entry, all, isRoot bool) deleteResult {
	if !n.bounds().Intersects(target.mbr()) {
		return deleteResult{node: n}
	}

	if leaf, ok := n.(*leafNode); ok {
		kept := make([]Entry, 0, len(leaf.entries))
		deleted := 0
		stop := false
		for _, e := range leaf.entries {
			if !stop && sameGeometry(e, target) && e.Value == target.Value {
				deleted++
				if !all {
					stop = true
				}
				continue
			}
			kept = append(kept, e)
		}
		if deleted == 0 {
			return deleteResult{node: n}
		}
		if len(kept) == 0 {
			return deleteResult{deleted: deleted, stop: stop}
		}
		if !isRoot && len(kept) < ctx.minChildren {
			orphans := make([]itemRef, len(kept))
			for i, e := range kept {
				orphans[i] = itemRef{entry: e, isEntry: true}
			}
			return deleteResult{orphans: orphans, deleted: deleted, stop: stop}
		}
		return deleteResult{node: newLeaf(kept), deleted: deleted, stop: stop}
	}

	nl := n.(*nonLeafNode)
	survivors := make([]node, 0, len(nl.children))
	var orphans []itemRef
	totalDeleted := 0
	stop := false
	for _, c := range nl.children {
		if stop {
			survivors = append(survivors, c)
			continue
		}
		res := deleteDescend(ctx, c, target, all, false)
		totalDeleted += res.deleted
		orphans = append(orphans, res.orphans...)
		if res.node != nil {
			survivors = append(survivors, res.node)
		}
		if res.stop {
			stop = true
		}
	}
	if totalDeleted == 0 {
		return deleteResult{node: n}
	}
	if len(survivors) == 0 {
		return deleteResult{orphans: orphans, deleted: totalDeleted, stop: stop}
	}
	if !isRoot && len(survivors) < ctx.minChildren {
		for _, c := range survivors {
			orphans = allEntriesAsOrphans(c, orphans)
		}
		return deleteResult{orphans: orphans, deleted: totalDeleted, stop: stop}
	}
	return deleteResult{node: newNonLeaf(survivors), orphans: orphans, deleted: totalDeleted, stop: stop}
}

// allEntriesAsOrphans flattens every entry reachable from n, regardless
// of its original depth, into leaf-level reinsertion candidates — the
// "condense tree" policy: orphans always re-enter at the leaf level
// (spec §4.6), never as intact subtrees.
func allEntriesAsOrphans(n node, dst []itemRef) []itemRef {
	for _, e := range allEntries(n, nil) {
		dst = append(dst, itemRef{entry: e, isEntry: true})
	}
	return dst
}

// deleteEntry removes target from the tree rooted at root. If all is
// true every matching entry is removed; otherwise at most one is. It
// returns the new root and the number of entries actually deleted; if
// none matched, root is returned unchanged.
func deleteEntry(ctx *Context, root node, target Entry, all bool) (node, int) {
	if root == nil {
		return nil, 0
	}
	res := deleteDescend(ctx, root, target, all, true)
	if res.deleted == 0 {
		return root, 0
	}
	newRoot := res.node
	for _, o := range res.orphans {
		if newRoot == nil {
			newRoot = newLeaf([]Entry{o.entry})
		} else {
			newRoot = insertEntry(ctx, newRoot, o.entry)
		}
	}
	return newRoot, res.deleted
}
