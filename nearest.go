package rtree

import "container/heap"

// nnItem is one entry in either the best-first search frontier or the
// bounded result set: a node awaiting expansion, or a candidate entry,
// always carrying the distance it was ranked by and the order it was
// discovered in (for deterministic tie-breaking).
type nnItem struct {
	dist    float64
	seq     int
	isEntry bool
	entry   Entry
	sub     node
}

// searchHeap is a min-heap over the best-first search frontier: smallest
// distance (ties broken by earliest discovery) expands first.
type searchHeap []nnItem

func (h searchHeap) Len() int { return len(h) }
func (h searchHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].seq < h[j].seq
}
func (h searchHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *searchHeap) Push(x any)   { *h = append(*h, x.(nnItem)) }
func (h *searchHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// resultHeap is a bounded max-heap over the best k results found so far:
// the worst kept candidate (largest distance, ties broken by latest
// discovery) sits at the top so it can be evicted in O(log k).
type resultHeap []nnItem

func (h resultHeap) Len() int { return len(h) }
func (h resultHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist > h[j].dist
	}
	return h[i].seq > h[j].seq
}
func (h resultHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *resultHeap) Push(x any)   { *h = append(*h, x.(nnItem)) }
func (h *resultHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// nearest runs a best-first branch-and-bound k-NN search bounded by
// maxDist: the search frontier always expands the closest unexplored node
// or entry, and a node's own bounding distance is a valid lower bound for
// everything it contains, so once the frontier's closest item is no
// better than the k-th best result found so far, or exceeds maxDist
// outright, the search can stop.
//
// Grounded on the same best-first priority-queue shape used throughout
// the retrieval pack's spatial-index query paths, adapted to operate
// over the tree's node/entry distinction instead of a single item type.
func nearest(root node, r Rectangle, maxDist float64, k int) []Entry {
	if root == nil || k <= 0 {
		return nil
	}

	seq := 0
	sh := &searchHeap{}
	heap.Push(sh, nnItem{dist: root.bounds().Distance(r), seq: seq, sub: root})
	seq++

	rh := &resultHeap{}

	for sh.Len() > 0 {
		top := heap.Pop(sh).(nnItem)

		if top.dist > maxDist {
			break
		}

		if rh.Len() == k {
			worst := (*rh)[0]
			if top.dist >= worst.dist {
				break
			}
		}

		if top.isEntry {
			if rh.Len() < k {
				heap.Push(rh, top)
			} else {
				heap.Pop(rh)
				heap.Push(rh, top)
			}
			continue
		}

		if leaf, ok := top.sub.(*leafNode); ok {
			for _, e := range leaf.entries {
				heap.Push(sh, nnItem{dist: e.mbr().Distance(r), seq: seq, isEntry: true, entry: e})
				seq++
			}
			continue
		}
		nl := top.sub.(*nonLeafNode)
		for _, c := range nl.children {
			heap.Push(sh, nnItem{dist: c.bounds().Distance(r), seq: seq, sub: c})
			seq++
		}
	}

	result := make([]Entry, rh.Len())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = heap.Pop(rh).(nnItem).entry
	}
	return result
}
