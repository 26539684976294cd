package rtree

import "math"

// axisIndexSort adapts a slice of indices into boxes, ordered by each
// box's center coordinate on one axis, to sort.Interface so quickselect
// can partition it without materializing a sorted copy.
type axisIndexSort struct {
	idx   []int
	boxes []Rectangle
	axis  int
}

func (s *axisIndexSort) Len() int { return len(s.idx) }
func (s *axisIndexSort) Less(i, j int) bool {
	return s.boxes[s.idx[i]].Center()[s.axis] < s.boxes[s.idx[j]].Center()[s.axis]
}
func (s *axisIndexSort) Swap(i, j int) { s.idx[i], s.idx[j] = s.idx[j], s.idx[i] }

// partialSortByAxis orders idx in place into contiguous runs of size
// chunk (ascending across runs, unordered within) by calling quickselect
// at each run boundary on the still-unordered tail only, so earlier
// boundaries are never disturbed — the Sort-Tile-Recursive loader only
// ever needs tile boundaries, never a total order.
func partialSortByAxis(idx []int, boxes []Rectangle, axis, chunk int) {
	if chunk <= 0 {
		return
	}
	for start := 0; start+chunk < len(idx); start += chunk {
		quickselect(&axisIndexSort{idx: idx[start:], boxes: boxes, axis: axis}, chunk)
	}
}

// strGroups tiles n items (given only by their bounding boxes) into
// groups of at most capacity, using the Sort-Tile-Recursive recipe:
// slice into ceil(sqrt(numGroups)) vertical slabs by axis-0 center, then
// slice each slab into capacity-sized groups by axis-1 center. Per the
// locked bulk-load dimensionality decision, only axes 0 and 1 ever
// participate in tiling regardless of how many dimensions the tree has.
//
// Grounded on maja42/rtree's quickselect.go (reused verbatim below as
// the partitioning primitive) repurposed from its original OMT bulk
// loader into the STR recipe this tree uses instead.
func strGroups(boxes []Rectangle, capacity int) [][]int {
	n := len(boxes)
	if n == 0 {
		return nil
	}
	numGroups := (n + capacity - 1) / capacity
	sliceCount := int(math.Ceil(math.Sqrt(float64(numGroups))))
	if sliceCount < 1 {
		sliceCount = 1
	}
	sliceSize := sliceCount * capacity

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	partialSortByAxis(idx, boxes, 0, sliceSize)

	var groups [][]int
	for start := 0; start < n; start += sliceSize {
		end := start + sliceSize
		if end > n {
			end = n
		}
		slab := idx[start:end]
		partialSortByAxis(slab, boxes, 1, capacity)
		for gstart := 0; gstart < len(slab); gstart += capacity {
			gend := gstart + capacity
			if gend > len(slab) {
				gend = len(slab)
			}
			groups = append(groups, append([]int(nil), slab[gstart:gend]...))
		}
	}
	return groups
}

// fixGroupSizes repairs a trailing undersized group left by tiling that
// doesn't divide evenly, by merging it into its predecessor (or, if that
// would overflow capacity, pulling just enough items across to bring
// both to legal size). A single remaining group is the eventual root and
// is exempt from the minChildren floor (I1).
func fixGroupSizes(groups [][]int, minChildren, maxChildren int) [][]int {
	for len(groups) > 1 {
		last := len(groups) - 1
		if len(groups[last]) >= minChildren {
			break
		}
		prev := last - 1
		merged := append(groups[prev], groups[last]...)
		if len(merged) <= maxChildren {
			groups[prev] = merged
			groups = groups[:last]
			continue
		}
		need := minChildren - len(groups[last])
		split := len(groups[prev]) - need
		groups[last] = append(append([]int(nil), groups[prev][split:]...), groups[last]...)
		groups[prev] = groups[prev][:split]
	}
	return groups
}

// bulkLoad builds a tree from entries in a single bottom-up pass rather
// than by repeated Add calls, using Sort-Tile-Recursive at every level:
// entries are tiled into leaves at the configured loading factor, then
// the resulting leaves are tiled again (at full maxChildren capacity)
// into the next level up, and so on until a single root remains.
func bulkLoad(ctx *Context, entries []Entry) node {
	if len(entries) == 0 {
		return nil
	}

	leafCapacity := int(math.Round(float64(ctx.maxChildren) * ctx.loadingFactor))
	if leafCapacity < ctx.minChildren {
		leafCapacity = ctx.minChildren
	}
	if leafCapacity > ctx.maxChildren {
		leafCapacity = ctx.maxChildren
	}

	boxes := make([]Rectangle, len(entries))
	for i, e := range entries {
		boxes[i] = e.mbr()
	}
	groups := fixGroupSizes(strGroups(boxes, leafCapacity), ctx.minChildren, ctx.maxChildren)

	level := make([]node, len(groups))
	for i, g := range groups {
		es := make([]Entry, len(g))
		for j, idx := range g {
			es[j] = entries[idx]
		}
		level[i] = newLeaf(es)
	}

	for len(level) > 1 {
		boxes := make([]Rectangle, len(level))
		for i, n := range level {
			boxes[i] = n.bounds()
		}
		groups := fixGroupSizes(strGroups(boxes, ctx.maxChildren), ctx.minChildren, ctx.maxChildren)

		next := make([]node, len(groups))
		for i, g := range groups {
			children := make([]node, len(g))
			for j, idx := range g {
				children[j] = level[idx]
			}
			next[i] = newNonLeaf(children)
		}
		level = next
	}
	return level[0]
}
