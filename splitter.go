package rtree

import (
	"math"
	"sort"
)

// splitItem is one element of an overflowed group: either a leaf Entry
// or a child node, whichever the overflowing node held.
type splitItem struct {
	entry   Entry
	sub     node
	isEntry bool
	box     Rectangle
}

func entrySplitItem(e Entry) splitItem {
	return splitItem{entry: e, isEntry: true, box: e.mbr()}
}

func subSplitItem(n node) splitItem {
	return splitItem{sub: n, isEntry: false, box: n.bounds()}
}

// Splitter partitions an overflowed group of >= maxChildren+1 items into
// two groups, each respecting minChildren.
type Splitter interface {
	split(ctx *Context, items []splitItem) (group1, group2 []splitItem)
}

func boxesOf(items []splitItem) []Rectangle {
	rects := make([]Rectangle, len(items))
	for i, it := range items {
		rects[i] = it.box
	}
	return rects
}

// quadraticSplitter implements Guttman's quadratic-cost split: pick the
// pair wasting the most space as seeds, then repeatedly assign the
// remaining item with the greatest preference to the group needing less
// enlargement, flushing the rest once one group can no longer avoid
// dropping below minChildren.
//
// Grounded on rtreego's node.split/pickSeeds/pickNext/assignGroup and on
// gortree's splitNode/pickSeeds/pickNext/chooseGroup — both implement the
// same textbook algorithm.
type quadraticSplitter struct{}

func (quadraticSplitter) split(ctx *Context, items []splitItem) ([]splitItem, []splitItem) {
	i, j := pickSeeds(items)
	g1 := []splitItem{items[i]}
	g2 := []splitItem{items[j]}

	remaining := make([]splitItem, 0, len(items)-2)
	for idx, it := range items {
		if idx != i && idx != j {
			remaining = append(remaining, it)
		}
	}

	for len(remaining) > 0 {
		if len(g1)+len(remaining) <= ctx.minChildren {
			g1 = append(g1, remaining...)
			break
		}
		if len(g2)+len(remaining) <= ctx.minChildren {
			g2 = append(g2, remaining...)
			break
		}

		next := pickNext(g1, g2, remaining)
		it := remaining[next]
		remaining = append(remaining[:next], remaining[next+1:]...)

		if preferGroup1(g1, g2, it) {
			g1 = append(g1, it)
		} else {
			g2 = append(g2, it)
		}
	}
	return g1, g2
}

// pickSeeds returns the indices of the pair whose combined MBR wastes
// the most space: max(volume(union) - volume(a) - volume(b)).
func pickSeeds(items []splitItem) (int, int) {
	bestI, bestJ := 0, 1
	bestWaste := -1.0
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			union := items[i].box.Add(items[j].box)
			waste := union.Volume() - items[i].box.Volume() - items[j].box.Volume()
			if waste > bestWaste {
				bestWaste = waste
				bestI, bestJ = i, j
			}
		}
	}
	return bestI, bestJ
}

func groupBox(g []splitItem) Rectangle {
	return unionOf(boxesOf(g))
}

// pickNext returns the index (into remaining) of the item whose
// preference for one group over the other is strongest.
func pickNext(g1, g2 []splitItem, remaining []splitItem) int {
	b1, b2 := groupBox(g1), groupBox(g2)
	best := 0
	bestDiff := -1.0
	for i, it := range remaining {
		d1 := b1.Add(it.box).Volume() - b1.Volume()
		d2 := b2.Add(it.box).Volume() - b2.Volume()
		diff := math.Abs(d1 - d2)
		if diff > bestDiff {
			bestDiff = diff
			best = i
		}
	}
	return best
}

// preferGroup1 decides which group an item should join: the one needing
// less enlargement, tie-broken by smaller current volume, then by fewer
// members.
func preferGroup1(g1, g2 []splitItem, it splitItem) bool {
	b1, b2 := groupBox(g1), groupBox(g2)
	d1 := b1.Add(it.box).Volume() - b1.Volume()
	d2 := b2.Add(it.box).Volume() - b2.Volume()
	if d1 != d2 {
		return d1 < d2
	}
	if b1.Volume() != b2.Volume() {
		return b1.Volume() < b2.Volume()
	}
	return len(g1) <= len(g2)
}

// rstarSplitter implements the R* split: choose the axis (and sort
// order within it) minimizing the summed margin across all valid
// distributions, then choose the distribution along that axis
// minimizing overlap volume (tie: smaller combined volume).
//
// Grounded on maja42/rtree's chooseSplitAxis/chooseSplitIndex/
// allDistMargin and the AIS tracker's chooseSplitAxis, generalized from
// their fixed 2 axes to the tree's full k dimensions, per spec.
type rstarSplitter struct{}

func (rstarSplitter) split(ctx *Context, items []splitItem) ([]splitItem, []splitItem) {
	best := axisDistribution{}
	best.marginSum = math.Inf(1)

	for axis := 0; axis < ctx.dimensions; axis++ {
		byMin := append([]splitItem(nil), items...)
		sort.Slice(byMin, func(i, j int) bool { return byMin[i].box.mins[axis] < byMin[j].box.mins[axis] })
		marginMin := sumMargins(byMin, ctx.minChildren)

		byMax := append([]splitItem(nil), items...)
		sort.Slice(byMax, func(i, j int) bool { return byMax[i].box.maxes[axis] < byMax[j].box.maxes[axis] })
		marginMax := sumMargins(byMax, ctx.minChildren)

		total := marginMin + marginMax
		if total < best.marginSum {
			ordered := byMin
			if marginMax < marginMin {
				ordered = byMax
			}
			best = axisDistribution{marginSum: total, ordered: ordered}
		}
	}

	return chooseSplitIndex(best.ordered, ctx.minChildren)
}

type axisDistribution struct {
	marginSum float64
	ordered   []splitItem
}

// sumMargins sums, over every valid split position (minChildren ..
// count-minChildren), the combined margin of the two resulting MBRs.
func sumMargins(ordered []splitItem, minChildren int) float64 {
	count := len(ordered)
	var sum float64
	for k := minChildren; k <= count-minChildren; k++ {
		b1 := groupBox(ordered[:k])
		b2 := groupBox(ordered[k:])
		sum += b1.Margin() + b2.Margin()
	}
	return sum
}

// chooseSplitIndex picks, along the already-sorted item order, the split
// position minimizing overlap volume between the two halves, tie-broken
// by smaller combined volume.
func chooseSplitIndex(ordered []splitItem, minChildren int) ([]splitItem, []splitItem) {
	count := len(ordered)
	bestK := minChildren
	bestOverlap := math.Inf(1)
	bestVolume := math.Inf(1)
	for k := minChildren; k <= count-minChildren; k++ {
		b1 := groupBox(ordered[:k])
		b2 := groupBox(ordered[k:])
		overlap := b1.overlapVolume(b2)
		volume := b1.Volume() + b2.Volume()
		if overlap < bestOverlap || (overlap == bestOverlap && volume < bestVolume) {
			bestK, bestOverlap, bestVolume = k, overlap, volume
		}
	}
	g1 := append([]splitItem(nil), ordered[:bestK]...)
	g2 := append([]splitItem(nil), ordered[bestK:]...)
	return g1, g2
}
