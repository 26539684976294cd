package rtree

import "math"

// Selector chooses which child of a non-leaf node an incoming entry's
// MBR should descend into during insertion.
type Selector interface {
	choose(children []node, box Rectangle, childrenAreLeaves bool) int
}

// guttmanSelector implements the classic minimal-volume-increase rule:
// descend into the child whose MBR needs the least enlargement to cover
// the new geometry, breaking ties by smaller current volume and then by
// insertion order.
//
// Grounded on maja42/rtree's chooseSubtree (non-leaf branch) and on
// gortree's chooseLeaf / rtreego's chooseLeaf, all three of which
// implement the same rule.
type guttmanSelector struct{}

func (guttmanSelector) choose(children []node, box Rectangle, _ bool) int {
	best := 0
	bestEnlargement := math.Inf(1)
	bestVolume := math.Inf(1)
	for i, c := range children {
		cbox := c.bounds()
		enlargement := cbox.Add(box).Volume() - cbox.Volume()
		if enlargement < bestEnlargement {
			bestEnlargement = enlargement
			bestVolume = cbox.Volume()
			best = i
		} else if enlargement == bestEnlargement && cbox.Volume() < bestVolume {
			bestVolume = cbox.Volume()
			best = i
		}
	}
	return best
}

// rstarSelector implements the R* selection rule: at the leaf level,
// minimize overlap enlargement with siblings; higher up, fall back to
// the minimal-volume-increase rule. The leaf-level overlap criterion is
// grounded on the AIS tracker's chooseSubtree "pointsToLeaves" branch
// (storage/rStarTree.go), generalized from 2 axes to k.
type rstarSelector struct{}

func (s rstarSelector) choose(children []node, box Rectangle, childrenAreLeaves bool) int {
	if !childrenAreLeaves {
		return guttmanSelector{}.choose(children, box, false)
	}

	boxes := make([]Rectangle, len(children))
	for i, c := range children {
		boxes[i] = c.bounds()
	}

	best := 0
	bestOverlapDelta := math.Inf(1)
	bestVolumeDelta := math.Inf(1)
	bestVolume := math.Inf(1)
	for i := range children {
		enlarged := boxes[i].Add(box)

		before, after := 0.0, 0.0
		for j := range children {
			if j == i {
				continue
			}
			before += boxes[i].overlapVolume(boxes[j])
			after += enlarged.overlapVolume(boxes[j])
		}
		overlapDelta := after - before
		volumeDelta := enlarged.Volume() - boxes[i].Volume()

		switch {
		case overlapDelta < bestOverlapDelta:
			bestOverlapDelta, bestVolumeDelta, bestVolume, best = overlapDelta, volumeDelta, boxes[i].Volume(), i
		case overlapDelta == bestOverlapDelta:
			if volumeDelta < bestVolumeDelta {
				bestVolumeDelta, bestVolume, best = volumeDelta, boxes[i].Volume(), i
			} else if volumeDelta == bestVolumeDelta && boxes[i].Volume() < bestVolume {
				bestVolume, best = boxes[i].Volume(), i
			}
		}
	}
	return best
}
