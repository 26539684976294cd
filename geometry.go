package rtree

import "math"

// Geometry is anything with a dimensionality and a minimum bounding
// rectangle. Point and Rectangle both implement it; Entry carries one.
type Geometry interface {
	// Dimensions returns k, the number of axes.
	Dimensions() int
	// MBR returns the minimum bounding rectangle of the geometry. For a
	// Rectangle this is itself; for a Point it is the degenerate
	// rectangle mins == maxes.
	MBR() Rectangle
}

// Point is a location in k-dimensional space.
type Point struct {
	coords []float64
}

// NewPoint builds a Point from its coordinates. Panics if fewer than two
// coordinates are given (k >= 2, per the tree's dimensionality floor).
func NewPoint(coords ...float64) Point {
	if len(coords) < 2 {
		panic("rtree: a point needs at least 2 coordinates")
	}
	cp := make([]float64, len(coords))
	copy(cp, coords)
	return Point{coords: cp}
}

// Dimensions returns k.
func (p Point) Dimensions() int { return len(p.coords) }

// Coord returns the i-th coordinate.
func (p Point) Coord(i int) float64 { return p.coords[i] }

// MBR returns the degenerate rectangle mins == maxes == p.
func (p Point) MBR() Rectangle {
	return Rectangle{mins: p.coords, maxes: p.coords}
}

// Rectangle is an axis-aligned k-dimensional box, given by two vectors
// mins and maxes with mins[i] <= maxes[i] for every axis i.
type Rectangle struct {
	mins  []float64
	maxes []float64
}

// NewRectangle builds a Rectangle from mins and maxes. Panics if the two
// vectors have mismatched or sub-2 length, or if any mins[i] > maxes[i] —
// constructing an invalid rectangle is always a caller bug, never a
// recoverable condition (spec: "mismatch is a programming error").
func NewRectangle(mins, maxes []float64) Rectangle {
	if len(mins) != len(maxes) {
		panic(&DimensionMismatchError{Expected: len(mins), Got: len(maxes)})
	}
	if len(mins) < 2 {
		panic("rtree: a rectangle needs at least 2 dimensions")
	}
	m1 := make([]float64, len(mins))
	m2 := make([]float64, len(maxes))
	for i := range mins {
		if mins[i] > maxes[i] {
			panic("rtree: rectangle mins must be <= maxes on every axis")
		}
		m1[i] = mins[i]
		m2[i] = maxes[i]
	}
	return Rectangle{mins: m1, maxes: m2}
}

// Dimensions returns k.
func (r Rectangle) Dimensions() int { return len(r.mins) }

// MBR returns r itself.
func (r Rectangle) MBR() Rectangle { return r }

// Mins returns the lower bound on every axis.
func (r Rectangle) Mins() []float64 { return append([]float64(nil), r.mins...) }

// Maxes returns the upper bound on every axis.
func (r Rectangle) Maxes() []float64 { return append([]float64(nil), r.maxes...) }

// Min returns the lower bound on axis i.
func (r Rectangle) Min(i int) float64 { return r.mins[i] }

// Max returns the upper bound on axis i.
func (r Rectangle) Max(i int) float64 { return r.maxes[i] }

func requireSameDims(a, b Rectangle) {
	if len(a.mins) != len(b.mins) {
		panic(&DimensionMismatchError{Expected: len(a.mins), Got: len(b.mins)})
	}
}

// Intersects reports whether a and b overlap (touching counts as
// intersecting). Panics if a and b have different dimensionality.
func (r Rectangle) Intersects(o Rectangle) bool {
	requireSameDims(r, o)
	for i := range r.mins {
		if r.mins[i] > o.maxes[i] || r.maxes[i] < o.mins[i] {
			return false
		}
	}
	return true
}

// Distance returns the squared-Euclidean-rooted distance from r to o: 0
// if they intersect, otherwise sqrt(sum of squared axial gaps).
func (r Rectangle) Distance(o Rectangle) float64 {
	requireSameDims(r, o)
	var sumSq float64
	for i := range r.mins {
		gap := 0.0
		if o.mins[i] > r.maxes[i] {
			gap = o.mins[i] - r.maxes[i]
		} else if r.mins[i] > o.maxes[i] {
			gap = r.mins[i] - o.maxes[i]
		}
		sumSq += gap * gap
	}
	return math.Sqrt(sumSq)
}

// Volume returns the product of the side lengths. Zero for a degenerate
// (point) rectangle. Only meaningful for relative comparison.
func (r Rectangle) Volume() float64 {
	vol := 1.0
	for i := range r.mins {
		vol *= r.maxes[i] - r.mins[i]
	}
	return vol
}

// Margin returns the sum of the side lengths (the generalization of
// rectangle perimeter to k dimensions), used by the R* axis-choice step.
func (r Rectangle) Margin() float64 {
	var sum float64
	for i := range r.mins {
		sum += r.maxes[i] - r.mins[i]
	}
	return sum
}

// Center returns the rectangle's center point, used by R* forced
// reinsertion to rank entries by distance from the node's center.
func (r Rectangle) Center() []float64 {
	c := make([]float64, len(r.mins))
	for i := range r.mins {
		c[i] = r.mins[i] + (r.maxes[i]-r.mins[i])/2
	}
	return c
}

// Add returns the minimum bounding rectangle containing both r and o:
// componentwise min of mins, max of maxes.
func (r Rectangle) Add(o Rectangle) Rectangle {
	requireSameDims(r, o)
	mins := make([]float64, len(r.mins))
	maxes := make([]float64, len(r.maxes))
	for i := range r.mins {
		mins[i] = math.Min(r.mins[i], o.mins[i])
		maxes[i] = math.Max(r.maxes[i], o.maxes[i])
	}
	return Rectangle{mins: mins, maxes: maxes}
}

// overlapVolume returns the volume of the intersection of r and o, or 0
// if they don't overlap.
func (r Rectangle) overlapVolume(o Rectangle) float64 {
	vol := 1.0
	for i := range r.mins {
		lo := math.Max(r.mins[i], o.mins[i])
		hi := math.Min(r.maxes[i], o.maxes[i])
		if hi <= lo {
			return 0
		}
		vol *= hi - lo
	}
	return vol
}

// unionOf returns the MBR of a non-empty slice of rectangles. Panics on
// an empty slice — the core never constructs a zero-child node, so this
// is always called with at least one rectangle (spec §7, "empty
// operand").
func unionOf(rects []Rectangle) Rectangle {
	if len(rects) == 0 {
		panic("rtree: cannot compute the union of zero rectangles")
	}
	u := rects[0]
	for _, r := range rects[1:] {
		u = u.Add(r)
	}
	return u
}
