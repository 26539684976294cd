package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func leafWithBox(mins, maxes []float64) node {
	return newLeaf([]Entry{NewEntry(nil, NewRectangle(mins, maxes))})
}

func TestGuttmanSelectorPrefersLeastEnlargement(t *testing.T) {
	children := []node{
		leafWithBox([]float64{0, 0}, []float64{1, 1}),
		leafWithBox([]float64{10, 10}, []float64{11, 11}),
	}
	box := NewRectangle([]float64{0.5, 0.5}, []float64{1.5, 1.5})

	got := guttmanSelector{}.choose(children, box, true)
	assert.Equal(t, 0, got)
}

func TestGuttmanSelectorZeroEnlargementWins(t *testing.T) {
	children := []node{
		leafWithBox([]float64{0, 0}, []float64{10, 10}),
		leafWithBox([]float64{20, 20}, []float64{21, 21}),
	}
	// Fully inside child 0 already: zero enlargement beats any positive one.
	box := NewRectangle([]float64{5, 5}, []float64{5, 5})

	got := guttmanSelector{}.choose(children, box, true)
	assert.Equal(t, 0, got)
}

func TestRStarSelectorFallsBackAboveLeafLevel(t *testing.T) {
	children := []node{
		newNonLeaf([]node{leafWithBox([]float64{0, 0}, []float64{1, 1})}),
		newNonLeaf([]node{leafWithBox([]float64{10, 10}, []float64{11, 11})}),
	}
	box := NewRectangle([]float64{0.5, 0.5}, []float64{1.5, 1.5})

	got := rstarSelector{}.choose(children, box, false)
	assert.Equal(t, 0, got)
}

func TestRStarSelectorMinimizesOverlapEnlargement(t *testing.T) {
	children := []node{
		leafWithBox([]float64{0, 0}, []float64{10, 10}),
		leafWithBox([]float64{9, 0}, []float64{20, 10}),
	}
	// The box already lies inside child 0, so choosing child 0 adds no
	// overlap with child 1; growing child 1 to cover it would raise their
	// overlap from 10 to 20.
	box := NewRectangle([]float64{8, 0}, []float64{9, 1}) // touches both, closer to the seam

	got := rstarSelector{}.choose(children, box, true)
	assert.Equal(t, 0, got)
}
