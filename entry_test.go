package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameGeometryExactEquality(t *testing.T) {
	a := NewEntry("a", NewPoint(1, 2))
	b := NewEntry("b", NewPoint(1, 2))
	c := NewEntry("c", NewPoint(1, 2.0000001))

	assert.True(t, sameGeometry(a, b))
	assert.False(t, sameGeometry(a, c), "geometry equality is exact, not approximate")
}

func TestSameGeometryDifferentDimensions(t *testing.T) {
	a := NewEntry("a", NewPoint(1, 2))
	b := NewEntry("b", NewPoint(1, 2, 3))
	assert.False(t, sameGeometry(a, b))
}
