package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_Sub(t *testing.T) {
	a := Point{X: 5, Y: 7, Z: 9}
	b := Point{X: 4, Y: 5, Z: 6}

	assert.Equal(t, Point{X: 1, Y: 2, Z: 3}, a.Sub(b))
}

func TestPoint_DistanceXY(t *testing.T) {
	dist := Point{X: 1, Y: 2, Z: 3}.DistanceXY(4, 5)
	assert.InEpsilon(t, 4.24264, dist, .01)
}

func TestPoint_Length(t *testing.T) {
	assert.Equal(t, 5.0, Point{X: 3, Z: 4}.Length())
}

func TestPoint_MinMax(t *testing.T) {
	a := Point{X: 1, Y: -2, Z: 3}
	b := Point{X: -1, Y: 2, Z: 3}

	assert.Equal(t, Point{X: -1, Y: -2, Z: 3}, a.Min(b))
	assert.Equal(t, Point{X: 1, Y: 2, Z: 3}, a.Max(b))
	assert.True(t, a.Equal(Point{X: 1, Y: -2, Z: 3}))
}
