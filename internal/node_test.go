package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordNode(t *testing.T) {
	t.Run("boundary toggles", func(t *testing.T) {
		node := NewCoordNode(Coord{X: 1, Y: 2})
		assert.Equal(t, NoPos, node.Label().OnPosition(0))
		node.SetLabelBoundary(0)
		assert.Equal(t, OnBoundary, node.Label().OnPosition(0))
		node.SetLabelBoundary(0)
		assert.Equal(t, Inside, node.Label().OnPosition(0))
		node.SetLabelBoundary(0)
		assert.Equal(t, OnBoundary, node.Label().OnPosition(0))
		assert.Equal(t, NoPos, node.Label().OnPosition(1))
	})

	t.Run("isolated", func(t *testing.T) {
		node := NewCoordNode(Coord{})
		node.SetLabelOnPosition(1, Inside)
		assert.True(t, node.IsIsolated())
		node.SetLabelAllPositions(0, Outside)
		assert.False(t, node.IsIsolated())
	})

	t.Run("contributes a point", func(t *testing.T) {
		var im IntersectionMatrix
		node := NewCoordNode(Coord{})
		node.SetLabelOnPosition(0, OnBoundary)
		node.UpdateIntersectionMatrix(&im)
		assert.Equal(t, "FFFFFFFFF", im.String())

		node.SetLabelOnPosition(1, Inside)
		node.UpdateIntersectionMatrix(&im)
		assert.Equal(t, "FFF0FFFFF", im.String())
	})
}

func TestNodeMap(t *testing.T) {
	nodes := NewNodeMap()
	a := nodes.Insert(Coord{X: 1, Y: 1})
	b := nodes.Insert(Coord{X: 2, Y: 1})
	assert.Equal(t, a, nodes.Insert(Coord{X: 1, Y: 1}))
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, nodes.Len())

	t.Run("iterates in insertion order", func(t *testing.T) {
		assert.Equal(t, Coord{X: 1, Y: 1}, nodes.At(0).Coord())
		assert.Equal(t, Coord{X: 2, Y: 1}, nodes.At(1).Coord())
	})

	t.Run("Find", func(t *testing.T) {
		node, ok := nodes.Find(Coord{X: 2, Y: 1})
		require.True(t, ok)
		assert.Equal(t, nodes.At(b), node)
		_, ok = nodes.Find(Coord{X: 3, Y: 3})
		assert.False(t, ok)
	})

	t.Run("negative zero is zero", func(t *testing.T) {
		zero := nodes.Insert(Coord{X: 0, Y: 0})
		assert.Equal(t, zero, nodes.Insert(Coord{X: math.Copysign(0, -1), Y: 0}))
	})

	t.Run("NaN is unsupported", func(t *testing.T) {
		err := func() (err error) {
			defer func() {
				err = HandleRelatePanicRecover(recover())
			}()
			nodes.Insert(Coord{X: math.NaN(), Y: 0})
			return nil
		}()
		var unsupported *UnsupportedGeometryError
		assert.ErrorAs(t, err, &unsupported)
	})
}
