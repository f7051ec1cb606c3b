package internal

import (
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEdgeIntersections(t *testing.T) {
	t.Run("proper crossing of lines stays off the edges", func(t *testing.T) {
		a := NewGeometryGraph(0, line(0, 0, 10, 10))
		b := NewGeometryGraph(1, line(0, 10, 10, 0))
		si := a.ComputeEdgeIntersections(b)

		assert.True(t, si.HasProperIntersection())
		assert.True(t, si.HasProperInteriorIntersection())
		point, ok := si.ProperIntersectionPoint()
		require.True(t, ok)
		assert.Equal(t, Coord{X: 5, Y: 5}, point)

		assert.Empty(t, a.Edges()[0].Intersections())
		assert.Empty(t, b.Edges()[0].Intersections())
		assert.False(t, a.Edges()[0].IsIsolated())
		assert.False(t, b.Edges()[0].IsIsolated())
	})

	t.Run("vertex on the other line's interior", func(t *testing.T) {
		a := NewGeometryGraph(0, line(0, 0, 10, 10))
		b := NewGeometryGraph(1, line(0, 10, 5, 5, 10, 0))
		si := a.ComputeEdgeIntersections(b)
		assert.False(t, si.HasProperIntersection())
		assert.Equal(t, []EdgeIntersection{
			{Coord: Coord{X: 5, Y: 5}, SegmentIndex: 0, Distance: 5},
		}, a.Edges()[0].Intersections())
		assert.Equal(t, []EdgeIntersection{
			{Coord: Coord{X: 5, Y: 5}, SegmentIndex: 1, Distance: 0},
		}, b.Edges()[0].Intersections())
	})

	t.Run("touching", func(t *testing.T) {
		a := NewGeometryGraph(0, square(0, 0, 20, 20))
		b := NewGeometryGraph(1, line(20, 10, 30, 10))
		si := a.ComputeEdgeIntersections(b)
		assert.False(t, si.HasProperIntersection())
		assert.Equal(t, []EdgeIntersection{
			{Coord: Coord{X: 20, Y: 10}, SegmentIndex: 1, Distance: 10},
		}, a.Edges()[0].Intersections())
		assert.Equal(t, []EdgeIntersection{
			{Coord: Coord{X: 20, Y: 10}, SegmentIndex: 0, Distance: 0},
		}, b.Edges()[0].Intersections())
	})

	t.Run("overlap", func(t *testing.T) {
		a := NewGeometryGraph(0, square(0, 0, 20, 20))
		b := NewGeometryGraph(1, line(5, 0, 15, 0))
		a.ComputeEdgeIntersections(b)
		assert.Equal(t, []EdgeIntersection{
			{Coord: Coord{X: 5, Y: 0}, SegmentIndex: 0, Distance: 5},
			{Coord: Coord{X: 15, Y: 0}, SegmentIndex: 0, Distance: 15},
		}, a.Edges()[0].Intersections())
		assert.Equal(t, []EdgeIntersection{
			{Coord: Coord{X: 5, Y: 0}, SegmentIndex: 0, Distance: 0},
			{Coord: Coord{X: 15, Y: 0}, SegmentIndex: 1, Distance: 0},
		}, b.Edges()[0].Intersections())
	})

	t.Run("far apart edges stay isolated", func(t *testing.T) {
		a := NewGeometryGraph(0, square(0, 0, 20, 20))
		b := NewGeometryGraph(1, square(5, 5, 10, 10))
		si := a.ComputeEdgeIntersections(b)
		assert.False(t, si.HasProperIntersection())
		assert.True(t, a.Edges()[0].IsIsolated())
		assert.True(t, b.Edges()[0].IsIsolated())
	})
}

func TestIsTrivialIntersection(t *testing.T) {
	si := newSegmentIntersector(true, nil, nil)
	ring := NewEdge(square(0, 0, 1, 1)[0], emptyAreaLabel())
	open := NewEdge(line(0, 0, 1, 0, 1, 1, 0, 1), emptyLineOrPointLabel())
	other := NewEdge(line(0, 0, 1, 0), emptyLineOrPointLabel())
	point := &LineIntersection{Point: Coord{X: 0, Y: 0}}

	assert.True(t, si.isTrivialIntersection(point, open, 0, open, 1))
	assert.True(t, si.isTrivialIntersection(point, open, 2, open, 1))
	assert.False(t, si.isTrivialIntersection(point, open, 0, open, 2))
	assert.True(t, si.isTrivialIntersection(point, ring, 0, ring, 3))
	assert.True(t, si.isTrivialIntersection(point, ring, 3, ring, 0))
	assert.False(t, si.isTrivialIntersection(point, ring, 0, ring, 2))
	assert.False(t, si.isTrivialIntersection(point, open, 0, other, 1))
}

func TestComputeIntersectionsWithinSet(t *testing.T) {
	t.Run("both orders", func(t *testing.T) {
		e0 := NewEdge(line(0, 0, 10, 10), emptyLineOrPointLabel())
		e1 := NewEdge(line(0, 10, 10, 0), emptyLineOrPointLabel())
		si := newSegmentIntersector(true, nil, nil)
		computeIntersectionsWithinSet([]*Edge{e0, e1}, false, si)
		assert.True(t, si.HasProperIntersection())
		assert.Len(t, e0.Intersections(), 1)
		assert.Len(t, e1.Intersections(), 1)
	})

	t.Run("checkSelf", func(t *testing.T) {
		zigzag := NewEdge(line(0, 0, 10, 10, 10, 0, 0, 10), emptyLineOrPointLabel())
		computeIntersectionsWithinSet([]*Edge{zigzag}, false, newSegmentIntersector(true, nil, nil))
		assert.Empty(t, zigzag.Intersections())
		computeIntersectionsWithinSet([]*Edge{zigzag}, true, newSegmentIntersector(true, nil, nil))
		assert.Len(t, zigzag.Intersections(), 2)
	})
}

func TestSegmentIndex(t *testing.T) {
	e0 := NewEdge(line(0, 0, 10, 0, 10, 10), emptyLineOrPointLabel())
	e1 := NewEdge(line(20, 20, 30, 30), emptyLineOrPointLabel())
	tree := newSegmentIndex([]*Edge{e0, e1})

	found := tree.SearchIntersect(&geom.Bounds{
		Min: geom.Point{X: 9, Y: 5},
		Max: geom.Point{X: 11, Y: 6},
	})
	require.Len(t, found, 1)
	ref, ok := found[0].(*segmentRef)
	require.True(t, ok)
	assert.Same(t, e0, ref.edge)
	assert.Equal(t, 1, ref.index)
	assert.Equal(t, 2, ref.Len())
	assert.Equal(t, &geom.Bounds{Min: geom.Point{X: 10, Y: 0}, Max: geom.Point{X: 10, Y: 10}}, ref.Bounds())

	assert.Len(t, tree.SearchIntersect(&geom.Bounds{
		Min: geom.Point{X: -5, Y: -5},
		Max: geom.Point{X: 40, Y: 40},
	}), 3)
}
