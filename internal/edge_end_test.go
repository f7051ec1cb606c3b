package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuadrantOf(t *testing.T) {
	cases := []struct {
		delta    Coord
		quadrant quadrant
	}{
		{Coord{X: 1, Y: 1}, northEast},
		{Coord{X: 1, Y: 0}, northEast},
		{Coord{X: 0, Y: 1}, northEast},
		{Coord{X: -1, Y: 1}, northWest},
		{Coord{X: -1, Y: 0}, northWest},
		{Coord{X: -1, Y: -1}, southWest},
		{Coord{X: 0, Y: -1}, southEast},
		{Coord{X: 1, Y: -1}, southEast},
	}
	for _, c := range cases {
		q, ok := quadrantOf(c.delta)
		assert.True(t, ok)
		assert.Equal(t, c.quadrant, q, "delta %v", c.delta)
	}

	_, ok := quadrantOf(Coord{})
	assert.False(t, ok)
}

func TestEdgeEndBundleStarOrdering(t *testing.T) {
	directions := []Coord{
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: 0},
		{X: -1, Y: -1},
		{X: 0, Y: -1},
		{X: 1, Y: -1},
	}
	var star EdgeEndBundleStar
	for _, i := range []int{5, 2, 7, 0, 3, 6, 1, 4} {
		star.Insert(NewEdgeEnd(nil, Coord{}, directions[i], emptyLineOrPointLabel()))
	}
	star.Insert(NewEdgeEnd(nil, Coord{}, Coord{X: 2, Y: 2}, emptyLineOrPointLabel()))

	bundles := star.Bundles()
	require.Len(t, bundles, len(directions))
	for i, bundle := range bundles {
		assert.Equal(t, directions[i], bundle.key().DirectedCoord())
	}
	assert.Len(t, bundles[1].EdgeEnds(), 2, "same direction shares a bundle")
}

func TestComputeEdgeEnds(t *testing.T) {
	label := NewLabel(0, NewAreaPosition(OnBoundary, Inside, Outside))
	edge := NewEdge([]Coord{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, label)
	edge.AddIntersection(Coord{X: 5, Y: 0}, 0)

	ends := computeEdgeEnds([]*Edge{edge})
	require.Len(t, ends, 4)

	expected := []struct {
		from, to Coord
		label    string
	}{
		{Coord{X: 0, Y: 0}, Coord{X: 5, Y: 0}, "A:ibe B:___"},
		{Coord{X: 5, Y: 0}, Coord{X: 0, Y: 0}, "A:ebi B:___"},
		{Coord{X: 5, Y: 0}, Coord{X: 10, Y: 0}, "A:ibe B:___"},
		{Coord{X: 10, Y: 10}, Coord{X: 10, Y: 0}, "A:ebi B:___"},
	}
	for i, e := range expected {
		assert.Equal(t, e.from, ends[i].Coord(), "end %d", i)
		assert.Equal(t, e.to, ends[i].DirectedCoord(), "end %d", i)
		assert.Equal(t, e.label, ends[i].Label().String(), "end %d", i)
		assert.Same(t, edge, ends[i].Edge(), "end %d", i)
	}
	assert.Equal(t, "A:ibe B:___", edge.Label().String(), "the edge's own label is untouched")
}

func TestEdgeEndBundleLabel(t *testing.T) {
	t.Run("boundary ends cancel in pairs", func(t *testing.T) {
		end := NewEdgeEnd(nil, Coord{}, Coord{X: 1, Y: 0}, NewLabel(0, NewLineOrPointPosition(OnBoundary)))
		bundle := newEdgeEndBundle(end)
		bundle.computeLabel()
		assert.Equal(t, OnBoundary, bundle.Label().OnPosition(0))

		bundle.insert(NewEdgeEnd(nil, Coord{}, Coord{X: 2, Y: 0}, NewLabel(0, NewLineOrPointPosition(OnBoundary))))
		bundle.computeLabel()
		assert.Equal(t, Inside, bundle.Label().OnPosition(0))
		assert.Equal(t, NoPos, bundle.Label().OnPosition(1))
	})

	t.Run("interior wins on every side", func(t *testing.T) {
		bundle := newEdgeEndBundle(NewEdgeEnd(nil, Coord{}, Coord{X: 1, Y: 0}, NewLabel(0, NewAreaPosition(OnBoundary, Outside, Inside))))
		bundle.insert(NewEdgeEnd(nil, Coord{}, Coord{X: 1, Y: 0}, NewLabel(0, NewAreaPosition(OnBoundary, Inside, Outside))))
		bundle.computeLabel()
		assert.Equal(t, "A:iii B:___", bundle.Label().String())
	})
}

func TestEdgeEndBundleStarLabeling(t *testing.T) {
	// A line from the corner of a square into its interior.
	a := NewGeometryGraph(0, square(0, 0, 20, 20))
	b := NewGeometryGraph(1, line(0, 0, 10, 10))
	ring := a.Edges()[0].Label()
	flipped := ring
	flipped.Flip()

	var star EdgeEndBundleStar
	star.Insert(NewEdgeEnd(nil, Coord{}, Coord{X: 0, Y: 20}, flipped))
	star.Insert(NewEdgeEnd(nil, Coord{}, Coord{X: 10, Y: 10}, b.Edges()[0].Label()))
	star.Insert(NewEdgeEnd(nil, Coord{}, Coord{X: 20, Y: 0}, ring))
	star.computeLabeling([2]*GeometryGraph{a, b})

	bundles := star.Bundles()
	require.Len(t, bundles, 3)
	assert.Equal(t, "A:ibe B:eee", bundles[0].Label().String())
	assert.Equal(t, "A:i B:i", bundles[1].Label().String())
	assert.Equal(t, "A:ebi B:eee", bundles[2].Label().String())

	var im IntersectionMatrix
	star.updateIntersectionMatrix(&im)
	assert.Equal(t, "1F2FF1FF2", im.String())
}
