package internal

import (
	"fmt"

	"github.com/twpayne/go-geom/xy/orientation"
)

// Quadrants of the plane, numbered counterclockwise from the positive x axis.
type quadrant int8

const (
	northEast quadrant = iota
	northWest
	southWest
	southEast
)

// Quadrant a direction falls in, counting a zero component as positive. A zero
// vector has no quadrant.
func quadrantOf(delta Coord) (quadrant, bool) {
	switch {
	case delta.X == 0 && delta.Y == 0:
		return 0, false
	case delta.X >= 0 && delta.Y >= 0:
		return northEast, true
	case delta.X >= 0:
		return southEast, true
	case delta.Y >= 0:
		return northWest, true
	}
	return southWest, true
}

// The stub of an edge leaving a node: where it starts, the next point along it,
// and the edge's label oriented to match.
type EdgeEnd struct {
	edge           *Edge
	coord0, coord1 Coord
	delta          Coord
	quadrant       quadrant
	hasQuadrant    bool
	label          Label
}

// The edge may be nil for an end that stands alone.
func NewEdgeEnd(edge *Edge, coord0, coord1 Coord, label Label) *EdgeEnd {
	delta := Coord{X: coord1.X - coord0.X, Y: coord1.Y - coord0.Y}
	q, ok := quadrantOf(delta)
	return &EdgeEnd{
		edge:        edge,
		coord0:      coord0,
		coord1:      coord1,
		delta:       delta,
		quadrant:    q,
		hasQuadrant: ok,
		label:       label,
	}
}

func (e *EdgeEnd) Coord() Coord { return e.coord0 }

func (e *EdgeEnd) DirectedCoord() Coord { return e.coord1 }

func (e *EdgeEnd) Label() Label { return e.label }

// The edge this end was split from.
func (e *EdgeEnd) Edge() *Edge { return e.edge }

// Order edge ends counterclockwise by direction, starting from the positive x
// axis. Returns -1, 0 or 1. Ends pointing the same way compare equal, however
// long they are.
func (e *EdgeEnd) compareDirection(other *EdgeEnd) int {
	if e.delta == other.delta {
		return 0
	}
	if e.hasQuadrant && other.hasQuadrant && e.quadrant != other.quadrant {
		if e.quadrant > other.quadrant {
			return 1
		}
		return -1
	}
	// Same quadrant, so one is strictly counterclockwise of the other unless
	// they are collinear.
	switch orient2d(other.coord0, other.coord1, e.coord1) {
	case orientation.Clockwise:
		return -1
	case orientation.CounterClockwise:
		return 1
	}
	return 0
}

func (e *EdgeEnd) String() string {
	return fmt.Sprintf("EdgeEnd(%v -> %v, %s)", e.coord0, e.coord1, e.label)
}
