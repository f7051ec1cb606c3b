package internal

import (
	"math"

	"github.com/ctessum/geom"
	gogeom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/bigxy"
	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/orientation"
)

// Coordinates are plain values, so they compare exactly and work as map keys.
// Graph nodes are identified by exact coordinate equality; there is no
// snapping or tolerance merging anywhere in the engine.
type Coord = geom.Point

// Orientation of r relative to the directed line p->q. CounterClockwise means
// r is to the left. The extended precision path only kicks in when the float
// determinant is too close to zero to trust.
func orient2d(p, q, r Coord) orientation.Type {
	if o, ok := orientationFilter(p, q, r); ok {
		return o
	}
	return bigxy.OrientationIndex(toGoGeom(p), toGoGeom(q), toGoGeom(r))
}

// Relative error bound for the float determinant below.
const dpSafeEpsilon = 1e-15

// Fast orientation test in plain floats. ok is false when the determinant is
// too small relative to its terms for its sign to be certain.
func orientationFilter(p, q, r Coord) (o orientation.Type, ok bool) {
	detLeft := (p.X - r.X) * (q.Y - r.Y)
	detRight := (p.Y - r.Y) * (q.X - r.X)
	det := detLeft - detRight

	var detSum float64
	switch {
	case detLeft > 0:
		if detRight <= 0 {
			return signToOrientation(det), true
		}
		detSum = detLeft + detRight
	case detLeft < 0:
		if detRight >= 0 {
			return signToOrientation(det), true
		}
		detSum = -detLeft - detRight
	default:
		return signToOrientation(det), true
	}

	errBound := dpSafeEpsilon * detSum
	if det >= errBound || -det >= errBound {
		return signToOrientation(det), true
	}
	return orientation.Collinear, false
}

func signToOrientation(det float64) orientation.Type {
	switch {
	case det > 0:
		return orientation.CounterClockwise
	case det < 0:
		return orientation.Clockwise
	}
	return orientation.Collinear
}

func toGoGeom(c Coord) gogeom.Coord {
	return gogeom.Coord{c.X, c.Y}
}

// A directed segment between two coordinates.
type Line struct {
	Start, End Coord
}

func (l Line) Delta() Coord {
	return Coord{X: l.End.X - l.Start.X, Y: l.End.Y - l.Start.Y}
}

func (l Line) Bounds() *geom.Bounds {
	return &geom.Bounds{
		Min: Coord{X: math.Min(l.Start.X, l.End.X), Y: math.Min(l.Start.Y, l.End.Y)},
		Max: Coord{X: math.Max(l.Start.X, l.End.X), Y: math.Max(l.Start.Y, l.End.Y)},
	}
}

// Euclidean distance from c to the closest point of the segment.
func (l Line) DistanceTo(c Coord) float64 {
	return xy.DistanceFromPointToLine(toGoGeom(c), toGoGeom(l.Start), toGoGeom(l.End))
}

// True if c lies on the closed segment.
func (l Line) Contains(c Coord) bool {
	if !boundsContain(l.Bounds(), c) {
		return false
	}
	return orient2d(l.Start, l.End, c) == orientation.Collinear
}

func boundsContain(b *geom.Bounds, c Coord) bool {
	return c.X >= b.Min.X && c.X <= b.Max.X && c.Y >= b.Min.Y && c.Y <= b.Max.Y
}

// Drop consecutive duplicate coordinates.
func removeRepeatedPoints(coords []Coord) []Coord {
	result := make([]Coord, 0, len(coords))
	for _, c := range coords {
		if len(result) > 0 && result[len(result)-1] == c {
			continue
		}
		result = append(result, c)
	}
	return result
}

func isNaNCoord(c Coord) bool {
	return math.IsNaN(c.X) || math.IsNaN(c.Y)
}
