package internal

import (
	"fmt"
	"sort"

	"github.com/osuushi/relate/internal/dbg"
)

// A point where an edge is interrupted, either by another edge or by itself.
// Intersections are ordered along the edge by segment index, then by distance
// along that segment.
type EdgeIntersection struct {
	Coord        Coord
	SegmentIndex int
	Distance     float64
}

func (ei EdgeIntersection) less(other EdgeIntersection) bool {
	if ei.SegmentIndex != other.SegmentIndex {
		return ei.SegmentIndex < other.SegmentIndex
	}
	return ei.Distance < other.Distance
}

func (ei EdgeIntersection) samePlace(other EdgeIntersection) bool {
	return ei.SegmentIndex == other.SegmentIndex && ei.Distance == other.Distance
}

// One linear component of a geometry: a line string, or a polygon ring.
type Edge struct {
	coords []Coord
	label  Label

	// An edge is isolated until some edge of the other geometry touches it.
	isolated bool

	// Sorted along the edge, no duplicates.
	intersections []EdgeIntersection
}

// Edges need at least one coordinate. Consecutive duplicates should already
// have been removed.
func NewEdge(coords []Coord, label Label) *Edge {
	if len(coords) == 0 {
		fatalf("can't create an empty edge")
	}
	return &Edge{
		coords:   coords,
		label:    label,
		isolated: true,
	}
}

func (e *Edge) Coords() []Coord { return e.coords }

func (e *Edge) Label() Label { return e.label }

func (e *Edge) SetLabelAllPositions(geomIndex int, pos CoordPos) {
	e.label.SetAllPositions(geomIndex, pos)
}

func (e *Edge) IsIsolated() bool { return e.isolated }

func (e *Edge) MarkAsUnisolated() { e.isolated = false }

func (e *Edge) Intersections() []EdgeIntersection { return e.intersections }

func (e *Edge) IsClosed() bool {
	return e.coords[0] == e.coords[len(e.coords)-1]
}

func (e *Edge) segment(i int) Line {
	return Line{Start: e.coords[i], End: e.coords[i+1]}
}

func (e *Edge) numSegments() int {
	return len(e.coords) - 1
}

// Record the intersection(s) found on segment segmentIndex.
func (e *Edge) AddIntersections(intersection *LineIntersection, segmentIndex int) {
	if intersection.IsCollinear() {
		e.AddIntersection(intersection.Collinear.Start, segmentIndex)
		e.AddIntersection(intersection.Collinear.End, segmentIndex)
		return
	}
	e.AddIntersection(intersection.Point, segmentIndex)
}

// Record a single intersection on segment segmentIndex. A point that lands
// exactly on the segment's end vertex is filed under the next segment, at
// distance zero, so each vertex has exactly one representation.
func (e *Edge) AddIntersection(c Coord, segmentIndex int) {
	distance := computeEdgeDistance(c, e.segment(segmentIndex))
	if next := segmentIndex + 1; next < len(e.coords) && c == e.coords[next] {
		segmentIndex = next
		distance = 0
	}
	e.insertIntersection(EdgeIntersection{Coord: c, SegmentIndex: segmentIndex, Distance: distance})
}

func (e *Edge) insertIntersection(ei EdgeIntersection) {
	i := sort.Search(len(e.intersections), func(i int) bool {
		return !e.intersections[i].less(ei)
	})
	if i < len(e.intersections) && e.intersections[i].samePlace(ei) {
		return
	}
	e.intersections = append(e.intersections, EdgeIntersection{})
	copy(e.intersections[i+1:], e.intersections[i:])
	e.intersections[i] = ei
}

// Make sure the first and last coordinates are in the intersection list, so
// that walking the list splits the edge into its pieces between nodes.
func (e *Edge) AddEndpointIntersections() {
	last := len(e.coords) - 1
	e.insertIntersection(EdgeIntersection{Coord: e.coords[0], SegmentIndex: 0})
	e.insertIntersection(EdgeIntersection{Coord: e.coords[last], SegmentIndex: last})
}

// Fold the edge's label into the matrix. Only labels which know about both
// geometries contribute.
func updateIntersectionMatrixFromLabel(label Label, im *IntersectionMatrix) {
	im.SetAtLeastIfInBoth(label.OnPosition(0), label.OnPosition(1), OneDimensional)
	if label.IsArea() {
		im.SetAtLeastIfInBoth(label.Position(0, Left), label.Position(1, Left), TwoDimensional)
		im.SetAtLeastIfInBoth(label.Position(0, Right), label.Position(1, Right), TwoDimensional)
	}
}

func (e *Edge) DbgName() string {
	return fmt.Sprintf("%s[%d pts %s]", dbg.Name(e), len(e.coords), e.label.DbgString())
}
