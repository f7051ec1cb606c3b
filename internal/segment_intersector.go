package internal

import (
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// Collects the intersections between pairs of segments into their edges, and
// keeps track of whether any of them were proper crossings.
type SegmentIntersector struct {
	// Self-noding mode. Proper crossings are only recorded on the edges when
	// both edges belong to the same geometry; crossings between the two
	// operands are accounted for through hasProper instead.
	sameGeometry bool

	hasProper         bool
	hasProperInterior bool
	properPoint       Coord

	boundaryNodes [2][]Coord
}

func newSegmentIntersector(sameGeometry bool, boundaryA, boundaryB []Coord) *SegmentIntersector {
	return &SegmentIntersector{
		sameGeometry:  sameGeometry,
		boundaryNodes: [2][]Coord{boundaryA, boundaryB},
	}
}

// True if some pair of segments crossed at a point interior to both.
func (si *SegmentIntersector) HasProperIntersection() bool { return si.hasProper }

// Like HasProperIntersection, but only counting crossings away from both
// geometries' boundary nodes.
func (si *SegmentIntersector) HasProperInteriorIntersection() bool { return si.hasProperInterior }

// The last proper crossing found, if any.
func (si *SegmentIntersector) ProperIntersectionPoint() (Coord, bool) {
	return si.properPoint, si.hasProper
}

func (si *SegmentIntersector) addIntersections(e0 *Edge, segment0 int, e1 *Edge, segment1 int) {
	if e0 == e1 && segment0 == segment1 {
		return
	}
	intersection := intersectLines(e0.segment(segment0), e1.segment(segment1))
	if intersection == nil {
		return
	}

	if !si.sameGeometry {
		e0.MarkAsUnisolated()
		e1.MarkAsUnisolated()
	}
	if si.isTrivialIntersection(intersection, e0, segment0, e1, segment1) {
		return
	}

	if si.sameGeometry || !intersection.IsProper {
		e0.AddIntersections(intersection, segment0)
		e1.AddIntersections(intersection, segment1)
	}
	if intersection.IsProper {
		si.hasProper = true
		si.properPoint = intersection.Point
		if !si.isBoundaryPoint(intersection.Point) {
			si.hasProperInterior = true
		}
	}
}

// Neighbouring segments of one edge always share a vertex, and so do the first
// and last segments of a closed edge. Those meetings carry no information.
func (si *SegmentIntersector) isTrivialIntersection(intersection *LineIntersection, e0 *Edge, segment0 int, e1 *Edge, segment1 int) bool {
	if e0 != e1 || intersection.IsCollinear() {
		return false
	}
	if isAdjacentSegments(segment0, segment1) {
		return true
	}
	if e0.IsClosed() {
		maxSegment := e0.numSegments() - 1
		if (segment0 == 0 && segment1 == maxSegment) || (segment1 == 0 && segment0 == maxSegment) {
			return true
		}
	}
	return false
}

func isAdjacentSegments(i, j int) bool {
	d := i - j
	return d == 1 || d == -1
}

func (si *SegmentIntersector) isBoundaryPoint(c Coord) bool {
	for _, nodes := range si.boundaryNodes {
		for _, node := range nodes {
			if node == c {
				return true
			}
		}
	}
	return false
}

// One segment of an edge, as stored in the segment index. The embedded line
// string makes it a geom.Geom; its bounds are cached since the tree asks for
// them repeatedly.
type segmentRef struct {
	geom.LineString
	edge   *Edge
	index  int
	bounds *geom.Bounds
}

func (s *segmentRef) Bounds() *geom.Bounds { return s.bounds }

func newSegmentIndex(edges []*Edge) *rtree.Rtree {
	tree := rtree.NewTree(25, 50)
	for _, edge := range edges {
		for i := 0; i < edge.numSegments(); i++ {
			tree.Insert(&segmentRef{
				LineString: geom.LineString{edge.coords[i], edge.coords[i+1]},
				edge:       edge,
				index:      i,
				bounds:     edge.segment(i).Bounds(),
			})
		}
	}
	return tree
}

// Intersect every segment with every segment in the same set whose bounding
// box it touches. With checkSelf false, an edge is not tested against itself.
// Each pair is visited in both orders.
func computeIntersectionsWithinSet(edges []*Edge, checkSelf bool, si *SegmentIntersector) {
	tree := newSegmentIndex(edges)
	for _, e0 := range edges {
		for i := 0; i < e0.numSegments(); i++ {
			for _, candidate := range tree.SearchIntersect(e0.segment(i).Bounds()) {
				other := candidate.(*segmentRef)
				if checkSelf || other.edge != e0 {
					si.addIntersections(e0, i, other.edge, other.index)
				}
			}
		}
	}
}

// Intersect every segment of edgesA with every segment of edgesB whose
// bounding box it touches.
func computeIntersectionsBetweenSets(edgesA, edgesB []*Edge, si *SegmentIntersector) {
	tree := newSegmentIndex(edgesB)
	for _, e0 := range edgesA {
		for i := 0; i < e0.numSegments(); i++ {
			for _, candidate := range tree.SearchIntersect(e0.segment(i).Bounds()) {
				other := candidate.(*segmentRef)
				si.addIntersections(e0, i, other.edge, other.index)
			}
		}
	}
}
