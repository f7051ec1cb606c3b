package internal

import (
	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom/xy/orientation"
)

// The planar graph of a single operand: its edges (line strings and rings) and
// the nodes where something topologically interesting happens.
type GeometryGraph struct {
	argIndex int
	geometry geom.Geom

	// Apply the mod-2 rule to decide which nodes are on the boundary. Turned
	// off for multipolygons, whose rings touching at a point must not cancel
	// each other out.
	useBoundaryDeterminationRule bool
	hasComputedSelfNodes         bool

	edges []*Edge
	nodes *NodeMap
}

// Build the graph for g, which is operand argIndex (0 or 1) of a relate.
func NewGeometryGraph(argIndex int, g geom.Geom) *GeometryGraph {
	graph := &GeometryGraph{
		argIndex:                     argIndex,
		geometry:                     normalizeGeometry(g),
		useBoundaryDeterminationRule: true,
		nodes:                        NewNodeMap(),
	}
	graph.addGeometry(graph.geometry)
	return graph
}

func (g *GeometryGraph) Geometry() geom.Geom { return g.geometry }

func (g *GeometryGraph) Edges() []*Edge { return g.edges }

func (g *GeometryGraph) Nodes() *NodeMap { return g.nodes }

func (g *GeometryGraph) addGeometry(geometry geom.Geom) {
	switch geometry := geometry.(type) {
	case geom.Point:
		g.addPoint(geometry)
	case geom.MultiPoint:
		for _, p := range geometry {
			g.addPoint(p)
		}
	case geom.LineString:
		g.addLineString(geometry)
	case geom.MultiLineString:
		for _, ls := range geometry {
			g.addLineString(ls)
		}
	case geom.Polygon:
		g.addPolygon(geometry)
	case geom.MultiPolygon:
		g.useBoundaryDeterminationRule = false
		for _, poly := range geometry {
			g.addPolygon(poly)
		}
	case geom.GeometryCollection:
		for _, member := range geometry {
			g.addGeometry(member)
		}
	default:
		fatalf("graph of unnormalized geometry %T", geometry)
	}
}

func (g *GeometryGraph) addPoint(p geom.Point) {
	g.insertPoint(p, Inside)
}

func (g *GeometryGraph) addLineString(ls geom.LineString) {
	if len(ls) == 0 {
		return
	}
	coords := removeRepeatedPoints(ls)
	if len(coords) < 2 {
		Log.WithFields(logrus.Fields{
			"arg":    g.argIndex,
			"coords": len(ls),
			"kind":   "line string",
		}).Warn("line string with fewer than two distinct points treated as a point")
		g.addPoint(coords[0])
		return
	}

	g.insertBoundaryPoint(coords[0])
	g.insertBoundaryPoint(coords[len(coords)-1])
	g.edges = append(g.edges, NewEdge(coords, NewLabel(g.argIndex, NewLineOrPointPosition(Inside))))
}

func (g *GeometryGraph) addPolygon(poly geom.Polygon) {
	if len(poly) == 0 {
		return
	}
	g.addPolygonRing(poly[0], Outside, Inside)
	for _, hole := range poly[1:] {
		// Holes are the mirror image of the shell: the polygon is on the
		// outside of the ring.
		g.addPolygonRing(hole, Inside, Outside)
	}
}

// Add a ring as an area edge. cwLeft and cwRight are the positions to the left
// and right of the ring when it runs clockwise; a counterclockwise ring gets
// them swapped.
func (g *GeometryGraph) addPolygonRing(ring []Coord, cwLeft, cwRight CoordPos) {
	if len(ring) == 0 {
		return
	}
	coords := removeRepeatedPoints(ring)
	fields := logrus.Fields{
		"arg":    g.argIndex,
		"coords": len(coords),
		"kind":   "ring",
	}
	if len(coords) < 4 {
		Log.WithFields(fields).Warn("invalid ring, results are undefined")
	}

	left, right := cwLeft, cwRight
	switch ringWinding(coords) {
	case orientation.Clockwise:
	case orientation.CounterClockwise:
		left, right = cwRight, cwLeft
	default:
		Log.WithFields(fields).Warn("ring has no winding order, results are undefined")
	}

	g.edges = append(g.edges, NewEdge(coords, NewLabel(g.argIndex, NewAreaPosition(OnBoundary, left, right))))
	g.insertPoint(coords[0], OnBoundary)
}

// Winding direction of a closed ring, or Collinear if it doesn't have one.
// The lowest-leftmost vertex is always convex, so the turn made there gives the
// direction of the whole ring.
func ringWinding(ring []Coord) orientation.Type {
	n := len(ring)
	if n < 4 || ring[0] != ring[n-1] {
		return orientation.Collinear
	}
	least := 0
	for i, c := range ring {
		if c.Y < ring[least].Y || (c.Y == ring[least].Y && c.X < ring[least].X) {
			least = i
		}
	}

	next := (least + 1) % n
	for ring[next] == ring[least] {
		if next == least {
			return orientation.Collinear
		}
		next = (next + 1) % n
	}
	prev := (least + n - 1) % n
	for ring[prev] == ring[least] {
		if prev == least {
			return orientation.Collinear
		}
		prev = (prev + n - 1) % n
	}
	return orient2d(ring[prev], ring[least], ring[next])
}

func (g *GeometryGraph) insertPoint(c Coord, pos CoordPos) {
	i := g.nodes.Insert(c)
	g.nodes.At(i).SetLabelOnPosition(g.argIndex, pos)
}

// Record one more line end at c. Whether c is on the boundary depends on how
// many ends meet there.
func (g *GeometryGraph) insertBoundaryPoint(c Coord) {
	node := g.nodes.At(g.nodes.Insert(c))
	boundaryCount := 1
	if node.Label().OnPosition(g.argIndex) == OnBoundary {
		boundaryCount++
	}
	node.SetLabelOnPosition(g.argIndex, determineBoundary(boundaryCount))
}

// The mod-2 boundary rule: a point where an odd number of line ends meet is on
// the boundary, otherwise it is interior.
func determineBoundary(boundaryCount int) CoordPos {
	if boundaryCount%2 == 1 {
		return OnBoundary
	}
	return Inside
}

func (g *GeometryGraph) isBoundaryNode(c Coord) bool {
	node, ok := g.nodes.Find(c)
	return ok && node.Label().OnPosition(g.argIndex) == OnBoundary
}

func (g *GeometryGraph) boundaryNodes() []Coord {
	var result []Coord
	for i := 0; i < g.nodes.Len(); i++ {
		node := g.nodes.At(i)
		if node.Label().OnPosition(g.argIndex) == OnBoundary {
			result = append(result, node.Coord())
		}
	}
	return result
}

// True when every edge is a closed ring, so an edge crossing itself is not a
// concern.
func (g *GeometryGraph) isRings() bool {
	switch geometry := g.geometry.(type) {
	case geom.LineString:
		return isClosedLineString(geometry)
	case geom.MultiLineString:
		return isClosedMultiLineString(geometry)
	case geom.Polygon, geom.MultiPolygon:
		return true
	}
	return false
}

// Node the graph against itself. Only the first call does any work.
func (g *GeometryGraph) ComputeSelfNodes() {
	if g.hasComputedSelfNodes {
		return
	}
	g.hasComputedSelfNodes = true

	si := newSegmentIntersector(true, nil, nil)
	computeIntersectionsWithinSet(g.edges, !g.isRings(), si)
	g.addSelfIntersectionNodes()
}

func (g *GeometryGraph) addSelfIntersectionNodes() {
	for _, edge := range g.edges {
		pos := edge.Label().OnPosition(g.argIndex)
		for _, ei := range edge.Intersections() {
			g.addSelfIntersectionNode(ei.Coord, pos)
		}
	}
}

func (g *GeometryGraph) addSelfIntersectionNode(c Coord, pos CoordPos) {
	if g.isBoundaryNode(c) {
		return
	}
	if pos == OnBoundary && g.useBoundaryDeterminationRule {
		g.insertBoundaryPoint(c)
	} else {
		g.insertPoint(c, pos)
	}
}

// Node this graph's edges against other's, returning what was found about
// proper crossings.
func (g *GeometryGraph) ComputeEdgeIntersections(other *GeometryGraph) *SegmentIntersector {
	si := newSegmentIntersector(false, g.boundaryNodes(), other.boundaryNodes())
	computeIntersectionsBetweenSets(g.edges, other.edges, si)
	return si
}
