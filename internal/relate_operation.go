package internal

import (
	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
)

// Computes the DE-9IM matrix of two geometries by building a topology graph of
// both and labeling every piece of it with its position in each.
type RelateOperation struct {
	graphs [2]*GeometryGraph

	// Nodes of the combined graph, and the edge ends around each one.
	nodes *NodeMap
	stars []*EdgeEndBundleStar

	// Edges that no edge of the other geometry touches.
	isolatedEdges []*Edge

	computed bool
	im       IntersectionMatrix
}

func NewRelateOperation(a, b geom.Geom) *RelateOperation {
	return &RelateOperation{
		graphs: [2]*GeometryGraph{NewGeometryGraph(0, a), NewGeometryGraph(1, b)},
		nodes:  NewNodeMap(),
	}
}

func (op *RelateOperation) Graph(geomIndex int) *GeometryGraph { return op.graphs[geomIndex] }

func (op *RelateOperation) Nodes() *NodeMap { return op.nodes }

// The edge ends around node i, or nil if it has none.
func (op *RelateOperation) Star(i int) *EdgeEndBundleStar {
	if i >= len(op.stars) {
		return nil
	}
	return op.stars[i]
}

func (op *RelateOperation) IsolatedEdges() []*Edge { return op.isolatedEdges }

func (op *RelateOperation) starAt(i int) *EdgeEndBundleStar {
	for len(op.stars) <= i {
		op.stars = append(op.stars, nil)
	}
	if op.stars[i] == nil {
		op.stars[i] = &EdgeEndBundleStar{}
	}
	return op.stars[i]
}

func logPhase(phase string) {
	Log.WithField("phase", phase).Debug("relate phase")
}

// Run the operation. The graphs are modified along the way, so the work is
// only done once; later calls return the same matrix.
func (op *RelateOperation) ComputeIntersectionMatrix() IntersectionMatrix {
	if op.computed {
		return op.im
	}
	op.computed = true

	op.im.set(Outside, Outside, TwoDimensional)

	boundsA := geometryBounds(op.graphs[0].Geometry())
	boundsB := geometryBounds(op.graphs[1].Geometry())
	if boundsA == nil || boundsB == nil || !boundsA.Overlaps(boundsB) {
		logPhase("disjoint")
		op.computeDisjointIntersectionMatrix()
		return op.im
	}
	op.computeGraphIntersectionMatrix()

	Log.WithFields(logrus.Fields{
		"matrix": op.im.String(),
		"nodes":  op.nodes.Len(),
	}).Debug("relate done")
	return op.im
}

// The full computation, for geometries whose bounding boxes overlap.
func (op *RelateOperation) computeGraphIntersectionMatrix() {
	logPhase("self nodes")
	op.graphs[0].ComputeSelfNodes()
	op.graphs[1].ComputeSelfNodes()

	logPhase("edge intersections")
	intersector := op.graphs[0].ComputeEdgeIntersections(op.graphs[1])

	logPhase("nodes")
	op.computeIntersectionNodes(0)
	op.computeIntersectionNodes(1)
	op.copyNodesAndLabels(0)
	op.copyNodesAndLabels(1)
	op.labelIsolatedNodes()

	op.computeProperIntersectionIntersectionMatrix(intersector)

	logPhase("edge ends")
	op.insertEdgeEnds(computeEdgeEnds(op.graphs[0].Edges()))
	op.insertEdgeEnds(computeEdgeEnds(op.graphs[1].Edges()))

	logPhase("labeling")
	for _, star := range op.stars {
		if star != nil {
			star.computeLabeling(op.graphs)
		}
	}
	op.labelIsolatedEdges(0, 1)
	op.labelIsolatedEdges(1, 0)

	logPhase("matrix")
	op.updateIntersectionMatrix()
}

// With no shared bounding box, each geometry is entirely outside the other.
func (op *RelateOperation) computeDisjointIntersectionMatrix() {
	a := op.graphs[0].Geometry()
	if dim := geometryDimensions(a); dim != Empty {
		op.im.set(Inside, Outside, dim)
		if bdim := geometryBoundaryDimensions(a); bdim != Empty {
			op.im.set(OnBoundary, Outside, bdim)
		}
	}

	b := op.graphs[1].Geometry()
	if dim := geometryDimensions(b); dim != Empty {
		op.im.set(Outside, Inside, dim)
		if bdim := geometryBoundaryDimensions(b); bdim != Empty {
			op.im.set(Outside, OnBoundary, bdim)
		}
	}
}

// Create a node for every intersection found on geomIndex's edges. Points
// where boundary edges cross are labeled by the mod-2 rule.
func (op *RelateOperation) computeIntersectionNodes(geomIndex int) {
	for _, edge := range op.graphs[geomIndex].Edges() {
		edgePos := edge.Label().OnPosition(geomIndex)
		for _, ei := range edge.Intersections() {
			node := op.nodes.At(op.nodes.Insert(ei.Coord))
			if edgePos == OnBoundary {
				node.SetLabelBoundary(geomIndex)
			} else if node.Label().IsEmpty(geomIndex) {
				node.SetLabelOnPosition(geomIndex, Inside)
			}
		}
	}
}

// Bring over the geometry's own nodes. Their labels are authoritative, so they
// replace whatever the intersections said.
func (op *RelateOperation) copyNodesAndLabels(geomIndex int) {
	graphNodes := op.graphs[geomIndex].Nodes()
	for i := 0; i < graphNodes.Len(); i++ {
		graphNode := graphNodes.At(i)
		node := op.nodes.At(op.nodes.Insert(graphNode.Coord()))
		node.SetLabelOnPosition(geomIndex, graphNode.Label().OnPosition(geomIndex))
	}
}

// A node only one geometry knows about gets its position in the other by
// locating it there.
func (op *RelateOperation) labelIsolatedNodes() {
	for i := 0; i < op.nodes.Len(); i++ {
		node := op.nodes.At(i)
		label := node.Label()
		if label.GeometryCount() == 0 {
			fatalf("node with empty label at %v", node.Coord())
		}
		if !node.IsIsolated() {
			continue
		}
		target := 1
		if label.IsEmpty(0) {
			target = 0
		}
		node.SetLabelAllPositions(target, coordinatePosition(op.graphs[target].Geometry(), node.Coord()))
	}
}

// Proper crossings aren't noded between the two geometries, so what they imply
// about the matrix is filled in directly.
func (op *RelateOperation) computeProperIntersectionIntersectionMatrix(intersector *SegmentIntersector) {
	dimA := geometryDimensions(op.graphs[0].Geometry())
	dimB := geometryDimensions(op.graphs[1].Geometry())
	hasProper := intersector.HasProperIntersection()
	hasProperInterior := intersector.HasProperInteriorIntersection()

	setAtLeast := func(dimensions string) {
		if err := op.im.SetAtLeastFromString(dimensions); err != nil {
			fatalf("bad matrix literal %q: %v", dimensions, err)
		}
	}

	switch {
	case dimA == TwoDimensional && dimB == TwoDimensional:
		// Two crossing area boundaries mean every interior and boundary meets
		// every other.
		if hasProper {
			setAtLeast("212101212")
		}
	case dimA == TwoDimensional && dimB == OneDimensional:
		// A line crossing an area boundary has parts inside and outside it.
		if hasProper {
			setAtLeast("FFF0FFFF2")
		}
		if hasProperInterior {
			setAtLeast("1FFFFF1FF")
		}
	case dimA == OneDimensional && dimB == TwoDimensional:
		if hasProper {
			setAtLeast("F0FFFFFF2")
		}
		if hasProperInterior {
			setAtLeast("1F1FFFFFF")
		}
	case dimA == OneDimensional && dimB == OneDimensional:
		// Two line interiors crossing at a point
		if hasProperInterior {
			setAtLeast("0FFFFFFFF")
		}
	}
}

func (op *RelateOperation) insertEdgeEnds(ends []*EdgeEnd) {
	for _, end := range ends {
		op.starAt(op.nodes.Insert(end.Coord())).Insert(end)
	}
}

// Edges of geomIndex that touch nothing in the other geometry lie wholly in
// one of its parts, so locating any point of them labels the whole edge.
func (op *RelateOperation) labelIsolatedEdges(geomIndex, targetIndex int) {
	target := op.graphs[targetIndex].Geometry()
	targetDim := geometryDimensions(target)
	for _, edge := range op.graphs[geomIndex].Edges() {
		if !edge.IsIsolated() {
			continue
		}
		if targetDim > ZeroDimensional {
			edge.SetLabelAllPositions(targetIndex, coordinatePosition(target, edge.Coords()[0]))
		} else {
			edge.SetLabelAllPositions(targetIndex, Outside)
		}
		op.isolatedEdges = append(op.isolatedEdges, edge)
	}
}

func (op *RelateOperation) updateIntersectionMatrix() {
	for _, edge := range op.isolatedEdges {
		updateIntersectionMatrixFromLabel(edge.Label(), &op.im)
	}
	for i := 0; i < op.nodes.Len(); i++ {
		op.nodes.At(i).UpdateIntersectionMatrix(&op.im)
		if star := op.Star(i); star != nil {
			star.updateIntersectionMatrix(&op.im)
		}
	}
}
