package internal

import (
	"fmt"

	"github.com/osuushi/relate/internal/dbg"
)

// A vertex of a topology graph.
type CoordNode struct {
	coord Coord
	label Label
}

func NewCoordNode(c Coord) CoordNode {
	return CoordNode{coord: c, label: emptyLineOrPointLabel()}
}

func (n *CoordNode) Coord() Coord { return n.coord }

func (n *CoordNode) Label() Label { return n.label }

// A node is isolated when only one of the geometries touches it.
func (n *CoordNode) IsIsolated() bool {
	return n.label.GeometryCount() == 1
}

func (n *CoordNode) SetLabelOnPosition(geomIndex int, pos CoordPos) {
	n.label.SetOnPosition(geomIndex, pos)
}

func (n *CoordNode) SetLabelAllPositions(geomIndex int, pos CoordPos) {
	n.label.SetAllPositions(geomIndex, pos)
}

// Called once for each boundary edge that is interrupted at this node. Two
// boundary crossings at the same point cancel out, which is the mod-2 rule
// applied incrementally.
func (n *CoordNode) SetLabelBoundary(geomIndex int) {
	var next CoordPos
	switch n.label.OnPosition(geomIndex) {
	case OnBoundary:
		next = Inside
	case Inside:
		next = OnBoundary
	default:
		next = OnBoundary
	}
	n.label.SetOnPosition(geomIndex, next)
}

// A node on its own contributes a point to the matrix.
func (n *CoordNode) UpdateIntersectionMatrix(im *IntersectionMatrix) {
	im.SetAtLeastIfInBoth(n.label.OnPosition(0), n.label.OnPosition(1), ZeroDimensional)
}

func (n *CoordNode) DbgName() string {
	return fmt.Sprintf("%s(%v, %v)[%s]", dbg.Name(n), n.coord.X, n.coord.Y, n.label.DbgString())
}

// An arena of nodes with one entry per distinct coordinate. Nodes are handed
// out by index; an index stays valid for the life of the map, but a pointer
// from At or Find only lasts until the next Insert. Iteration is in insertion
// order.
type NodeMap struct {
	nodes []CoordNode
	index map[Coord]int
}

func NewNodeMap() *NodeMap {
	return &NodeMap{index: make(map[Coord]int)}
}

// Index of the node at c, creating it if needed.
func (m *NodeMap) Insert(c Coord) int {
	if isNaNCoord(c) {
		throwUnsupported("NaN coordinate %v", c)
	}
	if i, ok := m.index[c]; ok {
		return i
	}
	i := len(m.nodes)
	m.nodes = append(m.nodes, NewCoordNode(c))
	m.index[c] = i
	return i
}

func (m *NodeMap) Find(c Coord) (*CoordNode, bool) {
	i, ok := m.index[c]
	if !ok {
		return nil, false
	}
	return &m.nodes[i], true
}

func (m *NodeMap) At(i int) *CoordNode {
	return &m.nodes[i]
}

func (m *NodeMap) Len() int {
	return len(m.nodes)
}
