package internal

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// All the edge ends at a node which leave in the same direction. Their labels
// are merged into one.
type EdgeEndBundle struct {
	ends  []*EdgeEnd
	label Label
}

func newEdgeEndBundle(end *EdgeEnd) *EdgeEndBundle {
	return &EdgeEndBundle{ends: []*EdgeEnd{end}}
}

// The first end inserted, which stands for the bundle's direction.
func (b *EdgeEndBundle) key() *EdgeEnd { return b.ends[0] }

func (b *EdgeEndBundle) Coord() Coord { return b.key().Coord() }

func (b *EdgeEndBundle) EdgeEnds() []*EdgeEnd { return b.ends }

// The merged label. Only meaningful once the owning star has been labeled.
func (b *EdgeEndBundle) Label() Label { return b.label }

func (b *EdgeEndBundle) insert(end *EdgeEnd) {
	b.ends = append(b.ends, end)
}

func (b *EdgeEndBundle) computeLabel() {
	isArea := false
	for _, end := range b.ends {
		if end.Label().IsArea() {
			isArea = true
			break
		}
	}
	if isArea {
		b.label = emptyAreaLabel()
	} else {
		b.label = emptyLineOrPointLabel()
	}

	for geomIndex := 0; geomIndex < 2; geomIndex++ {
		b.computeLabelOn(geomIndex)
		if isArea {
			b.computeLabelSide(geomIndex, Left)
			b.computeLabelSide(geomIndex, Right)
		}
	}
}

// Any end in the interior makes the bundle interior, but ends on the boundary
// override that, by the mod-2 rule.
func (b *EdgeEndBundle) computeLabelOn(geomIndex int) {
	boundaryCount := 0
	foundInterior := false
	for _, end := range b.ends {
		switch end.Label().OnPosition(geomIndex) {
		case OnBoundary:
			boundaryCount++
		case Inside:
			foundInterior = true
		}
	}

	pos := NoPos
	if foundInterior {
		pos = Inside
	}
	if boundaryCount > 0 {
		pos = determineBoundary(boundaryCount)
	}
	b.label.SetOnPosition(geomIndex, pos)
}

// A side is interior if any area end says so, and exterior if some end says
// that and none says interior.
func (b *EdgeEndBundle) computeLabelSide(geomIndex int, side Direction) {
	for _, end := range b.ends {
		label := end.Label()
		if !label.IsArea() {
			continue
		}
		switch label.Position(geomIndex, side) {
		case Inside:
			b.label.SetPosition(geomIndex, side, Inside)
			return
		case Outside:
			b.label.SetPosition(geomIndex, side, Outside)
		}
	}
}

// The bundles around one node, sorted counterclockwise by direction.
type EdgeEndBundleStar struct {
	bundles []*EdgeEndBundle
}

func (s *EdgeEndBundleStar) Bundles() []*EdgeEndBundle { return s.bundles }

func (s *EdgeEndBundleStar) Insert(end *EdgeEnd) {
	i := sort.Search(len(s.bundles), func(i int) bool {
		return s.bundles[i].key().compareDirection(end) >= 0
	})
	if i < len(s.bundles) && s.bundles[i].key().compareDirection(end) == 0 {
		s.bundles[i].insert(end)
		return
	}
	s.bundles = append(s.bundles, nil)
	copy(s.bundles[i+1:], s.bundles[i:])
	s.bundles[i] = newEdgeEndBundle(end)
}

// Fill in every bundle's label for both geometries. Whatever the edges
// themselves don't say is worked out by walking around the node, and failing
// that by locating the node in the geometry.
func (s *EdgeEndBundleStar) computeLabeling(graphs [2]*GeometryGraph) {
	for _, bundle := range s.bundles {
		bundle.computeLabel()
	}
	s.propagateSideLabels(0)
	s.propagateSideLabels(1)

	// A line edge on the boundary of a geometry means an area collapsed onto
	// it. Anything around such a node is outside that geometry.
	var hasDimensionalCollapseEdge [2]bool
	for _, bundle := range s.bundles {
		for geomIndex := 0; geomIndex < 2; geomIndex++ {
			if bundle.label.IsLine(geomIndex) && bundle.label.OnPosition(geomIndex) == OnBoundary {
				hasDimensionalCollapseEdge[geomIndex] = true
			}
		}
	}

	areaPositions := [2]CoordPos{NoPos, NoPos}
	for _, bundle := range s.bundles {
		for geomIndex := 0; geomIndex < 2; geomIndex++ {
			if !bundle.label.IsAnyEmpty(geomIndex) {
				continue
			}
			var pos CoordPos
			if hasDimensionalCollapseEdge[geomIndex] {
				pos = Outside
			} else {
				// Every bundle starts at the node, so one lookup per geometry
				// serves the whole star.
				if areaPositions[geomIndex] == NoPos {
					areaPositions[geomIndex] = areaPosition(graphs[geomIndex].Geometry(), bundle.Coord())
				}
				pos = areaPositions[geomIndex]
			}
			bundle.label.SetAllPositionsIfEmpty(geomIndex, pos)
		}
	}
}

// Walk counterclockwise around the node carrying the position of the area
// between edges. Bundles that only know about one geometry learn what side of
// the other they are on.
func (s *EdgeEndBundleStar) propagateSideLabels(geomIndex int) {
	start := NoPos
	for _, bundle := range s.bundles {
		label := bundle.label
		if label.IsGeomArea(geomIndex) && label.Position(geomIndex, Left) != NoPos {
			start = label.Position(geomIndex, Left)
		}
	}
	if start == NoPos {
		return
	}

	current := start
	for _, bundle := range s.bundles {
		label := &bundle.label
		if label.OnPosition(geomIndex) == NoPos {
			label.SetOnPosition(geomIndex, current)
		}
		if !label.IsGeomArea(geomIndex) {
			continue
		}

		left := label.Position(geomIndex, Left)
		right := label.Position(geomIndex, Right)
		if right != NoPos {
			if right != current {
				Log.WithFields(logrus.Fields{
					"arg":   geomIndex,
					"coord": bundle.Coord(),
				}).Debug("side location conflict")
			}
			if left == NoPos {
				fatalf("found single empty side at %v", bundle.Coord())
			}
			current = left
		} else {
			if left != NoPos {
				fatalf("found single empty side at %v", bundle.Coord())
			}
			label.SetPosition(geomIndex, Right, current)
			label.SetPosition(geomIndex, Left, current)
		}
	}
}

func (s *EdgeEndBundleStar) updateIntersectionMatrix(im *IntersectionMatrix) {
	for _, bundle := range s.bundles {
		updateIntersectionMatrixFromLabel(bundle.label, im)
	}
}
