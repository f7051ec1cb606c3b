package internal

// Split each edge at its intersections and return the edge ends on either side
// of every split point. Edge ends pointing back along the edge get a flipped
// label, so left and right stay correct from the node's point of view.
func computeEdgeEnds(edges []*Edge) []*EdgeEnd {
	var ends []*EdgeEnd
	for _, edge := range edges {
		ends = appendEdgeEnds(ends, edge)
	}
	return ends
}

func appendEdgeEnds(ends []*EdgeEnd, edge *Edge) []*EdgeEnd {
	edge.AddEndpointIntersections()
	intersections := edge.Intersections()
	for i := range intersections {
		var prev, next *EdgeIntersection
		if i > 0 {
			prev = &intersections[i-1]
		}
		if i+1 < len(intersections) {
			next = &intersections[i+1]
		}
		current := &intersections[i]

		if end := edgeEndForPrev(edge, current, prev); end != nil {
			ends = append(ends, end)
		}
		if end := edgeEndForNext(edge, current, next); end != nil {
			ends = append(ends, end)
		}
	}
	return ends
}

// The end running from current back toward the start of the edge, or nil if
// current is the start.
func edgeEndForPrev(edge *Edge, current, prev *EdgeIntersection) *EdgeEnd {
	i := current.SegmentIndex
	if current.Distance == 0 {
		if i == 0 {
			return nil
		}
		i--
	}

	coord := edge.coords[i]
	if prev != nil && prev.SegmentIndex >= i {
		coord = prev.Coord
	}
	label := edge.Label()
	label.Flip()
	return NewEdgeEnd(edge, current.Coord, coord, label)
}

// The end running from current on toward the end of the edge, or nil if current
// is the last point.
func edgeEndForNext(edge *Edge, current, next *EdgeIntersection) *EdgeEnd {
	i := current.SegmentIndex + 1
	if i >= len(edge.coords) {
		if next == nil {
			return nil
		}
		return NewEdgeEnd(edge, current.Coord, next.Coord, edge.Label())
	}

	coord := edge.coords[i]
	if next != nil && next.SegmentIndex == current.SegmentIndex {
		coord = next.Coord
	}
	return NewEdgeEnd(edge, current.Coord, coord, edge.Label())
}
