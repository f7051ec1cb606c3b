package internal

import (
	"math"

	"github.com/twpayne/go-geom/xy/orientation"
)

// How two segments meet. A nil *LineIntersection means they don't.
type LineIntersection struct {
	// Set for a single point intersection.
	Point Coord
	// True if the single point is interior to both segments.
	IsProper bool
	// Set for an overlap, in which case Point and IsProper are unused.
	Collinear *Line
}

func (i *LineIntersection) IsCollinear() bool {
	return i.Collinear != nil
}

// Classify the relationship between segments p and q.
//
// The orientation tests are exact, so a point intersection is only called
// proper when no endpoint of either segment lies on the other one. The
// computed coordinate of a proper intersection is approximate, but it is
// always clamped to lie within both segments' bounding boxes.
func intersectLines(p, q Line) *LineIntersection {
	if !p.Bounds().Overlaps(q.Bounds()) {
		return nil
	}

	pq1 := orient2d(p.Start, p.End, q.Start)
	pq2 := orient2d(p.Start, p.End, q.End)
	if pq1 != orientation.Collinear && pq1 == pq2 {
		// q is entirely on one side of p
		return nil
	}

	qp1 := orient2d(q.Start, q.End, p.Start)
	qp2 := orient2d(q.Start, q.End, p.End)
	if qp1 != orientation.Collinear && qp1 == qp2 {
		return nil
	}

	collinear := orientation.Collinear
	if pq1 == collinear && pq2 == collinear && qp1 == collinear && qp2 == collinear {
		return collinearIntersection(p, q)
	}

	// At least one endpoint touches the other segment. Prefer a shared
	// endpoint so the result is exactly a vertex both segments have.
	if pq1 == collinear || pq2 == collinear || qp1 == collinear || qp2 == collinear {
		var point Coord
		switch {
		case p.Start == q.Start || p.Start == q.End:
			point = p.Start
		case p.End == q.Start || p.End == q.End:
			point = p.End
		case pq1 == collinear:
			point = q.Start
		case pq2 == collinear:
			point = q.End
		case qp1 == collinear:
			point = p.Start
		default:
			point = p.End
		}
		return &LineIntersection{Point: point}
	}

	return &LineIntersection{Point: properIntersection(p, q), IsProper: true}
}

// Both segments lie on the same line. Work out how much of them overlaps from
// which endpoints fall inside the other segment's bounds.
func collinearIntersection(p, q Line) *LineIntersection {
	pBounds := p.Bounds()
	qBounds := q.Bounds()
	qStartInP := boundsContain(pBounds, q.Start)
	qEndInP := boundsContain(pBounds, q.End)
	pStartInQ := boundsContain(qBounds, p.Start)
	pEndInQ := boundsContain(qBounds, p.End)

	overlap := func(a, b Coord) *LineIntersection {
		return &LineIntersection{Collinear: &Line{Start: a, End: b}}
	}
	touch := func(c Coord) *LineIntersection {
		return &LineIntersection{Point: c}
	}

	switch {
	case qStartInP && qEndInP:
		return overlap(q.Start, q.End)
	case pStartInQ && pEndInQ:
		return overlap(p.Start, p.End)
	case qStartInP && pStartInQ:
		if q.Start == p.Start && !qEndInP && !pEndInQ {
			return touch(q.Start)
		}
		return overlap(q.Start, p.Start)
	case qStartInP && pEndInQ:
		if q.Start == p.End && !qEndInP && !pStartInQ {
			return touch(q.Start)
		}
		return overlap(q.Start, p.End)
	case qEndInP && pStartInQ:
		if q.End == p.Start && !qStartInP && !pEndInQ {
			return touch(q.End)
		}
		return overlap(q.End, p.Start)
	case qEndInP && pEndInQ:
		if q.End == p.End && !qStartInP && !pStartInQ {
			return touch(q.End)
		}
		return overlap(q.End, p.End)
	}
	return nil
}

// The crossing point of two segments known to cross properly. Homogeneous
// coordinates are computed relative to the middle of the two segments'
// common bounding box, which keeps the magnitudes small and the result
// accurate. If that still lands outside either segment's bounds, the endpoint
// nearest the other segment is a better answer.
func properIntersection(p, q Line) Coord {
	point, ok := rawLineIntersection(p, q)
	if !ok || !boundsContain(p.Bounds(), point) || !boundsContain(q.Bounds(), point) {
		point = nearestEndpoint(p, q)
	}
	return point
}

func rawLineIntersection(p, q Line) (Coord, bool) {
	pb, qb := p.Bounds(), q.Bounds()
	midX := (math.Max(pb.Min.X, qb.Min.X) + math.Min(pb.Max.X, qb.Max.X)) / 2
	midY := (math.Max(pb.Min.Y, qb.Min.Y) + math.Min(pb.Max.Y, qb.Max.Y)) / 2

	p1x, p1y := p.Start.X-midX, p.Start.Y-midY
	p2x, p2y := p.End.X-midX, p.End.Y-midY
	q1x, q1y := q.Start.X-midX, q.Start.Y-midY
	q2x, q2y := q.End.X-midX, q.End.Y-midY

	px := p1y - p2y
	py := p2x - p1x
	pw := p1x*p2y - p2x*p1y

	qx := q1y - q2y
	qy := q2x - q1x
	qw := q1x*q2y - q2x*q1y

	xw := py*qw - qy*pw
	yw := qx*pw - px*qw
	w := px*qy - qx*py

	x := xw / w
	y := yw / w
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return Coord{}, false
	}
	return Coord{X: x + midX, Y: y + midY}, true
}

func nearestEndpoint(p, q Line) Coord {
	nearest := p.Start
	minDist := q.DistanceTo(p.Start)
	if dist := q.DistanceTo(p.End); dist < minDist {
		minDist = dist
		nearest = p.End
	}
	if dist := p.DistanceTo(q.Start); dist < minDist {
		minDist = dist
		nearest = q.Start
	}
	if dist := p.DistanceTo(q.End); dist < minDist {
		nearest = q.End
	}
	return nearest
}

// A measure of how far along the segment an intersection sits, used to order
// intersections on the same segment. It isn't a true distance, but it is
// exact for points on the segment, zero only at the start, and monotonic
// along it.
func computeEdgeDistance(intersection Coord, line Line) float64 {
	dx := math.Abs(line.End.X - line.Start.X)
	dy := math.Abs(line.End.Y - line.Start.Y)

	if intersection == line.Start {
		return 0
	}
	if intersection == line.End {
		return math.Max(dx, dy)
	}

	intersectionDx := math.Abs(intersection.X - line.Start.X)
	intersectionDy := math.Abs(intersection.Y - line.Start.Y)
	var dist float64
	if dx > dy {
		dist = intersectionDx
	} else {
		dist = intersectionDy
	}
	// A point off the start must never sort as the start
	if dist == 0 {
		dist = math.Max(intersectionDx, intersectionDy)
	}
	return dist
}
