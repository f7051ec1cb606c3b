package internal

import (
	"github.com/ctessum/geom"
	"github.com/twpayne/go-geom/xy/orientation"
)

// Where c sits relative to a normalized geometry. Line ends follow the mod-2
// rule: a point where an odd number of ends meet is on the boundary, and any
// other point touched by some component's boundary is inside.
func coordinatePosition(g geom.Geom, c Coord) CoordPos {
	var isInside bool
	var boundaryCount int
	accumulatePosition(g, c, &isInside, &boundaryCount)

	switch {
	case boundaryCount%2 == 1:
		return OnBoundary
	case isInside || boundaryCount > 0:
		return Inside
	}
	return Outside
}

func accumulatePosition(g geom.Geom, c Coord, isInside *bool, boundaryCount *int) {
	switch g := g.(type) {
	case geom.Point:
		if g == c {
			*isInside = true
		}
	case geom.MultiPoint:
		for _, p := range g {
			if p == c {
				*isInside = true
				return
			}
		}
	case geom.LineString:
		accumulateLineStringPosition(g, c, isInside, boundaryCount)
	case geom.MultiLineString:
		for _, ls := range g {
			accumulateLineStringPosition(ls, c, isInside, boundaryCount)
		}
	case geom.Polygon:
		accumulatePolygonPosition(g, c, isInside, boundaryCount)
	case geom.MultiPolygon:
		for _, poly := range g {
			accumulatePolygonPosition(poly, c, isInside, boundaryCount)
		}
	case geom.GeometryCollection:
		for _, member := range g {
			accumulatePosition(member, c, isInside, boundaryCount)
		}
	default:
		fatalf("position in unnormalized geometry %T", g)
	}
}

func accumulateLineStringPosition(ls geom.LineString, c Coord, isInside *bool, boundaryCount *int) {
	if len(ls) < 2 {
		return
	}
	if len(ls) == 2 {
		line := Line{Start: ls[0], End: ls[1]}
		switch {
		case line.Start == line.End:
			// Collapsed to a point
			if c == line.Start {
				*isInside = true
			}
		case c == line.Start || c == line.End:
			*boundaryCount++
		case line.Contains(c):
			*isInside = true
		}
		return
	}

	if !boundsContain(ls.Bounds(), c) {
		return
	}
	if !isClosedLineString(ls) && (c == ls[0] || c == ls[len(ls)-1]) {
		*boundaryCount++
		return
	}
	for i := 0; i+1 < len(ls); i++ {
		if (Line{Start: ls[i], End: ls[i+1]}).Contains(c) {
			*isInside = true
			return
		}
	}
}

func accumulatePolygonPosition(poly geom.Polygon, c Coord, isInside *bool, boundaryCount *int) {
	if len(poly) == 0 || len(poly[0]) == 0 {
		return
	}
	switch ringPosition(poly[0], c) {
	case OnBoundary:
		*boundaryCount++
	case Inside:
		for _, hole := range poly[1:] {
			switch ringPosition(hole, c) {
			case OnBoundary:
				*boundaryCount++
				return
			case Inside:
				return
			}
		}
		*isInside = true
	}
}

// Position of c relative to the area enclosed by a closed ring, by winding
// number. Only orientation tests are used, so the answer is exact.
func ringPosition(ring []Coord, c Coord) CoordPos {
	switch len(ring) {
	case 0:
		return Outside
	case 1:
		if ring[0] == c {
			return OnBoundary
		}
		return Outside
	}

	windingNumber := 0
	for i := 0; i+1 < len(ring); i++ {
		start, end := ring[i], ring[i+1]
		if start.Y <= c.Y {
			if end.Y >= c.Y {
				o := orient2d(start, end, c)
				if o == orientation.CounterClockwise && end.Y != c.Y {
					windingNumber++
				} else if o == orientation.Collinear && valueBetween(c.X, start.X, end.X) {
					return OnBoundary
				}
			}
		} else if end.Y <= c.Y {
			o := orient2d(start, end, c)
			if o == orientation.Clockwise {
				windingNumber--
			} else if o == orientation.Collinear && valueBetween(c.X, start.X, end.X) {
				return OnBoundary
			}
		}
	}
	if windingNumber == 0 {
		return Outside
	}
	return Inside
}

func valueBetween(x, a, b float64) bool {
	if a > b {
		a, b = b, a
	}
	return a <= x && x <= b
}

// Position of c relative to the polygonal parts of g only. Points and lines
// don't enclose anything, so everything is outside of them.
func areaPosition(g geom.Geom, c Coord) CoordPos {
	switch g := g.(type) {
	case geom.Polygon:
		return polygonPosition(g, c)
	case geom.MultiPolygon:
		for _, poly := range g {
			if pos := polygonPosition(poly, c); pos != Outside {
				return pos
			}
		}
	case geom.GeometryCollection:
		for _, member := range g {
			if pos := areaPosition(member, c); pos != Outside {
				return pos
			}
		}
	}
	return Outside
}

func polygonPosition(poly geom.Polygon, c Coord) CoordPos {
	var isInside bool
	var boundaryCount int
	accumulatePolygonPosition(poly, c, &isInside, &boundaryCount)
	switch {
	case boundaryCount > 0:
		return OnBoundary
	case isInside:
		return Inside
	}
	return Outside
}
