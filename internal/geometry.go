package internal

import (
	"github.com/ctessum/geom"
)

// Bring an input geometry into the shapes the engine works with:
//
//  - *geom.Point becomes geom.Point
//  - *geom.Bounds becomes a counterclockwise rectangle, or a line or point if
//    it has collapsed
//  - polygon rings that don't repeat their first point are closed
//
// The result never shares backing arrays with the input. Anything else
// (including NaN coordinates) is unsupported input.
func normalizeGeometry(g geom.Geom) geom.Geom {
	switch g := g.(type) {
	case geom.Point:
		checkCoords(g)
		return g
	case *geom.Point:
		if g == nil {
			throwUnsupported("nil point")
		}
		checkCoords(*g)
		return *g
	case geom.MultiPoint:
		checkCoords(g...)
		return append(geom.MultiPoint{}, g...)
	case geom.LineString:
		checkCoords(g...)
		return append(geom.LineString{}, g...)
	case geom.MultiLineString:
		result := make(geom.MultiLineString, len(g))
		for i, ls := range g {
			result[i] = normalizeGeometry(ls).(geom.LineString)
		}
		return result
	case geom.Polygon:
		return normalizePolygon(g)
	case geom.MultiPolygon:
		result := make(geom.MultiPolygon, len(g))
		for i, poly := range g {
			result[i] = normalizePolygon(poly)
		}
		return result
	case geom.GeometryCollection:
		result := make(geom.GeometryCollection, len(g))
		for i, member := range g {
			result[i] = normalizeGeometry(member)
		}
		return result
	case *geom.Bounds:
		if g == nil {
			throwUnsupported("nil bounds")
		}
		return boundsGeometry(g)
	case nil:
		throwUnsupported("nil geometry")
	}
	throwUnsupported("geometry type %T", g)
	return nil
}

func normalizePolygon(p geom.Polygon) geom.Polygon {
	result := make(geom.Polygon, len(p))
	for i, ring := range p {
		checkCoords(ring...)
		closed := make([]Coord, len(ring), len(ring)+1)
		copy(closed, ring)
		if len(closed) > 0 && closed[0] != closed[len(closed)-1] {
			closed = append(closed, closed[0])
		}
		result[i] = closed
	}
	return result
}

func boundsGeometry(b *geom.Bounds) geom.Geom {
	if b.Empty() {
		return geom.GeometryCollection{}
	}
	checkCoords(b.Min, b.Max)
	switch {
	case b.Min == b.Max:
		return b.Min
	case b.Min.X == b.Max.X || b.Min.Y == b.Max.Y:
		return geom.LineString{b.Min, b.Max}
	}
	return geom.Polygon{{
		b.Min,
		{X: b.Max.X, Y: b.Min.Y},
		b.Max,
		{X: b.Min.X, Y: b.Max.Y},
		b.Min,
	}}
}

func checkCoords(coords ...Coord) {
	for _, c := range coords {
		if isNaNCoord(c) {
			throwUnsupported("NaN coordinate %v", c)
		}
	}
}

// Bounding box of a normalized geometry, or nil if it has no points. Empty
// members of a collection are skipped, since extending by an empty box would
// stretch the result out to infinity.
func geometryBounds(g geom.Geom) *geom.Bounds {
	b := geom.NewBounds()
	extendBounds(b, g)
	if b.Empty() {
		return nil
	}
	return b
}

func extendBounds(b *geom.Bounds, g geom.Geom) {
	switch g := g.(type) {
	case geom.MultiLineString:
		for _, ls := range g {
			extendBounds(b, ls)
		}
	case geom.MultiPolygon:
		for _, poly := range g {
			extendBounds(b, poly)
		}
	case geom.GeometryCollection:
		for _, member := range g {
			extendBounds(b, member)
		}
	default:
		if memberBounds := g.Bounds(); !memberBounds.Empty() {
			b.Extend(memberBounds)
		}
	}
}

// Topological dimension of a normalized geometry. Collapsed shapes take the
// dimension of what they collapsed to.
func geometryDimensions(g geom.Geom) Dimensions {
	switch g := g.(type) {
	case geom.Point:
		return ZeroDimensional
	case geom.MultiPoint:
		if len(g) == 0 {
			return Empty
		}
		return ZeroDimensional
	case geom.LineString:
		if len(g) == 0 {
			return Empty
		}
		for _, c := range g[1:] {
			if c != g[0] {
				return OneDimensional
			}
		}
		return ZeroDimensional
	case geom.MultiLineString:
		result := Empty
		for _, ls := range g {
			result = maxDimensions(result, geometryDimensions(ls))
		}
		return result
	case geom.Polygon:
		if len(g) == 0 || len(g[0]) == 0 {
			return Empty
		}
		for _, c := range g[0][1:] {
			if c != g[0][0] {
				return TwoDimensional
			}
		}
		return ZeroDimensional
	case geom.MultiPolygon:
		result := Empty
		for _, poly := range g {
			result = maxDimensions(result, geometryDimensions(poly))
		}
		return result
	case geom.GeometryCollection:
		result := Empty
		for _, member := range g {
			result = maxDimensions(result, geometryDimensions(member))
		}
		return result
	}
	fatalf("dimensions of unnormalized geometry %T", g)
	return Empty
}

// Dimension of the geometry's boundary. Points and closed lines have none.
func geometryBoundaryDimensions(g geom.Geom) Dimensions {
	switch g := g.(type) {
	case geom.Point, geom.MultiPoint:
		return Empty
	case geom.LineString:
		if isClosedLineString(g) || geometryDimensions(g) != OneDimensional {
			return Empty
		}
		return ZeroDimensional
	case geom.MultiLineString:
		if isClosedMultiLineString(g) || geometryDimensions(g) != OneDimensional {
			return Empty
		}
		return ZeroDimensional
	case geom.Polygon:
		if geometryDimensions(g) != TwoDimensional {
			return Empty
		}
		return OneDimensional
	case geom.MultiPolygon:
		result := Empty
		for _, poly := range g {
			result = maxDimensions(result, geometryBoundaryDimensions(poly))
		}
		return result
	case geom.GeometryCollection:
		result := Empty
		for _, member := range g {
			result = maxDimensions(result, geometryBoundaryDimensions(member))
		}
		return result
	}
	fatalf("boundary dimensions of unnormalized geometry %T", g)
	return Empty
}

func isClosedLineString(ls geom.LineString) bool {
	return len(ls) == 0 || ls[0] == ls[len(ls)-1]
}

func isClosedMultiLineString(mls geom.MultiLineString) bool {
	for _, ls := range mls {
		if !isClosedLineString(ls) {
			return false
		}
	}
	return true
}
