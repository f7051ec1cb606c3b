package internal

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/ctessum/geom"
)

// This file parses the svg fixtures into geometries. This is not a full (or
// even correct) svg parser. It reads the points of every <polygon> element as
// the rings of one polygon, in document order, so the first is the shell and
// the rest are holes. If there are no polygons, every <polyline> becomes a line
// string. If anything goes wrong, it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) geom.Geom {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	if polygons := rootEl.FindAll("polygon"); len(polygons) > 0 {
		result := make(geom.Polygon, len(polygons))
		for i, polygonEl := range polygons {
			result[i] = parsePoints(polygonEl.Attributes["points"])
		}
		return result
	}

	polylines := rootEl.FindAll("polyline")
	switch len(polylines) {
	case 0:
		log.Fatalf("No polygons or polylines found in fixture %q", name)
	case 1:
		return geom.LineString(parsePoints(polylines[0].Attributes["points"]))
	}
	result := make(geom.MultiLineString, len(polylines))
	for i, polylineEl := range polylines {
		result[i] = parsePoints(polylineEl.Attributes["points"])
	}
	return result
}

func parsePoints(pointString string) []geom.Point {
	pointStrings := strings.Fields(pointString)
	points := make([]geom.Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	return points
}

// Some ad hoc fixtures

// Axis aligned square, counterclockwise from its lower left corner.
func square(minX, minY, maxX, maxY float64) geom.Polygon {
	return geom.Polygon{{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
		{X: minX, Y: minY},
	}}
}

// Square with a square hole in the middle. The hole winds clockwise.
func squareWithHole() geom.Polygon {
	return geom.Polygon{
		{{X: -5, Y: -5}, {X: 5, Y: -5}, {X: 5, Y: 5}, {X: -5, Y: 5}, {X: -5, Y: -5}},
		{{X: -2, Y: -2}, {X: -2, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: -2}, {X: -2, Y: -2}},
	}
}

func line(coords ...float64) geom.LineString {
	if len(coords)%2 != 0 {
		log.Fatalf("odd number of coordinates for line: %v", coords)
	}
	result := make(geom.LineString, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		result = append(result, geom.Point{X: coords[i], Y: coords[i+1]})
	}
	return result
}
