package internal

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeGeometry(t *testing.T) {
	t.Run("closes rings", func(t *testing.T) {
		open := geom.Polygon{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}}
		normalized := normalizeGeometry(open).(geom.Polygon)
		assert.Equal(t, geom.Point{X: 0, Y: 0}, normalized[0][3])
		assert.Len(t, open[0], 3, "input is left alone")
	})

	t.Run("point pointers", func(t *testing.T) {
		assert.Equal(t, geom.Point{X: 1, Y: 2}, normalizeGeometry(&geom.Point{X: 1, Y: 2}))
	})

	t.Run("bounds", func(t *testing.T) {
		rect := normalizeGeometry(&geom.Bounds{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: 2, Y: 1}})
		require.IsType(t, geom.Polygon{}, rect)
		assert.Equal(t, TwoDimensional, geometryDimensions(rect))

		flat := normalizeGeometry(&geom.Bounds{Min: geom.Point{X: 0, Y: 1}, Max: geom.Point{X: 2, Y: 1}})
		assert.Equal(t, geom.LineString{{X: 0, Y: 1}, {X: 2, Y: 1}}, flat)

		point := normalizeGeometry(&geom.Bounds{Min: geom.Point{X: 3, Y: 3}, Max: geom.Point{X: 3, Y: 3}})
		assert.Equal(t, geom.Point{X: 3, Y: 3}, point)

		assert.Equal(t, geom.GeometryCollection{}, normalizeGeometry(geom.NewBounds()))
	})

	t.Run("unsupported", func(t *testing.T) {
		for name, g := range map[string]geom.Geom{
			"nil":        nil,
			"nil point":  (*geom.Point)(nil),
			"NaN":        geom.LineString{{X: 0, Y: 0}, {X: math.NaN(), Y: 1}},
			"nested NaN": geom.GeometryCollection{geom.Point{X: 0, Y: math.NaN()}},
		} {
			assert.Panics(t, func() { normalizeGeometry(g) }, name)
		}
	})
}

func TestGeometryBounds(t *testing.T) {
	assert.Nil(t, geometryBounds(geom.GeometryCollection{}))
	assert.Nil(t, geometryBounds(geom.MultiPoint{}))

	b := geometryBounds(geom.GeometryCollection{
		geom.MultiPoint{},
		geom.Point{X: 1, Y: 5},
		geom.LineString{{X: -1, Y: 0}, {X: 0, Y: 2}},
	})
	require.NotNil(t, b)
	assert.Equal(t, geom.Point{X: -1, Y: 0}, b.Min)
	assert.Equal(t, geom.Point{X: 1, Y: 5}, b.Max)
}

func TestGeometryDimensions(t *testing.T) {
	cases := []struct {
		name     string
		geometry geom.Geom
		dim      Dimensions
		boundary Dimensions
	}{
		{"point", geom.Point{}, ZeroDimensional, Empty},
		{"empty multipoint", geom.MultiPoint{}, Empty, Empty},
		{"line", line(0, 0, 1, 0), OneDimensional, ZeroDimensional},
		{"closed line", line(0, 0, 1, 0, 1, 1, 0, 0), OneDimensional, Empty},
		{"collapsed line", line(1, 1, 1, 1), ZeroDimensional, Empty},
		{"polygon", square(0, 0, 1, 1), TwoDimensional, OneDimensional},
		{"collection", geom.GeometryCollection{geom.Point{}, line(0, 0, 1, 0)}, OneDimensional, ZeroDimensional},
		{"empty collection", geom.GeometryCollection{}, Empty, Empty},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.dim, geometryDimensions(c.geometry))
			assert.Equal(t, c.boundary, geometryBoundaryDimensions(c.geometry))
		})
	}
}
