// A DE-9IM relate engine for Go.
//
// Given two planar geometries, this package computes the dimensionally
// extended nine-intersection matrix describing how their interiors,
// boundaries and exteriors meet. Predicates like contains, within and
// intersects are fixed patterns over that matrix.
//
// Geometries are github.com/ctessum/geom values. Invalid geometry (such as a
// self-crossing polygon ring) is processed on a best-effort basis and gives
// undefined results, with a warning logged.
package relate

import (
	"github.com/ctessum/geom"
	"github.com/osuushi/relate/advanced"
	"github.com/osuushi/relate/internal"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type IntersectionMatrix = advanced.IntersectionMatrix
type CoordPos = advanced.CoordPos
type Dimensions = advanced.Dimensions
type InvalidInputError = advanced.InvalidInputError
type UnsupportedGeometryError = advanced.UnsupportedGeometryError

const (
	Inside     = advanced.Inside
	OnBoundary = advanced.OnBoundary
	Outside    = advanced.Outside
)

const (
	Empty           = advanced.Empty
	ZeroDimensional = advanced.ZeroDimensional
	OneDimensional  = advanced.OneDimensional
	TwoDimensional  = advanced.TwoDimensional
)

// Compute the DE-9IM matrix of a relative to b. Rows are a's interior,
// boundary and exterior; columns are b's.
//
// The only error is an *UnsupportedGeometryError (wrapped), for geometry types
// the engine doesn't handle or NaN coordinates.
func Relate(a, b geom.Geom) (im IntersectionMatrix, err error) {
	op, err := advanced.NewRelateOperation(a, b)
	if err != nil {
		return IntersectionMatrix{}, errors.Wrap(err, "relate")
	}
	im, err = advanced.ComputeIntersectionMatrix(op)
	if err != nil {
		return IntersectionMatrix{}, errors.Wrap(err, "relate")
	}
	return im, nil
}

// Relate a and b, and test the matrix against a pattern like "T*F**F***".
func RelatePattern(a, b geom.Geom, pattern string) (bool, error) {
	im, err := Relate(a, b)
	if err != nil {
		return false, err
	}
	return im.Matches(pattern)
}

// Parse a nine character matrix string like "212101212".
func ParseIntersectionMatrix(dimensions string) (IntersectionMatrix, error) {
	return advanced.ParseIntersectionMatrix(dimensions)
}

// Send the engine's warnings and debug output to logger. Passing nil restores
// the logrus standard logger.
func SetLogger(logger logrus.FieldLogger) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	internal.Log = logger
}
