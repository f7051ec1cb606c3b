// Lower level access to the relate engine, for callers who want the topology
// graph behind a matrix and not just the matrix.
package advanced

import (
	"github.com/ctessum/geom"
	"github.com/osuushi/relate/internal"
)

type RelateOperation = internal.RelateOperation
type GeometryGraph = internal.GeometryGraph
type IntersectionMatrix = internal.IntersectionMatrix
type CoordPos = internal.CoordPos
type Dimensions = internal.Dimensions
type Label = internal.Label
type InvalidInputError = internal.InvalidInputError
type UnsupportedGeometryError = internal.UnsupportedGeometryError

const (
	Inside     = internal.Inside
	OnBoundary = internal.OnBoundary
	Outside    = internal.Outside
)

const (
	Empty           = internal.Empty
	ZeroDimensional = internal.ZeroDimensional
	OneDimensional  = internal.OneDimensional
	TwoDimensional  = internal.TwoDimensional
)

// Build the graphs for a and b without computing anything yet. Geometry the
// engine can't handle is reported as an *UnsupportedGeometryError.
func NewRelateOperation(a, b geom.Geom) (op *RelateOperation, err error) {
	defer func() {
		if recoveredErr := HandleRelatePanicRecover(recover()); recoveredErr != nil {
			op = nil
			err = recoveredErr
		}
	}()
	return internal.NewRelateOperation(a, b), nil
}

// Run op, recovering unsupported input the same way NewRelateOperation does.
func ComputeIntersectionMatrix(op *RelateOperation) (im IntersectionMatrix, err error) {
	defer func() {
		if recoveredErr := HandleRelatePanicRecover(recover()); recoveredErr != nil {
			im = IntersectionMatrix{}
			err = recoveredErr
		}
	}()
	return op.ComputeIntersectionMatrix(), nil
}

// Convert a recovered panic into an error if it signals unsupported input.
// Any other panic is a bug in the engine, and is re-raised.
func HandleRelatePanicRecover(r interface{}) error {
	return internal.HandleRelatePanicRecover(r)
}

func ParseIntersectionMatrix(dimensions string) (IntersectionMatrix, error) {
	return internal.ParseIntersectionMatrix(dimensions)
}
