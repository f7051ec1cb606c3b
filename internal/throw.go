package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// Threading errors up and down graph construction, noding and labeling would
// add a ton of complexity to code where nearly every failure is a bug. Instead,
// we use panics. Input we can't handle panics with an UnsupportedGeometryError,
// which the public API recovers and returns. Anything else is a broken
// invariant, and keeps panicking.

type RelateError error

// Panic with a RelateError. Use this for internal invariants only.
func fatalf(format string, args ...interface{}) {
	panic(RelateError(errors.Errorf(format, args...)))
}

// Returned when an input geometry is of a type the engine doesn't know how to
// build a graph for, or carries coordinates it can't order (NaN).
type UnsupportedGeometryError struct {
	Reason string
}

func (e *UnsupportedGeometryError) Error() string {
	return "unsupported geometry: " + e.Reason
}

func throwUnsupported(format string, args ...interface{}) {
	panic(&UnsupportedGeometryError{Reason: fmt.Sprintf(format, args...)})
}

func HandleRelatePanicRecover(r interface{}) error {
	if r != nil {
		if unsupported, ok := r.(*UnsupportedGeometryError); ok {
			return unsupported
		}
		panic(r)
	}
	return nil
}
