package internal

import "fmt"

// A DE-9IM matrix. Rows are positions relative to the first geometry, columns
// relative to the second, both in Inside, OnBoundary, Outside order. The zero
// value is the empty matrix, with every cell Empty.
type IntersectionMatrix [3][3]Dimensions

// Returned when a matrix or pattern string is malformed.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Message
}

func invalidInputf(format string, args ...interface{}) *InvalidInputError {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// Build a matrix from its nine character form, e.g. "212101212".
func ParseIntersectionMatrix(dimensions string) (IntersectionMatrix, error) {
	var im IntersectionMatrix
	if err := im.SetAtLeastFromString(dimensions); err != nil {
		return IntersectionMatrix{}, err
	}
	return im, nil
}

func (im IntersectionMatrix) Get(a, b CoordPos) Dimensions {
	return im[a][b]
}

// Overwrite a cell. Cells only ever grow, so lowering one is a bug.
func (im *IntersectionMatrix) set(a, b CoordPos, d Dimensions) {
	if im[a][b] > d {
		fatalf("lowering matrix cell (%v, %v) from %v to %v", a, b, im[a][b], d)
	}
	im[a][b] = d
}

// Raise a cell to at least d.
func (im *IntersectionMatrix) SetAtLeast(a, b CoordPos, d Dimensions) {
	if im[a][b] < d {
		im[a][b] = d
	}
}

// Like SetAtLeast, but does nothing unless both positions are known.
func (im *IntersectionMatrix) SetAtLeastIfInBoth(a, b CoordPos, d Dimensions) {
	if a == NoPos || b == NoPos {
		return
	}
	im.SetAtLeast(a, b, d)
}

// Raise every cell to at least the dimension named in a nine character
// string over 0, 1, 2 and F. The string is validated before anything is
// changed, so a bad string leaves the matrix untouched.
func (im *IntersectionMatrix) SetAtLeastFromString(dimensions string) error {
	symbols := []rune(dimensions)
	if len(symbols) != 9 {
		return invalidInputf("expected dimensions length 9, found: %d", len(symbols))
	}
	var parsed [9]Dimensions
	for i, c := range symbols {
		switch c {
		case '0':
			parsed[i] = ZeroDimensional
		case '1':
			parsed[i] = OneDimensional
		case '2':
			parsed[i] = TwoDimensional
		case 'F':
			parsed[i] = Empty
		default:
			return invalidInputf("expected '0', '1', '2', or 'F'. Found: %c", c)
		}
	}
	for i, d := range parsed {
		im.SetAtLeast(CoordPositions[i/3], CoordPositions[i%3], d)
	}
	return nil
}

func (im IntersectionMatrix) String() string {
	out := make([]byte, 0, 9)
	for _, a := range CoordPositions {
		for _, b := range CoordPositions {
			out = append(out, im[a][b].Symbol())
		}
	}
	return string(out)
}

// Test the matrix against a nine character pattern. Besides exact dimensions,
// '*' matches anything, 'T' any non-empty cell and 'F' an empty cell. 'T' and
// 'F' are case-insensitive.
func (im IntersectionMatrix) Matches(pattern string) (bool, error) {
	symbols := []rune(pattern)
	if len(symbols) != 9 {
		return false, invalidInputf("expected pattern length 9, found: %d", len(symbols))
	}
	matches := true
	for i, c := range symbols {
		cell := im[CoordPositions[i/3]][CoordPositions[i%3]]
		var ok bool
		switch c {
		case '*':
			ok = true
		case 'T', 't':
			ok = cell != Empty
		case 'F', 'f':
			ok = cell == Empty
		case '0':
			ok = cell == ZeroDimensional
		case '1':
			ok = cell == OneDimensional
		case '2':
			ok = cell == TwoDimensional
		default:
			return false, invalidInputf("expected '0', '1', '2', 'F', 'T' or '*'. Found: %c", c)
		}
		// Keep scanning after a mismatch so a malformed pattern is always
		// reported, whatever the matrix holds.
		matches = matches && ok
	}
	return matches, nil
}

// The matrix with the roles of the two geometries swapped.
func (im IntersectionMatrix) Transpose() IntersectionMatrix {
	var t IntersectionMatrix
	for _, a := range CoordPositions {
		for _, b := range CoordPositions {
			t[b][a] = im[a][b]
		}
	}
	return t
}

// FF*FF****
func (im IntersectionMatrix) IsDisjoint() bool {
	return im[Inside][Inside] == Empty &&
		im[Inside][OnBoundary] == Empty &&
		im[OnBoundary][Inside] == Empty &&
		im[OnBoundary][OnBoundary] == Empty
}

func (im IntersectionMatrix) IsIntersects() bool {
	return !im.IsDisjoint()
}

// T*F**F***
func (im IntersectionMatrix) IsWithin() bool {
	return im[Inside][Inside] != Empty &&
		im[Inside][Outside] == Empty &&
		im[OnBoundary][Outside] == Empty
}

// T*****FF*
func (im IntersectionMatrix) IsContains() bool {
	return im[Inside][Inside] != Empty &&
		im[Outside][Inside] == Empty &&
		im[Outside][OnBoundary] == Empty
}

// T*F**FFF*
func (im IntersectionMatrix) IsEqualTopo() bool {
	return im[Inside][Inside] != Empty &&
		im[Inside][Outside] == Empty &&
		im[OnBoundary][Outside] == Empty &&
		im[Outside][Inside] == Empty &&
		im[Outside][OnBoundary] == Empty
}

func (im IntersectionMatrix) hasPointInCommon() bool {
	return im[Inside][Inside] != Empty ||
		im[Inside][OnBoundary] != Empty ||
		im[OnBoundary][Inside] != Empty ||
		im[OnBoundary][OnBoundary] != Empty
}

// Every point of the first geometry lies in the second.
func (im IntersectionMatrix) IsCoveredBy() bool {
	return im.hasPointInCommon() &&
		im[Inside][Outside] == Empty &&
		im[OnBoundary][Outside] == Empty
}

// Every point of the second geometry lies in the first.
func (im IntersectionMatrix) IsCovers() bool {
	return im.hasPointInCommon() &&
		im[Outside][Inside] == Empty &&
		im[Outside][OnBoundary] == Empty
}

// The touches, crosses and overlaps predicates depend on the dimensions of
// the two geometries as well as the matrix.

func (im IntersectionMatrix) IsTouches(dimA, dimB Dimensions) bool {
	if dimA > dimB {
		return im.Transpose().IsTouches(dimB, dimA)
	}
	if dimA == ZeroDimensional && dimB == ZeroDimensional || dimA == Empty {
		return false
	}
	return im[Inside][Inside] == Empty &&
		(im[Inside][OnBoundary] != Empty ||
			im[OnBoundary][Inside] != Empty ||
			im[OnBoundary][OnBoundary] != Empty)
}

func (im IntersectionMatrix) IsCrosses(dimA, dimB Dimensions) bool {
	switch {
	case dimA == ZeroDimensional && dimB == OneDimensional,
		dimA == ZeroDimensional && dimB == TwoDimensional,
		dimA == OneDimensional && dimB == TwoDimensional:
		return im[Inside][Inside] != Empty && im[Inside][Outside] != Empty
	case dimA == OneDimensional && dimB == ZeroDimensional,
		dimA == TwoDimensional && dimB == ZeroDimensional,
		dimA == TwoDimensional && dimB == OneDimensional:
		return im[Inside][Inside] != Empty && im[Outside][Inside] != Empty
	case dimA == OneDimensional && dimB == OneDimensional:
		return im[Inside][Inside] == ZeroDimensional
	}
	return false
}

func (im IntersectionMatrix) IsOverlaps(dimA, dimB Dimensions) bool {
	switch {
	case dimA == ZeroDimensional && dimB == ZeroDimensional,
		dimA == TwoDimensional && dimB == TwoDimensional:
		return im[Inside][Inside] != Empty &&
			im[Inside][Outside] != Empty &&
			im[Outside][Inside] != Empty
	case dimA == OneDimensional && dimB == OneDimensional:
		return im[Inside][Inside] == OneDimensional &&
			im[Inside][Outside] != Empty &&
			im[Outside][Inside] != Empty
	}
	return false
}
