package internal

import "fmt"

// Where a coordinate sits relative to a geometry. The values double as matrix
// indexes, so their order matters.
type CoordPos int8

const (
	Inside CoordPos = iota
	OnBoundary
	Outside
)

// NoPos is an undetermined position. It never indexes a matrix.
const NoPos CoordPos = -1

// All determined positions, in matrix order.
var CoordPositions = [3]CoordPos{Inside, OnBoundary, Outside}

func (p CoordPos) String() string {
	switch p {
	case Inside:
		return "Inside"
	case OnBoundary:
		return "OnBoundary"
	case Outside:
		return "Outside"
	case NoPos:
		return "None"
	}
	return fmt.Sprintf("CoordPos(%d)", int8(p))
}

// Single character form used in label debug strings.
func (p CoordPos) symbol() byte {
	switch p {
	case Inside:
		return 'i'
	case OnBoundary:
		return 'b'
	case Outside:
		return 'e'
	}
	return '_'
}

// Dimension of a geometry, or of one cell of an intersection matrix. Ordered,
// so comparisons do what you'd expect.
type Dimensions int8

const (
	Empty Dimensions = iota
	ZeroDimensional
	OneDimensional
	TwoDimensional
)

func (d Dimensions) String() string {
	switch d {
	case Empty:
		return "Empty"
	case ZeroDimensional:
		return "ZeroDimensional"
	case OneDimensional:
		return "OneDimensional"
	case TwoDimensional:
		return "TwoDimensional"
	}
	return fmt.Sprintf("Dimensions(%d)", int8(d))
}

// The DE-9IM character for the dimension.
func (d Dimensions) Symbol() byte {
	switch d {
	case ZeroDimensional:
		return '0'
	case OneDimensional:
		return '1'
	case TwoDimensional:
		return '2'
	}
	return 'F'
}

func maxDimensions(a, b Dimensions) Dimensions {
	if a > b {
		return a
	}
	return b
}

// Which side of a directed edge a position describes. On is the edge itself.
type Direction int8

const (
	On Direction = iota
	Left
	Right
)

// A geometry's classification at a graph element. Points and lines only carry
// an On position. Areas also carry Left and Right relative to the edge's
// direction.
type TopologyPosition struct {
	area            bool
	on, left, right CoordPos
}

func NewLineOrPointPosition(on CoordPos) TopologyPosition {
	return TopologyPosition{on: on, left: NoPos, right: NoPos}
}

func NewAreaPosition(on, left, right CoordPos) TopologyPosition {
	return TopologyPosition{area: true, on: on, left: left, right: right}
}

func emptyLineOrPointPosition() TopologyPosition {
	return NewLineOrPointPosition(NoPos)
}

func emptyAreaPosition() TopologyPosition {
	return NewAreaPosition(NoPos, NoPos, NoPos)
}

func (p TopologyPosition) IsArea() bool { return p.area }
func (p TopologyPosition) IsLine() bool { return !p.area }

func (p TopologyPosition) Get(d Direction) CoordPos {
	switch d {
	case On:
		return p.on
	case Left:
		if p.area {
			return p.left
		}
	case Right:
		if p.area {
			return p.right
		}
	}
	return NoPos
}

// True if nothing at all is known.
func (p TopologyPosition) IsEmpty() bool {
	if p.area {
		return p.on == NoPos && p.left == NoPos && p.right == NoPos
	}
	return p.on == NoPos
}

// True if anything is still unknown.
func (p TopologyPosition) IsAnyEmpty() bool {
	if p.area {
		return p.on == NoPos || p.left == NoPos || p.right == NoPos
	}
	return p.on == NoPos
}

func (p *TopologyPosition) Flip() {
	if p.area {
		p.left, p.right = p.right, p.left
	}
}

func (p *TopologyPosition) SetAllPositions(pos CoordPos) {
	p.on = pos
	if p.area {
		p.left = pos
		p.right = pos
	}
}

func (p *TopologyPosition) SetAllPositionsIfEmpty(pos CoordPos) {
	if p.on == NoPos {
		p.on = pos
	}
	if p.area {
		if p.left == NoPos {
			p.left = pos
		}
		if p.right == NoPos {
			p.right = pos
		}
	}
}

func (p *TopologyPosition) SetPosition(d Direction, pos CoordPos) {
	switch d {
	case On:
		p.on = pos
	case Left:
		if !p.area {
			fatalf("cannot set left position on a line or point position")
		}
		p.left = pos
	case Right:
		if !p.area {
			fatalf("cannot set right position on a line or point position")
		}
		p.right = pos
	default:
		fatalf("unknown direction %d", d)
	}
}

func (p *TopologyPosition) SetOnPosition(pos CoordPos) {
	p.on = pos
}

func (p *TopologyPosition) SetLocations(on, left, right CoordPos) {
	if !p.area {
		fatalf("cannot set side positions on a line or point position")
	}
	p.on = on
	p.left = left
	p.right = right
}

// Compact form: left, on, right for areas ("ibe"), just on for lines ("b").
func (p TopologyPosition) String() string {
	if p.area {
		return string([]byte{p.left.symbol(), p.on.symbol(), p.right.symbol()})
	}
	return string([]byte{p.on.symbol()})
}
