package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"
)

// A Label records how a graph element relates to each of the two operands.
// Index 0 is the first geometry, index 1 the second. Both slots are always of
// the same kind: either both area positions or both line/point positions.
type Label [2]TopologyPosition

// Label for an element that so far only belongs to the operand at geomIndex.
func NewLabel(geomIndex int, pos TopologyPosition) Label {
	var label Label
	if pos.IsArea() {
		label = emptyAreaLabel()
	} else {
		label = emptyLineOrPointLabel()
	}
	label[geomIndex] = pos
	return label
}

func emptyLineOrPointLabel() Label {
	return Label{emptyLineOrPointPosition(), emptyLineOrPointPosition()}
}

func emptyAreaLabel() Label {
	return Label{emptyAreaPosition(), emptyAreaPosition()}
}

func (l *Label) Flip() {
	l[0].Flip()
	l[1].Flip()
}

func (l Label) Position(geomIndex int, d Direction) CoordPos {
	return l[geomIndex].Get(d)
}

func (l Label) OnPosition(geomIndex int) CoordPos {
	return l[geomIndex].Get(On)
}

func (l *Label) SetPosition(geomIndex int, d Direction, pos CoordPos) {
	l[geomIndex].SetPosition(d, pos)
}

func (l *Label) SetOnPosition(geomIndex int, pos CoordPos) {
	l[geomIndex].SetOnPosition(pos)
}

func (l *Label) SetAllPositions(geomIndex int, pos CoordPos) {
	l[geomIndex].SetAllPositions(pos)
}

func (l *Label) SetAllPositionsIfEmpty(geomIndex int, pos CoordPos) {
	l[geomIndex].SetAllPositionsIfEmpty(pos)
}

// Number of operands this label knows anything about.
func (l Label) GeometryCount() int {
	count := 0
	for _, pos := range l {
		if !pos.IsEmpty() {
			count++
		}
	}
	return count
}

func (l Label) IsEmpty(geomIndex int) bool {
	return l[geomIndex].IsEmpty()
}

func (l Label) IsAnyEmpty(geomIndex int) bool {
	return l[geomIndex].IsAnyEmpty()
}

func (l Label) IsArea() bool {
	return l[0].IsArea() || l[1].IsArea()
}

func (l Label) IsGeomArea(geomIndex int) bool {
	return l[geomIndex].IsArea()
}

func (l Label) IsLine(geomIndex int) bool {
	return l[geomIndex].IsLine()
}

func (l Label) String() string {
	return fmt.Sprintf("A:%s B:%s", l[0], l[1])
}

// Colored variant of String for terminal debugging. Inside is green, boundary
// yellow, outside red, unknown cyan.
func (l Label) DbgString() string {
	return fmt.Sprintf("A:%s B:%s", colorPosition(l[0]), colorPosition(l[1]))
}

func colorPosition(p TopologyPosition) string {
	var out string
	directions := []Direction{On}
	if p.IsArea() {
		directions = []Direction{Left, On, Right}
	}
	for _, d := range directions {
		pos := p.Get(d)
		symbol := string([]byte{pos.symbol()})
		switch pos {
		case Inside:
			out += aurora.Green(symbol).String()
		case OnBoundary:
			out += aurora.Yellow(symbol).String()
		case Outside:
			out += aurora.Red(symbol).String()
		default:
			out += aurora.Cyan(symbol).String()
		}
	}
	return out
}
