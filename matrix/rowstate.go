package matrix

import "math/bits"

// MaxCols is the maximum number of columns representable in a [RowState].
const MaxCols = 16

// RowState is the contact state of one matrix row, one bit per column.
type RowState uint16

// Column returns the contact state of the column at index.
func (s RowState) Column(index int) bool {
	return s&(1<<uint(index%MaxCols)) != 0
}

// SetColumn sets the contact state of the column at index.
func (s *RowState) SetColumn(index int, closed bool) {
	if closed {
		*s |= 1 << uint(index%MaxCols)
	} else {
		*s &^= 1 << uint(index%MaxCols)
	}
}

// Active reports whether any column is closed.
func (s RowState) Active() bool {
	return s != 0
}

// Count returns the number of closed columns.
func (s RowState) Count() int {
	return bits.OnesCount16(uint16(s))
}

// Position identifies one physical switch by row and column.
type Position struct {
	Row uint8
	Col uint8
}

// KeyEvent is a confirmed logical transition for one key position.
type KeyEvent struct {
	Pos     Position
	Pressed bool   // true for press, false for release
	Cycle   uint32 // scan cycle that confirmed the transition
}
