package sim

import (
	"sync"

	"github.com/keebs-rs/trove/hal"
	"github.com/keebs-rs/trove/pkg"
)

// Matrix is a simulated key matrix implementing [hal.Matrix].
//
// It is safe for concurrent use: test code mutates key state while the
// scan loop strobes and reads on its own goroutine.
type Matrix struct {
	mu sync.Mutex

	rows int
	cols int

	// keys holds the electrical contact state, one column bitset per row.
	keys []uint16

	// glitch holds per-key counters of pending inverted reads, used to
	// simulate contact bounce.
	glitch []uint8

	// strobed is the currently active row, or -1 when none.
	strobed int

	inited bool
}

// New creates a simulated matrix with the given dimensions.
func New(rows, cols int) *Matrix {
	return &Matrix{
		rows:    rows,
		cols:    cols,
		keys:    make([]uint16, rows),
		glitch:  make([]uint8, rows*cols),
		strobed: -1,
	}
}

// Init implements [hal.Matrix].
func (m *Matrix) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.strobed = -1
	m.inited = true
	pkg.LogDebug(pkg.ComponentHAL, "simulated matrix initialized",
		"rows", m.rows, "cols", m.cols)
	return nil
}

// SetRow implements [hal.Matrix].
func (m *Matrix) SetRow(index int, active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index < 0 || index >= m.rows {
		return
	}
	if active {
		m.strobed = index
	} else if m.strobed == index {
		m.strobed = -1
	}
}

// ReadColumns implements [hal.Matrix]. It returns the contact state of the
// strobed row, with any pending glitches applied.
func (m *Matrix) ReadColumns() uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.strobed < 0 {
		return 0
	}
	sample := m.keys[m.strobed]
	base := m.strobed * m.cols
	for c := 0; c < m.cols; c++ {
		if m.glitch[base+c] > 0 {
			m.glitch[base+c]--
			sample ^= 1 << uint(c)
		}
	}
	return sample
}

// Press closes the key contact at (row, col).
func (m *Matrix) Press(row, col int) {
	m.setKey(row, col, true)
}

// Release opens the key contact at (row, col).
func (m *Matrix) Release(row, col int) {
	m.setKey(row, col, false)
}

// Glitch inverts the next n reads of the key at (row, col), simulating
// mechanical contact bounce.
func (m *Matrix) Glitch(row, col, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols || n < 0 {
		return
	}
	m.glitch[row*m.cols+col] = uint8(min(n, 255))
}

// IsPressed reports the electrical contact state of the key at (row, col).
func (m *Matrix) IsPressed(row, col int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return false
	}
	return m.keys[row]&(1<<uint(col)) != 0
}

func (m *Matrix) setKey(row, col int, closed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return
	}
	if closed {
		m.keys[row] |= 1 << uint(col)
	} else {
		m.keys[row] &^= 1 << uint(col)
	}
}

// Compile-time interface check
var _ hal.Matrix = (*Matrix)(nil)
