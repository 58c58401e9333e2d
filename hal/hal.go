package hal

// Matrix is the vendor boundary for key-matrix GPIO access.
//
// Rows are output lines driven active one at a time (strobing); columns
// are input lines sampled together as a bitset. With the conventional
// pull-up wiring, "active" means driven low, and a pressed key pulls its
// column line low while its row is active. Implementations translate
// these logical levels to whatever the board requires.
//
// Implementations must not block: SetRow and ReadColumns are called from
// the scan loop's timing-critical path once per row per cycle.
type Matrix interface {
	// Init prepares the GPIO lines: rows as inactive outputs, columns as
	// pulled-up inputs. Called once before the first scan cycle.
	Init() error

	// SetRow drives the row line at index active (strobed) or inactive.
	// Index is in [0, rows). Out-of-range indices are ignored.
	SetRow(index int, active bool)

	// ReadColumns samples every column line and returns the result as a
	// bitset, bit i set when the key at (active row, column i) is closed.
	ReadColumns() uint16
}
