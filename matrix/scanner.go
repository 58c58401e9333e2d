package matrix

import (
	"time"

	"github.com/keebs-rs/trove/hal"
	"github.com/keebs-rs/trove/pkg"
)

// ScannerConfig holds the scanner timing and policy constants.
type ScannerConfig struct {
	Rows int
	Cols int

	// SettleDelay is the bounded wait between strobing a row and sampling
	// its columns, allowing the line levels to stabilize. Zero disables
	// the wait (appropriate for simulated matrices).
	SettleDelay time.Duration

	// GhostFilter enables ghost-key rejection for diode-less wiring. When
	// a sample would complete a rectangle of two or more rows sharing two
	// or more closed columns, the involved rows are held at their last
	// accepted sample for the cycle.
	GhostFilter bool
}

// Scanner drives the row lines and samples raw contact state for every key
// position once per cycle.
type Scanner struct {
	hal hal.Matrix
	cfg ScannerConfig

	// samples is the scan output buffer, reused every cycle.
	samples []RowState

	// accepted is the last ghost-free sample set, used to hold rows when
	// the ghost filter rejects a cycle's sample.
	accepted []RowState
}

// NewScanner creates a scanner over the given matrix HAL.
func NewScanner(m hal.Matrix, cfg ScannerConfig) (*Scanner, error) {
	if m == nil {
		return nil, pkg.ErrNotConfigured
	}
	if cfg.Rows <= 0 || cfg.Cols <= 0 || cfg.Cols > MaxCols {
		return nil, pkg.ErrInvalidParameter
	}
	return &Scanner{
		hal:      m,
		cfg:      cfg,
		samples:  make([]RowState, cfg.Rows),
		accepted: make([]RowState, cfg.Rows),
	}, nil
}

// Init initializes the underlying matrix HAL.
func (s *Scanner) Init() error {
	return s.hal.Init()
}

// Scan strobes every row and samples its columns, returning one RowState
// per row. The returned slice aliases an internal buffer owned by the
// scanner and is valid until the next call.
func (s *Scanner) Scan() []RowState {
	mask := RowState(1<<uint(s.cfg.Cols) - 1)

	for r := 0; r < s.cfg.Rows; r++ {
		s.hal.SetRow(r, true)
		if s.cfg.SettleDelay > 0 {
			time.Sleep(s.cfg.SettleDelay)
		}
		s.samples[r] = RowState(s.hal.ReadColumns()) & mask

		// Deactivate before the next strobe to avoid interference with
		// the following row's read.
		s.hal.SetRow(r, false)
	}

	if s.cfg.GhostFilter {
		s.filterGhosts()
	}
	copy(s.accepted, s.samples)

	return s.samples
}

// filterGhosts holds any row pair sharing two or more closed columns at its
// last accepted sample. Such a pair forms a rectangle whose fourth corner
// is electrically indistinguishable from a real press on diode-less wiring.
func (s *Scanner) filterGhosts() {
	for i := 0; i < len(s.samples); i++ {
		for j := i + 1; j < len(s.samples); j++ {
			if (s.samples[i] & s.samples[j]).Count() >= 2 {
				s.samples[i] = s.accepted[i]
				s.samples[j] = s.accepted[j]
			}
		}
	}
}
