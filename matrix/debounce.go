package matrix

import "github.com/keebs-rs/trove/pkg"

// DebouncePhase is the debounce state of one key position.
type DebouncePhase uint8

// Debounce phases.
const (
	PhaseReleased       DebouncePhase = iota // Stable open
	PhasePressPending                        // Closing, countdown running
	PhasePressed                             // Stable closed
	PhaseReleasePending                      // Opening, countdown running
)

// String returns a string representation of the debounce phase.
func (p DebouncePhase) String() string {
	switch p {
	case PhaseReleased:
		return "released"
	case PhasePressPending:
		return "press-pending"
	case PhasePressed:
		return "pressed"
	case PhaseReleasePending:
		return "release-pending"
	default:
		return "unknown"
	}
}

// DefaultDebounceThreshold is the default countdown in scan cycles. At the
// original hardware's 750µs scan interval this absorbs roughly 3ms of
// contact bounce.
const DefaultDebounceThreshold = 4

// Debouncer converts noisy raw contact samples into stable key events.
//
// Each key position runs an independent state machine with a countdown
// counter. A transition is confirmed only after threshold+1 consecutive
// consistent samples; any flip during the pending window reverts the
// machine silently without emitting an event.
type Debouncer struct {
	rows      int
	cols      int
	threshold uint8

	phase []DebouncePhase
	count []uint8
}

// NewDebouncer creates a debouncer for a rows×cols matrix. All positions
// start in the released phase. A zero threshold is replaced by
// [DefaultDebounceThreshold].
func NewDebouncer(rows, cols int, threshold uint8) (*Debouncer, error) {
	if rows <= 0 || cols <= 0 || cols > MaxCols {
		return nil, pkg.ErrInvalidParameter
	}
	if threshold == 0 {
		threshold = DefaultDebounceThreshold
	}
	return &Debouncer{
		rows:      rows,
		cols:      cols,
		threshold: threshold,
		phase:     make([]DebouncePhase, rows*cols),
		count:     make([]uint8, rows*cols),
	}, nil
}

// Threshold returns the configured countdown in cycles.
func (d *Debouncer) Threshold() uint8 {
	return d.threshold
}

// Phase returns the debounce phase of the key at pos.
func (d *Debouncer) Phase(pos Position) DebouncePhase {
	if int(pos.Row) >= d.rows || int(pos.Col) >= d.cols {
		return PhaseReleased
	}
	return d.phase[int(pos.Row)*d.cols+int(pos.Col)]
}

// Update advances every key's state machine with the cycle's samples and
// appends at most one KeyEvent per confirmed transition to events,
// returning the extended slice. samples must hold one RowState per row.
func (d *Debouncer) Update(cycle uint32, samples []RowState, events []KeyEvent) []KeyEvent {
	for r := 0; r < d.rows && r < len(samples); r++ {
		row := samples[r]
		base := r * d.cols
		for c := 0; c < d.cols; c++ {
			i := base + c
			closed := row.Column(c)

			switch d.phase[i] {
			case PhaseReleased:
				if closed {
					d.phase[i] = PhasePressPending
					d.count[i] = d.threshold
				}

			case PhasePressPending:
				if !closed {
					// Bounce rejected
					d.phase[i] = PhaseReleased
					break
				}
				d.count[i]--
				if d.count[i] == 0 {
					d.phase[i] = PhasePressed
					events = append(events, KeyEvent{
						Pos:     Position{Row: uint8(r), Col: uint8(c)},
						Pressed: true,
						Cycle:   cycle,
					})
				}

			case PhasePressed:
				if !closed {
					d.phase[i] = PhaseReleasePending
					d.count[i] = d.threshold
				}

			case PhaseReleasePending:
				if closed {
					// Bounce rejected
					d.phase[i] = PhasePressed
					break
				}
				d.count[i]--
				if d.count[i] == 0 {
					d.phase[i] = PhaseReleased
					events = append(events, KeyEvent{
						Pos:     Position{Row: uint8(r), Col: uint8(c)},
						Pressed: false,
						Cycle:   cycle,
					})
				}
			}
		}
	}
	return events
}
