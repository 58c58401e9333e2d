// Package matrix implements the front half of the event pipeline: scanning
// the physical key matrix and debouncing raw contact state into key events.
//
// # Scanning
//
// [Scanner] strobes each row line in turn through the [hal.Matrix]
// boundary, waits a bounded settle delay, and samples every column,
// producing one [RowState] bitset per row per cycle. An optional ghost
// filter rejects samples that would complete an ambiguous rectangle on
// diode-less wiring.
//
// # Debouncing
//
// [Debouncer] runs an independent state machine per key position:
//
//	Released ── closed ──▶ PressPending ── closed×N ──▶ Pressed
//	Pressed ──── open ──▶ ReleasePending ── open×N ──▶ Released
//
// A pending state reverts silently if the sample flips back before the
// countdown expires, so contact bounce shorter than the threshold never
// produces an event. At most one [KeyEvent] is emitted per confirmed
// transition.
//
// # Zero-allocation contract
//
// All per-cycle state is allocated once at construction. Scan results are
// written into an internal buffer returned by reference, and events are
// appended into a caller-provided slice, so a steady-state cycle performs
// no heap allocation.
package matrix
