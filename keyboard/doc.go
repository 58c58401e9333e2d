// Package keyboard orchestrates the event pipeline: matrix scan, debounce,
// layer resolution, report assembly, and the handoff to the USB transport.
//
// # Cycle structure
//
// [Keyboard.Step] runs one complete cycle in strict sequence with no
// overlap between stages:
//
//	Scanner → Debouncer → Resolver → Builder → Transport
//
// State feeds forward only through explicit events; no stage holds a
// back-reference to a later one. All pipeline buffers are allocated at
// construction, so a steady-state cycle performs no heap allocation.
//
// [Keyboard.Run] drives Step from a fixed-period ticker on a single
// goroutine until the context is cancelled. There is no preemption and
// no suspension point inside a cycle; the bounded GPIO settle delay in
// the scanner is the only inherent wait.
//
// # Transport handoff
//
// A report is submitted only when its content differs from the last
// accepted report, plus an optional keep-alive refresh every
// KeepAliveCycles cycles. A busy transport causes the report to be
// dropped and counted; builder state is untouched, so the next changed
// cycle (or keep-alive) resubmits the current state. Transport busy is
// never fatal.
package keyboard
