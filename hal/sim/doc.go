// Package sim provides a software key-matrix HAL for tests and host-side
// examples.
//
// The simulated matrix holds the electrical state of every key and serves
// it through the [hal.Matrix] interface exactly as wired hardware would:
// only the columns of the currently strobed row are visible to a read.
// Tests drive key state with [Matrix.Press] and [Matrix.Release], and can
// inject contact bounce with [Matrix.Glitch] to exercise the debouncer.
package sim
