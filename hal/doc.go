// Package hal defines the Hardware Abstraction Layer interface for the
// key-matrix GPIO lines.
//
// The firmware core drives the matrix exclusively through the [Matrix]
// interface: one strobe line per row, and a bitset read of every column
// line. Board vendors implement this interface for their GPIO controller;
// the [github.com/keebs-rs/trove/hal/sim] package provides a software
// implementation for tests and host-side examples.
//
// The interface is intentionally minimal and allocation-free. The settle
// delay between strobing a row and sampling its columns is a timing
// constant owned by the scanner configuration, not by the HAL, so that
// identical board wiring can be tuned without a vendor change.
package hal
