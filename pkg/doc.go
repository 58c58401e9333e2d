// Package pkg provides shared utilities for the trove keyboard firmware core.
//
// This package contains common functionality used across the scan, layer,
// and report pipeline, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error types for pipeline and transport conditions
//   - Component identifiers for log filtering
//
// The package is designed to have zero external dependencies, relying
// only on the Go standard library, so that it remains portable to
// bare-metal targets.
//
// # Logging
//
// The logging subsystem wraps [log/slog] with firmware-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentKeyboard, "keymap loaded", "layers", 3)
//
// The per-cycle pipeline never logs; logging is reserved for lifecycle
// events and diagnostics outside the scan loop.
//
// # Errors
//
// Common conditions are defined as sentinel values:
//
//	if errors.Is(err, pkg.ErrBusy) {
//	    // Previous report not yet consumed by the host poll
//	}
package pkg
