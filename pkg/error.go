package pkg

import "errors"

// Pipeline and transport errors.
var (
	// ErrBusy indicates the transport has not yet consumed the previous report.
	ErrBusy = errors.New("transport busy")

	// ErrNotConfigured indicates a component is missing required configuration.
	ErrNotConfigured = errors.New("not configured")

	// ErrInvalidPosition indicates a key position outside the matrix dimensions.
	ErrInvalidPosition = errors.New("invalid key position")

	// ErrLayerOutOfRange indicates a layer index outside the keymap.
	ErrLayerOutOfRange = errors.New("layer index out of range")

	// ErrBaseLayerTransparent indicates a transparent entry in the base layer.
	ErrBaseLayerTransparent = errors.New("base layer entry transparent")

	// ErrLayerShape indicates a layer whose dimensions do not match the matrix.
	ErrLayerShape = errors.New("layer dimensions mismatch")

	// ErrBufferTooSmall indicates the provided buffer is too small.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrInvalidParameter indicates an invalid parameter was provided.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrAlreadyRunning indicates the scan loop is already running.
	ErrAlreadyRunning = errors.New("already running")

	// ErrNotRunning indicates the scan loop is not running.
	ErrNotRunning = errors.New("not running")

	// ErrUnknownKeyName indicates an unrecognized key name in a keymap table.
	ErrUnknownKeyName = errors.New("unknown key name")

	// ErrNoBaseLayer indicates a keymap without any layers.
	ErrNoBaseLayer = errors.New("keymap has no base layer")
)

// SubmitStatus represents the outcome of a report handoff to the transport.
type SubmitStatus int

// Submit status values.
const (
	SubmitAccepted SubmitStatus = iota // Report queued for the host poll
	SubmitBusy                         // Previous report not yet consumed
	SubmitDropped                      // Report discarded by drop-on-busy policy
)

// String returns a string representation of the submit status.
func (s SubmitStatus) String() string {
	switch s {
	case SubmitAccepted:
		return "accepted"
	case SubmitBusy:
		return "busy"
	case SubmitDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Error returns the corresponding error for the submit status.
func (s SubmitStatus) Error() error {
	switch s {
	case SubmitAccepted:
		return nil
	case SubmitBusy, SubmitDropped:
		return ErrBusy
	default:
		return ErrInvalidParameter
	}
}
