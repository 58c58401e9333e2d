package keyboard

import (
	"sync"

	"github.com/keebs-rs/trove/pkg"
	"github.com/keebs-rs/trove/report"
)

// Transport is the collaborator boundary for USB report delivery.
//
// Submit hands off a completed report for endpoint transfer. It must not
// block: if the previous report has not yet been consumed by the host
// poll, Submit returns [pkg.ErrBusy] and the core applies its drop
// policy. The transport owns enumeration, descriptors, and endpoint
// mechanics; the core never sees them.
type Transport interface {
	Submit(r *report.Report) error
}

// ChanTransport is a Transport backed by a buffered channel, draining to
// whatever consumes the channel. It is used by tests and host-side
// examples in place of a USB device stack.
type ChanTransport struct {
	ch chan report.Report
}

// NewChanTransport creates a channel transport with the given queue depth.
// A depth of zero or less defaults to one, modeling a single in-flight
// report awaiting the host poll.
func NewChanTransport(depth int) *ChanTransport {
	if depth <= 0 {
		depth = 1
	}
	return &ChanTransport{ch: make(chan report.Report, depth)}
}

// Submit implements [Transport]. The report is copied into the queue;
// a full queue returns [pkg.ErrBusy] without blocking.
func (t *ChanTransport) Submit(r *report.Report) error {
	select {
	case t.ch <- *r:
		return nil
	default:
		return pkg.ErrBusy
	}
}

// Reports returns the channel of submitted reports.
func (t *ChanTransport) Reports() <-chan report.Report {
	return t.ch
}

// funcTransport adapts a function to the Transport interface.
type funcTransport struct {
	mu sync.Mutex
	fn func(r *report.Report) error
}

// TransportFunc adapts fn to the [Transport] interface, serializing calls.
func TransportFunc(fn func(r *report.Report) error) Transport {
	return &funcTransport{fn: fn}
}

func (t *funcTransport) Submit(r *report.Report) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fn(r)
}

// Compile-time interface checks
var (
	_ Transport = (*ChanTransport)(nil)
	_ Transport = (*funcTransport)(nil)
)
