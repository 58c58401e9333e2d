package keyboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/keebs-rs/trove/hal"
	"github.com/keebs-rs/trove/layers"
	"github.com/keebs-rs/trove/matrix"
	"github.com/keebs-rs/trove/pkg"
	"github.com/keebs-rs/trove/report"
)

// DefaultTickPeriod is the default scan cycle period, matching the
// original hardware's 750µs scan timer.
const DefaultTickPeriod = 750 * time.Microsecond

// Config holds the boot-time constants of the event pipeline. It is an
// immutable snapshot: the keyboard copies what it needs at construction.
type Config struct {
	Rows int
	Cols int

	// DebounceThreshold is the debounce countdown in scan cycles. Zero
	// selects [matrix.DefaultDebounceThreshold].
	DebounceThreshold uint8

	// SettleDelay is the row-strobe settle wait passed to the scanner.
	SettleDelay time.Duration

	// TickPeriod is the scan cycle period for [Keyboard.Run]. Zero
	// selects [DefaultTickPeriod].
	TickPeriod time.Duration

	// GhostFilter enables scanner ghost-key rejection.
	GhostFilter bool

	// KeepAliveCycles re-submits an unchanged report every N cycles.
	// Zero disables keep-alive.
	KeepAliveCycles uint32
}

// Stats counts pipeline activity since boot. Values are read through
// [Keyboard.Stats] and only written by the scan goroutine.
type Stats struct {
	Cycles    uint64 // Completed scan cycles
	Events    uint64 // Confirmed key events
	Submitted uint64 // Reports accepted by the transport
	Dropped   uint64 // Reports dropped on transport busy
}

// Keyboard is the top-level event pipeline: scanner, debouncer, resolver,
// and report builder, driven by a fixed-period tick and handing completed
// reports to the transport collaborator.
type Keyboard struct {
	cfg       Config
	scanner   *matrix.Scanner
	debouncer *matrix.Debouncer
	resolver  *layers.Resolver
	builder   *report.Builder
	transport Transport

	// Per-cycle buffers, allocated once.
	events []matrix.KeyEvent
	acts   []layers.Action
	cur    report.Report

	// lastSent is the last report accepted by the transport. Its zero
	// value is the blank report, so an idle boot emits nothing.
	lastSent report.Report

	// sinceSent counts cycles since the last accepted submission, for the
	// keep-alive cadence.
	sinceSent uint32

	cycle uint32

	mu      sync.Mutex
	running bool
	stats   Stats
}

// New assembles the pipeline from an immutable config snapshot, a
// validated keymap, the matrix HAL, and the report transport.
func New(cfg Config, km *layers.Keymap, m hal.Matrix, t Transport) (*Keyboard, error) {
	if t == nil {
		return nil, pkg.ErrNotConfigured
	}
	if cfg.Rows <= 0 {
		cfg.Rows = km.Rows
	}
	if cfg.Cols <= 0 {
		cfg.Cols = km.Cols
	}
	if cfg.Rows != km.Rows || cfg.Cols != km.Cols {
		return nil, pkg.ErrLayerShape
	}
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = DefaultTickPeriod
	}

	scanner, err := matrix.NewScanner(m, matrix.ScannerConfig{
		Rows:        cfg.Rows,
		Cols:        cfg.Cols,
		SettleDelay: cfg.SettleDelay,
		GhostFilter: cfg.GhostFilter,
	})
	if err != nil {
		return nil, err
	}

	debouncer, err := matrix.NewDebouncer(cfg.Rows, cfg.Cols, cfg.DebounceThreshold)
	if err != nil {
		return nil, err
	}

	resolver, err := layers.NewResolver(km)
	if err != nil {
		return nil, err
	}

	positions := cfg.Rows * cfg.Cols
	return &Keyboard{
		cfg:       cfg,
		scanner:   scanner,
		debouncer: debouncer,
		resolver:  resolver,
		builder:   report.NewBuilder(positions),
		transport: t,
		events:    make([]matrix.KeyEvent, 0, positions),
		acts:      make([]layers.Action, 0, 2*positions),
	}, nil
}

// Init initializes the matrix HAL. Called once before the first cycle;
// Run calls it implicitly.
func (k *Keyboard) Init() error {
	return k.scanner.Init()
}

// Step runs one complete pipeline cycle: scan, debounce, resolve, build,
// and hand off to the transport when the report content changed (or the
// keep-alive cadence is due).
func (k *Keyboard) Step() {
	samples := k.scanner.Scan()
	k.events = k.debouncer.Update(k.cycle, samples, k.events[:0])

	// Macro steps queued from earlier cycles play first, then this
	// cycle's confirmed events resolve in confirmation order.
	k.acts = k.resolver.Tick(k.acts[:0])
	for _, ev := range k.events {
		k.acts = k.resolver.Resolve(ev, k.acts)
	}
	for _, act := range k.acts {
		k.builder.Apply(act)
	}

	k.builder.Build(&k.cur)
	k.submit()

	k.cycle++
	k.mu.Lock()
	k.stats.Cycles++
	k.stats.Events += uint64(len(k.events))
	k.mu.Unlock()
}

// submit applies the emit-on-change and keep-alive policy, then the
// drop-on-busy policy for the transport handoff.
func (k *Keyboard) submit() {
	changed := !k.cur.Equal(&k.lastSent)
	keepAlive := k.cfg.KeepAliveCycles > 0 && k.sinceSent >= k.cfg.KeepAliveCycles

	if !changed && !keepAlive {
		k.sinceSent++
		return
	}

	err := k.transport.Submit(&k.cur)
	switch {
	case err == nil:
		k.lastSent = k.cur
		k.sinceSent = 0
		k.mu.Lock()
		k.stats.Submitted++
		k.mu.Unlock()
	case errors.Is(err, pkg.ErrBusy):
		// Drop-on-busy: builder state is intact, so the next changed
		// cycle or keep-alive resubmits the current state.
		k.sinceSent++
		k.mu.Lock()
		k.stats.Dropped++
		k.mu.Unlock()
		pkg.LogDebug(pkg.ComponentKeyboard, "report dropped",
			"status", pkg.SubmitDropped.String(), "cycle", k.cycle)
	default:
		k.sinceSent++
		k.mu.Lock()
		k.stats.Dropped++
		k.mu.Unlock()
		pkg.LogWarn(pkg.ComponentKeyboard, "transport submit failed", "err", err)
	}
}

// Run initializes the HAL and drives Step on a fixed-period ticker until
// ctx is cancelled. It returns [pkg.ErrAlreadyRunning] if the loop is
// active on another goroutine.
func (k *Keyboard) Run(ctx context.Context) error {
	k.mu.Lock()
	if k.running {
		k.mu.Unlock()
		return pkg.ErrAlreadyRunning
	}
	k.running = true
	k.mu.Unlock()

	defer func() {
		k.mu.Lock()
		k.running = false
		k.mu.Unlock()
	}()

	if err := k.Init(); err != nil {
		return err
	}

	pkg.LogInfo(pkg.ComponentKeyboard, "scan loop started",
		"rows", k.cfg.Rows,
		"cols", k.cfg.Cols,
		"tick", k.cfg.TickPeriod,
		"debounce", k.debouncer.Threshold())

	ticker := time.NewTicker(k.cfg.TickPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			pkg.LogInfo(pkg.ComponentKeyboard, "scan loop stopped")
			return ctx.Err()
		case <-ticker.C:
			k.Step()
		}
	}
}

// TickPeriod returns the effective scan cycle period.
func (k *Keyboard) TickPeriod() time.Duration {
	return k.cfg.TickPeriod
}

// Stats returns a snapshot of the pipeline counters.
func (k *Keyboard) Stats() Stats {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.stats
}

// ActiveLayers returns a copy of the resolver's active layer stack,
// bottom to top. Intended for diagnostics; the resolver remains the sole
// mutator.
func (k *Keyboard) ActiveLayers() []uint8 {
	return k.resolver.ActiveLayers()
}
