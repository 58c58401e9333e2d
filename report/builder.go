package report

import "github.com/keebs-rs/trove/layers"

// heldKey is one held non-modifier usage with a reference count. Two
// physical keys resolving to the same usage (or a macro overlapping a
// held key) share an entry; the usage leaves the report only when every
// holder has released it.
type heldKey struct {
	usage uint8
	count uint8
}

// Builder accumulates held logical keycodes and projects them into boot
// keyboard reports.
//
// Held keys keep their press insertion order across rebuilds so the
// host-visible slot assignment never shuffles while keys are held.
type Builder struct {
	// held lists non-modifier usages in press order. Capacity is fixed at
	// construction; the matrix cannot hold more distinct keys than it has
	// positions.
	held []heldKey

	// mods holds reference counts per modifier bit index.
	mods [8]uint8
}

// NewBuilder creates a builder sized for a matrix with the given number
// of key positions.
func NewBuilder(positions int) *Builder {
	if positions < NumKeySlots {
		positions = NumKeySlots
	}
	return &Builder{
		held: make([]heldKey, 0, positions),
	}
}

// Apply folds one resolver action into the held-key state.
func (b *Builder) Apply(act layers.Action) {
	switch act.Kind {
	case layers.ActionPress:
		b.Press(act.Usage)
	case layers.ActionRelease:
		b.Release(act.Usage)
	}
}

// Press asserts a logical usage.
func (b *Builder) Press(usage uint8) {
	if usage == 0 {
		return
	}
	if layers.IsModifierUsage(usage) {
		b.mods[usage-0xE0]++
		return
	}
	for i := range b.held {
		if b.held[i].usage == usage {
			b.held[i].count++
			return
		}
	}
	if len(b.held) < cap(b.held) {
		b.held = append(b.held, heldKey{usage: usage, count: 1})
	}
}

// Release deasserts a logical usage. Releases without a matching press
// are ignored.
func (b *Builder) Release(usage uint8) {
	if usage == 0 {
		return
	}
	if layers.IsModifierUsage(usage) {
		i := usage - 0xE0
		if b.mods[i] > 0 {
			b.mods[i]--
		}
		return
	}
	for i := range b.held {
		if b.held[i].usage != usage {
			continue
		}
		b.held[i].count--
		if b.held[i].count == 0 {
			b.held = append(b.held[:i], b.held[i+1:]...)
		}
		return
	}
}

// HeldCount returns the number of distinct held non-modifier usages.
func (b *Builder) HeldCount() int {
	return len(b.held)
}

// Build projects the held keys into out. If more than NumKeySlots
// non-modifier usages are held, out becomes the phantom rollover report
// with the modifier byte preserved.
func (b *Builder) Build(out *Report) {
	out.Clear()
	for i, n := range b.mods {
		if n > 0 {
			out.Modifiers |= 1 << uint(i)
		}
	}

	if len(b.held) > NumKeySlots {
		for i := range out.Keys {
			out.Keys[i] = KeyErrorRollOver
		}
		return
	}
	for i, h := range b.held {
		out.Keys[i] = h.usage
	}
}

// Reset releases everything, returning the builder to boot state.
func (b *Builder) Reset() {
	b.held = b.held[:0]
	b.mods = [8]uint8{}
}
