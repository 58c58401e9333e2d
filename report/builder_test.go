package report

import (
	"testing"

	"github.com/keebs-rs/trove/layers"
)

func TestBuilderInsertionOrder(t *testing.T) {
	b := NewBuilder(48)
	b.Press(0x04) // A
	b.Press(0x05) // B
	b.Press(0x06) // C

	var r Report
	b.Build(&r)

	want := [NumKeySlots]uint8{0x04, 0x05, 0x06, 0, 0, 0}
	if r.Keys != want {
		t.Fatalf("Keys = %v, want %v", r.Keys, want)
	}

	// Releasing the middle key compacts the order without shuffling.
	b.Release(0x05)
	b.Build(&r)
	want = [NumKeySlots]uint8{0x04, 0x06, 0, 0, 0, 0}
	if r.Keys != want {
		t.Errorf("Keys after release = %v, want %v", r.Keys, want)
	}
}

func TestBuilderModifiers(t *testing.T) {
	b := NewBuilder(48)
	b.Press(uint8(layers.KeyLeftShift))
	b.Press(uint8(layers.KeyRightControl))
	b.Press(0x04)

	var r Report
	b.Build(&r)

	if r.Modifiers != 0x02|0x10 {
		t.Errorf("Modifiers = %#x, want %#x", r.Modifiers, 0x02|0x10)
	}
	if r.Keys[0] != 0x04 {
		t.Errorf("Keys[0] = %#x, want 0x04", r.Keys[0])
	}

	b.Release(uint8(layers.KeyLeftShift))
	b.Build(&r)
	if r.Modifiers != 0x10 {
		t.Errorf("Modifiers after release = %#x, want 0x10", r.Modifiers)
	}
}

func TestBuilderRolloverPhantom(t *testing.T) {
	b := NewBuilder(48)
	b.Press(uint8(layers.KeyLeftShift))
	for k := uint8(0x04); k < 0x04+NumKeySlots+1; k++ {
		b.Press(k)
	}

	var r Report
	b.Build(&r)

	if !r.IsPhantom() {
		t.Fatalf("report not phantom with %d keys held: %v", NumKeySlots+1, r.Keys)
	}
	if r.Modifiers != 0x02 {
		t.Errorf("phantom lost modifiers: %#x", r.Modifiers)
	}

	// Deterministic: rebuilding yields the identical phantom.
	var again Report
	b.Build(&again)
	if !r.Equal(&again) {
		t.Error("phantom report not deterministic")
	}

	// Dropping back to the slot count restores a normal report.
	b.Release(0x04 + NumKeySlots)
	b.Build(&r)
	if r.IsPhantom() {
		t.Error("report still phantom after release")
	}
	if r.Keys[0] != 0x04 {
		t.Errorf("Keys[0] = %#x, want 0x04", r.Keys[0])
	}
}

func TestBuilderReferenceCounts(t *testing.T) {
	// Two holders of the same usage: one slot, released only when both go.
	b := NewBuilder(48)
	b.Press(0x04)
	b.Press(0x04)

	var r Report
	b.Build(&r)
	if r.Keys[0] != 0x04 || r.Keys[1] != 0 {
		t.Fatalf("Keys = %v, want single 0x04", r.Keys)
	}

	b.Release(0x04)
	b.Build(&r)
	if r.Keys[0] != 0x04 {
		t.Error("usage dropped while still held by second holder")
	}

	b.Release(0x04)
	b.Build(&r)
	if r.Keys[0] != 0 {
		t.Error("usage not dropped after final release")
	}
}

func TestBuilderApply(t *testing.T) {
	b := NewBuilder(48)
	b.Apply(layers.Action{Kind: layers.ActionPress, Usage: 0x04})

	var r Report
	b.Build(&r)
	if r.Keys[0] != 0x04 {
		t.Fatalf("Keys[0] = %#x, want 0x04", r.Keys[0])
	}

	b.Apply(layers.Action{Kind: layers.ActionRelease, Usage: 0x04})
	b.Build(&r)
	if r.Keys[0] != 0 {
		t.Error("release action not applied")
	}
}

func TestBuilderIgnoresUnmatchedRelease(t *testing.T) {
	b := NewBuilder(48)
	b.Release(0x04)
	b.Release(uint8(layers.KeyLeftShift))

	var r Report
	b.Build(&r)
	if !r.Equal(&Blank) {
		t.Errorf("unmatched releases changed report: %+v", r)
	}
}

func TestBuilderReset(t *testing.T) {
	b := NewBuilder(48)
	b.Press(0x04)
	b.Press(uint8(layers.KeyLeftAlt))
	b.Reset()

	var r Report
	b.Build(&r)
	if !r.Equal(&Blank) {
		t.Errorf("report after Reset = %+v, want blank", r)
	}
}
