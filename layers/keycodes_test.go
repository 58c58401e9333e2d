package layers

import "testing"

func TestKeycodeFlags(t *testing.T) {
	tests := []struct {
		name      string
		k         Keycode
		shifted   bool
		momentary bool
		toggle    bool
		macro     bool
		usage     uint8
	}{
		{"plain", KeyA, false, false, false, false, 0x04},
		{"shifted", Shifted(Key1), true, false, false, false, 0x1E},
		{"momentary", MomentaryLayer(1), false, true, false, false, 1},
		{"toggle", ToggleLayer(2), false, false, true, false, 2},
		{"macro", Macro(3), false, false, false, true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.k.IsShifted(); got != tt.shifted {
				t.Errorf("IsShifted() = %v, want %v", got, tt.shifted)
			}
			if got := tt.k.IsMomentaryLayer(); got != tt.momentary {
				t.Errorf("IsMomentaryLayer() = %v, want %v", got, tt.momentary)
			}
			if got := tt.k.IsToggleLayer(); got != tt.toggle {
				t.Errorf("IsToggleLayer() = %v, want %v", got, tt.toggle)
			}
			if got := tt.k.IsMacro(); got != tt.macro {
				t.Errorf("IsMacro() = %v, want %v", got, tt.macro)
			}
			if got := tt.k.Usage(); got != tt.usage {
				t.Errorf("Usage() = %#x, want %#x", got, tt.usage)
			}
		})
	}
}

func TestTransparentMatchesNoFlag(t *testing.T) {
	// Transparent has every bit set and must not be mistaken for any
	// flagged keycode.
	if Transparent.IsShifted() || Transparent.IsMomentaryLayer() ||
		Transparent.IsToggleLayer() || Transparent.IsMacro() {
		t.Error("Transparent matched a flag predicate")
	}
}

func TestModifierPredicates(t *testing.T) {
	mods := []Keycode{
		KeyLeftControl, KeyLeftShift, KeyLeftAlt, KeyLeftGUI,
		KeyRightControl, KeyRightShift, KeyRightAlt, KeyRightGUI,
	}
	for _, m := range mods {
		if !m.IsModifier() {
			t.Errorf("%#x not recognized as modifier", m)
		}
	}

	for _, k := range []Keycode{KeyA, KeySpace, KeyF1, KeyVolumeUp, KeyMediaPlayPause} {
		if k.IsModifier() {
			t.Errorf("%#x wrongly recognized as modifier", k)
		}
	}

	// A shifted entry whose usage lands in the modifier range must not be
	// treated as a modifier keycode.
	if (FlagShifted | KeyLeftShift).IsModifier() {
		t.Error("flagged keycode treated as plain modifier")
	}
}

func TestModifierBit(t *testing.T) {
	tests := []struct {
		usage uint8
		want  uint8
	}{
		{uint8(KeyLeftControl), 1 << 0},
		{uint8(KeyLeftShift), 1 << 1},
		{uint8(KeyLeftAlt), 1 << 2},
		{uint8(KeyLeftGUI), 1 << 3},
		{uint8(KeyRightControl), 1 << 4},
		{uint8(KeyRightShift), 1 << 5},
		{uint8(KeyRightAlt), 1 << 6},
		{uint8(KeyRightGUI), 1 << 7},
	}

	for _, tt := range tests {
		if got := ModifierBit(tt.usage); got != tt.want {
			t.Errorf("ModifierBit(%#x) = %#x, want %#x", tt.usage, got, tt.want)
		}
	}
}
