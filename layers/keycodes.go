package layers

// Keycode is one keymap entry: an 8-bit HID usage in the low byte, with
// flag bits encoding shifted keys and layer/macro actions above it.
type Keycode uint16

// Flag bits and masks.
const (
	// maskUsage selects the HID usage (or layer/macro index) byte.
	maskUsage Keycode = 0x00FF

	// FlagShifted marks a usage sent with the left-shift modifier held.
	FlagShifted Keycode = 0x0100

	// flagMomentary marks a hold-to-activate layer switch; the low byte
	// is the layer index.
	flagMomentary Keycode = 0x0200

	// flagToggle marks a toggled layer switch; the low byte is the layer
	// index.
	flagToggle Keycode = 0x0400

	// flagMacro marks a macro trigger; the low byte is the macro index.
	flagMacro Keycode = 0x0800

	// Transparent is a layer entry with no binding; resolution falls
	// through to the next lower active layer.
	Transparent Keycode = 0xFFFF
)

// Shifted returns k sent with the left-shift modifier asserted for the
// duration of the hold.
func Shifted(k Keycode) Keycode {
	return k | FlagShifted
}

// MomentaryLayer returns a keycode that activates layer n while held.
func MomentaryLayer(n uint8) Keycode {
	return flagMomentary | Keycode(n)
}

// ToggleLayer returns a keycode that toggles layer n on press.
func ToggleLayer(n uint8) Keycode {
	return flagToggle | Keycode(n)
}

// Macro returns a keycode that triggers macro n on press.
func Macro(n uint8) Keycode {
	return flagMacro | Keycode(n)
}

// Usage returns the 8-bit HID usage (or layer/macro index) of k.
func (k Keycode) Usage() uint8 {
	return uint8(k & maskUsage)
}

// IsShifted reports whether k carries the shifted marker.
func (k Keycode) IsShifted() bool {
	return k != Transparent && k&FlagShifted != 0
}

// IsMomentaryLayer reports whether k is a hold-to-activate layer switch.
func (k Keycode) IsMomentaryLayer() bool {
	return k != Transparent && k&flagMomentary != 0
}

// IsToggleLayer reports whether k is a toggled layer switch.
func (k Keycode) IsToggleLayer() bool {
	return k != Transparent && k&flagToggle != 0
}

// IsMacro reports whether k is a macro trigger.
func (k Keycode) IsMacro() bool {
	return k != Transparent && k&flagMacro != 0
}

// IsModifier reports whether k is a plain modifier usage (LeftControl
// through RightGUI).
func (k Keycode) IsModifier() bool {
	return k&^maskUsage == 0 && IsModifierUsage(k.Usage())
}

// IsModifierUsage reports whether an 8-bit usage is a modifier key.
func IsModifierUsage(usage uint8) bool {
	return usage >= uint8(KeyLeftControl) && usage <= uint8(KeyRightGUI)
}

// ModifierBit converts a modifier usage to its bit in the report's
// modifier byte.
func ModifierBit(usage uint8) uint8 {
	return 1 << (usage - uint8(KeyLeftControl))
}

// Keyboard usage constants (USB HID Usage Tables, Keyboard/Keypad page).
const (
	KeyNone        Keycode = 0x00
	KeyA           Keycode = 0x04
	KeyB           Keycode = 0x05
	KeyC           Keycode = 0x06
	KeyD           Keycode = 0x07
	KeyE           Keycode = 0x08
	KeyF           Keycode = 0x09
	KeyG           Keycode = 0x0A
	KeyH           Keycode = 0x0B
	KeyI           Keycode = 0x0C
	KeyJ           Keycode = 0x0D
	KeyK           Keycode = 0x0E
	KeyL           Keycode = 0x0F
	KeyM           Keycode = 0x10
	KeyN           Keycode = 0x11
	KeyO           Keycode = 0x12
	KeyP           Keycode = 0x13
	KeyQ           Keycode = 0x14
	KeyR           Keycode = 0x15
	KeyS           Keycode = 0x16
	KeyT           Keycode = 0x17
	KeyU           Keycode = 0x18
	KeyV           Keycode = 0x19
	KeyW           Keycode = 0x1A
	KeyX           Keycode = 0x1B
	KeyY           Keycode = 0x1C
	KeyZ           Keycode = 0x1D
	Key1           Keycode = 0x1E
	Key2           Keycode = 0x1F
	Key3           Keycode = 0x20
	Key4           Keycode = 0x21
	Key5           Keycode = 0x22
	Key6           Keycode = 0x23
	Key7           Keycode = 0x24
	Key8           Keycode = 0x25
	Key9           Keycode = 0x26
	Key0           Keycode = 0x27
	KeyEnter       Keycode = 0x28
	KeyEscape      Keycode = 0x29
	KeyBackspace   Keycode = 0x2A
	KeyTab         Keycode = 0x2B
	KeySpace       Keycode = 0x2C
	KeyMinus       Keycode = 0x2D
	KeyEqual       Keycode = 0x2E
	KeyLeftBrace   Keycode = 0x2F
	KeyRightBrace  Keycode = 0x30
	KeyBackslash   Keycode = 0x31
	KeySemicolon   Keycode = 0x33
	KeyQuote       Keycode = 0x34
	KeyGrave       Keycode = 0x35
	KeyComma       Keycode = 0x36
	KeyDot         Keycode = 0x37
	KeySlash       Keycode = 0x38
	KeyCapsLock    Keycode = 0x39
	KeyF1          Keycode = 0x3A
	KeyF2          Keycode = 0x3B
	KeyF3          Keycode = 0x3C
	KeyF4          Keycode = 0x3D
	KeyF5          Keycode = 0x3E
	KeyF6          Keycode = 0x3F
	KeyF7          Keycode = 0x40
	KeyF8          Keycode = 0x41
	KeyF9          Keycode = 0x42
	KeyF10         Keycode = 0x43
	KeyF11         Keycode = 0x44
	KeyF12         Keycode = 0x45
	KeyPrintScreen Keycode = 0x46
	KeyScrollLock  Keycode = 0x47
	KeyPause       Keycode = 0x48
	KeyInsert      Keycode = 0x49
	KeyHome        Keycode = 0x4A
	KeyPageUp      Keycode = 0x4B
	KeyDelete      Keycode = 0x4C
	KeyEnd         Keycode = 0x4D
	KeyPageDown    Keycode = 0x4E
	KeyRight       Keycode = 0x4F
	KeyLeft        Keycode = 0x50
	KeyDown        Keycode = 0x51
	KeyUp          Keycode = 0x52
	KeypadPlus     Keycode = 0x57
	KeypadDot      Keycode = 0x63
	KeypadEqual    Keycode = 0x67
	KeyVolumeUp    Keycode = 0x80
	KeyVolumeDown  Keycode = 0x81
)

// Modifier usage constants.
const (
	KeyLeftControl  Keycode = 0xE0
	KeyLeftShift    Keycode = 0xE1
	KeyLeftAlt      Keycode = 0xE2
	KeyLeftGUI      Keycode = 0xE3
	KeyRightControl Keycode = 0xE4
	KeyRightShift   Keycode = 0xE5
	KeyRightAlt     Keycode = 0xE6
	KeyRightGUI     Keycode = 0xE7
)

// KeyMediaPlayPause is the consumer-page play/pause usage carried in the
// key array, as the original Atreus layout does.
const KeyMediaPlayPause Keycode = 0xCD
