package layers

// Shorthand aliases keeping the default layer tables readable.
const (
	xx = KeyNone
	tr = Transparent

	excl    = FlagShifted | Key1
	at      = FlagShifted | Key2
	hash    = FlagShifted | Key3
	dollar  = FlagShifted | Key4
	percent = FlagShifted | Key5
	caret   = FlagShifted | Key6
	amp     = FlagShifted | Key7
	star    = FlagShifted | Key8
	lparen  = FlagShifted | Key9
	rparen  = FlagShifted | Key0
	lbrace  = FlagShifted | KeyLeftBrace
	rbrace  = FlagShifted | KeyRightBrace

	fun   = flagMomentary | 1
	upper = flagToggle | 2
)

// DefaultRows and DefaultCols are the dimensions of the default Atreus
// layout.
const (
	DefaultRows = 4
	DefaultCols = 12
)

// defaultBase is the base layer of the default Atreus layout. The two
// blank entries per row sit above the keyboard's central split.
var defaultBase = []Keycode{
	KeyQ, KeyW, KeyE, KeyR, KeyT, xx, xx, KeyY, KeyU, KeyI, KeyO, KeyP,
	KeyA, KeyS, KeyD, KeyF, KeyG, xx, xx, KeyH, KeyJ, KeyK, KeyL, KeySemicolon,
	KeyZ, KeyX, KeyC, KeyV, KeyB, KeyGrave, KeyBackslash, KeyN, KeyM, KeyComma, KeyDot, KeySlash,
	KeyEscape, KeyTab, KeyLeftGUI, KeyLeftShift, KeyBackspace, KeyLeftControl, KeyLeftAlt, KeySpace, fun, KeyMinus, KeyQuote, KeyEnter,
}

// defaultFun is the momentary function layer: symbols, arrows, and a
// numeric pad.
var defaultFun = []Keycode{
	excl, at, KeyUp, dollar, percent, xx, xx, KeyPageUp, Key7, Key8, Key9, KeyBackspace,
	lparen, KeyLeft, KeyDown, KeyRight, rparen, xx, xx, KeyPageDown, Key4, Key5, Key6, tr,
	KeyLeftBrace, KeyRightBrace, hash, lbrace, rbrace, caret, amp, star, Key1, Key2, Key3, KeypadPlus,
	upper, KeyInsert, tr, tr, tr, tr, tr, tr, fun, KeyDot, Key0, KeypadEqual,
}

// defaultUpper is the toggled upper layer: function keys, navigation, and
// media controls.
var defaultUpper = []Keycode{
	KeyInsert, KeyHome, tr, KeyEnd, KeyPageUp, xx, xx, KeyUp, KeyF7, KeyF8, KeyF9, KeyF10,
	KeyDelete, tr, tr, tr, KeyPageDown, xx, xx, KeyDown, KeyF4, KeyF5, KeyF6, KeyF11,
	tr, KeyVolumeUp, tr, tr, tr, tr, tr, tr, KeyF1, KeyF2, KeyF3, KeyF12,
	upper, KeyVolumeDown, tr, tr, tr, tr, tr, tr, fun, KeyPrintScreen, KeyScrollLock, KeyMediaPlayPause,
}

// DefaultKeymap returns the default Atreus keymap: a 4×12 matrix with
// base, momentary function, and toggled upper layers.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Rows: DefaultRows,
		Cols: DefaultCols,
		Layers: [][]Keycode{
			defaultBase,
			defaultFun,
			defaultUpper,
		},
	}
}
