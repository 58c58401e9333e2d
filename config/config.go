package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/keebs-rs/trove/keyboard"
	"github.com/keebs-rs/trove/layers"
	"github.com/keebs-rs/trove/pkg"
)

// Duration wraps time.Duration for TOML decoding from strings like
// "750us" or "1.5ms".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Config is the result of loading a configuration file: the validated
// keymap plus the pipeline parameters.
type Config struct {
	Keymap   *layers.Keymap
	Keyboard keyboard.Config
}

// file mirrors the TOML document structure.
type file struct {
	Matrix  matrixSection  `toml:"matrix"`
	Scanner scannerSection `toml:"scanner"`
	Timing  timingSection  `toml:"timing"`
	Layer   []layerSection `toml:"layer"`
	Macro   []macroSection `toml:"macro"`
}

type matrixSection struct {
	Rows int `toml:"rows"`
	Cols int `toml:"cols"`
}

type scannerSection struct {
	GhostFilter bool     `toml:"ghost_filter"`
	SettleDelay Duration `toml:"settle_delay"`
}

type timingSection struct {
	DebounceThreshold int      `toml:"debounce_threshold"`
	TickPeriod        Duration `toml:"tick_period"`
	KeepAliveCycles   int      `toml:"keep_alive_cycles"`
}

type layerSection struct {
	Keys [][]string `toml:"keys"`
}

type macroSection struct {
	Steps []string `toml:"steps"`
}

// Load reads and validates a TOML configuration file.
func Load(path string) (*Config, error) {
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	cfg, err := f.build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	pkg.LogInfo(pkg.ComponentConfig, "configuration loaded",
		"path", path,
		"rows", cfg.Keymap.Rows,
		"cols", cfg.Keymap.Cols,
		"layers", cfg.Keymap.NumLayers(),
		"macros", len(cfg.Keymap.Macros))
	return cfg, nil
}

// Parse decodes and validates TOML configuration data.
func Parse(data string) (*Config, error) {
	var f file
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return f.build()
}

func (f *file) build() (*Config, error) {
	if f.Matrix.Rows <= 0 || f.Matrix.Cols <= 0 {
		return nil, fmt.Errorf("%w: matrix rows and cols required", pkg.ErrNotConfigured)
	}
	if f.Timing.DebounceThreshold < 0 || f.Timing.DebounceThreshold > 255 {
		return nil, fmt.Errorf("%w: debounce_threshold %d", pkg.ErrInvalidParameter, f.Timing.DebounceThreshold)
	}
	if f.Timing.KeepAliveCycles < 0 {
		return nil, fmt.Errorf("%w: keep_alive_cycles %d", pkg.ErrInvalidParameter, f.Timing.KeepAliveCycles)
	}

	km := &layers.Keymap{
		Rows: f.Matrix.Rows,
		Cols: f.Matrix.Cols,
	}

	for li, layer := range f.Layer {
		table, err := parseLayer(layer.Keys, f.Matrix.Rows, f.Matrix.Cols)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", li, err)
		}
		km.Layers = append(km.Layers, table)
	}

	for mi, macro := range f.Macro {
		steps, err := parseMacro(macro.Steps)
		if err != nil {
			return nil, fmt.Errorf("macro %d: %w", mi, err)
		}
		km.Macros = append(km.Macros, steps)
	}

	if err := km.Validate(); err != nil {
		return nil, err
	}

	return &Config{
		Keymap: km,
		Keyboard: keyboard.Config{
			Rows:              f.Matrix.Rows,
			Cols:              f.Matrix.Cols,
			DebounceThreshold: uint8(f.Timing.DebounceThreshold),
			SettleDelay:       time.Duration(f.Scanner.SettleDelay),
			TickPeriod:        time.Duration(f.Timing.TickPeriod),
			GhostFilter:       f.Scanner.GhostFilter,
			KeepAliveCycles:   uint32(f.Timing.KeepAliveCycles),
		},
	}, nil
}

func parseLayer(rows [][]string, wantRows, wantCols int) ([]layers.Keycode, error) {
	if len(rows) != wantRows {
		return nil, fmt.Errorf("%w: %d rows, want %d", pkg.ErrLayerShape, len(rows), wantRows)
	}
	table := make([]layers.Keycode, 0, wantRows*wantCols)
	for ri, row := range rows {
		if len(row) != wantCols {
			return nil, fmt.Errorf("%w: row %d has %d keys, want %d", pkg.ErrLayerShape, ri, len(row), wantCols)
		}
		for ci, name := range row {
			k, err := ParseKeycode(name)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", ri, ci, err)
			}
			table = append(table, k)
		}
	}
	return table, nil
}

func parseMacro(names []string) ([]layers.MacroStep, error) {
	steps := make([]layers.MacroStep, 0, 2*len(names))
	for i, name := range names {
		press, release := true, true
		switch {
		case strings.HasPrefix(name, "+"):
			name, release = name[1:], false
		case strings.HasPrefix(name, "-"):
			name, press = name[1:], false
		}
		k, err := ParseKeycode(name)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		if k == layers.Transparent || k.IsMomentaryLayer() || k.IsToggleLayer() || k.IsMacro() {
			return nil, fmt.Errorf("%w: step %d: %q not a plain key", pkg.ErrInvalidParameter, i, name)
		}
		if press {
			steps = append(steps, layers.MacroStep{Usage: k.Usage(), Press: true})
		}
		if release {
			steps = append(steps, layers.MacroStep{Usage: k.Usage(), Press: false})
		}
	}
	return steps, nil
}

// ParseKeycode converts a symbolic key name to its keycode.
func ParseKeycode(name string) (layers.Keycode, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	if inner, n, ok := directive(name); ok {
		switch inner {
		case "mo":
			return layers.MomentaryLayer(n), nil
		case "tg":
			return layers.ToggleLayer(n), nil
		case "macro":
			return layers.Macro(n), nil
		}
	}
	if strings.HasPrefix(name, "sh(") && strings.HasSuffix(name, ")") {
		base, err := ParseKeycode(name[3 : len(name)-1])
		if err != nil {
			return 0, err
		}
		if base == layers.Transparent || base&^layers.Keycode(0xFF) != 0 {
			return 0, fmt.Errorf("%w: %q not shiftable", pkg.ErrInvalidParameter, name)
		}
		return layers.Shifted(base), nil
	}

	if k, ok := keyNames[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", pkg.ErrUnknownKeyName, name)
}

// directive parses "mo(1)"-style names, returning the keyword and index.
func directive(name string) (string, uint8, bool) {
	open := strings.IndexByte(name, '(')
	if open < 0 || !strings.HasSuffix(name, ")") {
		return "", 0, false
	}
	kw := name[:open]
	if kw != "mo" && kw != "tg" && kw != "macro" {
		return "", 0, false
	}
	n, err := strconv.ParseUint(name[open+1:len(name)-1], 10, 8)
	if err != nil {
		return "", 0, false
	}
	return kw, uint8(n), true
}

var keyNames = map[string]layers.Keycode{
	"none":  layers.KeyNone,
	"trans": layers.Transparent,

	"a": layers.KeyA, "b": layers.KeyB, "c": layers.KeyC, "d": layers.KeyD,
	"e": layers.KeyE, "f": layers.KeyF, "g": layers.KeyG, "h": layers.KeyH,
	"i": layers.KeyI, "j": layers.KeyJ, "k": layers.KeyK, "l": layers.KeyL,
	"m": layers.KeyM, "n": layers.KeyN, "o": layers.KeyO, "p": layers.KeyP,
	"q": layers.KeyQ, "r": layers.KeyR, "s": layers.KeyS, "t": layers.KeyT,
	"u": layers.KeyU, "v": layers.KeyV, "w": layers.KeyW, "x": layers.KeyX,
	"y": layers.KeyY, "z": layers.KeyZ,

	"1": layers.Key1, "2": layers.Key2, "3": layers.Key3, "4": layers.Key4,
	"5": layers.Key5, "6": layers.Key6, "7": layers.Key7, "8": layers.Key8,
	"9": layers.Key9, "0": layers.Key0,

	"f1": layers.KeyF1, "f2": layers.KeyF2, "f3": layers.KeyF3,
	"f4": layers.KeyF4, "f5": layers.KeyF5, "f6": layers.KeyF6,
	"f7": layers.KeyF7, "f8": layers.KeyF8, "f9": layers.KeyF9,
	"f10": layers.KeyF10, "f11": layers.KeyF11, "f12": layers.KeyF12,

	"enter":       layers.KeyEnter,
	"escape":      layers.KeyEscape,
	"esc":         layers.KeyEscape,
	"backspace":   layers.KeyBackspace,
	"tab":         layers.KeyTab,
	"space":       layers.KeySpace,
	"minus":       layers.KeyMinus,
	"-":           layers.KeyMinus,
	"equal":       layers.KeyEqual,
	"=":           layers.KeyEqual,
	"leftbrace":   layers.KeyLeftBrace,
	"[":           layers.KeyLeftBrace,
	"rightbrace":  layers.KeyRightBrace,
	"]":           layers.KeyRightBrace,
	"backslash":   layers.KeyBackslash,
	"\\":          layers.KeyBackslash,
	"semicolon":   layers.KeySemicolon,
	";":           layers.KeySemicolon,
	"quote":       layers.KeyQuote,
	"'":           layers.KeyQuote,
	"grave":       layers.KeyGrave,
	"`":           layers.KeyGrave,
	"comma":       layers.KeyComma,
	",":           layers.KeyComma,
	"dot":         layers.KeyDot,
	".":           layers.KeyDot,
	"slash":       layers.KeySlash,
	"/":           layers.KeySlash,
	"capslock":    layers.KeyCapsLock,
	"printscreen": layers.KeyPrintScreen,
	"scrolllock":  layers.KeyScrollLock,
	"pause":       layers.KeyPause,
	"insert":      layers.KeyInsert,
	"home":        layers.KeyHome,
	"pageup":      layers.KeyPageUp,
	"delete":      layers.KeyDelete,
	"end":         layers.KeyEnd,
	"pagedown":    layers.KeyPageDown,
	"right":       layers.KeyRight,
	"left":        layers.KeyLeft,
	"down":        layers.KeyDown,
	"up":          layers.KeyUp,

	"kp_plus":  layers.KeypadPlus,
	"kp_dot":   layers.KeypadDot,
	"kp_equal": layers.KeypadEqual,

	"volumeup":   layers.KeyVolumeUp,
	"volumedown": layers.KeyVolumeDown,
	"playpause":  layers.KeyMediaPlayPause,

	"leftcontrol":  layers.KeyLeftControl,
	"leftctrl":     layers.KeyLeftControl,
	"leftshift":    layers.KeyLeftShift,
	"leftalt":      layers.KeyLeftAlt,
	"leftgui":      layers.KeyLeftGUI,
	"rightcontrol": layers.KeyRightControl,
	"rightctrl":    layers.KeyRightControl,
	"rightshift":   layers.KeyRightShift,
	"rightalt":     layers.KeyRightAlt,
	"rightgui":     layers.KeyRightGUI,

	// Shifted punctuation.
	"!": layers.Shifted(layers.Key1),
	"@": layers.Shifted(layers.Key2),
	"#": layers.Shifted(layers.Key3),
	"$": layers.Shifted(layers.Key4),
	"%": layers.Shifted(layers.Key5),
	"^": layers.Shifted(layers.Key6),
	"&": layers.Shifted(layers.Key7),
	"*": layers.Shifted(layers.Key8),
	"(": layers.Shifted(layers.Key9),
	")": layers.Shifted(layers.Key0),
	"{": layers.Shifted(layers.KeyLeftBrace),
	"}": layers.Shifted(layers.KeyRightBrace),
	"_": layers.Shifted(layers.KeyMinus),
	"+": layers.Shifted(layers.KeyEqual),
	"|": layers.Shifted(layers.KeyBackslash),
	":": layers.Shifted(layers.KeySemicolon),
	"\"": layers.Shifted(layers.KeyQuote),
	"~": layers.Shifted(layers.KeyGrave),
	"<": layers.Shifted(layers.KeyComma),
	">": layers.Shifted(layers.KeyDot),
	"?": layers.Shifted(layers.KeySlash),
}
