package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keebs-rs/trove/layers"
	"github.com/keebs-rs/trove/pkg"
)

const sampleConfig = `
[matrix]
rows = 2
cols = 3

[scanner]
ghost_filter = true
settle_delay = "2us"

[timing]
debounce_threshold = 4
tick_period = "750us"
keep_alive_cycles = 100

[[layer]]
keys = [
  ["a", "!", "mo(1)"],
  ["leftshift", "space", "macro(0)"],
]

[[layer]]
keys = [
  ["f1", "trans", "trans"],
  ["trans", "tg(1)", "trans"],
]

[[macro]]
steps = ["+leftshift", "h", "-leftshift", "i"]
`

func TestParse(t *testing.T) {
	cfg, err := Parse(sampleConfig)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Keymap.Rows)
	assert.Equal(t, 3, cfg.Keymap.Cols)
	require.Equal(t, 2, cfg.Keymap.NumLayers())

	base := cfg.Keymap.Layers[0]
	assert.Equal(t, layers.KeyA, base[0])
	assert.Equal(t, layers.Shifted(layers.Key1), base[1])
	assert.Equal(t, layers.MomentaryLayer(1), base[2])
	assert.Equal(t, layers.KeyLeftShift, base[3])
	assert.Equal(t, layers.KeySpace, base[4])
	assert.Equal(t, layers.Macro(0), base[5])

	overlay := cfg.Keymap.Layers[1]
	assert.Equal(t, layers.KeyF1, overlay[0])
	assert.Equal(t, layers.Transparent, overlay[1])
	assert.Equal(t, layers.ToggleLayer(1), overlay[4])

	require.Len(t, cfg.Keymap.Macros, 1)
	assert.Equal(t, []layers.MacroStep{
		{Usage: uint8(layers.KeyLeftShift), Press: true},
		{Usage: uint8(layers.KeyH), Press: true},
		{Usage: uint8(layers.KeyH), Press: false},
		{Usage: uint8(layers.KeyLeftShift), Press: false},
		{Usage: uint8(layers.KeyI), Press: true},
		{Usage: uint8(layers.KeyI), Press: false},
	}, cfg.Keymap.Macros[0])

	kc := cfg.Keyboard
	assert.Equal(t, 2, kc.Rows)
	assert.Equal(t, 3, kc.Cols)
	assert.Equal(t, uint8(4), kc.DebounceThreshold)
	assert.Equal(t, 2*time.Microsecond, kc.SettleDelay)
	assert.Equal(t, 750*time.Microsecond, kc.TickPeriod)
	assert.True(t, kc.GhostFilter)
	assert.Equal(t, uint32(100), kc.KeepAliveCycles)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keyboard.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Keymap.NumLayers())

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
		err  error
	}{
		{
			name: "missing matrix",
			toml: `[[layer]]
keys = [["a"]]`,
			err: pkg.ErrNotConfigured,
		},
		{
			name: "unknown key name",
			toml: `[matrix]
rows = 1
cols = 1
[[layer]]
keys = [["bogus"]]`,
			err: pkg.ErrUnknownKeyName,
		},
		{
			name: "transparent base entry",
			toml: `[matrix]
rows = 1
cols = 2
[[layer]]
keys = [["a", "trans"]]`,
			err: pkg.ErrBaseLayerTransparent,
		},
		{
			name: "wrong row count",
			toml: `[matrix]
rows = 2
cols = 1
[[layer]]
keys = [["a"]]`,
			err: pkg.ErrLayerShape,
		},
		{
			name: "wrong column count",
			toml: `[matrix]
rows = 1
cols = 2
[[layer]]
keys = [["a"]]`,
			err: pkg.ErrLayerShape,
		},
		{
			name: "layer reference out of range",
			toml: `[matrix]
rows = 1
cols = 1
[[layer]]
keys = [["mo(5)"]]`,
			err: pkg.ErrLayerOutOfRange,
		},
		{
			name: "macro reference out of range",
			toml: `[matrix]
rows = 1
cols = 1
[[layer]]
keys = [["macro(0)"]]`,
			err: pkg.ErrInvalidParameter,
		},
		{
			name: "no layers",
			toml: `[matrix]
rows = 1
cols = 1`,
			err: pkg.ErrNoBaseLayer,
		},
		{
			name: "macro step not a plain key",
			toml: `[matrix]
rows = 1
cols = 1
[[layer]]
keys = [["a"]]
[[macro]]
steps = ["mo(1)"]`,
			err: pkg.ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.toml)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParseKeycode(t *testing.T) {
	tests := []struct {
		name string
		want layers.Keycode
	}{
		{"a", layers.KeyA},
		{"Z", layers.KeyZ},
		{"0", layers.Key0},
		{"f12", layers.KeyF12},
		{"esc", layers.KeyEscape},
		{"leftshift", layers.KeyLeftShift},
		{"!", layers.Shifted(layers.Key1)},
		{"sh(a)", layers.Shifted(layers.KeyA)},
		{"mo(2)", layers.MomentaryLayer(2)},
		{"tg(1)", layers.ToggleLayer(1)},
		{"macro(3)", layers.Macro(3)},
		{"trans", layers.Transparent},
		{"none", layers.KeyNone},
		{"playpause", layers.KeyMediaPlayPause},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKeycode(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseKeycode("nosuchkey")
	assert.ErrorIs(t, err, pkg.ErrUnknownKeyName)

	_, err = ParseKeycode("sh(mo(1))")
	assert.ErrorIs(t, err, pkg.ErrInvalidParameter)
}
