package layers

import (
	"github.com/keebs-rs/trove/matrix"
	"github.com/keebs-rs/trove/pkg"
)

// MacroStep is one step of a macro sequence: press or release of an 8-bit
// HID usage.
type MacroStep struct {
	Usage uint8
	Press bool
}

// Keymap is the immutable layer/keymap table loaded at boot. Layer 0 is
// the base layer. Each layer is stored row-major with Rows×Cols entries.
type Keymap struct {
	Rows   int
	Cols   int
	Layers [][]Keycode
	Macros [][]MacroStep
}

// NumLayers returns the number of layers in the keymap.
func (m *Keymap) NumLayers() int {
	return len(m.Layers)
}

// At returns the entry for pos in the given layer. Out-of-range layers or
// positions resolve to Transparent.
func (m *Keymap) At(layer int, pos matrix.Position) Keycode {
	if layer < 0 || layer >= len(m.Layers) {
		return Transparent
	}
	i := int(pos.Row)*m.Cols + int(pos.Col)
	if int(pos.Row) >= m.Rows || int(pos.Col) >= m.Cols || i >= len(m.Layers[layer]) {
		return Transparent
	}
	return m.Layers[layer][i]
}

// Validate checks the structural invariants of the keymap: at least a base
// layer, matching layer dimensions, a fully populated (never transparent)
// base layer, and in-range layer and macro references.
func (m *Keymap) Validate() error {
	if len(m.Layers) == 0 {
		return pkg.ErrNoBaseLayer
	}
	if m.Rows <= 0 || m.Cols <= 0 || m.Cols > matrix.MaxCols {
		return pkg.ErrInvalidParameter
	}

	size := m.Rows * m.Cols
	for li, layer := range m.Layers {
		if len(layer) != size {
			return pkg.ErrLayerShape
		}
		for _, k := range layer {
			if k == Transparent {
				if li == 0 {
					return pkg.ErrBaseLayerTransparent
				}
				continue
			}
			if k.IsMomentaryLayer() || k.IsToggleLayer() {
				if int(k.Usage()) >= len(m.Layers) {
					return pkg.ErrLayerOutOfRange
				}
			}
			if k.IsMacro() && int(k.Usage()) >= len(m.Macros) {
				return pkg.ErrInvalidParameter
			}
		}
	}
	return nil
}
