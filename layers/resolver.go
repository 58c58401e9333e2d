package layers

import (
	"github.com/keebs-rs/trove/matrix"
	"github.com/keebs-rs/trove/pkg"
)

// ActionKind distinguishes press from release actions.
type ActionKind uint8

// Action kinds.
const (
	ActionPress ActionKind = iota
	ActionRelease
)

// Action is a logical keycode transition produced by resolution, consumed
// by the report builder.
type Action struct {
	Kind  ActionKind
	Usage uint8
}

// bindingKind records what a held position resolved to at press time.
type bindingKind uint8

const (
	bindNone bindingKind = iota
	bindKey
	bindShifted
	bindMomentary
	bindToggle
	bindMacro
)

// binding is the per-position memory of the originally resolved press.
// Releases consult this record, never the current layer state.
type binding struct {
	kind  bindingKind
	usage uint8 // resolved HID usage, or layer index for bindMomentary
}

// Resolver maps key events to actions against the active layer stack.
//
// The resolver is the sole owner of the active layer set and of the
// per-position binding memory; no other component reads or writes them,
// so no locking is required within the single-threaded scan cycle.
type Resolver struct {
	keymap *Keymap

	// stack holds the active layer indices, bottom to top. stack[0] is
	// the base layer and is never removed.
	stack []uint8

	// held holds the binding memory, one entry per key position.
	held []binding

	// Macro sequencer state. One macro plays at a time; triggers while
	// busy are discarded.
	macroActive bool
	macroIndex  uint8
	macroStep   int
}

// NewResolver creates a resolver over a validated keymap.
func NewResolver(km *Keymap) (*Resolver, error) {
	if km == nil {
		return nil, pkg.ErrNotConfigured
	}
	if err := km.Validate(); err != nil {
		return nil, err
	}
	r := &Resolver{
		keymap: km,
		stack:  make([]uint8, 1, km.NumLayers()*2),
		held:   make([]binding, km.Rows*km.Cols),
	}
	r.stack[0] = 0
	return r, nil
}

// ActiveLayers returns a copy of the active layer stack, bottom to top.
func (r *Resolver) ActiveLayers() []uint8 {
	out := make([]uint8, len(r.stack))
	copy(out, r.stack)
	return out
}

// Lookup resolves pos against the current layer stack, top to bottom, with
// transparent fall-through. It is a pure read: the same stack and position
// always yield the same entry. The base layer is fully populated, so
// lookup always terminates with a concrete entry.
func (r *Resolver) Lookup(pos matrix.Position) Keycode {
	for i := len(r.stack) - 1; i >= 0; i-- {
		if k := r.keymap.At(int(r.stack[i]), pos); k != Transparent {
			return k
		}
	}
	// Unreachable for validated keymaps; treat as a blank key.
	return KeyNone
}

// Resolve maps one debounced key event to zero or more actions, appended
// to acts. Layer mutations and macro triggers mutate resolver state and
// produce no immediate action.
func (r *Resolver) Resolve(ev matrix.KeyEvent, acts []Action) []Action {
	i := int(ev.Pos.Row)*r.keymap.Cols + int(ev.Pos.Col)
	if i < 0 || i >= len(r.held) {
		return acts
	}

	if !ev.Pressed {
		b := r.held[i]
		r.held[i] = binding{}
		switch b.kind {
		case bindKey:
			acts = append(acts, Action{Kind: ActionRelease, Usage: b.usage})
		case bindShifted:
			acts = append(acts, Action{Kind: ActionRelease, Usage: b.usage})
			acts = append(acts, Action{Kind: ActionRelease, Usage: uint8(KeyLeftShift)})
		case bindMomentary:
			r.removeLayer(b.usage)
		}
		return acts
	}

	k := r.Lookup(ev.Pos)
	switch {
	case k == KeyNone:
		r.held[i] = binding{kind: bindNone}

	case k.IsMomentaryLayer():
		n := k.Usage()
		if n != 0 {
			r.pushLayer(n)
		}
		r.held[i] = binding{kind: bindMomentary, usage: n}

	case k.IsToggleLayer():
		n := k.Usage()
		if n != 0 {
			if r.layerActive(n) {
				r.removeLayer(n)
			} else {
				r.pushLayer(n)
			}
		}
		r.held[i] = binding{kind: bindToggle, usage: n}

	case k.IsMacro():
		if !r.macroActive {
			r.macroActive = true
			r.macroIndex = k.Usage()
			r.macroStep = 0
		}
		r.held[i] = binding{kind: bindMacro, usage: k.Usage()}

	case k.IsShifted():
		r.held[i] = binding{kind: bindShifted, usage: k.Usage()}
		acts = append(acts, Action{Kind: ActionPress, Usage: uint8(KeyLeftShift)})
		acts = append(acts, Action{Kind: ActionPress, Usage: k.Usage()})

	default:
		r.held[i] = binding{kind: bindKey, usage: k.Usage()}
		acts = append(acts, Action{Kind: ActionPress, Usage: k.Usage()})
	}
	return acts
}

// Tick advances the macro sequencer by one step, appending its action to
// acts. Called once per scan cycle before event resolution.
func (r *Resolver) Tick(acts []Action) []Action {
	if !r.macroActive {
		return acts
	}
	steps := r.keymap.Macros[r.macroIndex]
	if r.macroStep >= len(steps) {
		r.macroActive = false
		return acts
	}
	step := steps[r.macroStep]
	r.macroStep++
	if r.macroStep >= len(steps) {
		r.macroActive = false
	}
	kind := ActionRelease
	if step.Press {
		kind = ActionPress
	}
	return append(acts, Action{Kind: kind, Usage: step.Usage})
}

// MacroRunning reports whether the sequencer has steps pending.
func (r *Resolver) MacroRunning() bool {
	return r.macroActive
}

func (r *Resolver) pushLayer(n uint8) {
	if int(n) >= r.keymap.NumLayers() {
		return
	}
	r.stack = append(r.stack, n)
}

// removeLayer pops the top-most occurrence of layer n. The base layer at
// stack[0] is never removed.
func (r *Resolver) removeLayer(n uint8) {
	for i := len(r.stack) - 1; i >= 1; i-- {
		if r.stack[i] == n {
			r.stack = append(r.stack[:i], r.stack[i+1:]...)
			return
		}
	}
}

func (r *Resolver) layerActive(n uint8) bool {
	for i := len(r.stack) - 1; i >= 1; i-- {
		if r.stack[i] == n {
			return true
		}
	}
	return n == 0
}
