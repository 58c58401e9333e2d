// Package layers implements keymap resolution: mapping debounced key
// events to logical keycodes and actions through a stack of layers.
//
// # Layers
//
// A [Keymap] holds one or more layers, each a full matrix of [Keycode]
// entries. Layer 0 is the base layer; it is always active, always fully
// populated, and never poppable. Higher layers overlay it and may leave
// positions [Transparent], falling through to the next lower active layer.
//
// # Resolution
//
// [Resolver] owns the active layer stack. A press resolves against the
// stack from top to bottom; the first non-transparent entry wins. The
// resolver records, per held position, exactly what the press resolved
// to, and a release always releases that original binding — a layer
// change while a key is held never alters the semantics of its release.
//
// # Actions
//
// Keycode entries carry tagged flags encoding layer and macro actions:
//
//   - [MomentaryLayer] pushes a layer while held and pops it on release
//   - [ToggleLayer] pushes a layer until toggled again
//   - [Shifted] sends the base usage with the left-shift modifier asserted
//   - [Macro] triggers a predefined press/release sequence played back
//     one step per scan cycle by the resolver's internal sequencer
//
// The resolver emits plain [Action] values (press or release of an 8-bit
// HID usage); it never blocks and never allocates in steady state.
package layers
