// Package report assembles held logical keycodes into 8-byte HID boot
// keyboard reports.
//
// [Builder] tracks held keys in press order and projects them into a
// [Report] each cycle. Modifier usages fold into the modifier bitmask;
// the six keycode slots fill in insertion order so the host never sees
// held keys shuffle. When more than six non-modifier keys are held, the
// builder emits the phantom rollover report defined by the HID boot
// convention: modifiers preserved, every slot set to [KeyErrorRollOver].
package report
