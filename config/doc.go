// Package config loads keyboard configuration from TOML: matrix
// dimensions, timing parameters, layer tables with symbolic key names,
// and macro sequences.
//
// Layer tables use one string per key. Names cover letters, digits,
// function and navigation keys, modifiers, and shifted punctuation
// ("!" is shift+1), plus the directives "mo(n)" (momentary layer),
// "tg(n)" (toggle layer), "macro(n)", "sh(name)" (shifted key),
// "trans", and "none". Macro steps are key names with an optional "+"
// (press) or "-" (release) prefix; a bare name is a tap.
//
// Load returns the validated keymap and a [keyboard.Config] snapshot
// ready for [keyboard.New].
package config
