// Package keymap defines the keybinding table: a read-only mapping from
// (input mode, key) to an ordered sequence of actions, plus the compiled-in
// default bindings.
//
// The table is supplied to the input pipeline at startup and never mutated
// by it; a key with no binding in the current mode resolves to no actions.
package keymap
