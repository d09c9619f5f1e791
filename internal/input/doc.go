// Package input implements the client input pipeline: it reads raw
// terminal events, decodes them into normalized keys and mouse events,
// resolves keys against the mode-aware keybinding table, and dispatches
// the resulting actions to the server.
//
// The pipeline runs on a single goroutine; the only cross-goroutine state
// is the blocking gate that serializes structural actions and the
// mouse-hold repeater's cancellation signal.
package input
