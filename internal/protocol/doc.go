// Package protocol defines the messages exchanged between the weft client
// and the session server: the action set, input modes, and the versioned
// wire envelopes that carry them.
//
// The client treats actions as opaque requests; the server owns all pane,
// tab, and session state. The only action semantics interpreted client-side
// are the ones that affect the input pipeline itself (Quit, Detach,
// SwitchToMode, and the structural set that requires acknowledgment).
package protocol
