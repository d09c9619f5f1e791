package keymap

import (
	"github.com/dshills/weft/internal/input/key"
	"github.com/dshills/weft/internal/protocol"
)

// ModeKeybinds maps keys to the ordered actions they trigger.
type ModeKeybinds map[key.Key][]protocol.Action

// Keybinds is the full keybinding table, one sub-table per input mode.
type Keybinds map[protocol.InputMode]ModeKeybinds

// Resolve looks up the actions bound to k in mode m. A missing mode or
// key resolves to nil; that is a valid outcome, not an error. Callers must
// not mutate the returned slice.
func (kb Keybinds) Resolve(m protocol.InputMode, k key.Key) []protocol.Action {
	mk, ok := kb[m]
	if !ok {
		return nil
	}
	return mk[k]
}

// Bind sets the actions for (m, k), replacing any existing binding. It is
// intended for table construction; the input pipeline never calls it.
func (kb Keybinds) Bind(m protocol.InputMode, k key.Key, actions ...protocol.Action) {
	mk, ok := kb[m]
	if !ok {
		mk = make(ModeKeybinds)
		kb[m] = mk
	}
	mk[k] = actions
}

// Merge overlays other onto kb: bindings in other replace bindings for the
// same (mode, key); everything else is kept. kb is modified in place.
func (kb Keybinds) Merge(other Keybinds) {
	for m, mk := range other {
		for k, actions := range mk {
			kb.Bind(m, k, actions...)
		}
	}
}

// Clone returns a deep copy of the table (action slices are copied;
// action payloads are value types except Bytes, which bindings never set).
func (kb Keybinds) Clone() Keybinds {
	out := make(Keybinds, len(kb))
	for m, mk := range kb {
		mkOut := make(ModeKeybinds, len(mk))
		for k, actions := range mk {
			cp := make([]protocol.Action, len(actions))
			copy(cp, actions)
			mkOut[k] = cp
		}
		out[m] = mkOut
	}
	return out
}
