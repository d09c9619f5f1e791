package input

import (
	"github.com/dshills/weft/internal/client"
	"github.com/dshills/weft/internal/protocol"
)

// dispatch sends one action to the server, applying the per-class policy:
//
//   - Quit and Detach are sent, flag the loop to stop, and notify the
//     owning client process.
//   - SwitchToMode updates the local mode mirror before being sent.
//   - Structural actions engage the blocking gate and park the input
//     thread until the server acknowledges them; nothing read afterwards
//     is processed before the acknowledgment.
//   - Everything else is a fire-and-forget send.
//
// The return value reports whether the loop should stop after this action.
func (h *Handler) dispatch(a protocol.Action) bool {
	switch {
	case a.Kind == protocol.ActionQuit || a.Kind == protocol.ActionDetach:
		h.send(a, 0)
		h.shouldExit = true
		h.notifyExit(protocol.ExitNormal)
		return true

	case a.Kind == protocol.ActionSwitchToMode:
		h.mode = a.Mode
		h.send(a, 0)

	case a.Kind.IsStructural():
		tok, done := h.gate.Engage()
		if !h.send(a, tok) {
			break
		}
		if err := h.gate.Wait(done, h.config.AckTimeout); err != nil {
			// Forcing forward beats a permanent deadlock; the server may
			// still release the token late.
			logger.Printf("structural %s: %v", a, err)
		}

	default:
		h.send(a, 0)
	}

	return h.shouldExit
}

// send posts one action. A send failure means the server or owning
// process is tearing down: flag the loop to stop and make one best-effort
// exit notification.
func (h *Handler) send(a protocol.Action, token client.Token) bool {
	if err := h.sender.SendAction(a, token); err != nil {
		logger.Printf("send %s: %v", a, err)
		h.shouldExit = true
		h.notifyExit(protocol.ExitDisconnected)
		return false
	}
	return true
}
