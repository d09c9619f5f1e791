package protocol

import (
	"fmt"
	"strings"
)

// Version is the wire protocol version. Client and server refuse to talk
// across versions; bump on any incompatible change to the message shapes
// or the action kind set.
const Version = 1

// ClientMsg is the envelope for client-to-server messages. Token is zero
// for fire-and-forget actions; structural actions carry the gate token the
// server must echo back in an unblock message.
type ClientMsg struct {
	Version int    `json:"version"`
	Token   uint64 `json:"token,omitempty"`
	Action  Action `json:"action"`
}

// NewClientMsg wraps an action in a current-version envelope.
func NewClientMsg(action Action, token uint64) ClientMsg {
	return ClientMsg{Version: Version, Token: token, Action: action}
}

// ServerMsgKind identifies a server-to-client message variant.
type ServerMsgKind uint8

const (
	// ServerMsgNone is the zero message kind; it is never sent.
	ServerMsgNone ServerMsgKind = iota

	// ServerMsgUnblock acknowledges the structural action carrying Token.
	ServerMsgUnblock

	// ServerMsgExit tells the client to shut down, with a Reason.
	ServerMsgExit
)

// String returns the wire name of the kind.
func (k ServerMsgKind) String() string {
	switch k {
	case ServerMsgUnblock:
		return "Unblock"
	case ServerMsgExit:
		return "Exit"
	default:
		return fmt.Sprintf("ServerMsgKind(%d)", k)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k ServerMsgKind) MarshalText() ([]byte, error) {
	switch k {
	case ServerMsgUnblock, ServerMsgExit:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("protocol: cannot marshal server message kind %d", k)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ServerMsgKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "unblock":
		*k = ServerMsgUnblock
	case "exit":
		*k = ServerMsgExit
	default:
		return fmt.Errorf("protocol: unknown server message kind %q", text)
	}
	return nil
}

// ServerMsg is the envelope for server-to-client messages.
type ServerMsg struct {
	Version int           `json:"version"`
	Kind    ServerMsgKind `json:"kind"`
	Token   uint64        `json:"token,omitempty"`
	Reason  ExitReason    `json:"reason,omitempty"`
}

// ExitReason explains why a client session is ending.
type ExitReason uint8

const (
	// ExitNormal is a user-requested quit or detach.
	ExitNormal ExitReason = iota

	// ExitError is an unrecoverable client-side failure.
	ExitError

	// ExitDisconnected means the server connection was lost.
	ExitDisconnected

	// ExitInputLost means the terminal event source failed.
	ExitInputLost
)

// String returns the canonical reason name.
func (r ExitReason) String() string {
	switch r {
	case ExitNormal:
		return "normal"
	case ExitError:
		return "error"
	case ExitDisconnected:
		return "disconnected"
	case ExitInputLost:
		return "input-lost"
	default:
		return fmt.Sprintf("ExitReason(%d)", r)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r ExitReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *ExitReason) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "normal":
		*r = ExitNormal
	case "error":
		*r = ExitError
	case "disconnected":
		*r = ExitDisconnected
	case "input-lost":
		*r = ExitInputLost
	default:
		return fmt.Errorf("protocol: unknown exit reason %q", text)
	}
	return nil
}
