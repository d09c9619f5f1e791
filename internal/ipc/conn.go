package ipc

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/dshills/weft/internal/client"
	"github.com/dshills/weft/internal/logutil"
	"github.com/dshills/weft/internal/protocol"
)

var logger = logutil.GetLogger("[ipc] ")

// Conn is a client connection to the weft server.
type Conn struct {
	mu     sync.Mutex // serializes writes and guards closed
	conn   net.Conn
	enc    *json.Encoder
	dec    *json.Decoder
	closed bool
}

// Dial connects to the server's unix-domain socket.
func Dial(sockPath string) (*Conn, error) {
	c, err := net.Dial("unix", sockPath)
	if err != nil {
		return nil, fmt.Errorf("ipc: dial %s: %w", sockPath, err)
	}
	return NewConn(c), nil
}

// NewConn wraps an established connection. Useful for tests that drive
// both ends over a pipe.
func NewConn(c net.Conn) *Conn {
	return &Conn{conn: c, enc: json.NewEncoder(c), dec: json.NewDecoder(c)}
}

// SendAction posts an action to the server. Token is nonzero only for
// structural actions awaiting acknowledgment through the gate. The send
// is fire-and-forget; a failure means the connection is unusable.
func (c *Conn) SendAction(a protocol.Action, token client.Token) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrConnClosed
	}
	if err := c.enc.Encode(protocol.NewClientMsg(a, uint64(token))); err != nil {
		return fmt.Errorf("ipc: send %s: %w", a, errors.Join(ErrConnClosed, err))
	}
	return nil
}

// Serve reads server messages until the connection fails, routing unblock
// acknowledgments to gate and exit notices to instructions. It blocks and
// is meant to run on its own goroutine; it returns the read error that
// ended it (ErrConnClosed after a local Close).
func (c *Conn) Serve(gate *client.Gate, instructions chan<- client.Instruction) error {
	for {
		var msg protocol.ServerMsg
		if err := c.dec.Decode(&msg); err != nil {
			c.mu.Lock()
			closed := c.closed
			c.mu.Unlock()
			if closed {
				return ErrConnClosed
			}
			return fmt.Errorf("ipc: receive: %w", err)
		}

		if msg.Version != protocol.Version {
			return fmt.Errorf("%w: server %d, client %d", ErrVersionMismatch, msg.Version, protocol.Version)
		}

		switch msg.Kind {
		case protocol.ServerMsgUnblock:
			if err := gate.Release(client.Token(msg.Token)); err != nil {
				// Late acks for timed-out waits land here; worth a trace,
				// not a failure.
				logger.Printf("unblock token %d: %v", msg.Token, err)
			}
		case protocol.ServerMsgExit:
			instructions <- client.Exit(msg.Reason)
		default:
			logger.Printf("unknown server message kind %v", msg.Kind)
		}
	}
}

// Close tears down the connection. Safe to call more than once.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}
