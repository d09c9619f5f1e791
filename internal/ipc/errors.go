package ipc

import "errors"

// Connection errors.
var (
	// ErrConnClosed indicates the connection is gone; the server or the
	// owning process is already tearing down.
	ErrConnClosed = errors.New("ipc: connection closed")

	// ErrVersionMismatch indicates the server speaks a different protocol
	// version.
	ErrVersionMismatch = errors.New("ipc: protocol version mismatch")
)
