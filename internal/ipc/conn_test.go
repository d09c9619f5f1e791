package ipc

import (
	"encoding/json"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/dshills/weft/internal/client"
	"github.com/dshills/weft/internal/protocol"
)

func pipeConns(t *testing.T) (*Conn, net.Conn) {
	t.Helper()
	clientEnd, serverEnd := net.Pipe()
	c := NewConn(clientEnd)
	t.Cleanup(func() {
		c.Close()
		serverEnd.Close()
	})
	return c, serverEnd
}

func TestSendActionCarriesToken(t *testing.T) {
	c, server := pipeConns(t)

	go func() {
		if err := c.SendAction(protocol.NewPane(protocol.DirRight), 42); err != nil {
			t.Errorf("SendAction: %v", err)
		}
	}()

	var msg protocol.ClientMsg
	if err := json.NewDecoder(server).Decode(&msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.Version != protocol.Version {
		t.Errorf("Version = %d, want %d", msg.Version, protocol.Version)
	}
	if msg.Token != 42 {
		t.Errorf("Token = %d, want 42", msg.Token)
	}
	if msg.Action.Kind != protocol.ActionNewPane || msg.Action.Direction != protocol.DirRight {
		t.Errorf("Action = %v, want NewPane(right)", msg.Action)
	}
}

func TestSendActionAfterClose(t *testing.T) {
	c, _ := pipeConns(t)
	c.Close()

	if err := c.SendAction(protocol.Simple(protocol.ActionQuit), 0); !errors.Is(err, ErrConnClosed) {
		t.Errorf("SendAction = %v, want ErrConnClosed", err)
	}
}

func TestServeRoutesUnblockToGate(t *testing.T) {
	c, server := pipeConns(t)
	gate := client.NewGate()
	instructions := make(chan client.Instruction, 1)

	go c.Serve(gate, instructions)

	tok, done := gate.Engage()
	enc := json.NewEncoder(server)
	go enc.Encode(protocol.ServerMsg{
		Version: protocol.Version,
		Kind:    protocol.ServerMsgUnblock,
		Token:   uint64(tok),
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("gate not released by unblock message")
	}
}

func TestServeRoutesExitToInstructions(t *testing.T) {
	c, server := pipeConns(t)
	gate := client.NewGate()
	instructions := make(chan client.Instruction, 1)

	go c.Serve(gate, instructions)

	enc := json.NewEncoder(server)
	go enc.Encode(protocol.ServerMsg{
		Version: protocol.Version,
		Kind:    protocol.ServerMsgExit,
		Reason:  protocol.ExitDisconnected,
	})

	select {
	case in := <-instructions:
		if in.Kind != client.InstructionExit || in.Reason != protocol.ExitDisconnected {
			t.Errorf("instruction = %+v, want exit(disconnected)", in)
		}
	case <-time.After(time.Second):
		t.Fatal("no instruction delivered")
	}
}

func TestServeVersionMismatch(t *testing.T) {
	c, server := pipeConns(t)
	gate := client.NewGate()
	instructions := make(chan client.Instruction, 1)

	errCh := make(chan error, 1)
	go func() { errCh <- c.Serve(gate, instructions) }()

	enc := json.NewEncoder(server)
	go enc.Encode(protocol.ServerMsg{Version: 99, Kind: protocol.ServerMsgUnblock})

	select {
	case err := <-errCh:
		if !errors.Is(err, ErrVersionMismatch) {
			t.Errorf("Serve = %v, want ErrVersionMismatch", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return")
	}
}

func TestServeReturnsConnClosedAfterClose(t *testing.T) {
	c, _ := pipeConns(t)
	gate := client.NewGate()
	instructions := make(chan client.Instruction, 1)

	errCh := make(chan error, 1)
	go func() { errCh <- c.Serve(gate, instructions) }()

	c.Close()

	select {
	case err := <-errCh:
		if !errors.Is(err, ErrConnClosed) {
			t.Errorf("Serve = %v, want ErrConnClosed", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return")
	}
}
