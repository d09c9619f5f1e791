package app

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/weft/internal/ipc"
	"github.com/dshills/weft/internal/protocol"
	"github.com/dshills/weft/internal/term"
)

type runResult struct {
	reason protocol.ExitReason
	err    error
}

func runApp(t *testing.T, a *App) chan runResult {
	t.Helper()
	results := make(chan runResult, 1)
	go func() {
		reason, err := a.Run()
		results <- runResult{reason, err}
	}()
	return results
}

func waitResult(t *testing.T, results chan runResult) runResult {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
		return runResult{}
	}
}

func TestRunQuitKeyEndsSession(t *testing.T) {
	clientSide, serverSide := net.Pipe()
	defer serverSide.Close()

	a, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.SetConn(ipc.NewConn(clientSide))
	a.SetDriver(term.NewBlockingMockDriver(
		term.KeyEvent(tcell.KeyCtrlQ, 0x11, tcell.ModCtrl)))

	results := runApp(t, a)

	var msg protocol.ClientMsg
	if err := json.NewDecoder(serverSide).Decode(&msg); err != nil {
		t.Fatalf("decode client message: %v", err)
	}
	if msg.Version != protocol.Version {
		t.Errorf("version = %d, want %d", msg.Version, protocol.Version)
	}
	if msg.Action.Kind != protocol.ActionQuit {
		t.Errorf("action = %s, want Quit", msg.Action)
	}
	if msg.Token != 0 {
		t.Errorf("token = %d, want 0", msg.Token)
	}

	r := waitResult(t, results)
	if r.err != nil || r.reason != protocol.ExitNormal {
		t.Errorf("Run = (%v, %v), want (normal, nil)", r.reason, r.err)
	}
}

func TestRunStructuralAckRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfgData := "keybinds:\n  normal:\n    n: [{kind: NewTab}]\n"
	if err := os.WriteFile(path, []byte(cfgData), 0o644); err != nil {
		t.Fatal(err)
	}

	clientSide, serverSide := net.Pipe()
	defer serverSide.Close()

	a, err := New(Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.SetConn(ipc.NewConn(clientSide))
	driver := term.NewBlockingMockDriver(
		term.KeyEvent(tcell.KeyRune, 'n', 0))
	a.SetDriver(driver)

	results := runApp(t, a)

	dec := json.NewDecoder(serverSide)
	enc := json.NewEncoder(serverSide)

	var msg protocol.ClientMsg
	if err := dec.Decode(&msg); err != nil {
		t.Fatalf("decode client message: %v", err)
	}
	if msg.Action.Kind != protocol.ActionNewTab {
		t.Fatalf("action = %s, want NewTab", msg.Action)
	}
	if msg.Token == 0 {
		t.Fatal("structural message carries zero token")
	}

	ack := protocol.ServerMsg{
		Version: protocol.Version,
		Kind:    protocol.ServerMsgUnblock,
		Token:   msg.Token,
	}
	if err := enc.Encode(ack); err != nil {
		t.Fatalf("encode ack: %v", err)
	}

	// The acknowledged loop is live again: a quit key ends the session.
	driver.Feed(term.KeyEvent(tcell.KeyCtrlQ, 0x11, tcell.ModCtrl))
	if err := dec.Decode(&msg); err != nil {
		t.Fatalf("decode quit message: %v", err)
	}
	if msg.Action.Kind != protocol.ActionQuit {
		t.Errorf("action = %s, want Quit", msg.Action)
	}

	r := waitResult(t, results)
	if r.err != nil || r.reason != protocol.ExitNormal {
		t.Errorf("Run = (%v, %v), want (normal, nil)", r.reason, r.err)
	}
}

func TestRunServerExitMessage(t *testing.T) {
	clientSide, serverSide := net.Pipe()
	defer serverSide.Close()

	a, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.SetConn(ipc.NewConn(clientSide))
	a.SetDriver(term.NewBlockingMockDriver())

	results := runApp(t, a)

	out := protocol.ServerMsg{
		Version: protocol.Version,
		Kind:    protocol.ServerMsgExit,
		Reason:  protocol.ExitError,
	}
	if err := json.NewEncoder(serverSide).Encode(out); err != nil {
		t.Fatalf("encode exit: %v", err)
	}

	r := waitResult(t, results)
	if r.err != nil || r.reason != protocol.ExitError {
		t.Errorf("Run = (%v, %v), want (error, nil)", r.reason, r.err)
	}
}

func TestRunServerDisconnect(t *testing.T) {
	clientSide, serverSide := net.Pipe()

	a, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.SetConn(ipc.NewConn(clientSide))
	a.SetDriver(term.NewBlockingMockDriver())

	results := runApp(t, a)

	serverSide.Close()

	r := waitResult(t, results)
	if r.err != nil || r.reason != protocol.ExitDisconnected {
		t.Errorf("Run = (%v, %v), want (disconnected, nil)", r.reason, r.err)
	}
}

func TestRunRequiresSocket(t *testing.T) {
	a, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := a.Run(); err == nil {
		t.Error("Run with no socket = nil error, want error")
	}
}
