package client

import (
	"errors"
	"testing"
	"time"
)

func TestGateEngageRelease(t *testing.T) {
	g := NewGate()

	tok, done := g.Engage()
	if tok == 0 {
		t.Fatal("Engage returned zero token")
	}
	if g.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", g.Pending())
	}

	select {
	case <-done:
		t.Fatal("done closed before release")
	default:
	}

	if err := g.Release(tok); err != nil {
		t.Fatalf("Release: %v", err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("done not closed after release")
	}

	if g.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", g.Pending())
	}
}

func TestGateReleaseUnknownToken(t *testing.T) {
	g := NewGate()

	if err := g.Release(99); !errors.Is(err, ErrUnknownToken) {
		t.Errorf("Release(99) = %v, want ErrUnknownToken", err)
	}

	tok, _ := g.Engage()
	if err := g.Release(tok); err != nil {
		t.Fatalf("first Release: %v", err)
	}
	if err := g.Release(tok); !errors.Is(err, ErrUnknownToken) {
		t.Errorf("double Release = %v, want ErrUnknownToken", err)
	}
}

func TestGateTokensAreUnique(t *testing.T) {
	g := NewGate()
	seen := make(map[Token]bool)
	for i := 0; i < 100; i++ {
		tok, _ := g.Engage()
		if seen[tok] {
			t.Fatalf("token %d issued twice", tok)
		}
		seen[tok] = true
	}
}

func TestGateWaitBlocksUntilRelease(t *testing.T) {
	g := NewGate()
	tok, done := g.Engage()

	released := make(chan struct{})
	go func() {
		time.Sleep(20 * time.Millisecond)
		g.Release(tok)
		close(released)
	}()

	if err := g.Wait(done, time.Second); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	<-released
}

func TestGateWaitTimeout(t *testing.T) {
	g := NewGate()
	tok, done := g.Engage()

	if err := g.Wait(done, 10*time.Millisecond); !errors.Is(err, ErrAckTimeout) {
		t.Fatalf("Wait = %v, want ErrAckTimeout", err)
	}

	// A late acknowledgment is still a valid release.
	if err := g.Release(tok); err != nil {
		t.Errorf("late Release = %v, want nil", err)
	}
}
