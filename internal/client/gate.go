package client

import (
	"errors"
	"sync"
	"time"
)

// Gate errors.
var (
	// ErrAckTimeout indicates a bounded wait elapsed before the server
	// acknowledged a structural action.
	ErrAckTimeout = errors.New("client: timed out waiting for acknowledgment")

	// ErrUnknownToken indicates a release for a token that was never
	// engaged, or was already released.
	ErrUnknownToken = errors.New("client: unknown acknowledgment token")
)

// Token correlates one engaged wait with its acknowledgment.
type Token uint64

// Gate serializes structural actions against the server. The input thread
// engages the gate before sending a structural action and parks until the
// acknowledgment carrying the same token releases it.
//
// Every engage must eventually be matched by exactly one release; that
// obligation falls on the server. A bounded wait (see Wait) protects the
// input thread against a server that never delivers one.
type Gate struct {
	mu      sync.Mutex
	next    Token
	waiters map[Token]chan struct{}
}

// NewGate creates an empty gate.
func NewGate() *Gate {
	return &Gate{waiters: make(map[Token]chan struct{})}
}

// Engage registers a new wait and returns its token and done channel. The
// channel is closed when Release is called with the same token. Tokens are
// never zero; zero marks fire-and-forget messages on the wire.
func (g *Gate) Engage() (Token, <-chan struct{}) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.next++
	done := make(chan struct{})
	g.waiters[g.next] = done
	return g.next, done
}

// Release acknowledges the wait registered under t. Releasing a token that
// is not engaged returns ErrUnknownToken; a late acknowledgment after a
// timed-out wait is still a valid release.
func (g *Gate) Release(t Token) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	done, ok := g.waiters[t]
	if !ok {
		return ErrUnknownToken
	}
	delete(g.waiters, t)
	close(done)
	return nil
}

// Wait blocks until done is closed. A positive timeout bounds the wait and
// returns ErrAckTimeout when it elapses; zero or negative waits forever,
// which is the baseline protocol contract.
func (g *Gate) Wait(done <-chan struct{}, timeout time.Duration) error {
	if timeout <= 0 {
		<-done
		return nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		return nil
	case <-timer.C:
		return ErrAckTimeout
	}
}

// Pending returns the number of engaged, unreleased waits.
func (g *Gate) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.waiters)
}
