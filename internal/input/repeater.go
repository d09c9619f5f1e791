package input

import (
	"sync"
	"time"

	"github.com/dshills/weft/internal/protocol"
)

// Repeater re-dispatches a held-mouse action at a fixed interval on its
// own goroutine. At most one repeat loop is active; starting a new one
// replaces the previous. The only external control is Stop, triggered by
// a mouse release.
type Repeater struct {
	interval time.Duration
	dispatch func(protocol.Action)

	mu     sync.Mutex
	cancel chan struct{}
}

// NewRepeater creates a stopped repeater. dispatch is invoked from the
// repeater's goroutine and must be safe to call concurrently with the
// input loop.
func NewRepeater(interval time.Duration, dispatch func(protocol.Action)) *Repeater {
	return &Repeater{interval: interval, dispatch: dispatch}
}

// Start begins (or refreshes) repeating dispatch of a. Any active repeat
// loop is cancelled first.
func (r *Repeater) Start(a protocol.Action) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		close(r.cancel)
	}
	cancel := make(chan struct{})
	r.cancel = cancel
	go r.run(a, cancel)
}

// Stop cancels the active repeat loop, if any. No repeats are dispatched
// after Stop returns.
func (r *Repeater) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		close(r.cancel)
		r.cancel = nil
	}
}

// Active reports whether a repeat loop is running.
func (r *Repeater) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}

func (r *Repeater) run(a protocol.Action, cancel chan struct{}) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-cancel:
			return
		case <-ticker.C:
			// Dispatch under the lock so a concurrent Stop either beats
			// this tick entirely or waits for it; a cancelled loop can
			// never emit once Stop has returned.
			r.mu.Lock()
			if r.cancel != cancel {
				r.mu.Unlock()
				return
			}
			r.dispatch(a)
			r.mu.Unlock()
		}
	}
}
