package input

import (
	"sync"
	"testing"
	"time"

	"github.com/dshills/weft/internal/protocol"
)

// countingDispatch counts dispatches per action kind and signals each one.
type countingDispatch struct {
	mu     sync.Mutex
	counts map[protocol.ActionKind]int
	ch     chan protocol.Action
}

func newCountingDispatch() *countingDispatch {
	return &countingDispatch{
		counts: make(map[protocol.ActionKind]int),
		ch:     make(chan protocol.Action, 64),
	}
}

func (d *countingDispatch) dispatch(a protocol.Action) {
	d.mu.Lock()
	d.counts[a.Kind]++
	d.mu.Unlock()
	select {
	case d.ch <- a:
	default:
	}
}

func (d *countingDispatch) count(kind protocol.ActionKind) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.counts[kind]
}

func (d *countingDispatch) waitFor(t *testing.T, kind protocol.ActionKind) {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		select {
		case a := <-d.ch:
			if a.Kind == kind {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s", kind)
		}
	}
}

func TestRepeaterDispatchesAtInterval(t *testing.T) {
	d := newCountingDispatch()
	r := NewRepeater(2*time.Millisecond, d.dispatch)

	r.Start(protocol.MouseHold(protocol.NewPosition(1, 1)))
	d.waitFor(t, protocol.ActionMouseHold)
	d.waitFor(t, protocol.ActionMouseHold)
	r.Stop()

	if got := d.count(protocol.ActionMouseHold); got < 2 {
		t.Errorf("dispatch count = %d, want at least 2", got)
	}
}

func TestRepeaterStopEndsRepeats(t *testing.T) {
	d := newCountingDispatch()
	r := NewRepeater(2*time.Millisecond, d.dispatch)

	r.Start(protocol.MouseHold(protocol.NewPosition(0, 0)))
	d.waitFor(t, protocol.ActionMouseHold)
	r.Stop()

	before := d.count(protocol.ActionMouseHold)
	time.Sleep(20 * time.Millisecond)
	if after := d.count(protocol.ActionMouseHold); after != before {
		t.Errorf("repeats after Stop: %d -> %d", before, after)
	}
	if r.Active() {
		t.Error("Active() = true after Stop")
	}
}

func TestRepeaterStartReplacesActiveLoop(t *testing.T) {
	d := newCountingDispatch()
	r := NewRepeater(2*time.Millisecond, d.dispatch)
	defer r.Stop()

	r.Start(protocol.MouseHold(protocol.NewPosition(0, 0)))
	r.Start(protocol.ScrollUpAt(protocol.NewPosition(0, 0)))

	// Only the replacement action may keep flowing.
	d.waitFor(t, protocol.ActionScrollUpAt)
	d.waitFor(t, protocol.ActionScrollUpAt)

	holds := d.count(protocol.ActionMouseHold)
	time.Sleep(10 * time.Millisecond)
	if after := d.count(protocol.ActionMouseHold); after != holds {
		t.Errorf("replaced loop kept dispatching: %d -> %d", holds, after)
	}
}

func TestRepeaterStopIsIdempotent(t *testing.T) {
	r := NewRepeater(time.Millisecond, func(protocol.Action) {})
	r.Stop()
	r.Start(protocol.MouseHold(protocol.NewPosition(0, 0)))
	r.Stop()
	r.Stop()
	if r.Active() {
		t.Error("Active() = true after Stop")
	}
}
