package term

import "sync"

// MockDriver is a scriptable Driver for tests. It replays queued events in
// order; once the queue drains, reads fail with the configured error
// (ErrDriverClosed by default), or block waiting for Feed when constructed
// with NewBlockingMockDriver.
type MockDriver struct {
	mu           sync.Mutex
	cond         *sync.Cond
	events       []RawEvent
	next         int
	blocking     bool
	readErr      error
	mouseEnabled bool
	closed       bool
}

// NewMockDriver creates a mock that will replay the given events.
func NewMockDriver(events ...RawEvent) *MockDriver {
	m := &MockDriver{events: events}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// NewBlockingMockDriver creates a mock whose ReadEvent blocks on an empty
// queue instead of failing, until Feed, FailWith, or Close unparks it.
func NewBlockingMockDriver(events ...RawEvent) *MockDriver {
	m := NewMockDriver(events...)
	m.blocking = true
	return m
}

// Feed appends events to the replay queue.
func (m *MockDriver) Feed(events ...RawEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, events...)
	m.cond.Broadcast()
}

// FailWith sets the error returned once the queue is drained.
func (m *MockDriver) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
	m.cond.Broadcast()
}

// ReadEvent implements Driver.
func (m *MockDriver) ReadEvent() (RawEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for {
		if m.closed {
			return RawEvent{}, ErrDriverClosed
		}
		if m.next < len(m.events) {
			ev := m.events[m.next]
			m.next++
			return ev, nil
		}
		if m.readErr != nil {
			return RawEvent{}, m.readErr
		}
		if !m.blocking {
			return RawEvent{}, ErrDriverClosed
		}
		m.cond.Wait()
	}
}

// EnableMouse implements Driver.
func (m *MockDriver) EnableMouse() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mouseEnabled = true
}

// MouseEnabled reports whether EnableMouse was called.
func (m *MockDriver) MouseEnabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mouseEnabled
}

// Close implements Driver.
func (m *MockDriver) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.cond.Broadcast()
}
