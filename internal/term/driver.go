package term

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// ErrDriverClosed indicates the event source cannot supply further events.
// The input loop treats it, and any other read error, as fatal.
var ErrDriverClosed = errors.New("term: driver closed")

// EventKind tags a raw terminal event.
type EventKind uint8

const (
	// EventNone is the zero event kind.
	EventNone EventKind = iota
	// EventKey is a keyboard report.
	EventKey
	// EventMouse is a mouse report.
	EventMouse
	// EventResize is a terminal size change.
	EventResize
	// EventPasteStart marks the beginning of a bracketed paste.
	EventPasteStart
	// EventPasteEnd marks the end of a bracketed paste.
	EventPasteEnd
)

// RawEvent is one raw terminal event. The fields used depend on Kind.
//
// Mouse coordinates are one-based, matching the terminal's reporting
// convention; decoders normalize them to zero-based positions.
type RawEvent struct {
	Kind EventKind

	// Key report fields.
	KeyCode tcell.Key
	Rune    rune
	Mods    tcell.ModMask

	// Mouse report fields.
	Buttons     tcell.ButtonMask
	Column, Row int

	// New size for EventResize.
	Cols, Rows int
}

// KeyEvent constructs a raw key report.
func KeyEvent(code tcell.Key, r rune, mods tcell.ModMask) RawEvent {
	return RawEvent{Kind: EventKey, KeyCode: code, Rune: r, Mods: mods}
}

// MouseEvent constructs a raw mouse report with one-based coordinates.
func MouseEvent(buttons tcell.ButtonMask, column, row int) RawEvent {
	return RawEvent{Kind: EventMouse, Buttons: buttons, Column: column, Row: row}
}

// Driver is the terminal event source used by the input loop.
type Driver interface {
	// ReadEvent blocks until the next raw event is available. An error
	// means the source is gone for good; there are no transient read
	// failures.
	ReadEvent() (RawEvent, error)

	// EnableMouse asks the terminal to report mouse events.
	EnableMouse()

	// Close releases the terminal. Subsequent reads fail with
	// ErrDriverClosed.
	Close()
}
