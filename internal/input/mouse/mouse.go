package mouse

import (
	"fmt"

	"github.com/dshills/weft/internal/protocol"
)

// Button identifies a mouse button. Wheel ticks are modeled as buttons
// that only ever appear in press events.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
	// WheelUp is an upward scroll wheel tick.
	WheelUp
	// WheelDown is a downward scroll wheel tick.
	WheelDown
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	case WheelUp:
		return "wheel-up"
	case WheelDown:
		return "wheel-down"
	default:
		return "none"
	}
}

// IsWheel returns true for scroll wheel buttons.
func (b Button) IsWheel() bool {
	return b == WheelUp || b == WheelDown
}

// Kind classifies a mouse event.
type Kind uint8

const (
	// KindPress is a button press (Event.Button is set).
	KindPress Kind = iota + 1
	// KindRelease is a button release.
	KindRelease
	// KindHold is motion with a button held.
	KindHold
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPress:
		return "press"
	case KindRelease:
		return "release"
	case KindHold:
		return "hold"
	default:
		return "none"
	}
}

// Event is a normalized mouse event at a zero-based position.
type Event struct {
	Kind     Kind
	Button   Button
	Position protocol.Position
}

// Press constructs a press event.
func Press(b Button, p protocol.Position) Event {
	return Event{Kind: KindPress, Button: b, Position: p}
}

// Release constructs a release event. Button identity is not carried.
func Release(p protocol.Position) Event {
	return Event{Kind: KindRelease, Position: p}
}

// Hold constructs a hold event.
func Hold(p protocol.Position) Event {
	return Event{Kind: KindHold, Position: p}
}

// String returns a compact description for logs.
func (e Event) String() string {
	if e.Kind == KindPress {
		return fmt.Sprintf("press(%s)%s", e.Button, e.Position)
	}
	return fmt.Sprintf("%s%s", e.Kind, e.Position)
}
