package mouse

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/weft/internal/protocol"
)

// buttonBits are the mask bits that represent physical buttons, as opposed
// to wheel ticks.
const buttonBits = tcell.Button1 | tcell.Button2 | tcell.Button3

// Decoder converts raw mouse reports to normalized events. It is stateful:
// the terminal reports the full button mask on every event, so presses,
// holds, and releases are recovered from mask transitions.
//
// Decoder is owned by the single input goroutine and is not safe for
// concurrent use.
type Decoder struct {
	held tcell.ButtonMask
}

// Decode classifies one raw mouse report. Coordinates are one-based as
// reported by the terminal. The second return value is false when the
// report maps to no event (pointer motion with no button held).
func (d *Decoder) Decode(buttons tcell.ButtonMask, col, row int) (Event, bool) {
	pos := protocol.PositionFromRaw(col, row)

	// Wheel ticks are instantaneous presses and do not affect held state.
	if buttons&tcell.WheelUp != 0 {
		return Press(WheelUp, pos), true
	}
	if buttons&tcell.WheelDown != 0 {
		return Press(WheelDown, pos), true
	}

	pressed := buttons & buttonBits
	switch {
	case pressed == d.held:
		if pressed == 0 {
			// Motion without a button has no defined mapping.
			return Event{}, false
		}
		return Hold(pos), true
	case pressed&^d.held != 0:
		newly := pressed &^ d.held
		d.held = pressed
		return Press(buttonFromMask(newly), pos), true
	default:
		d.held = pressed
		return Release(pos), true
	}
}

// Reset clears held-button state, e.g. after the terminal is reset.
func (d *Decoder) Reset() {
	d.held = 0
}

func buttonFromMask(mask tcell.ButtonMask) Button {
	switch {
	case mask&tcell.Button1 != 0:
		return ButtonLeft
	case mask&tcell.Button2 != 0:
		return ButtonRight
	case mask&tcell.Button3 != 0:
		return ButtonMiddle
	default:
		return ButtonNone
	}
}
