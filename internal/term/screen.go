package term

import (
	"github.com/gdamore/tcell/v2"
)

// Screen is the tcell-backed terminal driver.
type Screen struct {
	screen tcell.Screen
}

// NewScreen initializes the process terminal and enables bracketed paste.
// Mouse reporting is off until EnableMouse is called.
func NewScreen() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnablePaste()
	return &Screen{screen: screen}, nil
}

// ReadEvent blocks for the next terminal event and converts it to a
// RawEvent. tcell positions are zero-based; RawEvent carries the
// terminal's one-based convention, so mouse coordinates shift by one.
func (s *Screen) ReadEvent() (RawEvent, error) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return RawEvent{}, ErrDriverClosed
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			return KeyEvent(ev.Key(), ev.Rune(), ev.Modifiers()), nil
		case *tcell.EventMouse:
			x, y := ev.Position()
			return MouseEvent(ev.Buttons(), x+1, y+1), nil
		case *tcell.EventPaste:
			if ev.Start() {
				return RawEvent{Kind: EventPasteStart}, nil
			}
			return RawEvent{Kind: EventPasteEnd}, nil
		case *tcell.EventResize:
			cols, rows := ev.Size()
			return RawEvent{Kind: EventResize, Cols: cols, Rows: rows}, nil
		default:
			// Interrupts and other internal tcell events carry nothing
			// the pipeline needs.
		}
	}
}

// EnableMouse asks the terminal to report all mouse events.
func (s *Screen) EnableMouse() {
	s.screen.EnableMouse()
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}
