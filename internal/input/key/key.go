package key

import "fmt"

// Code identifies a key variant. Character keys use CodeChar, CodeCtrl, or
// CodeAlt with the character in Key.Rune; all other codes stand alone.
type Code uint8

const (
	// CodeNone represents no key.
	CodeNone Code = iota

	// CodeChar is an unmodified character key.
	CodeChar
	// CodeCtrl is a character key with Ctrl held.
	CodeCtrl
	// CodeAlt is a character key with Alt held.
	CodeAlt

	// Editing keys
	CodeBackspace
	CodeDelete
	CodeInsert

	// Navigation keys
	CodeLeft
	CodeRight
	CodeUp
	CodeDown
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown

	// CodeBackTab is Shift+Tab as reported by the terminal.
	CodeBackTab

	// CodeEsc is the Escape key.
	CodeEsc

	// Function keys
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
)

// IsChar returns true if the code carries a character in Key.Rune.
func (c Code) IsChar() bool {
	return c == CodeChar || c == CodeCtrl || c == CodeAlt
}

// IsFunction returns true for function keys (F1-F12).
func (c Code) IsFunction() bool {
	return c >= CodeF1 && c <= CodeF12
}

// IsNavigation returns true for arrow and page navigation keys.
func (c Code) IsNavigation() bool {
	return c >= CodeLeft && c <= CodePageDown
}

// Key is a normalized keyboard input. Enter and Tab are represented as
// Char('\n') and Char('\t'); the distinction is not preserved.
type Key struct {
	Code Code
	Rune rune
}

// Char returns an unmodified character key.
func Char(r rune) Key {
	return Key{Code: CodeChar, Rune: r}
}

// Ctrl returns a Ctrl-modified character key.
func Ctrl(r rune) Key {
	return Key{Code: CodeCtrl, Rune: r}
}

// Alt returns an Alt-modified character key.
func Alt(r rune) Key {
	return Key{Code: CodeAlt, Rune: r}
}

// Special returns a key for a non-character code. The rune is zero.
func Special(c Code) Key {
	return Key{Code: c}
}

// IsChar returns true if this is a character key (with or without a
// fused modifier).
func (k Key) IsChar() bool {
	return k.Code.IsChar()
}

// codeNames covers the non-character codes.
var codeNames = map[Code]string{
	CodeBackspace: "Backspace",
	CodeDelete:    "Delete",
	CodeInsert:    "Insert",
	CodeLeft:      "Left",
	CodeRight:     "Right",
	CodeUp:        "Up",
	CodeDown:      "Down",
	CodeHome:      "Home",
	CodeEnd:       "End",
	CodePageUp:    "PageUp",
	CodePageDown:  "PageDown",
	CodeBackTab:   "BackTab",
	CodeEsc:       "Esc",
	CodeF1:        "F1",
	CodeF2:        "F2",
	CodeF3:        "F3",
	CodeF4:        "F4",
	CodeF5:        "F5",
	CodeF6:        "F6",
	CodeF7:        "F7",
	CodeF8:        "F8",
	CodeF9:        "F9",
	CodeF10:       "F10",
	CodeF11:       "F11",
	CodeF12:       "F12",
}

// String returns a human-readable key name, e.g. "a", "Ctrl+b", "Alt+h",
// "Enter", "F5".
func (k Key) String() string {
	switch k.Code {
	case CodeChar:
		return charName(k.Rune)
	case CodeCtrl:
		return "Ctrl+" + charName(k.Rune)
	case CodeAlt:
		return "Alt+" + charName(k.Rune)
	case CodeNone:
		return "None"
	default:
		if name, ok := codeNames[k.Code]; ok {
			return name
		}
		return fmt.Sprintf("Key(%d)", k.Code)
	}
}

func charName(r rune) string {
	switch r {
	case '\n':
		return "Enter"
	case '\t':
		return "Tab"
	case ' ':
		return "Space"
	default:
		return string(r)
	}
}
