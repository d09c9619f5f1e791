package key

import (
	"errors"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// ErrUnsupportedKey indicates a raw key or modifier combination with no
// normalized mapping. The event should be dropped; it is not a failure of
// the input loop.
var ErrUnsupportedKey = errors.New("key: unsupported key or modifier combination")

// Decode maps a raw terminal key report (key code, rune, modifier mask) to
// a normalized Key.
//
// Shift is never tracked separately: the terminal already resolves it into
// the reported rune. Ctrl and Alt fuse with character keys only; Ctrl or
// Alt on any other key, and every remaining modifier combination, returns
// ErrUnsupportedKey.
func Decode(code tcell.Key, r rune, mods tcell.ModMask) (Key, error) {
	base, err := decodeCode(code, r)
	if err != nil {
		return Key{}, err
	}

	mods &^= tcell.ModShift
	if base.Code == CodeCtrl {
		// Control characters carry the modifier in the code itself.
		mods &^= tcell.ModCtrl
	}

	switch mods {
	case 0:
		return base, nil
	case tcell.ModCtrl:
		if base.Code == CodeChar {
			return Ctrl(unicode.ToLower(base.Rune)), nil
		}
		return Key{}, ErrUnsupportedKey
	case tcell.ModAlt:
		if base.Code == CodeChar {
			return Alt(base.Rune), nil
		}
		return Key{}, ErrUnsupportedKey
	default:
		return Key{}, ErrUnsupportedKey
	}
}

// decodeCode maps the raw key code to its unmodified Key. Enter and Tab
// fold into Char('\n') and Char('\t'); their Ctrl-letter aliases are
// indistinguishable on the wire and resolve the same way.
func decodeCode(code tcell.Key, r rune) (Key, error) {
	switch code {
	case tcell.KeyRune:
		return Char(r), nil
	case tcell.KeyEnter:
		return Char('\n'), nil
	case tcell.KeyTab:
		return Char('\t'), nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Special(CodeBackspace), nil
	case tcell.KeyEscape:
		return Special(CodeEsc), nil
	case tcell.KeyBacktab:
		return Special(CodeBackTab), nil
	case tcell.KeyLeft:
		return Special(CodeLeft), nil
	case tcell.KeyRight:
		return Special(CodeRight), nil
	case tcell.KeyUp:
		return Special(CodeUp), nil
	case tcell.KeyDown:
		return Special(CodeDown), nil
	case tcell.KeyHome:
		return Special(CodeHome), nil
	case tcell.KeyEnd:
		return Special(CodeEnd), nil
	case tcell.KeyPgUp:
		return Special(CodePageUp), nil
	case tcell.KeyPgDn:
		return Special(CodePageDown), nil
	case tcell.KeyDelete:
		return Special(CodeDelete), nil
	case tcell.KeyInsert:
		return Special(CodeInsert), nil
	}

	if code >= tcell.KeyCtrlA && code <= tcell.KeyCtrlZ {
		return Ctrl(rune('a' + code - tcell.KeyCtrlA)), nil
	}
	if code >= tcell.KeyF1 && code <= tcell.KeyF12 {
		return Special(CodeF1 + Code(code-tcell.KeyF1)), nil
	}

	return Key{}, ErrUnsupportedKey
}
