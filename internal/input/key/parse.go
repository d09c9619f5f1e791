package key

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// namedKeys maps config key names (lowercase) to keys. Character aliases
// fold the same way the decoder does.
var namedKeys = map[string]Key{
	"enter":     Char('\n'),
	"return":    Char('\n'),
	"tab":       Char('\t'),
	"space":     Char(' '),
	"esc":       Special(CodeEsc),
	"escape":    Special(CodeEsc),
	"backspace": Special(CodeBackspace),
	"delete":    Special(CodeDelete),
	"del":       Special(CodeDelete),
	"insert":    Special(CodeInsert),
	"ins":       Special(CodeInsert),
	"left":      Special(CodeLeft),
	"right":     Special(CodeRight),
	"up":        Special(CodeUp),
	"down":      Special(CodeDown),
	"home":      Special(CodeHome),
	"end":       Special(CodeEnd),
	"pageup":    Special(CodePageUp),
	"pgup":      Special(CodePageUp),
	"pagedown":  Special(CodePageDown),
	"pgdn":      Special(CodePageDown),
	"backtab":   Special(CodeBackTab),
	"f1":        Special(CodeF1),
	"f2":        Special(CodeF2),
	"f3":        Special(CodeF3),
	"f4":        Special(CodeF4),
	"f5":        Special(CodeF5),
	"f6":        Special(CodeF6),
	"f7":        Special(CodeF7),
	"f8":        Special(CodeF8),
	"f9":        Special(CodeF9),
	"f10":       Special(CodeF10),
	"f11":       Special(CodeF11),
	"f12":       Special(CodeF12),
}

// Parse converts a config key spec to a Key. Accepted forms: a single
// character ("g", "?"), a named key ("Enter", "F5", "PageUp"), or a
// modified character ("Ctrl+g", "Alt+h"). Ctrl and Alt combine with
// characters only.
func Parse(spec string) (Key, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Key{}, fmt.Errorf("key: empty key spec")
	}

	// A plain single character, including "+" itself.
	if utf8.RuneCountInString(spec) == 1 {
		r, _ := utf8.DecodeRuneInString(spec)
		return Char(r), nil
	}

	if mod, rest, ok := splitModifier(spec); ok {
		base, err := Parse(rest)
		if err != nil {
			return Key{}, err
		}
		if base.Code != CodeChar {
			return Key{}, fmt.Errorf("key: %s cannot modify %q: %w", mod, rest, ErrUnsupportedKey)
		}
		if strings.EqualFold(mod, "alt") {
			return Alt(base.Rune), nil
		}
		// Match the decoder: Ctrl+G and Ctrl+g are the same terminal key.
		return Ctrl(unicode.ToLower(base.Rune)), nil
	}

	if k, ok := namedKeys[strings.ToLower(spec)]; ok {
		return k, nil
	}

	return Key{}, fmt.Errorf("key: unknown key spec %q", spec)
}

// splitModifier splits a "Ctrl+x" / "Alt+x" prefix off a key spec.
func splitModifier(spec string) (mod, rest string, ok bool) {
	i := strings.IndexAny(spec, "+-")
	if i <= 0 || i == len(spec)-1 {
		return "", "", false
	}
	mod, rest = spec[:i], spec[i+1:]
	switch strings.ToLower(mod) {
	case "ctrl", "control", "c":
		return "ctrl", rest, true
	case "alt", "a":
		return "alt", rest, true
	}
	return "", "", false
}
