package protocol

import (
	"fmt"
	"strings"
)

// InputMode is the interpretation context for keyboard input. The client
// keeps a local mirror of the current mode; the server is informed of
// changes via SwitchToMode actions.
type InputMode uint8

const (
	// ModeNormal passes text through to the focused pane and interprets
	// the prefix keybindings.
	ModeNormal InputMode = iota

	// ModeLocked disables all keybindings except the unlock binding.
	ModeLocked

	// ModeResize interprets directional keys as pane resize commands.
	ModeResize

	// ModePane interprets keys as pane management commands.
	ModePane

	// ModeTab interprets keys as tab management commands.
	ModeTab

	// ModeScroll interprets keys as scrollback navigation commands.
	ModeScroll

	// ModeRenameTab collects text input for the focused tab's name.
	ModeRenameTab

	// ModeSession interprets keys as session commands (e.g. detach).
	ModeSession
)

// String returns the canonical lowercase mode name.
func (m InputMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeLocked:
		return "locked"
	case ModeResize:
		return "resize"
	case ModePane:
		return "pane"
	case ModeTab:
		return "tab"
	case ModeScroll:
		return "scroll"
	case ModeRenameTab:
		return "renametab"
	case ModeSession:
		return "session"
	default:
		return fmt.Sprintf("InputMode(%d)", m)
	}
}

// Modes lists every input mode, in declaration order.
func Modes() []InputMode {
	return []InputMode{
		ModeNormal, ModeLocked, ModeResize, ModePane,
		ModeTab, ModeScroll, ModeRenameTab, ModeSession,
	}
}

// ParseInputMode returns the mode for a name (case-insensitive).
func ParseInputMode(name string) (InputMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal":
		return ModeNormal, nil
	case "locked":
		return ModeLocked, nil
	case "resize":
		return ModeResize, nil
	case "pane":
		return ModePane, nil
	case "tab":
		return ModeTab, nil
	case "scroll":
		return ModeScroll, nil
	case "renametab", "rename-tab":
		return ModeRenameTab, nil
	case "session":
		return ModeSession, nil
	default:
		return ModeNormal, fmt.Errorf("protocol: unknown input mode %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m InputMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *InputMode) UnmarshalText(text []byte) error {
	parsed, err := ParseInputMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
