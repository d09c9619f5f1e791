package keymap

import (
	"github.com/dshills/weft/internal/input/key"
	"github.com/dshills/weft/internal/protocol"
)

// modeSwitchers are the prefix keys shared by every unlocked mode.
// Pressing a mode's own prefix inside that mode returns to normal.
var modeSwitchers = []struct {
	key  key.Key
	mode protocol.InputMode
}{
	{key.Ctrl('p'), protocol.ModePane},
	{key.Ctrl('t'), protocol.ModeTab},
	{key.Ctrl('r'), protocol.ModeResize},
	{key.Ctrl('s'), protocol.ModeScroll},
	{key.Ctrl('o'), protocol.ModeSession},
}

// Default returns the compiled-in keybinding table. User configuration is
// merged over it; see the config package.
func Default() Keybinds {
	kb := make(Keybinds)

	for _, m := range protocol.Modes() {
		if m == protocol.ModeLocked || m == protocol.ModeRenameTab {
			continue
		}
		for _, sw := range modeSwitchers {
			target := sw.mode
			if m == sw.mode {
				target = protocol.ModeNormal
			}
			kb.Bind(m, sw.key, protocol.SwitchToMode(target))
		}
		kb.Bind(m, key.Ctrl('g'), protocol.SwitchToMode(protocol.ModeLocked))
		kb.Bind(m, key.Ctrl('q'), protocol.Simple(protocol.ActionQuit))
		if m != protocol.ModeNormal {
			kb.Bind(m, key.Special(key.CodeEsc), protocol.SwitchToMode(protocol.ModeNormal))
		}
	}

	// Locked mode recognizes the unlock key and nothing else.
	kb.Bind(protocol.ModeLocked, key.Ctrl('g'), protocol.SwitchToMode(protocol.ModeNormal))

	bindPane(kb)
	bindTab(kb)
	bindResize(kb)
	bindScroll(kb)
	bindRenameTab(kb)
	bindSession(kb)

	return kb
}

func bindPane(kb Keybinds) {
	m := protocol.ModePane
	toNormal := protocol.SwitchToMode(protocol.ModeNormal)

	kb.Bind(m, key.Special(key.CodeLeft), protocol.MoveFocus(protocol.DirLeft))
	kb.Bind(m, key.Special(key.CodeRight), protocol.MoveFocus(protocol.DirRight))
	kb.Bind(m, key.Special(key.CodeUp), protocol.MoveFocus(protocol.DirUp))
	kb.Bind(m, key.Special(key.CodeDown), protocol.MoveFocus(protocol.DirDown))
	kb.Bind(m, key.Char('h'), protocol.MoveFocus(protocol.DirLeft))
	kb.Bind(m, key.Char('l'), protocol.MoveFocus(protocol.DirRight))
	kb.Bind(m, key.Char('k'), protocol.MoveFocus(protocol.DirUp))
	kb.Bind(m, key.Char('j'), protocol.MoveFocus(protocol.DirDown))

	kb.Bind(m, key.Char('p'), protocol.Simple(protocol.ActionSwitchFocus))
	kb.Bind(m, key.Char('n'), protocol.NewPane(protocol.DirNone), toNormal)
	kb.Bind(m, key.Char('d'), protocol.NewPane(protocol.DirDown), toNormal)
	kb.Bind(m, key.Char('r'), protocol.NewPane(protocol.DirRight), toNormal)
	kb.Bind(m, key.Char('x'), protocol.Simple(protocol.ActionCloseFocus), toNormal)
	kb.Bind(m, key.Char('f'), protocol.Simple(protocol.ActionToggleFullscreen), toNormal)
}

func bindTab(kb Keybinds) {
	m := protocol.ModeTab
	toNormal := protocol.SwitchToMode(protocol.ModeNormal)

	kb.Bind(m, key.Special(key.CodeLeft), protocol.Simple(protocol.ActionGoToPreviousTab))
	kb.Bind(m, key.Special(key.CodeRight), protocol.Simple(protocol.ActionGoToNextTab))
	kb.Bind(m, key.Char('h'), protocol.Simple(protocol.ActionGoToPreviousTab))
	kb.Bind(m, key.Char('l'), protocol.Simple(protocol.ActionGoToNextTab))

	kb.Bind(m, key.Char('n'), protocol.Simple(protocol.ActionNewTab), toNormal)
	kb.Bind(m, key.Char('x'), protocol.Simple(protocol.ActionCloseTab), toNormal)
	kb.Bind(m, key.Char('r'), protocol.SwitchToMode(protocol.ModeRenameTab))
	kb.Bind(m, key.Char('s'), protocol.Simple(protocol.ActionToggleTab))
	kb.Bind(m, key.Char('\t'), protocol.Simple(protocol.ActionToggleTab))

	for i := 1; i <= 9; i++ {
		kb.Bind(m, key.Char(rune('0'+i)), protocol.GoToTab(i), toNormal)
	}
}

func bindResize(kb Keybinds) {
	m := protocol.ModeResize

	kb.Bind(m, key.Special(key.CodeLeft), protocol.Resize(protocol.DirLeft))
	kb.Bind(m, key.Special(key.CodeRight), protocol.Resize(protocol.DirRight))
	kb.Bind(m, key.Special(key.CodeUp), protocol.Resize(protocol.DirUp))
	kb.Bind(m, key.Special(key.CodeDown), protocol.Resize(protocol.DirDown))
	kb.Bind(m, key.Char('h'), protocol.Resize(protocol.DirLeft))
	kb.Bind(m, key.Char('l'), protocol.Resize(protocol.DirRight))
	kb.Bind(m, key.Char('k'), protocol.Resize(protocol.DirUp))
	kb.Bind(m, key.Char('j'), protocol.Resize(protocol.DirDown))
}

func bindScroll(kb Keybinds) {
	m := protocol.ModeScroll

	kb.Bind(m, key.Special(key.CodeUp), protocol.Simple(protocol.ActionScrollUp))
	kb.Bind(m, key.Special(key.CodeDown), protocol.Simple(protocol.ActionScrollDown))
	kb.Bind(m, key.Char('k'), protocol.Simple(protocol.ActionScrollUp))
	kb.Bind(m, key.Char('j'), protocol.Simple(protocol.ActionScrollDown))
	kb.Bind(m, key.Special(key.CodePageUp), protocol.Simple(protocol.ActionPageScrollUp))
	kb.Bind(m, key.Special(key.CodePageDown), protocol.Simple(protocol.ActionPageScrollDown))
}

func bindRenameTab(kb Keybinds) {
	m := protocol.ModeRenameTab
	kb.Bind(m, key.Char('\n'),
		protocol.Simple(protocol.ActionSaveTabName),
		protocol.SwitchToMode(protocol.ModeNormal))
	kb.Bind(m, key.Special(key.CodeEsc), protocol.SwitchToMode(protocol.ModeNormal))
}

func bindSession(kb Keybinds) {
	kb.Bind(protocol.ModeSession, key.Char('d'), protocol.Simple(protocol.ActionDetach))
}
