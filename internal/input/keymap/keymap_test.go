package keymap

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/weft/internal/input/key"
	"github.com/dshills/weft/internal/protocol"
)

func TestResolveAbsentIsEmpty(t *testing.T) {
	kb := make(Keybinds)
	kb.Bind(protocol.ModeNormal, key.Char('q'), protocol.Simple(protocol.ActionQuit))

	tests := []struct {
		name string
		mode protocol.InputMode
		key  key.Key
	}{
		{"unknown key in bound mode", protocol.ModeNormal, key.Char('z')},
		{"bound key in other mode", protocol.ModePane, key.Char('q')},
		{"mode with no table", protocol.ModeScroll, key.Special(key.CodeUp)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kb.Resolve(tt.mode, tt.key); len(got) != 0 {
				t.Errorf("Resolve = %v, want empty", got)
			}
		})
	}
}

func TestResolveOrderedActions(t *testing.T) {
	kb := make(Keybinds)
	kb.Bind(protocol.ModePane, key.Char('d'),
		protocol.NewPane(protocol.DirDown),
		protocol.SwitchToMode(protocol.ModeNormal))

	got := kb.Resolve(protocol.ModePane, key.Char('d'))
	want := []protocol.Action{
		protocol.NewPane(protocol.DirDown),
		protocol.SwitchToMode(protocol.ModeNormal),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeReplacesBinding(t *testing.T) {
	kb := Default()
	over := make(Keybinds)
	over.Bind(protocol.ModeNormal, key.Ctrl('q'), protocol.Simple(protocol.ActionDetach))
	kb.Merge(over)

	got := kb.Resolve(protocol.ModeNormal, key.Ctrl('q'))
	want := []protocol.Action{protocol.Simple(protocol.ActionDetach)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merged binding mismatch (-want +got):\n%s", diff)
	}

	// Untouched bindings keep their defaults.
	got = kb.Resolve(protocol.ModePane, key.Char('x'))
	if len(got) == 0 || got[0].Kind != protocol.ActionCloseFocus {
		t.Errorf("Resolve(pane, x) = %v, want CloseFocus actions", got)
	}
}

func TestDefaultTable(t *testing.T) {
	kb := Default()

	tests := []struct {
		name string
		mode protocol.InputMode
		key  key.Key
		want []protocol.Action
	}{
		{
			"prefix enters pane mode",
			protocol.ModeNormal, key.Ctrl('p'),
			[]protocol.Action{protocol.SwitchToMode(protocol.ModePane)},
		},
		{
			"own prefix returns to normal",
			protocol.ModePane, key.Ctrl('p'),
			[]protocol.Action{protocol.SwitchToMode(protocol.ModeNormal)},
		},
		{
			"locked only unlocks",
			protocol.ModeLocked, key.Ctrl('g'),
			[]protocol.Action{protocol.SwitchToMode(protocol.ModeNormal)},
		},
		{
			"rename commits on enter",
			protocol.ModeRenameTab, key.Char('\n'),
			[]protocol.Action{
				protocol.Simple(protocol.ActionSaveTabName),
				protocol.SwitchToMode(protocol.ModeNormal),
			},
		},
		{
			"session detach",
			protocol.ModeSession, key.Char('d'),
			[]protocol.Action{protocol.Simple(protocol.ActionDetach)},
		},
		{
			"tab index",
			protocol.ModeTab, key.Char('3'),
			[]protocol.Action{
				protocol.GoToTab(3),
				protocol.SwitchToMode(protocol.ModeNormal),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kb.Resolve(tt.mode, tt.key)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
			}
		})
	}

	// Locked mode must not react to quit or mode prefixes.
	if got := kb.Resolve(protocol.ModeLocked, key.Ctrl('q')); len(got) != 0 {
		t.Errorf("locked Ctrl+q = %v, want empty", got)
	}
	if got := kb.Resolve(protocol.ModeLocked, key.Ctrl('p')); len(got) != 0 {
		t.Errorf("locked Ctrl+p = %v, want empty", got)
	}
}

func TestClone(t *testing.T) {
	kb := Default()
	clone := kb.Clone()

	clone.Bind(protocol.ModeNormal, key.Ctrl('p'), protocol.Simple(protocol.ActionQuit))

	got := kb.Resolve(protocol.ModeNormal, key.Ctrl('p'))
	if len(got) != 1 || got[0].Kind != protocol.ActionSwitchToMode {
		t.Errorf("original table changed after clone mutation: %v", got)
	}
}
