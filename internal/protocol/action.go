package protocol

import (
	"fmt"
	"strings"
)

// ActionKind identifies an action variant. The kind set is part of the
// wire protocol and is versioned together with the message envelope.
type ActionKind uint8

const (
	// ActionNone is the zero action; it is never sent.
	ActionNone ActionKind = iota

	// ActionQuit ends the session for every attached client.
	ActionQuit
	// ActionDetach detaches this client, leaving the session running.
	ActionDetach
	// ActionSwitchToMode changes the input mode (Action.Mode).
	ActionSwitchToMode
	// ActionWrite sends raw bytes to the focused pane (Action.Bytes).
	ActionWrite

	// ActionTabNameInput appends bytes to the pending tab name (Action.Bytes).
	ActionTabNameInput
	// ActionSaveTabName commits the pending tab name.
	ActionSaveTabName

	// ActionScrollUp scrolls the focused pane up one line.
	ActionScrollUp
	// ActionScrollDown scrolls the focused pane down one line.
	ActionScrollDown
	// ActionPageScrollUp scrolls the focused pane up one page.
	ActionPageScrollUp
	// ActionPageScrollDown scrolls the focused pane down one page.
	ActionPageScrollDown
	// ActionScrollUpAt scrolls the pane under Action.Position up.
	ActionScrollUpAt
	// ActionScrollDownAt scrolls the pane under Action.Position down.
	ActionScrollDownAt

	// ActionLeftClick reports a left click at Action.Position.
	ActionLeftClick
	// ActionMouseRelease reports a button release at Action.Position.
	ActionMouseRelease
	// ActionMouseHold reports a held button at Action.Position.
	ActionMouseHold

	// ActionResize resizes the focused pane toward Action.Direction.
	ActionResize
	// ActionMoveFocus moves pane focus toward Action.Direction.
	ActionMoveFocus
	// ActionSwitchFocus cycles focus to the next pane.
	ActionSwitchFocus
	// ActionToggleFullscreen toggles fullscreen on the focused pane.
	ActionToggleFullscreen

	// ActionNewPane opens a pane, split toward Action.Direction when set.
	ActionNewPane
	// ActionCloseFocus closes the focused pane.
	ActionCloseFocus
	// ActionNewTab opens a tab.
	ActionNewTab
	// ActionCloseTab closes the focused tab.
	ActionCloseTab
	// ActionGoToNextTab focuses the next tab.
	ActionGoToNextTab
	// ActionGoToPreviousTab focuses the previous tab.
	ActionGoToPreviousTab
	// ActionGoToTab focuses the tab at Action.Index (one-based).
	ActionGoToTab
	// ActionToggleTab focuses the previously focused tab.
	ActionToggleTab
	// ActionMoveFocusOrTab moves pane focus toward Action.Direction,
	// crossing to the adjacent tab at the edge.
	ActionMoveFocusOrTab
)

var actionKindNames = map[ActionKind]string{
	ActionQuit:             "Quit",
	ActionDetach:           "Detach",
	ActionSwitchToMode:     "SwitchToMode",
	ActionWrite:            "Write",
	ActionTabNameInput:     "TabNameInput",
	ActionSaveTabName:      "SaveTabName",
	ActionScrollUp:         "ScrollUp",
	ActionScrollDown:       "ScrollDown",
	ActionPageScrollUp:     "PageScrollUp",
	ActionPageScrollDown:   "PageScrollDown",
	ActionScrollUpAt:       "ScrollUpAt",
	ActionScrollDownAt:     "ScrollDownAt",
	ActionLeftClick:        "LeftClick",
	ActionMouseRelease:     "MouseRelease",
	ActionMouseHold:        "MouseHold",
	ActionResize:           "Resize",
	ActionMoveFocus:        "MoveFocus",
	ActionSwitchFocus:      "SwitchFocus",
	ActionToggleFullscreen: "ToggleFullscreen",
	ActionNewPane:          "NewPane",
	ActionCloseFocus:       "CloseFocus",
	ActionNewTab:           "NewTab",
	ActionCloseTab:         "CloseTab",
	ActionGoToNextTab:      "GoToNextTab",
	ActionGoToPreviousTab:  "GoToPreviousTab",
	ActionGoToTab:          "GoToTab",
	ActionToggleTab:        "ToggleTab",
	ActionMoveFocusOrTab:   "MoveFocusOrTab",
}

var actionKindByName = func() map[string]ActionKind {
	m := make(map[string]ActionKind, len(actionKindNames))
	for k, name := range actionKindNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// String returns the wire name of the kind.
func (k ActionKind) String() string {
	if name, ok := actionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ActionKind(%d)", k)
}

// ParseActionKind returns the kind for a wire name (case-insensitive).
func ParseActionKind(name string) (ActionKind, error) {
	if k, ok := actionKindByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return ActionNone, fmt.Errorf("protocol: unknown action kind %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (k ActionKind) MarshalText() ([]byte, error) {
	if _, ok := actionKindNames[k]; !ok {
		return nil, fmt.Errorf("protocol: cannot marshal action kind %d", k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ActionKind) UnmarshalText(text []byte) error {
	parsed, err := ParseActionKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// IsStructural reports whether the kind mutates the server's layout tree.
// Structural actions are serialized through the blocking gate: at most one
// may be in flight, and the input thread parks until it is acknowledged.
func (k ActionKind) IsStructural() bool {
	switch k {
	case ActionNewPane, ActionCloseFocus, ActionNewTab, ActionCloseTab,
		ActionGoToNextTab, ActionGoToPreviousTab, ActionGoToTab,
		ActionToggleTab, ActionMoveFocusOrTab:
		return true
	}
	return false
}

// Action is a request sent from client to server describing a session
// change. The payload fields used depend on Kind; unused fields stay zero.
type Action struct {
	Kind      ActionKind `json:"kind" yaml:"kind"`
	Mode      InputMode  `json:"mode,omitempty" yaml:"mode,omitempty"`
	Direction Direction  `json:"direction,omitempty" yaml:"direction,omitempty"`
	Index     int        `json:"index,omitempty" yaml:"index,omitempty"`
	Position  Position   `json:"position,omitempty" yaml:"position,omitempty"`
	Bytes     []byte     `json:"bytes,omitempty" yaml:"bytes,omitempty"`
}

// String returns a compact description for logs.
func (a Action) String() string {
	switch a.Kind {
	case ActionSwitchToMode:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Mode)
	case ActionWrite, ActionTabNameInput:
		return fmt.Sprintf("%s(%d bytes)", a.Kind, len(a.Bytes))
	case ActionResize, ActionMoveFocus, ActionMoveFocusOrTab, ActionNewPane:
		return fmt.Sprintf("%s(%s)", a.Kind, a.Direction)
	case ActionGoToTab:
		return fmt.Sprintf("%s(%d)", a.Kind, a.Index)
	case ActionScrollUpAt, ActionScrollDownAt, ActionLeftClick,
		ActionMouseRelease, ActionMouseHold:
		return fmt.Sprintf("%s%s", a.Kind, a.Position)
	default:
		return a.Kind.String()
	}
}

// Simple constructs an action with no payload.
func Simple(kind ActionKind) Action {
	return Action{Kind: kind}
}

// SwitchToMode constructs a mode-change action.
func SwitchToMode(m InputMode) Action {
	return Action{Kind: ActionSwitchToMode, Mode: m}
}

// Write constructs a raw-bytes action for the focused pane.
func Write(b []byte) Action {
	return Action{Kind: ActionWrite, Bytes: b}
}

// TabNameInput constructs a tab-name input action.
func TabNameInput(b []byte) Action {
	return Action{Kind: ActionTabNameInput, Bytes: b}
}

// ScrollUpAt constructs a positioned scroll-up action.
func ScrollUpAt(p Position) Action {
	return Action{Kind: ActionScrollUpAt, Position: p}
}

// ScrollDownAt constructs a positioned scroll-down action.
func ScrollDownAt(p Position) Action {
	return Action{Kind: ActionScrollDownAt, Position: p}
}

// LeftClick constructs a left-click action.
func LeftClick(p Position) Action {
	return Action{Kind: ActionLeftClick, Position: p}
}

// MouseRelease constructs a button-release action.
func MouseRelease(p Position) Action {
	return Action{Kind: ActionMouseRelease, Position: p}
}

// MouseHold constructs a held-button action.
func MouseHold(p Position) Action {
	return Action{Kind: ActionMouseHold, Position: p}
}

// NewPane constructs a pane-open action split toward dir.
func NewPane(dir Direction) Action {
	return Action{Kind: ActionNewPane, Direction: dir}
}

// MoveFocus constructs a focus-move action toward dir.
func MoveFocus(dir Direction) Action {
	return Action{Kind: ActionMoveFocus, Direction: dir}
}

// MoveFocusOrTab constructs a focus-move action that crosses tab edges.
func MoveFocusOrTab(dir Direction) Action {
	return Action{Kind: ActionMoveFocusOrTab, Direction: dir}
}

// Resize constructs a pane-resize action toward dir.
func Resize(dir Direction) Action {
	return Action{Kind: ActionResize, Direction: dir}
}

// GoToTab constructs a tab-focus action for the one-based tab index.
func GoToTab(index int) Action {
	return Action{Kind: ActionGoToTab, Index: index}
}
