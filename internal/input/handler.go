package input

import (
	"bytes"
	"time"

	"github.com/dshills/weft/internal/client"
	"github.com/dshills/weft/internal/input/key"
	"github.com/dshills/weft/internal/input/keymap"
	"github.com/dshills/weft/internal/input/mouse"
	"github.com/dshills/weft/internal/logutil"
	"github.com/dshills/weft/internal/protocol"
	"github.com/dshills/weft/internal/term"
)

var logger = logutil.GetLogger("[input] ")

// ActionSender posts actions to the server. Token is nonzero only for
// structural actions; the server echoes it back in the unblock message.
// Implementations must be safe for concurrent use: the mouse-hold
// repeater sends from its own goroutine.
type ActionSender interface {
	SendAction(a protocol.Action, token client.Token) error
}

// Config configures the input handler.
type Config struct {
	// DefaultMode is the mode the handler starts in.
	DefaultMode protocol.InputMode

	// DisableMouse skips enabling terminal mouse reporting.
	DisableMouse bool

	// RepeatInterval is the mouse-hold re-dispatch period.
	// Default: 100ms.
	RepeatInterval time.Duration

	// AckTimeout bounds the wait for structural acknowledgments. Zero
	// waits forever, which is the baseline protocol contract.
	AckTimeout time.Duration
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultMode:    protocol.ModeNormal,
		RepeatInterval: 100 * time.Millisecond,
	}
}

// Handler owns the input event loop. It keeps a local mirror of the
// current input mode, updated only as a side effect of dispatching
// SwitchToMode; the server holds the authoritative copy.
type Handler struct {
	config   Config
	keybinds keymap.Keybinds

	driver       term.Driver
	sender       ActionSender
	gate         *client.Gate
	instructions chan<- client.Instruction

	mode       protocol.InputMode
	pasting    bool
	pasteBuf   bytes.Buffer
	shouldExit bool

	mouseDec mouse.Decoder
	repeater *Repeater
}

// NewHandler creates an input handler. The keybinding table is read-only
// from the handler's point of view and must not be mutated while the
// handler runs.
func NewHandler(
	config Config,
	keybinds keymap.Keybinds,
	driver term.Driver,
	sender ActionSender,
	gate *client.Gate,
	instructions chan<- client.Instruction,
) *Handler {
	if config.RepeatInterval <= 0 {
		config.RepeatInterval = DefaultConfig().RepeatInterval
	}
	h := &Handler{
		config:       config,
		keybinds:     keybinds,
		driver:       driver,
		sender:       sender,
		gate:         gate,
		instructions: instructions,
		mode:         config.DefaultMode,
	}
	h.repeater = NewRepeater(config.RepeatInterval, func(a protocol.Action) {
		// Held-mouse repeats are plain fire-and-forget sends; they never
		// touch handler state.
		if err := sender.SendAction(a, 0); err != nil {
			logger.Printf("repeat send %s: %v", a, err)
		}
	})
	return h
}

// Mode returns the current mode mirror.
func (h *Handler) Mode() protocol.InputMode {
	return h.mode
}

// Run is the input event loop. It blocks until a dispatched Quit or
// Detach stops it, or the event source fails. A read failure is surfaced
// as an exit instruction with reason input-lost rather than a hang.
func (h *Handler) Run() {
	if !h.config.DisableMouse {
		h.driver.EnableMouse()
	}
	defer h.repeater.Stop()

	for !h.shouldExit {
		ev, err := h.driver.ReadEvent()
		if err != nil {
			logger.Printf("read: %v", err)
			h.notifyExit(protocol.ExitInputLost)
			return
		}

		switch ev.Kind {
		case term.EventKey:
			h.handleKey(ev)
		case term.EventMouse:
			h.handleMouse(ev)
		case term.EventPasteStart:
			h.pasting = true
		case term.EventPasteEnd:
			h.endPaste()
		case term.EventResize:
			// Layout and rendering react to resizes; the input pipeline
			// does not.
		}
	}
}

// handleKey decodes one raw key report and either buffers it (pasting),
// resolves it against the keybinding table, or applies the unbound
// fallback for the current mode.
func (h *Handler) handleKey(ev term.RawEvent) {
	k, err := key.Decode(ev.KeyCode, ev.Rune, ev.Mods)
	if err != nil {
		// Unsupported combinations are dropped; the loop must stay live.
		return
	}

	if h.pasting {
		h.pasteKey(k)
		return
	}

	actions := h.keybinds.Resolve(h.mode, k)
	if len(actions) == 0 {
		h.handleUnbound(k)
		return
	}
	for _, a := range actions {
		if h.dispatch(a) {
			h.shouldExit = true
			break
		}
	}
}

// handleUnbound applies the per-mode fallback for keys with no binding.
// Normal and Locked pass character keys through to the focused pane;
// RenameTab feeds them to the pending tab name. Everywhere else an
// unbound key does nothing.
func (h *Handler) handleUnbound(k key.Key) {
	if k.Code != key.CodeChar {
		return
	}
	switch h.mode {
	case protocol.ModeNormal, protocol.ModeLocked:
		h.dispatch(protocol.Write([]byte(string(k.Rune))))
	case protocol.ModeRenameTab:
		h.dispatch(protocol.TabNameInput([]byte(string(k.Rune))))
	}
}

// pasteKey accumulates pasted text. Paste content reaches the pane only
// in modes that write through (Normal, Locked); in any other mode it is
// discarded so pasted bytes can never trigger structural keybindings.
func (h *Handler) pasteKey(k key.Key) {
	if h.mode != protocol.ModeNormal && h.mode != protocol.ModeLocked {
		return
	}
	switch k.Code {
	case key.CodeChar:
		h.pasteBuf.WriteRune(k.Rune)
	case key.CodeCtrl:
		// Control characters inside pasted text arrive fused; restore
		// the original byte.
		h.pasteBuf.WriteByte(byte(k.Rune-'a') + 1)
	case key.CodeAlt:
		h.pasteBuf.WriteByte(0x1b)
		h.pasteBuf.WriteRune(k.Rune)
	}
}

// endPaste closes the paste block and emits the accumulated bytes as a
// single Write action.
func (h *Handler) endPaste() {
	h.pasting = false
	if h.pasteBuf.Len() == 0 {
		return
	}
	buf := make([]byte, h.pasteBuf.Len())
	copy(buf, h.pasteBuf.Bytes())
	h.pasteBuf.Reset()
	h.dispatch(protocol.Write(buf))
}

// handleMouse decodes one raw mouse report and dispatches per the fixed
// mouse mapping. Hold events additionally drive the repeater; Release
// cancels it before the release action goes out.
func (h *Handler) handleMouse(ev term.RawEvent) {
	me, ok := h.mouseDec.Decode(ev.Buttons, ev.Column, ev.Row)
	if !ok {
		return
	}

	switch me.Kind {
	case mouse.KindPress:
		switch me.Button {
		case mouse.WheelUp:
			h.dispatch(protocol.ScrollUpAt(me.Position))
		case mouse.WheelDown:
			h.dispatch(protocol.ScrollDownAt(me.Position))
		case mouse.ButtonLeft:
			h.dispatch(protocol.LeftClick(me.Position))
		default:
			// Right and middle presses have no mapping.
		}
	case mouse.KindRelease:
		h.repeater.Stop()
		h.dispatch(protocol.MouseRelease(me.Position))
	case mouse.KindHold:
		a := protocol.MouseHold(me.Position)
		h.dispatch(a)
		h.repeater.Start(a)
	}
}

// notifyExit makes one best-effort attempt to tell the owning client
// process the session is ending. It never blocks the input thread.
func (h *Handler) notifyExit(reason protocol.ExitReason) {
	select {
	case h.instructions <- client.Exit(reason):
	default:
		logger.Printf("instruction channel full, dropping exit(%s)", reason)
	}
}
