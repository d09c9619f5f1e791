package app

import (
	"errors"
	"fmt"

	"github.com/dshills/weft/internal/client"
	"github.com/dshills/weft/internal/config"
	"github.com/dshills/weft/internal/input"
	"github.com/dshills/weft/internal/ipc"
	"github.com/dshills/weft/internal/logutil"
	"github.com/dshills/weft/internal/protocol"
	"github.com/dshills/weft/internal/term"
)

var logger = logutil.GetLogger("[app] ")

// ErrNoSocket indicates no server socket path was supplied.
var ErrNoSocket = errors.New("app: no server socket path")

// Options come from the command line.
type Options struct {
	// SocketPath is the unix socket the server listens on.
	SocketPath string

	// ConfigPath is the YAML config file. Empty means defaults only.
	ConfigPath string

	// LogPath redirects diagnostics to a file. Empty keeps logging off.
	LogPath string

	// DisableMouse overrides the config to skip mouse reporting.
	DisableMouse bool
}

// App is one client session.
type App struct {
	opts Options
	cfg  config.Config

	gate         *client.Gate
	instructions chan client.Instruction

	conn   *ipc.Conn
	driver term.Driver
}

// New loads configuration and prepares a session. The server connection
// and terminal driver are created lazily by Run unless injected first.
func New(opts Options) (*App, error) {
	if opts.LogPath != "" {
		if err := logutil.SetOutputFile(opts.LogPath); err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
	}

	cfg := config.Default()
	if opts.ConfigPath != "" {
		var err error
		cfg, err = config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
	}

	return &App{
		opts:         opts,
		cfg:          cfg,
		gate:         client.NewGate(),
		instructions: make(chan client.Instruction, 4),
	}, nil
}

// SetConn injects an established server connection.
func (a *App) SetConn(c *ipc.Conn) { a.conn = c }

// SetDriver injects a terminal driver.
func (a *App) SetDriver(d term.Driver) { a.driver = d }

// Run connects, starts the receive loop and the input loop, and blocks
// until the session ends. The returned reason says how it ended; the
// error is non-nil only for setup failures.
func (a *App) Run() (protocol.ExitReason, error) {
	if a.conn == nil {
		if a.opts.SocketPath == "" {
			return protocol.ExitError, ErrNoSocket
		}
		conn, err := ipc.Dial(a.opts.SocketPath)
		if err != nil {
			return protocol.ExitError, fmt.Errorf("connect to server: %w", err)
		}
		a.conn = conn
	}
	defer a.conn.Close()

	if a.driver == nil {
		screen, err := term.NewScreen()
		if err != nil {
			return protocol.ExitError, fmt.Errorf("open terminal: %w", err)
		}
		a.driver = screen
	}
	defer a.driver.Close()

	go func() {
		if err := a.conn.Serve(a.gate, a.instructions); err != nil {
			logger.Printf("receive loop: %v", err)
			select {
			case a.instructions <- client.Exit(protocol.ExitDisconnected):
			default:
			}
		}
	}()

	ic := a.cfg.InputConfig()
	if a.opts.DisableMouse {
		ic.DisableMouse = true
	}
	handler := input.NewHandler(ic, a.cfg.Keybinds, a.driver, a.conn, a.gate, a.instructions)
	go handler.Run()

	in := <-a.instructions
	logger.Printf("session ended: %s", in.Reason)
	return in.Reason, nil
}
