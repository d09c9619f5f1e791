// Package main is the entry point for the weft client.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/weft/internal/app"
	"github.com/dshills/weft/internal/protocol"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	a, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	reason, err := a.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	switch reason {
	case protocol.ExitNormal:
		return 0
	case protocol.ExitDisconnected:
		fmt.Fprintln(os.Stderr, "Connection to server lost")
		return 1
	case protocol.ExitInputLost:
		fmt.Fprintln(os.Stderr, "Terminal input lost")
		return 1
	default:
		fmt.Fprintf(os.Stderr, "Session ended: %s\n", reason)
		return 1
	}
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.SocketPath, "socket", "", "Path to the server socket")
	flag.StringVar(&opts.SocketPath, "s", "", "Path to the server socket (shorthand)")
	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogPath, "log", "", "Write diagnostics to this file")
	flag.BoolVar(&opts.DisableMouse, "no-mouse", false, "Disable terminal mouse reporting")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Weft - terminal workspace client\n\n")
		fmt.Fprintf(os.Stderr, "Usage: weft -socket /path/to/server.sock [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Weft %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	return opts
}
