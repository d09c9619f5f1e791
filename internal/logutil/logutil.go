// Package logutil provides per-package loggers that share one output.
// Output is discarded by default; the client redirects it to a log file
// when the -log flag is given, since stderr belongs to the raw terminal.
package logutil

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	out     io.Writer = io.Discard
	loggers []*log.Logger
)

// GetLogger returns a logger with the given prefix writing to the shared
// output. Typical use is a package-level variable:
//
//	var logger = logutil.GetLogger("[ipc] ")
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	l := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, l)
	return l
}

// SetOutput redirects all loggers, current and future, to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	out = w
	for _, l := range loggers {
		l.SetOutput(w)
	}
}

// SetOutputFile redirects all loggers to the named file, creating or
// appending as needed. An empty name discards output.
func SetOutputFile(name string) error {
	if name == "" {
		SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	SetOutput(f)
	return nil
}
