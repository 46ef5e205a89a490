package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// NewLogger returns a Logger writing one line per call to w.
func NewLogger(w io.Writer) Logger {
	return &hostLogger{w: w}
}

// StdoutLogger returns the host logger.
func StdoutLogger() Logger {
	return NewLogger(os.Stdout)
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// DiscardLogger drops every line.
type DiscardLogger struct{}

func (DiscardLogger) WriteLineString(string) {}
func (DiscardLogger) WriteLineBytes([]byte)  {}
