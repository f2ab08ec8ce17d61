package logging

import (
	"io"
	"os"
	"sync"
)

// swapWriter forwards writes to a destination that can be replaced while
// loggers are writing to it.
type swapWriter struct {
	mu  sync.RWMutex
	dst io.Writer
}

func (s *swapWriter) Write(p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dst.Write(p)
}

func (s *swapWriter) swap(w io.Writer) io.Writer {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.dst
	s.dst = w
	return prev
}

var stderrSink = &swapWriter{dst: os.Stderr}

// SetGlobalOutput redirects the stderr sink of every logger and returns the
// previous destination. The TUI discards it while it owns the terminal:
//
//	prev := logging.SetGlobalOutput(io.Discard)
//	defer logging.SetGlobalOutput(prev)
func SetGlobalOutput(w io.Writer) io.Writer {
	return stderrSink.swap(w)
}

// GetGlobalOutput returns the swappable writer that stands in for stderr.
func GetGlobalOutput() io.Writer {
	return stderrSink
}
