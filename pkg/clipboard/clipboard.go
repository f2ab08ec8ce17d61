// Package clipboard provides the clipboard backends a session.Store writes
// to: the system clipboard, OSC 52 terminal escapes, an ordered fallback of
// both, and a backend that discards everything.
package clipboard

import (
	stderrors "errors"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/grovetools/wordpad/errors"
	"github.com/grovetools/wordpad/logging"
	"github.com/grovetools/wordpad/pkg/session"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Backend names accepted by clipboard.backend.
const (
	BackendAuto   = "auto"
	BackendSystem = "system"
	BackendOSC52  = "osc52"
	BackendNone   = "none"
)

var log = logging.NewLogger("wordpad-clipboard")

// System writes to the operating system clipboard through the platform
// utility (pbcopy, xclip, xsel, wl-copy or the Windows API).
type System struct{}

// WriteText implements session.Clipboard.
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return errors.ClipboardUnavailable(BackendSystem)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.ClipboardWriteFailed(BackendSystem, err)
	}
	return nil
}

// OSC52 asks the terminal to set the clipboard with an OSC 52 escape
// sequence. It works over SSH as long as the terminal honors the sequence.
type OSC52 struct {
	w      io.Writer
	output *termenv.Output
}

// NewOSC52 writes sequences to w, normally os.Stderr or the TTY. A file
// that is not a terminal makes every write fail with CLIPBOARD_UNAVAILABLE.
func NewOSC52(w io.Writer) *OSC52 {
	return &OSC52{w: w, output: termenv.NewOutput(w)}
}

// WriteText implements session.Clipboard.
func (o *OSC52) WriteText(text string) error {
	if f, ok := o.w.(*os.File); ok && !isTerminal(f) {
		return errors.ClipboardUnavailable(BackendOSC52)
	}
	o.output.Copy(text)
	return nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Fallback tries each backend in order and stops at the first success.
type Fallback struct {
	names    []string
	backends []session.Clipboard
}

// NewFallback creates an empty fallback. Add backends in priority order.
func NewFallback() *Fallback {
	return &Fallback{}
}

// Add appends a named backend and returns f for chaining.
func (f *Fallback) Add(name string, c session.Clipboard) *Fallback {
	f.names = append(f.names, name)
	f.backends = append(f.backends, c)
	return f
}

// WriteText implements session.Clipboard. When every backend fails the
// returned error joins their causes.
func (f *Fallback) WriteText(text string) error {
	if len(f.backends) == 0 {
		return errors.ClipboardUnavailable(BackendNone)
	}

	var errs []error
	for i, c := range f.backends {
		err := c.WriteText(text)
		if err == nil {
			return nil
		}
		log.WithError(err).WithField("backend", f.names[i]).Debug("Clipboard backend failed, trying next")
		errs = append(errs, err)
	}
	return errors.Wrap(stderrors.Join(errs...), errors.ErrCodeClipboardWrite, "no clipboard backend accepted the text").
		WithDetail("backends", strings.Join(f.names, ","))
}

// Discard accepts text and drops it.
type Discard struct{}

// WriteText implements session.Clipboard.
func (Discard) WriteText(string) error { return nil }

// FromConfig returns the backend named by clipboard.backend. OSC 52
// sequences go to out. Unknown names select auto.
func FromConfig(backend string, out io.Writer) session.Clipboard {
	switch backend {
	case BackendSystem:
		return System{}
	case BackendOSC52:
		return NewOSC52(out)
	case BackendNone:
		return Discard{}
	default:
		return NewFallback().
			Add(BackendSystem, System{}).
			Add(BackendOSC52, NewOSC52(out))
	}
}
