package session

// Clipboard places text on the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// Notifier shows transient user-facing messages. Implementations must be
// safe to call from any goroutine.
type Notifier interface {
	NotifySuccess(message string)
	NotifyFailure(message string)
}

// Observer is told about every dispatched action and clipboard outcome.
// Implementations must be safe to call from any goroutine.
type Observer interface {
	ActionDispatched(t ActionType, changed bool)
	ClipboardWritten(err error)
}

// ClipboardFunc adapts a function to Clipboard.
type ClipboardFunc func(text string) error

// WriteText calls f(text).
func (f ClipboardFunc) WriteText(text string) error { return f(text) }

type nopNotifier struct{}

func (nopNotifier) NotifySuccess(string) {}
func (nopNotifier) NotifyFailure(string) {}

type nopClipboard struct{}

func (nopClipboard) WriteText(string) error { return nil }
