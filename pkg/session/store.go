package session

import (
	"fmt"
	"sync"

	"github.com/grovetools/wordpad/errors"
	"github.com/grovetools/wordpad/logging"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

// Messages shown by the notifier after a clipboard write.
const (
	CopySuccessMessage = "Text copied to clipboard"
	copyFailurePrefix  = "Failed to copy text to clipboard"
)

// Store owns a Session and applies actions to it one at a time.
type Store struct {
	mu    sync.RWMutex
	state Session

	id        string
	wpm       int
	clipboard Clipboard
	notifier  Notifier
	observers []Observer
	logger    *logrus.Entry

	effects sync.WaitGroup
}

// Option configures a Store.
type Option func(*Store)

// WithInitial sets the starting session instead of New().
func WithInitial(s Session) Option {
	return func(st *Store) {
		st.state = s
	}
}

// WithClipboard sets the clipboard capability used by copyToClipboard.
func WithClipboard(c Clipboard) Option {
	return func(st *Store) {
		if c != nil {
			st.clipboard = c
		}
	}
}

// WithNotifier sets the capability that reports clipboard outcomes.
func WithNotifier(n Notifier) Option {
	return func(st *Store) {
		if n != nil {
			st.notifier = n
		}
	}
}

// WithObserver registers an observer. May be given more than once.
func WithObserver(o Observer) Option {
	return func(st *Store) {
		if o != nil {
			st.observers = append(st.observers, o)
		}
	}
}

// WithLogger sets the logger. The store adds a session_id field.
func WithLogger(l *logrus.Entry) Option {
	return func(st *Store) {
		if l != nil {
			st.logger = l
		}
	}
}

// WithWordsPerMinute sets the reading speed used by Stats.
func WithWordsPerMinute(wpm int) Option {
	return func(st *Store) {
		st.wpm = wpm
	}
}

// NewStore creates a store holding New() unless WithInitial says otherwise.
// Without a clipboard, copies succeed and go nowhere; without a notifier,
// outcomes are only logged.
func NewStore(opts ...Option) *Store {
	st := &Store{
		state:     New(),
		id:        ulid.Make().String(),
		wpm:       DefaultWordsPerMinute,
		clipboard: nopClipboard{},
		notifier:  nopNotifier{},
	}
	for _, opt := range opts {
		opt(st)
	}
	if st.logger == nil {
		st.logger = logging.NewLogger("wordpad-session")
	}
	st.logger = st.logger.WithField("session_id", st.id)
	return st
}

// ID returns the identifier used to correlate this store's logs and metrics.
func (s *Store) ID() string {
	return s.id
}

// Snapshot returns the current session by value.
func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Stats computes statistics of the current text.
func (s *Store) Stats() Stats {
	return AnalyzeAt(s.Snapshot().Text, s.wpm)
}

// Dispatch applies a to the session. It never blocks on the clipboard:
// copyToClipboard captures the current text and writes it on a background
// goroutine, reporting the outcome through the notifier.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, a)
	s.state = next
	s.mu.Unlock()

	changed := prev != next
	fields := logrus.Fields{"action": a.Type, "changed": changed}
	if !a.Type.Known() {
		s.logger.WithFields(fields).Debug("Ignoring unrecognized action")
	} else {
		s.logger.WithFields(fields).Debug("Dispatched action")
	}

	for _, o := range s.observers {
		o.ActionDispatched(a.Type, changed)
	}

	if a.Type == ActionCopyToClipboard {
		s.effects.Add(1)
		go s.copy(prev.Text)
	}
}

// Wait blocks until every clipboard write started by Dispatch has finished.
func (s *Store) Wait() {
	s.effects.Wait()
}

func (s *Store) copy(text string) {
	defer s.effects.Done()

	err := s.clipboard.WriteText(text)
	for _, o := range s.observers {
		o.ClipboardWritten(err)
	}
	if err != nil {
		s.logger.WithError(err).Warn("Clipboard write failed")
		s.notifier.NotifyFailure(fmt.Sprintf("%s: %s", copyFailurePrefix, failureReason(err)))
		return
	}
	s.logger.WithField("characters", CharacterCount(text)).Debug("Copied text to clipboard")
	s.notifier.NotifySuccess(CopySuccessMessage)
}

// failureReason prefers the short message of a coded error over its full
// code-and-cause rendering.
func failureReason(err error) string {
	if wpErr, ok := errors.As(err); ok {
		if wpErr.Cause != nil {
			return wpErr.Message + ": " + failureReason(wpErr.Cause)
		}
		return wpErr.Message
	}
	return err.Error()
}
