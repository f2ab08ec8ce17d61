package session

import (
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/grovetools/wordpad/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	mu      sync.Mutex
	written []string
	err     error
}

func (c *fakeClipboard) WriteText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.written = append(c.written, text)
	return nil
}

type fakeNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (n *fakeNotifier) NotifySuccess(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *fakeNotifier) NotifyFailure(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, msg)
}

type recordingObserver struct {
	mu        sync.Mutex
	actions   []ActionType
	changed   []bool
	clipboard []error
}

func (o *recordingObserver) ActionDispatched(t ActionType, changed bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.actions = append(o.actions, t)
	o.changed = append(o.changed, changed)
}

func (o *recordingObserver) ClipboardWritten(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.clipboard = append(o.clipboard, err)
}

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func newTestStore(opts ...Option) *Store {
	return NewStore(append([]Option{WithLogger(quietLogger())}, opts...)...)
}

func TestStoreInitialState(t *testing.T) {
	st := newTestStore()
	assert.Equal(t, New(), st.Snapshot())
	assert.NotEmpty(t, st.ID())
	assert.NotEqual(t, st.ID(), newTestStore().ID())
}

func TestStoreDispatchSequence(t *testing.T) {
	st := newTestStore()

	st.Dispatch(SetText("  The quick\tbrown fox  "))
	st.Dispatch(CollapseWhitespace())
	assert.Equal(t, "The quick brown fox", st.Snapshot().Text)

	st.Dispatch(Uppercase())
	assert.Equal(t, "THE QUICK BROWN FOX", st.Snapshot().Text)

	st.Dispatch(ToggleTheme())
	assert.Equal(t, ModeDark, st.Snapshot().Mode)

	st.Dispatch(Clear())
	assert.Equal(t, Session{Text: "", Mode: ModeDark}, st.Snapshot())
}

func TestStoreUnrecognizedActionIsNoop(t *testing.T) {
	obs := &recordingObserver{}
	st := newTestStore(WithInitial(Session{Text: "keep me", Mode: ModeDark}), WithObserver(obs))
	before := st.Snapshot()

	st.Dispatch(Action{Type: "explode", Payload: "boom"})

	assert.Equal(t, before, st.Snapshot())
	require.Len(t, obs.actions, 1)
	assert.Equal(t, ActionType("explode"), obs.actions[0])
	assert.False(t, obs.changed[0])
}

func TestStoreCopyWritesTextAndNotifies(t *testing.T) {
	clip := &fakeClipboard{}
	notes := &fakeNotifier{}
	obs := &recordingObserver{}
	st := newTestStore(WithClipboard(clip), WithNotifier(notes), WithObserver(obs))

	st.Dispatch(SetText("  copy\tme verbatim "))
	before := st.Snapshot()
	st.Dispatch(CopyToClipboard())
	st.Wait()

	assert.Equal(t, before, st.Snapshot(), "copy must not mutate the session")
	assert.Equal(t, []string{"  copy\tme verbatim "}, clip.written)
	assert.Equal(t, []string{CopySuccessMessage}, notes.successes)
	assert.Empty(t, notes.failures)
	require.Len(t, obs.clipboard, 1)
	assert.NoError(t, obs.clipboard[0])
}

func TestStoreCopyNeverMutatesAnyState(t *testing.T) {
	states := []Session{
		New(),
		{Text: "abc", Mode: ModeDark},
		{Text: " \n ", Mode: ModeLight},
	}
	for _, s := range states {
		st := newTestStore(WithInitial(s), WithClipboard(&fakeClipboard{}))
		st.Dispatch(CopyToClipboard())
		st.Wait()
		assert.Equal(t, s, st.Snapshot())
	}
}

func TestStoreCopyFailureNotifiesFailure(t *testing.T) {
	clip := &fakeClipboard{err: errors.ClipboardUnavailable("system")}
	notes := &fakeNotifier{}
	obs := &recordingObserver{}
	st := newTestStore(
		WithInitial(Session{Text: "secret", Mode: ModeLight}),
		WithClipboard(clip),
		WithNotifier(notes),
		WithObserver(obs),
	)

	assert.NotPanics(t, func() { st.Dispatch(CopyToClipboard()) })
	st.Wait()

	assert.Equal(t, Session{Text: "secret", Mode: ModeLight}, st.Snapshot())
	assert.Empty(t, notes.successes)
	require.Len(t, notes.failures, 1)
	assert.Equal(t, "Failed to copy text to clipboard: clipboard backend 'system' is not available", notes.failures[0])
	require.Len(t, obs.clipboard, 1)
	assert.True(t, errors.Is(obs.clipboard[0], errors.ErrCodeClipboardUnavailable))
}

func TestStoreCopyFailureWithPlainError(t *testing.T) {
	notes := &fakeNotifier{}
	st := newTestStore(
		WithClipboard(ClipboardFunc(func(string) error { return fmt.Errorf("permission denied") })),
		WithNotifier(notes),
	)
	st.Dispatch(CopyToClipboard())
	st.Wait()

	assert.Equal(t, []string{"Failed to copy text to clipboard: permission denied"}, notes.failures)
}

func TestStoreCopyCapturesTextAtDispatch(t *testing.T) {
	release := make(chan struct{})
	var got string
	clip := ClipboardFunc(func(text string) error {
		<-release
		got = text
		return nil
	})
	st := newTestStore(WithInitial(Session{Text: "first"}), WithClipboard(clip))

	st.Dispatch(CopyToClipboard())
	st.Dispatch(SetText("second"))
	close(release)
	st.Wait()

	assert.Equal(t, "first", got)
	assert.Equal(t, "second", st.Snapshot().Text)
}

func TestStoreObserverSeesChanges(t *testing.T) {
	obs := &recordingObserver{}
	st := newTestStore(WithObserver(obs))

	st.Dispatch(SetText("x"))
	st.Dispatch(SetText("x"))
	st.Dispatch(ToggleTheme())

	assert.Equal(t, []ActionType{ActionSetText, ActionSetText, ActionToggleTheme}, obs.actions)
	assert.Equal(t, []bool{true, false, true}, obs.changed)
}

func TestStoreStatsUsesConfiguredSpeed(t *testing.T) {
	st := newTestStore(WithWordsPerMinute(2))
	st.Dispatch(SetText("one two three"))
	assert.Equal(t, Stats{Words: 3, Characters: 13, ReadingMinutes: 2}, st.Stats())
}

func TestStoreDefaultCapabilities(t *testing.T) {
	st := newTestStore(WithClipboard(nil), WithNotifier(nil), WithObserver(nil))
	st.Dispatch(SetText("abc"))
	st.Dispatch(CopyToClipboard())
	st.Wait()
	assert.Equal(t, "abc", st.Snapshot().Text)
}
