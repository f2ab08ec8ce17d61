// Package toast shows transient notifications in a Bubble Tea program and
// provides the notifier that feeds them from other goroutines.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/wordpad/tui/theme"
)

// Kind distinguishes success from failure notifications.
type Kind int

const (
	Success Kind = iota
	Failure
)

// ShowMsg asks the toast to display Text.
type ShowMsg struct {
	Kind Kind
	Text string
}

// hideMsg expires the toast with the matching sequence number.
type hideMsg struct{ seq int }

// Model is a single-line notification that hides itself after a delay.
// A newer notification replaces the visible one and restarts the timer.
type Model struct {
	theme    *theme.Theme
	duration time.Duration
	kind     Kind
	text     string
	visible  bool
	seq      int
}

// New creates a hidden toast.
func New(t *theme.Theme, duration time.Duration) Model {
	return Model{theme: t, duration: duration}
}

// Update shows and hides the toast.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ShowMsg:
		m.seq++
		m.kind = msg.Kind
		m.text = msg.Text
		m.visible = true
		seq := m.seq
		return m, tea.Tick(m.duration, func(time.Time) tea.Msg {
			return hideMsg{seq: seq}
		})

	case hideMsg:
		if msg.seq == m.seq {
			m.visible = false
		}
	}
	return m, nil
}

// View renders the toast, or an empty string when hidden.
func (m Model) View() string {
	if !m.visible {
		return ""
	}
	style := m.theme.Success
	icon := theme.IconSuccess
	if m.kind == Failure {
		style = m.theme.Error
		icon = theme.IconError
	}
	return m.theme.Toast.Render(style.Render(icon + " " + m.text))
}

// SetTheme switches the styles used for rendering.
func (m *Model) SetTheme(t *theme.Theme) {
	m.theme = t
}

// Visible reports whether a notification is on screen.
func (m Model) Visible() bool {
	return m.visible
}

// Text returns the current notification text.
func (m Model) Text() string {
	return m.text
}

// Kind returns the kind of the current notification.
func (m Model) Kind() Kind {
	return m.kind
}
