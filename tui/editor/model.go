// Package editor is the interactive word counter: a text area with a toolbar
// of text actions, live statistics and a read-only preview. Every change is
// dispatched to a session.Store and the view is redrawn from its snapshot.
package editor

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/grovetools/wordpad/config"
	"github.com/grovetools/wordpad/logging"
	"github.com/grovetools/wordpad/pkg/session"
	"github.com/grovetools/wordpad/tui/components/help"
	"github.com/grovetools/wordpad/tui/components/toast"
	"github.com/grovetools/wordpad/tui/keymap"
	"github.com/grovetools/wordpad/tui/theme"
	"github.com/sirupsen/logrus"
)

const (
	// Placeholder is shown in the empty text area.
	Placeholder = "type your text here..."

	defaultWidth  = 80
	defaultHeight = 24
)

type focusArea int

const (
	focusEditor focusArea = iota
	focusPreview
)

// TextLoadedMsg replaces the text, e.g. when a followed file changes.
type TextLoadedMsg struct {
	Text string
}

// Options wires a Model to its store and services.
type Options struct {
	Store  *session.Store
	Config *config.Config
	Keys   keymap.KeyMap
	// Notifier feeds the toast. Pass the same value to the store with
	// session.WithNotifier. Optional.
	Notifier *toast.Notifier
}

// Model is the Bubble Tea model of the word counter.
type Model struct {
	store    *session.Store
	cfg      *config.Config
	keys     keymap.KeyMap
	notifier *toast.Notifier
	logger   *logrus.Entry

	theme *theme.Theme
	mode  session.DisplayMode

	textarea textarea.Model
	preview  viewport.Model
	help     help.Model
	toast    toast.Model

	markdown      bool
	renderer      *glamour.TermRenderer
	rendererDark  bool
	rendererWidth int

	focus  focusArea
	width  int
	height int
}

// New creates the model and renders the store's current snapshot.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	store := opts.Store
	if store == nil {
		store = session.NewStore()
	}

	snap := store.Snapshot()
	t := theme.FromConfig(cfg, snap.Mode.IsDark())

	ta := textarea.New()
	ta.Placeholder = Placeholder
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.Focus()

	m := Model{
		store:    store,
		cfg:      cfg,
		keys:     opts.Keys,
		notifier: opts.Notifier,
		logger:   logging.NewLogger("wordpad-editor"),
		theme:    t,
		mode:     snap.Mode,
		textarea: ta,
		preview:  viewport.New(0, 0),
		help:     help.New(opts.Keys, opts.Keys.Help),
		toast:    toast.New(t, cfg.ToastTimeout()),
		markdown: cfg.MarkdownPreviewEnabled(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.help.Title = "Word Counter Help"
	m.syncTextarea()
	m.applyTheme()
	m.layout()
	m.refreshPreview()
	return m
}

// Init starts the cursor blink and, when a notifier is set, listens for
// notifications.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	if m.notifier != nil {
		cmds = append(cmds, m.notifier.Listen())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		m.layout()
		m.refreshPreview()
		return m, nil

	case toast.ShowMsg:
		var cmd tea.Cmd
		m.toast, cmd = m.toast.Update(msg)
		cmds = append(cmds, cmd)
		if m.notifier != nil {
			cmds = append(cmds, m.notifier.Listen())
		}
		return m, tea.Batch(cmds...)

	case TextLoadedMsg:
		m.dispatch(session.SetText(msg.Text))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.toast, cmd = m.toast.Update(msg)
	cmds = append(cmds, cmd)
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The full help view consumes all keys until closed
	if m.help.ShowAll {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.Toggle()
		return m, nil
	case key.Matches(msg, m.keys.Uppercase):
		m.dispatch(session.Uppercase())
		return m, nil
	case key.Matches(msg, m.keys.Lowercase):
		m.dispatch(session.Lowercase())
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.dispatch(session.Clear())
		return m, nil
	case key.Matches(msg, m.keys.RemoveExtraSpaces):
		m.dispatch(session.CollapseWhitespace())
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.dispatch(session.CopyToClipboard())
		return m, nil
	case key.Matches(msg, m.keys.ToggleTheme):
		m.dispatch(session.ToggleTheme())
		return m, nil
	case key.Matches(msg, m.keys.ToggleMarkdown):
		m.markdown = !m.markdown
		m.refreshPreview()
		return m, nil
	case key.Matches(msg, m.keys.SwitchFocus):
		return m, m.switchFocus()
	}

	var cmd tea.Cmd
	if m.focus == focusPreview {
		switch {
		case key.Matches(msg, m.keys.ScrollUp):
			m.preview.LineUp(1)
			return m, nil
		case key.Matches(msg, m.keys.ScrollDown):
			m.preview.LineDown(1)
			return m, nil
		}
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	before := m.textarea.Value()
	m.textarea, cmd = m.textarea.Update(msg)
	if after := m.textarea.Value(); after != before {
		m.dispatch(session.SetText(after))
	}
	return m, cmd
}

// dispatch applies a to the store and syncs the view with the new snapshot.
func (m *Model) dispatch(a session.Action) {
	m.store.Dispatch(a)
	m.syncTextarea()

	snap := m.store.Snapshot()
	if snap.Mode != m.mode {
		m.mode = snap.Mode
		m.theme = theme.FromConfig(m.cfg, snap.Mode.IsDark())
		m.applyTheme()
	}
	m.refreshPreview()
}

// syncTextarea shows the store text in the text area. The text area cannot
// hold every rune (tabs become spaces), so when its rendition differs the
// store adopts it here, once per load, and later edits only add what was
// typed.
func (m *Model) syncTextarea() {
	text := m.store.Snapshot().Text
	if text == m.textarea.Value() {
		return
	}
	m.textarea.SetValue(text)
	if shown := m.textarea.Value(); shown != text {
		m.logger.WithFields(logrus.Fields{
			"characters_before": session.CharacterCount(text),
			"characters_after":  session.CharacterCount(shown),
		}).Debug("Normalized loaded text for the editor")
		m.store.Dispatch(session.SetText(shown))
	}
}

func (m *Model) switchFocus() tea.Cmd {
	if m.focus == focusEditor {
		m.focus = focusPreview
		m.textarea.Blur()
		return nil
	}
	m.focus = focusEditor
	return m.textarea.Focus()
}

// applyTheme pushes the current theme into every child component.
func (m *Model) applyTheme() {
	m.help.SetTheme(m.theme)
	m.toast.SetTheme(m.theme)

	m.textarea.FocusedStyle.Text = m.theme.Input
	m.textarea.FocusedStyle.CursorLine = m.theme.Input
	m.textarea.FocusedStyle.Placeholder = m.theme.Placeholder
	m.textarea.BlurredStyle.Text = m.theme.Muted
	m.textarea.BlurredStyle.CursorLine = m.theme.Muted
	m.textarea.BlurredStyle.Placeholder = m.theme.Placeholder
}

// layout sizes the text area and preview to the window. Fixed rows are the
// navbar, toolbar, summary box, toast and footer.
func (m *Model) layout() {
	const fixedRows = 1 + 1 + summaryHeight + 1 + 1
	// Each box adds a title row and two border rows
	const boxChrome = 3

	inner := m.width - 4
	if inner < 10 {
		inner = 10
	}

	avail := m.height - fixedRows - 2*boxChrome
	editorRows := avail / 2
	if editorRows < 3 {
		editorRows = 3
	}
	previewRows := avail - editorRows
	if previewRows < 3 {
		previewRows = 3
	}

	m.textarea.SetWidth(inner)
	m.textarea.SetHeight(editorRows)
	m.preview.Width = inner - 1 // scrollbar column
	m.preview.Height = previewRows
}

// refreshPreview renders the current text into the preview viewport.
func (m *Model) refreshPreview() {
	text := m.store.Snapshot().Text
	content := text
	if m.markdown && text != "" {
		if rendered, err := m.renderMarkdown(text); err != nil {
			m.logger.WithError(err).Debug("Markdown rendering failed, showing plain text")
		} else {
			content = rendered
		}
	}
	m.preview.SetContent(content)
}

func (m *Model) renderMarkdown(text string) (string, error) {
	dark := m.mode.IsDark()
	if m.renderer == nil || m.rendererDark != dark || m.rendererWidth != m.preview.Width {
		style := "light"
		if dark {
			style = "dark"
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(m.preview.Width),
		)
		if err != nil {
			return "", err
		}
		m.renderer = r
		m.rendererDark = dark
		m.rendererWidth = m.preview.Width
	}
	return m.renderer.Render(text)
}
