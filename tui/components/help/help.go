package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/wordpad/tui/keymap"
	"github.com/grovetools/wordpad/tui/theme"
)

// KeyMap is what the help component needs from a keymap.
type KeyMap interface {
	keymap.SectionedKeyMap
	ShortHelp() []key.Binding
}

// Model represents an embeddable help component
type Model struct {
	Keys     KeyMap
	ShowAll  bool
	Width    int
	Height   int
	Theme    *theme.Theme
	Title    string // Title for the full help view
	toggle   key.Binding
	viewport viewport.Model
}

// New creates a new help model. toggle is the binding that opens and
// closes the full view; it is also named in the short help prompt.
func New(keys KeyMap, toggle key.Binding) Model {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = false
	return Model{
		Keys:     keys,
		Theme:    theme.DefaultTheme,
		toggle:   toggle,
		viewport: vp,
	}
}

// Update handles messages for the help component
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		if m.ShowAll {
			m.setViewportContent()
		}

	case tea.KeyMsg:
		if m.ShowAll {
			if key.Matches(msg, m.toggle) || msg.Type == tea.KeyEsc {
				m.Toggle()
				return m, nil
			}

			// Everything else scrolls
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// View renders the help component
func (m Model) View() string {
	if m.Theme == nil {
		m.Theme = theme.DefaultTheme
	}

	if m.ShowAll {
		content := m.viewport.View()

		if m.viewport.TotalLineCount() > m.viewport.Height {
			indicator := "↕ more"
			if m.viewport.AtTop() {
				indicator = "↓ more"
			} else if m.viewport.AtBottom() {
				indicator = "↑ more"
			}

			indicatorStyle := m.Theme.Muted.Align(lipgloss.Right).Width(m.viewport.Width)
			content = lipgloss.JoinVertical(lipgloss.Right, content, indicatorStyle.Render(indicator))
		}

		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
	}

	if m.Keys == nil {
		return ""
	}
	return m.viewShort(m.Keys.ShortHelp())
}

// viewShort renders the compact, single-line help view.
func (m Model) viewShort(group []key.Binding) string {
	var pairs []string
	for _, binding := range group {
		if !binding.Enabled() {
			continue
		}
		keys := binding.Help().Key
		desc := binding.Help().Desc
		if keys != "" && desc != "" {
			pairs = append(pairs, fmt.Sprintf("%s %s",
				m.Theme.Highlight.Render(keys),
				m.Theme.Muted.Render(desc),
			))
		}
	}

	if len(pairs) == 0 {
		return ""
	}

	helpPrompt := m.Theme.Muted.Render("Press ") +
		m.Theme.Highlight.Render(m.toggle.Help().Key) +
		m.Theme.Muted.Render(" for help")

	return helpPrompt + " • " + strings.Join(pairs, " • ")
}

// setViewportContent renders the help content and sets it in the viewport.
func (m *Model) setViewportContent() {
	const verticalMargin = 4

	if m.Keys == nil {
		return
	}
	content := m.renderHelpContent(m.Keys.Sections(), verticalMargin)
	m.viewport.SetContent(content)

	// Reserve 1 line for the scroll indicator.
	m.viewport.Width = lipgloss.Width(content)
	m.viewport.Height = m.Height - verticalMargin - 1
}

// renderHelpContent lays sections out in one column, or side by side when
// one column is too tall and the row still fits the width.
func (m *Model) renderHelpContent(sections []keymap.Section, vMargin int) string {
	const gutter = "    "

	var blocks []string
	for _, section := range sections {
		if block := m.renderSection(section); block != "" {
			blocks = append(blocks, block)
		}
	}
	if len(blocks) == 0 {
		return ""
	}

	titleText := m.Title
	if titleText == "" {
		titleText = "Help"
	}
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.Theme.Colors.Orange).
		MarginBottom(1).
		Align(lipgloss.Center)

	body := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	if lipgloss.Height(body)+2 > m.Height-vMargin-1 {
		row := blocks[0]
		for _, b := range blocks[1:] {
			row = lipgloss.JoinHorizontal(lipgloss.Top, row, gutter, b)
		}
		if lipgloss.Width(row) <= m.Width-4 {
			body = row
		}
	}

	return lipgloss.JoinVertical(lipgloss.Center, titleStyle.Width(lipgloss.Width(body)).Render(titleText), body)
}

// renderSection renders a single section into a styled box with a title.
func (m *Model) renderSection(section keymap.Section) string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(m.Theme.Colors.Blue)

	table := ltable.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})

	rows := 0
	for _, binding := range section.FilterEnabled() {
		keyStr := binding.Help().Key
		desc := binding.Help().Desc
		if keyStr == "" || desc == "" {
			continue
		}
		table = table.Row(keyStyle.Render(keyStr), m.Theme.Muted.Italic(true).Render(desc))
		rows++
	}
	if rows == 0 {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(m.Theme.Colors.Orange).
		Italic(true).
		MarginBottom(1)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Theme.Colors.Border).
		Padding(0, 1).
		MarginBottom(1)

	content := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(section.Name), table.String())
	return boxStyle.Render(content)
}

// Toggle toggles between showing all help and short help. When showing, it
// recalculates content layout and resets the scroll position.
func (m *Model) Toggle() {
	m.ShowAll = !m.ShowAll
	if m.ShowAll {
		m.setViewportContent()
		m.viewport.GotoTop()
	}
}

// SetSize sets the dimensions of the help view
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
}

// SetTheme switches the styles used for rendering.
func (m *Model) SetTheme(t *theme.Theme) {
	m.Theme = t
	if m.ShowAll {
		m.setViewportContent()
	}
}
