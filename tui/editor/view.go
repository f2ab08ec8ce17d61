package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/wordpad/pkg/session"
	"github.com/grovetools/wordpad/tui/components"
	"github.com/grovetools/wordpad/tui/theme"
	"github.com/grovetools/wordpad/tui/utils/scrollbar"
)

// Labels of the word counter page.
const (
	// Title is the navbar title.
	Title = "Word Counter"
	// SummaryTitle heads the statistics box.
	SummaryTitle = "Summary Of Your Text"
	// PreviewTitle heads the read-only preview box.
	PreviewTitle = "Preview Document"
	// EditorTitle heads the text area.
	EditorTitle = "Enter the text to analyze"
	// FooterMessage is shown on the left of the footer.
	FooterMessage = "All rights reserved @2024"

	// summaryHeight is the summary box: title, three stats, two border rows.
	summaryHeight = 6
)

// toolbarLabels names the toolbar entry of each text action binding.
var toolbarLabels = []string{
	"Uppercase",
	"Lowercase",
	"Clear",
	"Remove Extra Spaces",
	"Copy to Clipboard",
}

// View renders the word counter.
func (m Model) View() string {
	if m.help.ShowAll {
		return m.help.View()
	}

	snap := m.store.Snapshot()
	stats := m.store.Stats()

	sections := []string{
		m.renderNavbar(snap.Mode),
		m.renderToolbar(),
		components.RenderBox(m.theme, EditorTitle, m.textarea.View(), m.width, m.focus == focusEditor),
		components.RenderBox(m.theme, SummaryTitle, m.renderSummary(stats), m.width, false),
		components.RenderBox(m.theme, PreviewTitle, m.renderPreview(snap.Text), m.width, m.focus == focusPreview),
		m.toast.View(),
		m.renderFooter(),
	}
	return strings.Join(sections, "\n")
}

// ModeHint is the navbar label of the mode toggle: it names the mode the
// toggle switches to.
func ModeHint(mode session.DisplayMode) string {
	if mode.IsDark() {
		return "Light Mode"
	}
	return "Dark Mode"
}

// ReadingTime formats a reading time in minutes.
func ReadingTime(minutes int) string {
	if minutes == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", minutes)
}

func (m Model) renderNavbar(mode session.DisplayMode) string {
	icon := theme.IconSun
	if mode.IsDark() {
		icon = theme.IconMoon
	}
	title := m.theme.Navbar.Render(theme.IconText + " " + Title)
	hint := m.theme.Muted.Render(fmt.Sprintf("%s %s %s", helpKey(m.keys.ToggleTheme), icon, ModeHint(mode)))

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(hint)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + hint
}

func (m Model) renderToolbar() string {
	bindings := m.keys.TextActions()
	buttons := make([]string, 0, len(bindings))
	for i, b := range bindings {
		if !b.Enabled() || i >= len(toolbarLabels) {
			continue
		}
		buttons = append(buttons, m.theme.Button.Render(
			m.theme.Accent.Render(helpKey(b))+" "+toolbarLabels[i]))
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
}

func (m Model) renderSummary(stats session.Stats) string {
	lines := []string{
		components.RenderKeyValue(m.theme, "Number of words", fmt.Sprintf("%d", stats.Words)),
		components.RenderKeyValue(m.theme, "Number of characters", fmt.Sprintf("%d", stats.Characters)),
		components.RenderKeyValue(m.theme, theme.IconClock+" Reading Time", ReadingTime(stats.ReadingMinutes)),
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderPreview(text string) string {
	if text == "" {
		return m.theme.Placeholder.Render("Nothing to preview")
	}
	if m.preview.TotalLineCount() <= m.preview.Height {
		return m.preview.View()
	}
	indicator := fmt.Sprintf("%3.f%%", m.preview.ScrollPercent()*100)
	return lipgloss.JoinVertical(lipgloss.Right, scrollbar.Overlay(&m.preview, m.theme), m.theme.Muted.Render(indicator))
}

func (m Model) renderFooter() string {
	line := m.theme.Muted.Render(FooterMessage) + "  " + m.help.View()
	return components.RenderFooter(m.theme, line, m.width)
}

// helpKey returns the key label of a binding as shown in help.
func helpKey(b key.Binding) string {
	if k := b.Help().Key; k != "" {
		return k
	}
	if keys := b.Keys(); len(keys) > 0 {
		return keys[0]
	}
	return ""
}
