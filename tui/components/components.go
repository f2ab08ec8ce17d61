package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/wordpad/tui/theme"
)

// RenderBox renders content in a bordered panel with a title line. The
// focused panel uses the theme's Focused border.
func RenderBox(t *theme.Theme, title, content string, width int, focused bool) string {
	style := t.Box
	if focused {
		style = t.Focused
	}
	if width > 2 {
		style = style.Width(width - 2)
	}

	body := content
	if title != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, t.BoxTitle.Render(title), content)
	}
	return style.Render(body)
}

// RenderKeyValue creates a key-value display
func RenderKeyValue(t *theme.Theme, key, value string) string {
	return fmt.Sprintf("%s %s", t.Muted.Render(key+":"), t.Normal.Render(value))
}

// RenderFooter creates a full-width footer line
func RenderFooter(t *theme.Theme, content string, width int) string {
	style := t.Footer
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(content)
}

// RenderDivider creates a horizontal divider
func RenderDivider(t *theme.Theme, width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(t.Colors.Border).
		Render(strings.Repeat("─", width))
}
