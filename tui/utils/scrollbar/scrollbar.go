package scrollbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/grovetools/wordpad/tui/theme"
)

const (
	thumb = "█"
	track = "░"
)

// Generate returns one scrollbar cell per line for a column of the given
// height, placing the thumb by the viewport's scroll position.
func Generate(vp *viewport.Model, height int, t *theme.Theme) []string {
	if height <= 0 {
		return []string{}
	}
	if t == nil {
		t = theme.DefaultTheme
	}

	cells := make([]string, height)
	total := vp.TotalLineCount()
	if total <= vp.Height {
		fill := thumb
		if total == 0 {
			fill = " "
		}
		for i := range cells {
			cells[i] = t.Muted.Render(fill)
		}
		return cells
	}

	thumbSize := max(1, height*vp.Height/total)
	maxStart := height - thumbSize
	pct := min(max(vp.ScrollPercent(), 0), 1)
	start := min(max(int(float64(maxStart)*pct+0.5), 0), maxStart)

	for i := range cells {
		if i >= start && i < start+thumbSize {
			cells[i] = t.Muted.Render(thumb)
		} else {
			cells[i] = t.Muted.Render(track)
		}
	}
	return cells
}

// Overlay appends a scrollbar column to the viewport's visible lines.
func Overlay(vp *viewport.Model, t *theme.Theme) string {
	lines := strings.Split(vp.View(), "\n")
	cells := Generate(vp, len(lines), t)
	for i := range lines {
		lines[i] += cells[i]
	}
	return strings.Join(lines, "\n")
}
