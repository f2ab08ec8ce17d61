// Package table renders themed lipgloss tables for command output.
package table

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/grovetools/wordpad/tui/theme"
)

// Builder provides a fluent interface for creating styled tables
type Builder struct {
	theme     *theme.Theme
	headers   []string
	rows      [][]string
	bordered  bool
	alternate bool
}

// NewBuilder creates a bordered table builder using the default theme.
func NewBuilder() *Builder {
	return &Builder{theme: theme.DefaultTheme, bordered: true}
}

// WithTheme sets the theme
func (b *Builder) WithTheme(t *theme.Theme) *Builder {
	if t != nil {
		b.theme = t
	}
	return b
}

// WithBorder enables or disables the rounded border.
func (b *Builder) WithBorder(bordered bool) *Builder {
	b.bordered = bordered
	return b
}

// WithAlternateRows shades every second data row.
func (b *Builder) WithAlternateRows(alternate bool) *Builder {
	b.alternate = alternate
	return b
}

// WithHeaders sets the table headers
func (b *Builder) WithHeaders(headers ...string) *Builder {
	b.headers = headers
	return b
}

// WithRows appends rows.
func (b *Builder) WithRows(rows ...[]string) *Builder {
	b.rows = append(b.rows, rows...)
	return b
}

// Build creates the styled table
func (b *Builder) Build() *ltable.Table {
	t := b.theme
	tbl := ltable.New().Headers(b.headers...).Rows(b.rows...)

	if b.bordered {
		tbl = tbl.Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(t.Colors.Border))
	} else {
		tbl = tbl.Border(lipgloss.HiddenBorder())
	}

	return tbl.StyleFunc(func(row, col int) lipgloss.Style {
		if row == ltable.HeaderRow {
			return t.Bold.Padding(0, 1)
		}
		style := lipgloss.NewStyle().Padding(0, 1)
		if b.alternate && row%2 == 1 {
			style = style.Background(t.Colors.SubtleBackground)
		}
		return style
	})
}

// String renders the table.
func (b *Builder) String() string {
	return b.Build().String()
}
