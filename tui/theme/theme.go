package theme

import (
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/wordpad/config"
)

const defaultThemeName = "kanagawa"

// --- Kanagawa Dragon (dark) palette ---
const (
	kanagawaDarkGreen                = "#98BB6C"
	kanagawaDarkYellow               = "#FF9E3B"
	kanagawaDarkRed                  = "#FF5D62"
	kanagawaDarkOrange               = "#FFA066"
	kanagawaDarkCyan                 = "#7E9CD8"
	kanagawaDarkBlue                 = "#7FB4CA"
	kanagawaDarkViolet               = "#957FB8"
	kanagawaDarkPink                 = "#D27E99"
	kanagawaDarkLightText            = "#DCD7BA"
	kanagawaDarkMutedText            = "#727169"
	kanagawaDarkDarkText             = "#1D1C19"
	kanagawaDarkBorder               = "#363646"
	kanagawaDarkSelectedBackground   = "#223249"
	kanagawaDarkSubtleBackground     = "#1F1F28"
	kanagawaDarkVerySubtleBackground = "#181820"
)

// --- Kanagawa Wave (light-inspired) palette ---
const (
	kanagawaLightGreen                = "#4E7C5A"
	kanagawaLightYellow               = "#A68A64"
	kanagawaLightRed                  = "#C34043"
	kanagawaLightOrange               = "#CC6B4E"
	kanagawaLightCyan                 = "#5B8BBE"
	kanagawaLightBlue                 = "#4F7CAC"
	kanagawaLightViolet               = "#674D7A"
	kanagawaLightPink                 = "#B35C74"
	kanagawaLightLightText            = "#2B2F42"
	kanagawaLightMutedText            = "#6C7086"
	kanagawaLightDarkText             = "#E6E9EF"
	kanagawaLightBorder               = "#B5BDC5"
	kanagawaLightSelectedBackground   = "#E2E6F3"
	kanagawaLightSubtleBackground     = "#F7F7FB"
	kanagawaLightVerySubtleBackground = "#EFF1F8"
)

// --- Gruvbox palette ---
const (
	gruvboxDarkGreen                 = "#B8BB26"
	gruvboxLightGreen                = "#98971A"
	gruvboxDarkYellow                = "#FABD2F"
	gruvboxLightYellow               = "#D79921"
	gruvboxDarkRed                   = "#FB4934"
	gruvboxLightRed                  = "#CC241D"
	gruvboxDarkOrange                = "#FE8019"
	gruvboxLightOrange               = "#D65D0E"
	gruvboxDarkCyan                  = "#83A598"
	gruvboxLightCyan                 = "#458588"
	gruvboxDarkBlue                  = "#458588"
	gruvboxLightBlue                 = "#076678"
	gruvboxDarkViolet                = "#B16286"
	gruvboxLightViolet               = "#8F3F71"
	gruvboxDarkPink                  = "#D3869B"
	gruvboxLightPink                 = "#B57679"
	gruvboxDarkLightText             = "#EBDBB2"
	gruvboxLightLightText            = "#3C3836"
	gruvboxDarkMutedText             = "#BDAE93"
	gruvboxLightMutedText            = "#928374"
	gruvboxDarkDarkText              = "#1D2021"
	gruvboxLightDarkText             = "#F9F5D7"
	gruvboxDarkBorder                = "#504945"
	gruvboxLightBorder               = "#D5C4A1"
	gruvboxDarkSelectedBackground    = "#32302F"
	gruvboxLightSelectedBackground   = "#F2E5BC"
	gruvboxDarkSubtleBackground      = "#282828"
	gruvboxLightSubtleBackground     = "#FBF1C7"
	gruvboxDarkVerySubtleBackground  = "#1D2021"
	gruvboxLightVerySubtleBackground = "#F9F5D7"
)

// --- Terminal (ANSI-friendly) palette ---
const (
	terminalGreen              = "2"
	terminalYellow             = "3"
	terminalRed                = "1"
	terminalOrange             = "208"
	terminalCyan               = "6"
	terminalBlue               = "4"
	terminalViolet             = "5"
	terminalPink               = "13"
	terminalLightText          = "7"
	terminalMutedText          = "8"
	terminalDarkText           = "0"
	terminalBorder             = "8"
	terminalSelectedBackground = "8"
)

// Colors is the palette of one theme in one display mode.
type Colors struct {
	Green                lipgloss.TerminalColor
	Yellow               lipgloss.TerminalColor
	Red                  lipgloss.TerminalColor
	Orange               lipgloss.TerminalColor
	Cyan                 lipgloss.TerminalColor
	Blue                 lipgloss.TerminalColor
	Violet               lipgloss.TerminalColor
	Pink                 lipgloss.TerminalColor
	LightText            lipgloss.TerminalColor // primary text; dark ink in light mode
	MutedText            lipgloss.TerminalColor
	DarkText             lipgloss.TerminalColor // text drawn on accent backgrounds
	Border               lipgloss.TerminalColor
	SelectedBackground   lipgloss.TerminalColor
	SubtleBackground     lipgloss.TerminalColor
	VerySubtleBackground lipgloss.TerminalColor
}

// Palette pairs the light and dark variants of a theme.
type Palette struct {
	Light Colors
	Dark  Colors
}

// Theme holds the pre-configured styles for wordpad, resolved for one
// display mode.
type Theme struct {
	Name   string
	Dark   bool
	Colors Colors

	// Headers and titles
	Header lipgloss.Style
	Title  lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text styles - visual hierarchy
	Bold   lipgloss.Style
	Normal lipgloss.Style
	Muted  lipgloss.Style

	// Layout
	App      lipgloss.Style // page background and default ink
	Navbar   lipgloss.Style
	Button   lipgloss.Style // toolbar action hint
	Box      lipgloss.Style // summary and preview panels
	BoxTitle lipgloss.Style
	Focused  lipgloss.Style // border of the focused pane
	Footer   lipgloss.Style
	Toast    lipgloss.Style

	// Interactive elements
	Input       lipgloss.Style
	Placeholder lipgloss.Style
	Cursor      lipgloss.Style

	// Special styles
	Highlight lipgloss.Style
	Accent    lipgloss.Style
}

var themeRegistry = map[string]func() Palette{
	"kanagawa": newKanagawaPalette,
	"gruvbox":  newGruvboxPalette,
	"terminal": newTerminalPalette,
}

var themeAliases = map[string]string{
	"kanagawa-dark":   "kanagawa",
	"kanagawa-dragon": "kanagawa",
	"kanagawa-wave":   "kanagawa",
	"gruvbox-dark":    "gruvbox",
	"gruvbox-light":   "gruvbox",
}

// DefaultTheme is the theme selected by WORDPAD_THEME or wordpad.yml, in
// the configured initial mode. Console output (log formatter, help) uses it.
var DefaultTheme = initDefaultTheme()

// New builds the named theme for the given display mode. Unknown names fall
// back to the default palette.
func New(name string, dark bool) *Theme {
	key := resolveName(name)
	palette := themeRegistry[key]()
	colors := palette.Light
	if dark {
		colors = palette.Dark
	}
	return newThemeFromColors(key, dark, colors)
}

// FromConfig builds the configured theme. WORDPAD_THEME wins over the
// config file.
func FromConfig(cfg *config.Config, dark bool) *Theme {
	name := cfg.TUI.Theme
	if env := normalizeThemeName(os.Getenv("WORDPAD_THEME")); env != "" {
		name = env
	}
	return New(name, dark)
}

// Names lists the registered palettes.
func Names() []string {
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RenderHeader renders a header with the default styling.
func RenderHeader(title string) string {
	return DefaultTheme.Header.Render(title)
}

// RenderStatus renders text with the appropriate status style.
func RenderStatus(status, text string) string {
	switch status {
	case "success":
		return DefaultTheme.Success.Render(text)
	case "error":
		return DefaultTheme.Error.Render(text)
	case "warning":
		return DefaultTheme.Warning.Render(text)
	case "info":
		return DefaultTheme.Info.Render(text)
	default:
		return text
	}
}

func initDefaultTheme() *Theme {
	cfg, err := config.LoadDefault()
	if err != nil {
		cfg = config.Default()
	}
	return FromConfig(cfg, cfg.TUI.Mode == "dark")
}

func newThemeFromColors(name string, dark bool, colors Colors) *Theme {
	return &Theme{
		Name:   name,
		Dark:   dark,
		Colors: colors,

		Header: lipgloss.NewStyle().
			Bold(true).
			MarginTop(1).
			MarginBottom(1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			MarginBottom(1),

		Success: lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(colors.Yellow).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(colors.Cyan).
			Bold(true),

		// Text hierarchy: Bold → Normal → Muted
		Bold: lipgloss.NewStyle().
			Bold(true),

		Normal: lipgloss.NewStyle().
			Foreground(colors.LightText),

		Muted: lipgloss.NewStyle().
			Foreground(colors.MutedText),

		App: lipgloss.NewStyle().
			Foreground(colors.LightText).
			Background(colors.SubtleBackground),

		Navbar: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.DarkText).
			Background(colors.Blue).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Foreground(colors.LightText).
			Background(colors.SelectedBackground).
			Padding(0, 1).
			MarginRight(1),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Padding(0, 1),

		BoxTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Violet),

		Focused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Orange).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(colors.MutedText).
			Background(colors.VerySubtleBackground).
			Padding(0, 1),

		Toast: lipgloss.NewStyle().
			Padding(0, 1).
			Background(colors.SelectedBackground),

		Input: lipgloss.NewStyle().
			Foreground(colors.LightText),

		Placeholder: lipgloss.NewStyle().
			Foreground(colors.MutedText).
			Italic(true),

		Cursor: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),

		Highlight: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),

		Accent: lipgloss.NewStyle().
			Foreground(colors.Violet).
			Bold(true),
	}
}

func resolveName(name string) string {
	key := normalizeThemeName(name)
	if alias, ok := themeAliases[key]; ok {
		key = alias
	}
	if _, ok := themeRegistry[key]; ok {
		return key
	}
	return defaultThemeName
}

func normalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	return normalized
}

func newKanagawaPalette() Palette {
	return Palette{
		Light: Colors{
			Green:                lipgloss.Color(kanagawaLightGreen),
			Yellow:               lipgloss.Color(kanagawaLightYellow),
			Red:                  lipgloss.Color(kanagawaLightRed),
			Orange:               lipgloss.Color(kanagawaLightOrange),
			Cyan:                 lipgloss.Color(kanagawaLightCyan),
			Blue:                 lipgloss.Color(kanagawaLightBlue),
			Violet:               lipgloss.Color(kanagawaLightViolet),
			Pink:                 lipgloss.Color(kanagawaLightPink),
			LightText:            lipgloss.Color(kanagawaLightLightText),
			MutedText:            lipgloss.Color(kanagawaLightMutedText),
			DarkText:             lipgloss.Color(kanagawaLightDarkText),
			Border:               lipgloss.Color(kanagawaLightBorder),
			SelectedBackground:   lipgloss.Color(kanagawaLightSelectedBackground),
			SubtleBackground:     lipgloss.Color(kanagawaLightSubtleBackground),
			VerySubtleBackground: lipgloss.Color(kanagawaLightVerySubtleBackground),
		},
		Dark: Colors{
			Green:                lipgloss.Color(kanagawaDarkGreen),
			Yellow:               lipgloss.Color(kanagawaDarkYellow),
			Red:                  lipgloss.Color(kanagawaDarkRed),
			Orange:               lipgloss.Color(kanagawaDarkOrange),
			Cyan:                 lipgloss.Color(kanagawaDarkCyan),
			Blue:                 lipgloss.Color(kanagawaDarkBlue),
			Violet:               lipgloss.Color(kanagawaDarkViolet),
			Pink:                 lipgloss.Color(kanagawaDarkPink),
			LightText:            lipgloss.Color(kanagawaDarkLightText),
			MutedText:            lipgloss.Color(kanagawaDarkMutedText),
			DarkText:             lipgloss.Color(kanagawaDarkDarkText),
			Border:               lipgloss.Color(kanagawaDarkBorder),
			SelectedBackground:   lipgloss.Color(kanagawaDarkSelectedBackground),
			SubtleBackground:     lipgloss.Color(kanagawaDarkSubtleBackground),
			VerySubtleBackground: lipgloss.Color(kanagawaDarkVerySubtleBackground),
		},
	}
}

func newGruvboxPalette() Palette {
	return Palette{
		Light: Colors{
			Green:                lipgloss.Color(gruvboxLightGreen),
			Yellow:               lipgloss.Color(gruvboxLightYellow),
			Red:                  lipgloss.Color(gruvboxLightRed),
			Orange:               lipgloss.Color(gruvboxLightOrange),
			Cyan:                 lipgloss.Color(gruvboxLightCyan),
			Blue:                 lipgloss.Color(gruvboxLightBlue),
			Violet:               lipgloss.Color(gruvboxLightViolet),
			Pink:                 lipgloss.Color(gruvboxLightPink),
			LightText:            lipgloss.Color(gruvboxLightLightText),
			MutedText:            lipgloss.Color(gruvboxLightMutedText),
			DarkText:             lipgloss.Color(gruvboxLightDarkText),
			Border:               lipgloss.Color(gruvboxLightBorder),
			SelectedBackground:   lipgloss.Color(gruvboxLightSelectedBackground),
			SubtleBackground:     lipgloss.Color(gruvboxLightSubtleBackground),
			VerySubtleBackground: lipgloss.Color(gruvboxLightVerySubtleBackground),
		},
		Dark: Colors{
			Green:                lipgloss.Color(gruvboxDarkGreen),
			Yellow:               lipgloss.Color(gruvboxDarkYellow),
			Red:                  lipgloss.Color(gruvboxDarkRed),
			Orange:               lipgloss.Color(gruvboxDarkOrange),
			Cyan:                 lipgloss.Color(gruvboxDarkCyan),
			Blue:                 lipgloss.Color(gruvboxDarkBlue),
			Violet:               lipgloss.Color(gruvboxDarkViolet),
			Pink:                 lipgloss.Color(gruvboxDarkPink),
			LightText:            lipgloss.Color(gruvboxDarkLightText),
			MutedText:            lipgloss.Color(gruvboxDarkMutedText),
			DarkText:             lipgloss.Color(gruvboxDarkDarkText),
			Border:               lipgloss.Color(gruvboxDarkBorder),
			SelectedBackground:   lipgloss.Color(gruvboxDarkSelectedBackground),
			SubtleBackground:     lipgloss.Color(gruvboxDarkSubtleBackground),
			VerySubtleBackground: lipgloss.Color(gruvboxDarkVerySubtleBackground),
		},
	}
}

// newTerminalPalette uses ANSI colors only. The terminal's own background
// shows through, so only the ink flips with the mode.
func newTerminalPalette() Palette {
	base := Colors{
		Green:                lipgloss.Color(terminalGreen),
		Yellow:               lipgloss.Color(terminalYellow),
		Red:                  lipgloss.Color(terminalRed),
		Orange:               lipgloss.Color(terminalOrange),
		Cyan:                 lipgloss.Color(terminalCyan),
		Blue:                 lipgloss.Color(terminalBlue),
		Violet:               lipgloss.Color(terminalViolet),
		Pink:                 lipgloss.Color(terminalPink),
		LightText:            lipgloss.Color(terminalLightText),
		MutedText:            lipgloss.Color(terminalMutedText),
		DarkText:             lipgloss.Color(terminalDarkText),
		Border:               lipgloss.Color(terminalBorder),
		SelectedBackground:   lipgloss.Color(terminalSelectedBackground),
		SubtleBackground:     lipgloss.NoColor{},
		VerySubtleBackground: lipgloss.NoColor{},
	}

	light := base
	light.LightText = lipgloss.Color(terminalDarkText)
	light.DarkText = lipgloss.Color(terminalLightText)

	return Palette{Light: light, Dark: base}
}
