package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/wordpad/config"
)

// KeyMap contains the keybindings of the wordpad editor. Field names map to
// config keys in snake_case: RemoveExtraSpaces is "remove_extra_spaces".
type KeyMap struct {
	// Text actions
	Uppercase         key.Binding
	Lowercase         key.Binding
	Clear             key.Binding
	RemoveExtraSpaces key.Binding
	Copy              key.Binding

	// View
	ToggleTheme    key.Binding
	ToggleMarkdown key.Binding
	SwitchFocus    key.Binding
	ScrollUp       key.Binding // preview pane only
	ScrollDown     key.Binding // preview pane only

	// System
	Help key.Binding
	Quit key.Binding
}

// Default returns the default editor keymap. Text actions use alt chords
// so that plain keys keep typing into the editor.
func Default() KeyMap {
	return KeyMap{
		Uppercase: key.NewBinding(
			key.WithKeys("alt+u"),
			key.WithHelp("M-u", "uppercase"),
		),
		Lowercase: key.NewBinding(
			key.WithKeys("alt+l"),
			key.WithHelp("M-l", "lowercase"),
		),
		Clear: key.NewBinding(
			key.WithKeys("alt+x"),
			key.WithHelp("M-x", "clear"),
		),
		RemoveExtraSpaces: key.NewBinding(
			key.WithKeys("alt+w"),
			key.WithHelp("M-w", "remove extra spaces"),
		),
		Copy: key.NewBinding(
			key.WithKeys("alt+c"),
			key.WithHelp("M-c", "copy to clipboard"),
		),

		ToggleTheme: key.NewBinding(
			key.WithKeys("alt+t"),
			key.WithHelp("M-t", "toggle dark mode"),
		),
		ToggleMarkdown: key.NewBinding(
			key.WithKeys("alt+m"),
			key.WithHelp("M-m", "markdown preview"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k/up", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j/down", "scroll down"),
		),

		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// Load creates the editor keymap from configuration: the defaults, with
// tui.keybindings applied on top.
func Load(cfg *config.Config) KeyMap {
	km := Default()
	if cfg == nil {
		return km
	}
	ApplyOverrides(&km, cfg.TUI.Keybindings)
	return km
}

// TextActions returns the toolbar bindings in display order.
func (k KeyMap) TextActions() []key.Binding {
	return []key.Binding{k.Uppercase, k.Lowercase, k.Clear, k.RemoveExtraSpaces, k.Copy}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.ToggleTheme, k.SwitchFocus, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	sections := k.Sections()
	result := make([][]key.Binding, 0, len(sections))
	for _, s := range sections {
		result = append(result, s.Bindings)
	}
	return result
}

// Sections groups the bindings for the help overlay.
func (k KeyMap) Sections() []Section {
	return []Section{
		ActionsSection(k.TextActions()...),
		ViewSection(k.ToggleTheme, k.ToggleMarkdown, k.SwitchFocus, k.ScrollUp, k.ScrollDown),
		SystemSection(k.Help, k.Quit),
	}
}
