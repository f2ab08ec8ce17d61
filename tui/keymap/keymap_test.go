package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/wordpad/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBindings(t *testing.T) {
	km := Default()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"uppercase", km.Uppercase, []string{"alt+u"}},
		{"lowercase", km.Lowercase, []string{"alt+l"}},
		{"clear", km.Clear, []string{"alt+x"}},
		{"remove extra spaces", km.RemoveExtraSpaces, []string{"alt+w"}},
		{"copy", km.Copy, []string{"alt+c"}},
		{"toggle theme", km.ToggleTheme, []string{"alt+t"}},
		{"markdown", km.ToggleMarkdown, []string{"alt+m"}},
		{"focus", km.SwitchFocus, []string{"tab"}},
		{"help", km.Help, []string{"f1"}},
		{"quit", km.Quit, []string{"ctrl+c", "esc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
			assert.True(t, tt.binding.Enabled())
		})
	}
}

func TestAltChordMatches(t *testing.T) {
	km := Default()
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'u'}, Alt: true}
	assert.True(t, key.Matches(msg, km.Uppercase))
	assert.False(t, key.Matches(msg, km.Lowercase))

	plain := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'u'}}
	assert.False(t, key.Matches(plain, km.Uppercase), "plain letters keep typing")
}

func TestLoadAppliesConfigOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.TUI.Keybindings = config.KeybindingsConfig{
		"remove_extra_spaces": {"ctrl+w"},
		"copy":                {"ctrl+y", "alt+c"},
		"not_an_action":       {"x"},
	}

	km := Load(cfg)

	assert.Equal(t, []string{"ctrl+w"}, km.RemoveExtraSpaces.Keys())
	assert.Equal(t, "remove extra spaces", km.RemoveExtraSpaces.Help().Desc)
	assert.Equal(t, "ctrl+w", km.RemoveExtraSpaces.Help().Key)
	assert.Equal(t, []string{"ctrl+y", "alt+c"}, km.Copy.Keys())
	assert.Equal(t, []string{"alt+u"}, km.Uppercase.Keys(), "untouched bindings keep defaults")
}

func TestLoadNilConfig(t *testing.T) {
	assert.Equal(t, Default().Copy.Keys(), Load(nil).Copy.Keys())
}

func TestSectionsAndHelp(t *testing.T) {
	km := Default()
	sections := km.Sections()
	require.Len(t, sections, 3)
	assert.Equal(t, SectionActions, sections[0].Name)
	assert.Len(t, sections[0].Bindings, 5)
	assert.Equal(t, SectionSystem, sections[2].Name)

	assert.Len(t, km.FullHelp(), 3)
	assert.Len(t, km.ShortHelp(), 5)
}

func TestSectionFilterEnabled(t *testing.T) {
	km := Default()
	km.ScrollUp.SetEnabled(false)
	s := ViewSection(km.ToggleTheme, km.ScrollUp)

	assert.Len(t, s.FilterEnabled(), 1)
	assert.False(t, s.IsEmpty())
	assert.True(t, NewSection("Empty").IsEmpty())
}

func TestCamelToSnake(t *testing.T) {
	tests := map[string]string{
		"RemoveExtraSpaces": "remove_extra_spaces",
		"ToggleTheme":       "toggle_theme",
		"Copy":              "copy",
		"":                  "",
	}
	for in, want := range tests {
		assert.Equal(t, want, camelToSnake(in), in)
	}
}

type embeddedKeyMap struct {
	KeyMap
	Extra       key.Binding
	unexported  key.Binding
	NotABinding string
}

func TestApplyOverridesRecursesAndSkips(t *testing.T) {
	km := embeddedKeyMap{
		KeyMap:      Default(),
		Extra:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "extra")),
		unexported:  key.NewBinding(key.WithKeys("u")),
		NotABinding: "keep",
	}

	ApplyOverrides(&km, config.KeybindingsConfig{
		"clear":         {"ctrl+l"},
		"extra":         {"E"},
		"unexported":    {"U"},
		"not_a_binding": {"x"},
	})

	assert.Equal(t, []string{"ctrl+l"}, km.Clear.Keys())
	assert.Equal(t, []string{"E"}, km.Extra.Keys())
	assert.Equal(t, []string{"u"}, km.unexported.Keys())
	assert.Equal(t, "keep", km.NotABinding)

	// Non-pointer and nil overrides are ignored.
	ApplyOverrides(km, config.KeybindingsConfig{"clear": {"x"}})
	ApplyOverrides(&km, nil)
	assert.Equal(t, []string{"ctrl+l"}, km.Clear.Keys())
}

func TestExport(t *testing.T) {
	sections := Export(Default())
	require.Len(t, sections, 3)

	first := sections[0].Bindings[3]
	assert.Equal(t, "remove extra spaces", first.Description)
	assert.Equal(t, "remove_extra_spaces", first.ConfigKey)
	assert.Equal(t, []string{"alt+w"}, first.Keys)
	assert.True(t, first.Enabled)

	quit := sections[2].Bindings[1]
	assert.Equal(t, "quit", quit.ConfigKey)
}
