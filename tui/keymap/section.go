package keymap

import "github.com/charmbracelet/bubbles/key"

// Standard section names.
const (
	SectionActions = "Actions"
	SectionView    = "View"
	SectionSystem  = "System"
)

// Section represents a logical grouping of keybindings for structured help display.
type Section struct {
	Name     string
	Bindings []key.Binding
}

// SectionedKeyMap is an interface for keymaps that organize their bindings into sections.
type SectionedKeyMap interface {
	Sections() []Section
}

// NewSection creates a section with a custom name.
func NewSection(name string, bindings ...key.Binding) Section {
	return Section{Name: name, Bindings: bindings}
}

// ActionsSection creates an Actions section with the specified bindings.
func ActionsSection(bindings ...key.Binding) Section {
	return Section{Name: SectionActions, Bindings: bindings}
}

// ViewSection creates a View section with the specified bindings.
func ViewSection(bindings ...key.Binding) Section {
	return Section{Name: SectionView, Bindings: bindings}
}

// SystemSection creates a System section with the specified bindings.
func SystemSection(bindings ...key.Binding) Section {
	return Section{Name: SectionSystem, Bindings: bindings}
}

// FilterEnabled returns a new slice containing only enabled bindings.
func (s Section) FilterEnabled() []key.Binding {
	var result []key.Binding
	for _, b := range s.Bindings {
		if b.Enabled() {
			result = append(result, b)
		}
	}
	return result
}

// IsEmpty returns true if the section has no enabled bindings.
func (s Section) IsEmpty() bool {
	for _, b := range s.Bindings {
		if b.Enabled() {
			return false
		}
	}
	return true
}
