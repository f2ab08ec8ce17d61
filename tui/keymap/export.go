package keymap

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// SectionInfo is a serializable representation of a keybinding section.
type SectionInfo struct {
	Name     string        `json:"name"`
	Bindings []BindingInfo `json:"bindings"`
}

// BindingInfo is a serializable representation of a single keybinding.
type BindingInfo struct {
	Keys        []string `json:"keys"`
	Description string   `json:"description"`
	Enabled     bool     `json:"enabled"`
	ConfigKey   string   `json:"config_key"` // key under tui.keybindings
}

// Export converts a keymap's sections into serializable form, filling in
// the tui.keybindings key of every binding.
func Export(km SectionedKeyMap) []SectionInfo {
	configKeys := make(map[string]string)
	extractConfigKeys(reflect.ValueOf(km), configKeys)

	sections := km.Sections()
	result := make([]SectionInfo, 0, len(sections))
	for _, s := range sections {
		info := SectionInfo{Name: s.Name, Bindings: make([]BindingInfo, 0, len(s.Bindings))}
		for _, b := range s.Bindings {
			info.Bindings = append(info.Bindings, exportBinding(b, configKeys))
		}
		result = append(result, info)
	}
	return result
}

func exportBinding(b key.Binding, configKeys map[string]string) BindingInfo {
	return BindingInfo{
		Keys:        b.Keys(),
		Description: b.Help().Desc,
		Enabled:     b.Enabled(),
		ConfigKey:   configKeys[b.Help().Desc],
	}
}

// extractConfigKeys maps the help description of every binding field to
// its config key.
func extractConfigKeys(v reflect.Value, m map[string]string) {
	for _, f := range bindingFields(v) {
		if desc := f.value.Interface().(key.Binding).Help().Desc; desc != "" {
			m[desc] = f.configKey
		}
	}
}
