package keymap

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/grovetools/wordpad/config"
)

var bindingType = reflect.TypeOf(key.Binding{})

// bindingField is one key.Binding field of a keymap struct.
type bindingField struct {
	configKey string // snake_case field name, the key under tui.keybindings
	value     reflect.Value
}

// bindingFields lists the key.Binding fields of a keymap struct in
// declaration order, descending into embedded structs. Pointers and
// interfaces are dereferenced.
func bindingFields(v reflect.Value) []bindingField {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	var fields []bindingField
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		switch {
		case sf.Anonymous:
			fields = append(fields, bindingFields(v.Field(i))...)
		case sf.Type == bindingType && sf.IsExported():
			fields = append(fields, bindingField{configKey: camelToSnake(sf.Name), value: v.Field(i)})
		}
	}
	return fields
}

// ApplyOverrides replaces the keys of every binding named in overrides,
// keeping its help description. km must be a pointer to a keymap struct;
// overrides["remove_extra_spaces"] targets the RemoveExtraSpaces field.
func ApplyOverrides(km interface{}, overrides config.KeybindingsConfig) {
	if len(overrides) == 0 || reflect.ValueOf(km).Kind() != reflect.Ptr {
		return
	}

	for _, f := range bindingFields(reflect.ValueOf(km)) {
		keys := overrides[f.configKey]
		if len(keys) == 0 || !f.value.CanSet() {
			continue
		}
		current := f.value.Interface().(key.Binding)
		f.value.Set(reflect.ValueOf(key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], current.Help().Desc),
		)))
	}
}

// camelToSnake turns RemoveExtraSpaces into remove_extra_spaces.
func camelToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
