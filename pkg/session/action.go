package session

import "strings"

// ActionType tags an Action. The set of recognized tags is closed; any other
// tag dispatches as a no-op.
type ActionType string

const (
	ActionSetText            ActionType = "setText"
	ActionUppercase          ActionType = "toUppercase"
	ActionLowercase          ActionType = "toLowercase"
	ActionClear              ActionType = "clear"
	ActionCollapseWhitespace ActionType = "collapseWhitespace"
	ActionCopyToClipboard    ActionType = "copyToClipboard"
	ActionToggleTheme        ActionType = "toggleTheme"
)

// ActionTypes lists every recognized tag in toolbar order.
var ActionTypes = []ActionType{
	ActionSetText,
	ActionUppercase,
	ActionLowercase,
	ActionClear,
	ActionCollapseWhitespace,
	ActionCopyToClipboard,
	ActionToggleTheme,
}

// Known reports whether t is one of the recognized tags.
func (t ActionType) Known() bool {
	for _, known := range ActionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Action is an immutable request to transform the session or trigger a side
// effect. Payload is only read by setText.
type Action struct {
	Type    ActionType `json:"type"`
	Payload string     `json:"payload,omitempty"`
}

// SetText replaces the text with payload.
func SetText(payload string) Action {
	return Action{Type: ActionSetText, Payload: payload}
}

// Uppercase maps every character to its uppercase form.
func Uppercase() Action { return Action{Type: ActionUppercase} }

// Lowercase maps every character to its lowercase form.
func Lowercase() Action { return Action{Type: ActionLowercase} }

// Clear empties the text.
func Clear() Action { return Action{Type: ActionClear} }

// CollapseWhitespace squeezes whitespace runs into single spaces and trims.
func CollapseWhitespace() Action { return Action{Type: ActionCollapseWhitespace} }

// CopyToClipboard writes the text to the clipboard.
func CopyToClipboard() Action { return Action{Type: ActionCopyToClipboard} }

// ToggleTheme flips the display mode.
func ToggleTheme() Action { return Action{Type: ActionToggleTheme} }

// aliases maps accepted spellings (lowercased) to canonical tags.
var aliases = map[string]ActionType{
	"set":                 ActionSetText,
	"settext":             ActionSetText,
	"set-text":            ActionSetText,
	"change":              ActionSetText,
	"touppercase":         ActionUppercase,
	"uppercase":           ActionUppercase,
	"upper":               ActionUppercase,
	"tolowercase":         ActionLowercase,
	"lowercase":           ActionLowercase,
	"lower":               ActionLowercase,
	"clear":               ActionClear,
	"collapsewhitespace":  ActionCollapseWhitespace,
	"collapse":            ActionCollapseWhitespace,
	"removeextraspaces":   ActionCollapseWhitespace,
	"remove-extra-spaces": ActionCollapseWhitespace,
	"copytoclipboard":     ActionCopyToClipboard,
	"copy":                ActionCopyToClipboard,
	"toggletheme":         ActionToggleTheme,
	"toggle-theme":        ActionToggleTheme,
	"toggledarkmode":      ActionToggleTheme,
	"theme":               ActionToggleTheme,
}

// ParseActionType resolves a user-supplied action name. The second result is
// false when the name is not recognized; the returned tag is then the trimmed
// input, which dispatches as a no-op.
func ParseActionType(name string) (ActionType, bool) {
	trimmed := strings.TrimSpace(name)
	if t, ok := aliases[strings.ToLower(trimmed)]; ok {
		return t, true
	}
	return ActionType(trimmed), false
}
