package session

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToUpper applies default (language-independent) Unicode uppercase mapping,
// including full mappings such as "ß" -> "SS".
func ToUpper(s string) string {
	// Casers carry state, so each call gets its own.
	return cases.Upper(language.Und).String(s)
}

// ToLower applies default (language-independent) Unicode lowercase mapping.
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// CollapseSpaces replaces every maximal run of whitespace with one space and
// drops leading and trailing whitespace. Whitespace is unicode.IsSpace.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Reduce applies a to prev and returns the next session. It is pure:
// copyToClipboard and unrecognized tags return prev unchanged, and the
// clipboard side effect is the Store's job.
func Reduce(prev Session, a Action) Session {
	next := prev
	switch a.Type {
	case ActionSetText:
		next.Text = a.Payload
	case ActionUppercase:
		next.Text = ToUpper(prev.Text)
	case ActionLowercase:
		next.Text = ToLower(prev.Text)
	case ActionClear:
		next.Text = ""
	case ActionCollapseWhitespace:
		next.Text = CollapseSpaces(prev.Text)
	case ActionToggleTheme:
		next.Mode = prev.Mode.Toggle()
	}
	return next
}

// Apply folds actions over s with Reduce.
func Apply(s Session, actions ...Action) Session {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}
