// Package session holds the text session store: the working text, the display
// mode, and the closed set of actions that transform them.
package session

import (
	"fmt"
	"strings"
)

// DisplayMode is the cosmetic light/dark flag of a session.
type DisplayMode string

const (
	ModeLight DisplayMode = "light"
	ModeDark  DisplayMode = "dark"
)

// Toggle returns the other display mode.
func (m DisplayMode) Toggle() DisplayMode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// IsDark reports whether the mode is dark.
func (m DisplayMode) IsDark() bool {
	return m == ModeDark
}

// String implements fmt.Stringer.
func (m DisplayMode) String() string {
	return string(m)
}

// ParseDisplayMode parses "light" or "dark" (case-insensitive). An empty
// string yields the default light mode.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModeLight):
		return ModeLight, nil
	case string(ModeDark):
		return ModeDark, nil
	default:
		return ModeLight, fmt.Errorf("unknown display mode %q (expected light or dark)", s)
	}
}

// Session is the single in-memory record of a text session.
type Session struct {
	Text string      `json:"text"`
	Mode DisplayMode `json:"mode"`
}

// New returns the initial session: empty text in light mode.
func New() Session {
	return Session{Text: "", Mode: ModeLight}
}

// Stats computes the derived statistics of the session text.
func (s Session) Stats() Stats {
	return Analyze(s.Text)
}
