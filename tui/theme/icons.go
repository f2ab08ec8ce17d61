package theme

import (
	"os"

	"github.com/grovetools/wordpad/config"
)

// Nerd Font Icons (Private Constants)
const (
	nerdIconSuccess = "󰄬" // md-check (U+F012C)
	nerdIconError   = "" // cod-error (U+EA87)
	nerdIconWarning = "" // fa-warning (U+F071)
	nerdIconInfo    = "󰋼" // md-information (U+F02FC)
	nerdIconArrow   = "󰁔" // md-arrow_right (U+F0054)
	nerdIconCopy    = "󰆏" // md-content_copy (U+F018F)
	nerdIconSun     = "󰖙" // md-weather_sunny (U+F0599)
	nerdIconMoon    = "󰖔" // md-weather_night (U+F0594)
	nerdIconClock   = "󰅐" // md-clock_outline (U+F0150)
	nerdIconText    = "󰦨" // md-text (U+F09A8)
)

// ASCII Fallback Icons (Private Constants)
const (
	asciiIconSuccess = "✓"
	asciiIconError   = "✗"
	asciiIconWarning = "⚠"
	asciiIconInfo    = "ℹ"
	asciiIconArrow   = "→"
	asciiIconCopy    = "⧉"
	asciiIconSun     = "☀"
	asciiIconMoon    = "☾"
	asciiIconClock   = "◷"
	asciiIconText    = "¶"
)

// Public Icon Variables
var (
	IconSuccess string
	IconError   string
	IconWarning string
	IconInfo    string
	IconArrow   string
	IconCopy    string
	IconSun     string
	IconMoon    string
	IconClock   string
	IconText    string
)

// init function determines which icon set to use
func init() {
	set := os.Getenv("WORDPAD_ICONS")
	if set == "" {
		if cfg, err := config.LoadDefault(); err == nil {
			set = cfg.TUI.Icons
		}
	}
	UseIcons(set)
}

// UseIcons switches the public icon variables to the "nerd" or "ascii" set.
// Anything other than "nerd" selects ASCII.
func UseIcons(set string) {
	if set == "nerd" {
		IconSuccess = nerdIconSuccess
		IconError = nerdIconError
		IconWarning = nerdIconWarning
		IconInfo = nerdIconInfo
		IconArrow = nerdIconArrow
		IconCopy = nerdIconCopy
		IconSun = nerdIconSun
		IconMoon = nerdIconMoon
		IconClock = nerdIconClock
		IconText = nerdIconText
		return
	}

	IconSuccess = asciiIconSuccess
	IconError = asciiIconError
	IconWarning = asciiIconWarning
	IconInfo = asciiIconInfo
	IconArrow = asciiIconArrow
	IconCopy = asciiIconCopy
	IconSun = asciiIconSun
	IconMoon = asciiIconMoon
	IconClock = asciiIconClock
	IconText = asciiIconText
}
