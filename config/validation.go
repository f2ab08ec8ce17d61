package config

import (
	"fmt"
	"net"
	"time"

	"github.com/grovetools/wordpad/errors"
)

var (
	validIcons    = map[string]bool{"nerd": true, "ascii": true}
	validThemes   = map[string]bool{"kanagawa": true, "gruvbox": true, "terminal": true}
	validModes    = map[string]bool{"light": true, "dark": true}
	validBackends = map[string]bool{"auto": true, "system": true, "osc52": true, "none": true}
)

// Validate checks if the configuration is valid. It runs after SetDefaults,
// so empty values are not expected here.
func (c *Config) Validate() error {
	if err := validateTUI(&c.TUI); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid tui configuration")
	}

	if !validBackends[c.Clipboard.Backend] {
		return errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("unknown clipboard backend '%s' (expected auto, system, osc52 or none)", c.Clipboard.Backend)).
			WithDetail("backend", c.Clipboard.Backend)
	}

	if c.Metrics.Addr != "" {
		if _, _, err := net.SplitHostPort(c.Metrics.Addr); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigValidation,
				fmt.Sprintf("invalid metrics address '%s'", c.Metrics.Addr)).
				WithDetail("addr", c.Metrics.Addr)
		}
	}

	return nil
}

func validateTUI(tui *TUIConfig) error {
	if !validIcons[tui.Icons] {
		return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("unknown icon set '%s'", tui.Icons)).
			WithDetail("icons", tui.Icons)
	}

	if !validThemes[tui.Theme] {
		return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("unknown theme '%s'", tui.Theme)).
			WithDetail("theme", tui.Theme)
	}

	if !validModes[tui.Mode] {
		return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("unknown display mode '%s'", tui.Mode)).
			WithDetail("mode", tui.Mode)
	}

	d, err := time.ParseDuration(tui.ToastDuration)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation,
			fmt.Sprintf("invalid toast_duration '%s'", tui.ToastDuration))
	}
	if d <= 0 {
		return errors.New(errors.ErrCodeConfigValidation, "toast_duration must be positive").
			WithDetail("toast_duration", tui.ToastDuration)
	}

	for action, keys := range tui.Keybindings {
		for _, k := range keys {
			if k == "" {
				return errors.New(errors.ErrCodeConfigValidation,
					fmt.Sprintf("empty key in keybindings for '%s'", action)).
					WithDetail("action", action)
			}
		}
	}

	return nil
}
