// Package paths resolves the directories wordpad reads configuration from
// and writes logs to.
//
// Resolution order:
// 1. WORDPAD_HOME (portable root) → $WORDPAD_HOME/{config,state}
// 2. XDG env vars → $XDG_*_HOME/wordpad
// 3. Platform defaults → ~/.config/wordpad, ~/.local/state/wordpad
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const appName = "wordpad"

// resolve returns the base directory for one kind of data: the portable
// root's sub directory, the XDG variable, or the fallback under $HOME.
func resolve(portableSub, xdgVar string, homeFallback ...string) string {
	if home := os.Getenv("WORDPAD_HOME"); home != "" {
		return filepath.Join(home, portableSub)
	}
	if dir := os.Getenv(xdgVar); dir != "" {
		return filepath.Join(dir, appName)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append(append([]string{homeDir}, homeFallback...), appName)...)
}

// ConfigDir returns the wordpad configuration directory.
// Used for the global wordpad.yml.
func ConfigDir() string {
	return resolve("config", "XDG_CONFIG_HOME", ".config")
}

// StateDir returns the wordpad state directory.
// Used for log files.
func StateDir() string {
	return resolve("state", "XDG_STATE_HOME", ".local", "state")
}

// GlobalConfigFile returns the path of the global configuration file, or
// an empty string when no home directory can be determined.
func GlobalConfigFile() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "wordpad.yml")
}

// Expand resolves a leading "~/" to the home directory and expands
// environment variables in path.
func Expand(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return os.ExpandEnv(path)
}
