package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortableRootWins(t *testing.T) {
	t.Setenv("WORDPAD_HOME", "/opt/wordpad")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")

	assert.Equal(t, filepath.Join("/opt/wordpad", "config"), ConfigDir())
	assert.Equal(t, filepath.Join("/opt/wordpad", "state"), StateDir())
	assert.Equal(t, filepath.Join("/opt/wordpad", "config", "wordpad.yml"), GlobalConfigFile())
}

func TestXDGVariables(t *testing.T) {
	t.Setenv("WORDPAD_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")

	assert.Equal(t, filepath.Join("/xdg/config", "wordpad"), ConfigDir())
	assert.Equal(t, filepath.Join("/xdg/state", "wordpad"), StateDir())
}

func TestHomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("WORDPAD_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".config", "wordpad"), ConfigDir())
	assert.Equal(t, filepath.Join(home, ".local", "state", "wordpad"), StateDir())
}

func TestExpand(t *testing.T) {
	t.Setenv("HOME", "/home/writer")
	t.Setenv("NOTES", "/srv/notes")

	assert.Equal(t, filepath.Join("/home/writer", "logs/a.log"), Expand("~/logs/a.log"))
	assert.Equal(t, "/home/writer", Expand("~"))
	assert.Equal(t, "/srv/notes/today.md", Expand("$NOTES/today.md"))
	assert.Equal(t, "relative/path", Expand("relative/path"))
}
