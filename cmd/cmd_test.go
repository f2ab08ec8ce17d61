package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetools/wordpad/pkg/session"
	"github.com/grovetools/wordpad/tui/keymap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree with args and stdin, isolated from any
// configuration on the machine.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("WORDPAD_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestStatsFromStdinJSON(t *testing.T) {
	out, _, err := run(t, "Hello world", "stats", "--json")
	require.NoError(t, err)

	var stats session.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, session.Stats{Words: 2, Characters: 11, ReadingMinutes: 1}, stats)
}

func TestStatsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("word ", 201)), 0o644))

	out, _, err := run(t, "", "stats", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Words:")
	assert.Contains(t, out, "201")
	assert.Contains(t, out, "2 minutes")
}

func TestStatsEmptyInput(t *testing.T) {
	out, _, err := run(t, "", "stats", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"words":0,"characters":0,"reading_minutes":0}`, out)
}

func TestStatsWatchNeedsFile(t *testing.T) {
	_, _, err := run(t, "text", "stats", "--watch")
	assert.Error(t, err)
}

func TestStatsMissingFile(t *testing.T) {
	_, _, err := run(t, "", "stats", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestTransformPipeline(t *testing.T) {
	out, _, err := run(t, "  hello   world \n", "transform", "collapse", "upper")
	require.NoError(t, err)
	assert.Equal(t, "HELLO WORLD\n", out)
}

func TestTransformKeepsSingleTrailingNewline(t *testing.T) {
	out, _, err := run(t, "hi\n", "transform", "upper")
	require.NoError(t, err)
	assert.Equal(t, "HI\n", out)

	out, _, err = run(t, "hi", "transform", "upper")
	require.NoError(t, err)
	assert.Equal(t, "HI\n", out)

	out, _, err = run(t, "a\nb\n", "transform", "lower")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)
}

func TestTransformSetPayload(t *testing.T) {
	out, _, err := run(t, "ignored", "transform", "set", "lower", "--payload", "New TEXT")
	require.NoError(t, err)
	assert.Equal(t, "new text\n", out)
}

func TestTransformUnknownActionIsSkipped(t *testing.T) {
	out, stderr, err := run(t, "Abc", "transform", "bogus", "lower", "--json")
	require.NoError(t, err)
	assert.Contains(t, stderr, "bogus")

	var result TransformResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "abc", result.Text)
	assert.Equal(t, session.ModeLight, result.Mode)
	assert.Equal(t, []string{"bogus"}, result.Ignored)
	assert.Equal(t, 1, result.Stats.Words)
}

func TestTransformThemeAndCopy(t *testing.T) {
	out, stderr, err := run(t, "hi", "transform", "theme", "copy", "--no-clipboard", "--json")
	require.NoError(t, err)
	assert.Contains(t, stderr, session.CopySuccessMessage)

	var result TransformResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "hi", result.Text)
	assert.Equal(t, session.ModeDark, result.Mode)
	assert.Empty(t, result.Ignored)
}

func TestTransformNeedsAction(t *testing.T) {
	_, _, err := run(t, "text", "transform")
	assert.Error(t, err)
}

func TestConfigSchema(t *testing.T) {
	out, _, err := run(t, "", "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "Wordpad Configuration")
	assert.Contains(t, out, "words_per_minute")
}

func TestConfigShowDefaults(t *testing.T) {
	out, _, err := run(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "backend: auto")
}

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yml")
	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(good, []byte("tui:\n  theme: gruvbox\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("tui:\n  theme: neon\n"), 0o644))

	out, _, err := run(t, "", "config", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	_, _, err = run(t, "", "config", "validate", bad)
	assert.Error(t, err)
}

func TestKeysJSON(t *testing.T) {
	out, _, err := run(t, "", "keys", "--json")
	require.NoError(t, err)

	var sections []keymap.SectionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &sections))
	require.Len(t, sections, 3)
	assert.Equal(t, keymap.SectionActions, sections[0].Name)
	assert.Equal(t, "uppercase", sections[0].Bindings[0].ConfigKey)
}

func TestKeysTable(t *testing.T) {
	out, _, err := run(t, "", "keys")
	require.NoError(t, err)
	assert.Contains(t, out, "remove_extra_spaces")
}

func TestVersionJSON(t *testing.T) {
	out, _, err := run(t, "", "version", "--json")
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "dev", info["version"])
}
