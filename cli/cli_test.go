package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetools/wordpad/errors"
	"github.com/grovetools/wordpad/tui/theme"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoot() *cobra.Command {
	root := NewStandardCommand("wordpad", "Count words and transform text")
	root.AddCommand(&cobra.Command{
		Use:   "stats [file]",
		Short: "Print text statistics",
		Run:   func(*cobra.Command, []string) {},
	})
	return root
}

func TestStandardFlags(t *testing.T) {
	root := newRoot()
	require.NoError(t, root.ParseFlags([]string{"-v", "--json", "-c", "x.yml", "--metrics-addr", ":9090"}))

	opts := GetOptions(root)
	assert.Equal(t, CommandOptions{
		ConfigFile:  "x.yml",
		Verbose:     true,
		JSONOutput:  true,
		MetricsAddr: ":9090",
	}, opts)
}

func TestLoadConfigFromFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordpad.yml")
	require.NoError(t, os.WriteFile(path, []byte("stats:\n  words_per_minute: 150\n"), 0o644))

	cfg, err := LoadConfig(CommandOptions{ConfigFile: path, MetricsAddr: "127.0.0.1:9100"})
	require.NoError(t, err)
	assert.Equal(t, 150, cfg.Stats.WordsPerMinute)
	assert.Equal(t, "127.0.0.1:9100", cfg.Metrics.Addr)
}

func TestLoadConfigRejectsBadMetricsAddr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordpad.yml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\n"), 0o644))

	_, err := LoadConfig(CommandOptions{ConfigFile: path, MetricsAddr: "not-an-address"})
	assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation))
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(CommandOptions{ConfigFile: filepath.Join(t.TempDir(), "missing.yml")})
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestErrorHandlerHints(t *testing.T) {
	theme.UseIcons("ascii")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config not found", errors.ConfigNotFound("/tmp/x.yml"), "Configuration not found: /tmp/x.yml"},
		{"clipboard", errors.ClipboardUnavailable("system"), "No clipboard is available (backend system)"},
		{"input", errors.InputReadFailed("notes.txt", os.ErrNotExist), "Could not read input from notes.txt"},
		{"invalid input", errors.InvalidInput("no actions given"), "no actions given"},
		{"plain", assert.AnError, "Error: " + assert.AnError.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &ErrorHandler{Out: &buf}
			assert.Equal(t, tt.err, h.Handle(tt.err))
			assert.Contains(t, buf.String(), "✗ ")
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestErrorHandlerVerbosePrintsJSON(t *testing.T) {
	var buf bytes.Buffer
	h := &ErrorHandler{Verbose: true, Out: &buf}
	h.Handle(errors.InvalidInput("bad"))
	assert.Contains(t, buf.String(), `"code": "INVALID_INPUT"`)
}

func TestErrorHandlerNil(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, (&ErrorHandler{Out: &buf}).Handle(nil))
	assert.Empty(t, buf.String())
}

func TestVersionCommandJSON(t *testing.T) {
	root := newRoot()
	root.AddCommand(NewVersionCommand("wordpad"))

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"version", "--json"})
	require.NoError(t, root.Execute())

	var info map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &info))
	assert.Equal(t, "dev", info["version"])
	assert.NotEmpty(t, info["goVersion"])
}

func TestDocsCommand(t *testing.T) {
	root := newRoot()
	root.AddCommand(NewDocsCommand())

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"docs"})
	require.NoError(t, root.Execute())

	var doc CommandDoc
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "wordpad", doc.Name)

	var names []string
	for _, sub := range doc.Subcommands {
		names = append(names, sub.Name)
	}
	assert.Contains(t, names, "stats")
	assert.Contains(t, names, "docs")
}

func TestRenderHelp(t *testing.T) {
	root := newRoot()
	root.Long = "Count words and transform text.\n\nExamples:\n# count a file\nwordpad stats notes.txt --json"

	var buf bytes.Buffer
	renderHelp(&buf, root, theme.New("terminal", false), 58)
	out := buf.String()

	assert.Contains(t, out, "WORDPAD")
	assert.Contains(t, out, "USAGE")
	assert.Contains(t, out, "COMMANDS")
	assert.Contains(t, out, "stats")
	assert.Contains(t, out, "EXAMPLES")
	assert.Contains(t, out, "# count a file")
	assert.Contains(t, out, "--metrics-addr")
}

func TestWrapText(t *testing.T) {
	wrapped := wrapText(strings.Repeat("word ", 20), 20)
	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), 20)
	}
	assert.Equal(t, "short\nlines", wrapText("short\nlines", 20))
}
