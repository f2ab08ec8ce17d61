package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/grovetools/wordpad/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// isolate points XDG_CONFIG_HOME at an empty directory so a developer's
// global config cannot leak into tests.
func isolate(t *testing.T) string {
	t.Helper()
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	return xdg
}

func TestLoadFromBytesDefaults(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(""))
	require.NoError(t, err)

	assert.Equal(t, "1.0", cfg.Version)
	assert.Equal(t, "kanagawa", cfg.TUI.Theme)
	assert.Equal(t, "light", cfg.TUI.Mode)
	assert.Equal(t, DefaultToastDuration, cfg.ToastTimeout())
	assert.Equal(t, "auto", cfg.Clipboard.Backend)
	assert.Equal(t, 200, cfg.Stats.WordsPerMinute)
	assert.False(t, cfg.MarkdownPreviewEnabled())
}

func TestLoadFromBytesFullConfig(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`
version: "1.0"
tui:
  theme: gruvbox
  mode: dark
  toast_duration: 500ms
  markdown_preview: true
  keybindings:
    uppercase: ["ctrl+u"]
clipboard:
  backend: osc52
stats:
  words_per_minute: 250
metrics:
  addr: "127.0.0.1:9090"
`))
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.Equal(t, "dark", cfg.TUI.Mode)
	assert.Equal(t, 500*time.Millisecond, cfg.ToastTimeout())
	assert.True(t, cfg.MarkdownPreviewEnabled())
	assert.Equal(t, []string{"ctrl+u"}, cfg.TUI.Keybindings["uppercase"])
	assert.Equal(t, "osc52", cfg.Clipboard.Backend)
	assert.Equal(t, 250, cfg.Stats.WordsPerMinute)
	assert.Equal(t, "127.0.0.1:9090", cfg.Metrics.Addr)
}

func TestNonPositiveWordsPerMinuteFallsBack(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("stats:\n  words_per_minute: -5\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultWordsPerMinute, cfg.Stats.WordsPerMinute)
}

func TestExtensions(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`
logging:
  level: debug
  file:
    enabled: true
    path: /tmp/wordpad.log
`))
	require.NoError(t, err)
	require.Contains(t, cfg.Extensions, "logging")

	type fileSink struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	}
	type loggingConfig struct {
		Level string   `yaml:"level"`
		File  fileSink `yaml:"file"`
	}

	var logCfg loggingConfig
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "debug", logCfg.Level)
	assert.True(t, logCfg.File.Enabled)
	assert.Equal(t, "/tmp/wordpad.log", logCfg.File.Path)

	// Missing keys are not an error.
	var unknown loggingConfig
	require.NoError(t, cfg.UnmarshalExtension("unknown", &unknown))
	assert.Empty(t, unknown.Level)
}

func TestEnvVarExpansion(t *testing.T) {
	t.Setenv("WORDPAD_TEST_MODE", "dark")

	cfg, err := LoadFromBytes([]byte(`
tui:
  mode: ${WORDPAD_TEST_MODE}
  theme: ${WORDPAD_TEST_UNSET:-terminal}
`))
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.TUI.Mode)
	assert.Equal(t, "terminal", cfg.TUI.Theme)
}

func TestLoadFromBytesRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code errors.ErrorCode
	}{
		{"unknown mode", "tui:\n  mode: sepia\n", errors.ErrCodeConfigValidation},
		{"unknown theme", "tui:\n  theme: solarized\n", errors.ErrCodeConfigValidation},
		{"unknown tui key", "tui:\n  font: mono\n", errors.ErrCodeConfigValidation},
		{"unknown backend", "clipboard:\n  backend: pbcopy\n", errors.ErrCodeConfigValidation},
		{"bad toast duration", "tui:\n  toast_duration: soon\n", errors.ErrCodeConfigValidation},
		{"bad metrics addr", "metrics:\n  addr: nope\n", errors.ErrCodeConfigValidation},
		{"malformed yaml", "tui: [\n", errors.ErrCodeConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tt.yaml))
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
		})
	}
}

func TestLoadTOML(t *testing.T) {
	cfg, err := LoadFromTOMLBytes([]byte(`
[tui]
mode = "dark"
markdown_preview = true

[stats]
words_per_minute = 180

[logging]
level = "warn"
`))
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.TUI.Mode)
	assert.True(t, cfg.MarkdownPreviewEnabled())
	assert.Equal(t, 180, cfg.Stats.WordsPerMinute)

	var logCfg struct {
		Level string `yaml:"level"`
	}
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "warn", logCfg.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wordpad.toml")
	writeFile(t, path, "[clipboard]\nbackend = \"none\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "none", cfg.Clipboard.Backend)
}

func TestFindConfigFileWalksUp(t *testing.T) {
	isolate(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "wordpad.yml"), "version: \"1.0\"\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	path, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "wordpad.yml"), path)
}

func TestFindConfigFileNotFound(t *testing.T) {
	isolate(t)
	_, err := FindConfigFile(t.TempDir())
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigNotFound, errors.GetCode(err))
}

func TestLoadFromWithoutFilesReturnsDefaults(t *testing.T) {
	isolate(t)
	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLayeredMerge(t *testing.T) {
	xdg := isolate(t)
	writeFile(t, filepath.Join(xdg, "wordpad", "wordpad.yml"), `
tui:
  theme: gruvbox
  mode: dark
  keybindings:
    copy: ["ctrl+y"]
stats:
  words_per_minute: 150
logging:
  level: info
  report_caller: true
`)

	project := t.TempDir()
	writeFile(t, filepath.Join(project, "wordpad.yml"), `
tui:
  mode: light
  keybindings:
    clear: ["ctrl+k"]
logging:
  level: debug
`)
	writeFile(t, filepath.Join(project, "wordpad.override.yml"), `
stats:
  words_per_minute: 300
`)

	layered, err := LoadLayered(project)
	require.NoError(t, err)

	require.NotNil(t, layered.Global)
	require.NotNil(t, layered.Project)
	require.Len(t, layered.Overrides, 1)
	assert.Equal(t, filepath.Join(project, "wordpad.yml"), layered.FilePaths[SourceProject])

	final := layered.Final
	assert.Equal(t, "gruvbox", final.TUI.Theme, "global value survives")
	assert.Equal(t, "light", final.TUI.Mode, "project overrides global")
	assert.Equal(t, 300, final.Stats.WordsPerMinute, "override wins")
	assert.Equal(t, []string{"ctrl+y"}, final.TUI.Keybindings["copy"])
	assert.Equal(t, []string{"ctrl+k"}, final.TUI.Keybindings["clear"])

	var logCfg struct {
		Level        string `yaml:"level"`
		ReportCaller bool   `yaml:"report_caller"`
	}
	require.NoError(t, final.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "debug", logCfg.Level)
	assert.True(t, logCfg.ReportCaller, "extension maps merge key by key")
}

func TestBrokenProjectConfigFails(t *testing.T) {
	isolate(t)
	project := t.TempDir()
	writeFile(t, filepath.Join(project, "wordpad.yml"), "tui:\n  mode: sepia\n")

	_, err := LoadFrom(project)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigValidation, errors.GetCode(err))
}

func TestMergeConfigsMarkdownPreviewFalseOverrides(t *testing.T) {
	on, off := true, false
	base := &Config{TUI: TUIConfig{MarkdownPreview: &on}}
	merged := mergeConfigs(base, &Config{TUI: TUIConfig{MarkdownPreview: &off}})
	assert.False(t, merged.MarkdownPreviewEnabled())
	assert.True(t, base.MarkdownPreviewEnabled(), "base is not mutated")
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &schema))

	assert.Equal(t, "http://json-schema.org/draft-07/schema#", schema["$schema"])
	props, ok := schema["properties"].(map[string]interface{})
	require.True(t, ok)
	for _, key := range []string{"version", "tui", "clipboard", "stats", "metrics"} {
		assert.Contains(t, props, key)
	}
	assert.NotContains(t, schema, "additionalProperties", "extension keys are allowed at the top level")
	assert.NotContains(t, schema, "required")
}

func TestSchemaValidator(t *testing.T) {
	validator, err := NewSchemaValidator()
	require.NoError(t, err)

	assert.NoError(t, validator.Validate(map[string]interface{}{
		"tui":     map[string]interface{}{"mode": "dark"},
		"logging": map[string]interface{}{"level": "debug"},
	}))

	err = validator.Validate(map[string]interface{}{
		"stats": map[string]interface{}{"words_per_minute": "fast"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/stats/words_per_minute")
}
