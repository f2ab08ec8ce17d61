package config

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

const (
	// DefaultToastDuration is how long a TUI notification stays visible.
	DefaultToastDuration = 2 * time.Second

	// DefaultWordsPerMinute is the reading speed used for reading-time estimates.
	DefaultWordsPerMinute = 200

	DefaultIcons            = "ascii"
	DefaultTheme            = "kanagawa"
	DefaultMode             = "light"
	DefaultClipboardBackend = "auto"
)

// KeybindingsConfig maps an editor action name (e.g. "uppercase", "copy",
// "toggle_theme") to the list of keys bound to it.
type KeybindingsConfig map[string][]string

// TUIConfig holds TUI-specific settings.
type TUIConfig struct {
	Icons           string            `yaml:"icons,omitempty" toml:"icons,omitempty" json:"icons,omitempty" jsonschema:"description=Icon set to use: nerd or ascii,enum=nerd,enum=ascii"`
	Theme           string            `yaml:"theme,omitempty" toml:"theme,omitempty" json:"theme,omitempty" jsonschema:"description=Color theme for terminal interfaces,enum=kanagawa,enum=gruvbox,enum=terminal"`
	Mode            string            `yaml:"mode,omitempty" toml:"mode,omitempty" json:"mode,omitempty" jsonschema:"description=Initial display mode,enum=light,enum=dark"`
	ToastDuration   string            `yaml:"toast_duration,omitempty" toml:"toast_duration,omitempty" json:"toast_duration,omitempty" jsonschema:"description=How long notifications stay visible (Go duration; default: 2s)"`
	MarkdownPreview *bool             `yaml:"markdown_preview,omitempty" toml:"markdown_preview,omitempty" json:"markdown_preview,omitempty" jsonschema:"description=Render the preview pane as markdown"`
	Keybindings     KeybindingsConfig `yaml:"keybindings,omitempty" toml:"keybindings,omitempty" json:"keybindings,omitempty" jsonschema:"description=Custom keybinding overrides keyed by action name"`
}

// ClipboardConfig selects the clipboard backend.
type ClipboardConfig struct {
	Backend string `yaml:"backend,omitempty" toml:"backend,omitempty" json:"backend,omitempty" jsonschema:"description=Clipboard backend (auto tries system then osc52),enum=auto,enum=system,enum=osc52,enum=none"`
}

// StatsConfig tunes the derived text statistics.
type StatsConfig struct {
	WordsPerMinute int `yaml:"words_per_minute,omitempty" toml:"words_per_minute,omitempty" json:"words_per_minute,omitempty" jsonschema:"description=Reading speed used for reading time (default: 200)"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Addr string `yaml:"addr,omitempty" toml:"addr,omitempty" json:"addr,omitempty" jsonschema:"description=Listen address for /metrics and /healthz (disabled when empty)"`
}

// Config represents the wordpad.yml configuration
type Config struct {
	Version   string          `yaml:"version,omitempty" toml:"version,omitempty" json:"version,omitempty" jsonschema:"description=Configuration version (e.g. 1.0)"`
	TUI       TUIConfig       `yaml:"tui,omitempty" toml:"tui,omitempty" json:"tui,omitempty" jsonschema:"description=TUI appearance and behavior settings"`
	Clipboard ClipboardConfig `yaml:"clipboard,omitempty" toml:"clipboard,omitempty" json:"clipboard,omitempty" jsonschema:"description=Clipboard settings"`
	Stats     StatsConfig     `yaml:"stats,omitempty" toml:"stats,omitempty" json:"stats,omitempty" jsonschema:"description=Text statistics settings"`
	Metrics   MetricsConfig   `yaml:"metrics,omitempty" toml:"metrics,omitempty" json:"metrics,omitempty" jsonschema:"description=Prometheus metrics settings"`

	// Extensions captures all other top-level keys (for example "logging").
	Extensions map[string]interface{} `yaml:",inline" toml:"-" json:"extensions,omitempty" jsonschema:"-"`
}

// SetDefaults sets default values for configuration
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.TUI.Icons == "" {
		c.TUI.Icons = DefaultIcons
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = DefaultTheme
	}
	if c.TUI.Mode == "" {
		c.TUI.Mode = DefaultMode
	}
	if c.TUI.ToastDuration == "" {
		c.TUI.ToastDuration = DefaultToastDuration.String()
	}
	if c.Clipboard.Backend == "" {
		c.Clipboard.Backend = DefaultClipboardBackend
	}
	if c.Stats.WordsPerMinute <= 0 {
		c.Stats.WordsPerMinute = DefaultWordsPerMinute
	}
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// ToastTimeout parses tui.toast_duration, falling back to the default.
func (c *Config) ToastTimeout() time.Duration {
	d, err := time.ParseDuration(c.TUI.ToastDuration)
	if err != nil || d <= 0 {
		return DefaultToastDuration
	}
	return d
}

// MarkdownPreviewEnabled reports whether the preview starts in markdown mode.
func (c *Config) MarkdownPreviewEnabled() bool {
	return c.TUI.MarkdownPreview != nil && *c.TUI.MarkdownPreview
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded wordpad.yml into the provided target struct. The target must be a
// pointer. A missing key leaves the target untouched.
//
// Example:
//
//	var logCfg logging.Config
//	if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil { ... }
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}

// ConfigSource identifies a configuration layer.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceGlobal   ConfigSource = "global"
	SourceProject  ConfigSource = "project"
	SourceOverride ConfigSource = "override"
)

// OverrideSource is one override file and its parsed contents.
type OverrideSource struct {
	Path   string
	Config *Config
}

// LayeredConfig keeps every configuration layer separately, plus the merged
// result, for `wordpad config show --layers`.
type LayeredConfig struct {
	Default   *Config
	Global    *Config
	Project   *Config
	Overrides []OverrideSource
	Final     *Config
	FilePaths map[ConfigSource]string
}
