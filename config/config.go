package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grovetools/wordpad/errors"
	"github.com/grovetools/wordpad/pkg/paths"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// configNames lists project configuration file names in precedence order.
var configNames = []string{
	"wordpad.yml",
	"wordpad.yaml",
	".wordpad.yml",
	".wordpad.yaml",
	"wordpad.toml",
}

// overrideNames lists local override files looked up next to the project config.
var overrideNames = []string{
	"wordpad.override.yml",
	"wordpad.override.yaml",
	".wordpad.override.yml",
	".wordpad.override.yaml",
}

// Load reads and parses a single wordpad configuration file, applying
// defaults and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	if isTOML(path) {
		return LoadFromTOMLBytes(data)
	}
	return LoadFromBytes(data)
}

// LoadDefault finds and loads the configuration with hierarchical merging:
// 1. Global config (~/.config/wordpad/wordpad.yml) - base layer
// 2. Project config (wordpad.yml) - overrides global
// 3. Local override (wordpad.override.yml) - overrides all
//
// Every layer is optional; with no files at all the defaults are returned.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	return LoadFrom(cwd)
}

// LoadFrom loads configuration with hierarchical merging starting from the given directory
func LoadFrom(startDir string) (*Config, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return LoadFromWithLogger(startDir, logger)
}

// LoadFromWithLogger loads configuration with hierarchical merging and logging
func LoadFromWithLogger(startDir string, logger *logrus.Logger) (*Config, error) {
	layered, err := loadLayers(startDir, logger)
	if err != nil {
		return nil, err
	}

	if logger.IsLevelEnabled(logrus.DebugLevel) {
		if data, err := yaml.Marshal(layered.Final); err == nil {
			logger.Debugf("Merged configuration:\n%s", string(data))
		}
	}

	return layered.Final, nil
}

// LoadLayered finds and loads all configuration layers (global, project,
// overrides) and keeps them separate, together with the merged result.
func LoadLayered(startDir string) (*LayeredConfig, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return loadLayers(startDir, logger)
}

func loadLayers(startDir string, logger *logrus.Logger) (*LayeredConfig, error) {
	layered := &LayeredConfig{
		Default:   Default(),
		FilePaths: make(map[ConfigSource]string),
	}

	final := &Config{}

	// 1. Global config (optional). A broken global file is not fatal.
	if globalPath := getXDGConfigPath(); globalPath != "" {
		if _, err := os.Stat(globalPath); err == nil {
			logger.WithField("path", globalPath).Debug("Loading global configuration")
			globalCfg, err := readLayer(globalPath)
			if err != nil {
				logger.WithError(err).Warn("Failed to load global configuration, continuing without it")
			} else {
				layered.Global = globalCfg
				layered.FilePaths[SourceGlobal] = globalPath
				final = mergeConfigs(final, globalCfg)
			}
		}
	}

	// 2. Project config (optional here; FindConfigFile reports its absence).
	projectPath, err := FindConfigFile(startDir)
	if err == nil && projectPath != layered.FilePaths[SourceGlobal] {
		logger.WithField("path", projectPath).Debug("Loading project configuration")
		projectCfg, err := readLayer(projectPath)
		if err != nil {
			return nil, err
		}
		layered.Project = projectCfg
		layered.FilePaths[SourceProject] = projectPath
		final = mergeConfigs(final, projectCfg)

		// 3. Override files next to the project config (optional).
		projectDir := filepath.Dir(projectPath)
		for _, name := range overrideNames {
			overridePath := filepath.Join(projectDir, name)
			if _, err := os.Stat(overridePath); err != nil {
				continue
			}
			logger.WithField("path", overridePath).Debug("Loading local override configuration")
			overrideCfg, err := readLayer(overridePath)
			if err != nil {
				logger.WithError(err).Warn("Failed to parse override file, skipping")
				continue
			}
			layered.Overrides = append(layered.Overrides, OverrideSource{Path: overridePath, Config: overrideCfg})
			final = mergeConfigs(final, overrideCfg)
		}
		if len(layered.Overrides) > 0 {
			layered.FilePaths[SourceOverride] = layered.Overrides[len(layered.Overrides)-1].Path
		}
	}

	final.SetDefaults()
	if err := final.Validate(); err != nil {
		return nil, err
	}

	layered.Final = final
	return layered, nil
}

// readLayer reads one file, schema-checks it and decodes it without
// applying defaults.
func readLayer(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	var raw map[string]interface{}
	if isTOML(path) {
		raw, err = decodeTOML(data)
	} else {
		raw, err = decodeYAML(data)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse config file").
			WithDetail("path", path)
	}

	cfg, err := fromRaw(raw)
	if err != nil {
		if we, ok := errors.As(err); ok {
			return nil, we.WithDetail("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFromBytes parses YAML configuration from a byte array
func LoadFromBytes(data []byte) (*Config, error) {
	raw, err := decodeYAML(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML configuration")
	}
	return finish(raw)
}

// LoadFromTOMLBytes parses TOML configuration from a byte array
func LoadFromTOMLBytes(data []byte) (*Config, error) {
	raw, err := decodeTOML(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML configuration")
	}
	return finish(raw)
}

func finish(raw map[string]interface{}) (*Config, error) {
	cfg, err := fromRaw(raw)
	if err != nil {
		return nil, err
	}

	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// fromRaw validates a generic document against the schema and decodes it
// into a Config. Both YAML and TOML documents go through the same YAML
// decoding so that unknown keys land in Extensions either way.
func fromRaw(raw map[string]interface{}) (*Config, error) {
	if raw == nil {
		raw = map[string]interface{}{}
	}

	validator, err := NewSchemaValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create validator")
	}
	if err := validator.Validate(raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigValidation, "schema validation failed")
	}

	normalized, err := yaml.Marshal(raw)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to normalize configuration")
	}

	var cfg Config
	if err := yaml.Unmarshal(normalized, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode configuration")
	}
	return &cfg, nil
}

func decodeYAML(data []byte) (map[string]interface{}, error) {
	expanded := expandEnvVars(string(data))
	var raw map[string]interface{}
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func decodeTOML(data []byte) (map[string]interface{}, error) {
	expanded := expandEnvVars(string(data))
	var raw map[string]interface{}
	if err := toml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// FindConfigFile searches for wordpad configuration files from startDir up
// to the filesystem root, then falls back to the XDG config directory.
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if xdgConfigPath := getXDGConfigPath(); xdgConfigPath != "" {
		if info, err := os.Stat(xdgConfigPath); err == nil && !info.IsDir() {
			return xdgConfigPath, nil
		}
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searchPath", startDir)
}

// expandEnvVars replaces ${VAR} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}

// getXDGConfigPath returns the global config path for wordpad
func getXDGConfigPath() string {
	return paths.GlobalConfigFile()
}
