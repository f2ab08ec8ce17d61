package logging

// Config is the `logging` extension section of wordpad.yml.
//
//	logging:
//	  level: debug
//	  file:
//	    enabled: true
//	  format:
//	    preset: simple
type Config struct {
	// Level is a logrus level name. WORDPAD_LOG_LEVEL wins over it.
	Level string `yaml:"level"`
	// ReportCaller adds file:line and function to every entry. Also
	// enabled by WORDPAD_LOG_CALLER=true.
	ReportCaller bool           `yaml:"report_caller"`
	File         FileSinkConfig `yaml:"file"`
	Format       FormatConfig   `yaml:"format"`
}

// FileSinkConfig enables the log file. An empty Path means
// <state dir>/<component>-<date>.log; "~" and $VARS are expanded.
type FileSinkConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// FormatConfig selects the formatter.
type FormatConfig struct {
	Preset             string `yaml:"preset"` // default, simple or json
	DisableTimestamp   bool   `yaml:"disable_timestamp"`
	DisableComponent   bool   `yaml:"disable_component"`
	StructuredToStderr string `yaml:"structured_to_stderr"` // auto, always or never
}
