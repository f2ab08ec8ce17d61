package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/grovetools/wordpad/config"
	"github.com/grovetools/wordpad/pkg/paths"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	// levelOverride, when set, wins over env and config for every logger.
	levelOverride *logrus.Level
)

// NewLogger creates and returns a pre-configured logger for a specific component.
// It uses a singleton pattern per component to avoid re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	// Load configuration from wordpad.yml; a missing file means defaults.
	var logCfg Config
	if cfg, err := config.LoadDefault(); err == nil {
		if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
			logrus.Warnf("Failed to parse 'logging' config: %v", err)
		}
	}

	entry := newLoggerFromConfig(component, logCfg)
	loggers[component] = entry
	return entry
}

// SetLevel changes the level of every logger created so far and of every
// logger created afterwards. Used by the --verbose flag.
func SetLevel(level logrus.Level) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	levelOverride = &level
	for _, entry := range loggers {
		entry.Logger.SetLevel(level)
	}
}

// newLoggerFromConfig builds a logger for component. Callers hold loggersMu.
func newLoggerFromConfig(component string, logCfg Config) *logrus.Entry {
	logger := logrus.New()

	// Configure Level
	levelStr := "info"
	if env := os.Getenv("WORDPAD_LOG_LEVEL"); env != "" {
		levelStr = env
	} else if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	if levelOverride != nil {
		level = *levelOverride
	}
	logger.SetLevel(level)

	// Configure Caller Reporting
	if os.Getenv("WORDPAD_LOG_CALLER") == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	// Configure Formatter
	switch logCfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{Config: logCfg.Format})
	}

	var writers []io.Writer

	// The file sink is opt-in: the TUI owns the terminal, so a file is the
	// only place interactive sessions can log to.
	if logCfg.File.Enabled {
		logFilePath := paths.Expand(logCfg.File.Path)
		if logFilePath == "" {
			logFilePath = defaultLogFilePath(component)
		}
		if w, err := openLogFile(logFilePath); err != nil {
			logger.Warnf("Failed to open log file %s: %v", logFilePath, err)
		} else {
			writers = append(writers, w)
		}
	}

	if shouldLogToStderr(logCfg.Format.StructuredToStderr, logger.GetLevel()) {
		writers = append(writers, GetGlobalOutput())
	}

	switch len(writers) {
	case 0:
		// Intentional in auto mode for interactive terminals.
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	return logger.WithField("component", component)
}

// shouldLogToStderr resolves the structured_to_stderr mode.
func shouldLogToStderr(mode string, level logrus.Level) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		// "auto": log to stderr when debugging or when stderr is not a terminal
		isDebug := os.Getenv("WORDPAD_DEBUG") == "1" || level >= logrus.DebugLevel
		isInteractive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
		return isDebug || !isInteractive
	}
}

func openLogFile(path string) (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// defaultLogFilePath returns <state dir>/<component>-<date>.log.
func defaultLogFilePath(component string) string {
	stateDir := paths.StateDir()
	if stateDir == "" {
		return ""
	}
	dateStr := time.Now().Format("2006-01-02")
	return filepath.Join(stateDir, fmt.Sprintf("%s-%s.log", component, dateStr))
}
