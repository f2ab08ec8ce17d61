package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggers(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		loggersMu.Lock()
		loggers = make(map[string]*logrus.Entry)
		levelOverride = nil
		loggersMu.Unlock()
	})
}

func TestNewLogger(t *testing.T) {
	resetLoggers(t)

	logger := NewLogger("test-component")
	require.NotNil(t, logger)
	assert.Equal(t, "test-component", logger.Data["component"])

	// Same component returns the cached entry
	assert.Same(t, logger, NewLogger("test-component"))
}

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name    string
		config  FormatConfig
		entry   *logrus.Entry
		want    []string
		notWant []string
	}{
		{
			name:   "default format",
			config: FormatConfig{},
			entry: &logrus.Entry{
				Level:   logrus.InfoLevel,
				Message: "dispatched",
				Data: logrus.Fields{
					"component": "wordpad-session",
					"action":    "toUppercase",
				},
			},
			want: []string{"[INFO]", "wordpad-session", "dispatched", "action=toUppercase"},
		},
		{
			name: "simple format",
			config: FormatConfig{
				DisableTimestamp: true,
				DisableComponent: true,
			},
			entry: &logrus.Entry{
				Level:   logrus.WarnLevel,
				Message: "clipboard write failed",
				Data: logrus.Fields{
					"component": "wordpad-session",
				},
			},
			want:    []string{"[WARN]", "clipboard write failed"},
			notWant: []string{"wordpad-session"},
		},
		{
			name:   "caller information with function name",
			config: FormatConfig{},
			entry: func() *logrus.Entry {
				logger := logrus.New()
				logger.SetReportCaller(true)
				return &logrus.Entry{
					Logger:  logger,
					Level:   logrus.InfoLevel,
					Message: "with caller",
					Data:    logrus.Fields{"component": "c"},
					Caller: &runtime.Frame{
						File:     "/path/to/store.go",
						Line:     42,
						Function: "github.com/grovetools/wordpad/pkg/session.(*Store).Dispatch",
					},
				}
			}(),
			want: []string{"[store.go:42 session.(*Store).Dispatch]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &TextFormatter{Config: tt.config}
			output, err := formatter.Format(tt.entry)
			require.NoError(t, err)

			for _, want := range tt.want {
				assert.Contains(t, string(output), want)
			}
			for _, notWant := range tt.notWant {
				assert.NotContains(t, string(output), notWant)
			}
		})
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	formatter := &TextFormatter{Config: FormatConfig{DisableTimestamp: true, DisableComponent: true}}
	out, err := formatter.Format(&logrus.Entry{
		Level:   logrus.InfoLevel,
		Message: "m",
		Data:    logrus.Fields{"zeta": 1, "alpha": 2, "mid": 3},
	})
	require.NoError(t, err)
	assert.Equal(t, "[INFO] m alpha=2 mid=3 zeta=1\n", string(out))
}

func TestEnvironmentVariables(t *testing.T) {
	resetLoggers(t)
	t.Setenv("WORDPAD_LOG_LEVEL", "debug")
	t.Setenv("WORDPAD_LOG_CALLER", "true")

	logger := NewLogger("env-test")
	assert.Equal(t, logrus.DebugLevel, logger.Logger.GetLevel())
	assert.True(t, logger.Logger.ReportCaller)
}

func TestSetLevelAppliesToAllLoggers(t *testing.T) {
	resetLoggers(t)
	t.Setenv("WORDPAD_LOG_LEVEL", "warn")

	before := NewLogger("before")
	SetLevel(logrus.DebugLevel)
	after := NewLogger("after")

	assert.Equal(t, logrus.DebugLevel, before.Logger.GetLevel())
	assert.Equal(t, logrus.DebugLevel, after.Logger.GetLevel())
}

func TestFileSink(t *testing.T) {
	resetLoggers(t)
	path := filepath.Join(t.TempDir(), "logs", "wordpad.log")

	loggersMu.Lock()
	entry := newLoggerFromConfig("file-test", Config{
		File:   FileSinkConfig{Enabled: true, Path: path},
		Format: FormatConfig{Preset: "simple", StructuredToStderr: "never"},
	})
	loggersMu.Unlock()

	entry.Info("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[INFO] written to file\n", string(data))
}

func TestJSONPreset(t *testing.T) {
	resetLoggers(t)
	var buf bytes.Buffer

	loggersMu.Lock()
	entry := newLoggerFromConfig("json-test", Config{Format: FormatConfig{Preset: "json", StructuredToStderr: "never"}})
	loggersMu.Unlock()
	entry.Logger.SetOutput(&buf)

	entry.Info("hello")
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
	assert.Contains(t, buf.String(), `"component":"json-test"`)
}

func TestGlobalOutputSwap(t *testing.T) {
	var buf bytes.Buffer
	prev := SetGlobalOutput(&buf)
	defer SetGlobalOutput(prev)

	_, err := GetGlobalOutput().Write([]byte("redirected"))
	require.NoError(t, err)
	assert.Equal(t, "redirected", buf.String())
}

func TestPrettyLoggerNotifies(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrettyLogger().WithWriter(&buf)

	p.NotifySuccess("Text copied to clipboard")
	p.NotifyFailure("Failed to copy text to clipboard: denied")

	out := buf.String()
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "Text copied to clipboard")
	assert.Contains(t, out, "✗")
	assert.Contains(t, out, "Failed to copy text to clipboard: denied")
}
