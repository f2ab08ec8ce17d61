package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *WordpadError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *WordpadError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// ClipboardUnavailable reports that no clipboard backend could be reached.
func ClipboardUnavailable(backend string) *WordpadError {
	return New(ErrCodeClipboardUnavailable,
		fmt.Sprintf("clipboard backend '%s' is not available", backend)).
		WithDetail("backend", backend)
}

// ClipboardWriteFailed wraps a failed clipboard write.
func ClipboardWriteFailed(backend string, err error) *WordpadError {
	return Wrap(err, ErrCodeClipboardWrite, "failed to write to clipboard").
		WithDetail("backend", backend)
}

// InputReadFailed wraps a failure to read input text from a file or stdin.
func InputReadFailed(source string, err error) *WordpadError {
	return Wrap(err, ErrCodeInputRead, fmt.Sprintf("failed to read input from %s", source)).
		WithDetail("source", source)
}

// InvalidInput creates an invalid input error
func InvalidInput(reason string) *WordpadError {
	return New(ErrCodeInvalidInput, reason)
}

// WatchFailed wraps a failure to follow a file for changes.
func WatchFailed(path string, err error) *WordpadError {
	return Wrap(err, ErrCodeWatch, fmt.Sprintf("failed to watch %s", path)).
		WithDetail("path", path)
}
