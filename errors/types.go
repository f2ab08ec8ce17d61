package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Clipboard errors
	ErrCodeClipboardUnavailable ErrorCode = "CLIPBOARD_UNAVAILABLE"
	ErrCodeClipboardWrite       ErrorCode = "CLIPBOARD_WRITE_FAILED"

	// Input errors
	ErrCodeInputRead ErrorCode = "INPUT_READ_FAILED"
	ErrCodeWatch     ErrorCode = "WATCH_FAILED"

	// General errors
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// WordpadError represents a structured error with context
type WordpadError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *WordpadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *WordpadError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *WordpadError) WithDetail(key string, value interface{}) *WordpadError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *WordpadError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new WordpadError
func New(code ErrorCode, message string) *WordpadError {
	return &WordpadError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a WordpadError
func Wrap(err error, code ErrorCode, message string) *WordpadError {
	return &WordpadError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific WordpadError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	wpErr, ok := err.(*WordpadError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	if wpErr.Code == code {
		return true
	}
	// A coded error may itself wrap another coded error
	return wpErr.Cause != nil && Is(wpErr.Cause, code)
}

// GetCode extracts the outermost error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	wpErr, ok := err.(*WordpadError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return wpErr.Code
}

// As returns the outermost WordpadError in the chain, if any.
func As(err error) (*WordpadError, bool) {
	for err != nil {
		if wpErr, ok := err.(*WordpadError); ok {
			return wpErr, true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = unwrapper.Unwrap()
	}
	return nil, false
}
