package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/wordpad/errors"
	"github.com/grovetools/wordpad/tui/theme"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates an error handler writing to stderr.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message and a hint for err based on its code, and
// returns err unchanged.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	fail := theme.IconError + " "
	wpErr, _ := errors.As(err)

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.Out, "%sConfiguration not found: %s\n", fail, detail(wpErr, "path"))
		fmt.Fprintf(h.Out, "Create a wordpad.yml or pass --config with an existing file.\n")

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		fmt.Fprintf(h.Out, "%sInvalid configuration: %s\n", fail, wpErr.Message)
		fmt.Fprintf(h.Out, "Run 'wordpad config validate' to see every problem.\n")

	case errors.ErrCodeClipboardUnavailable:
		fmt.Fprintf(h.Out, "%sNo clipboard is available (backend %s).\n", fail, detail(wpErr, "backend"))
		fmt.Fprintf(h.Out, "Install xclip, xsel or wl-clipboard, or set clipboard.backend to osc52.\n")

	case errors.ErrCodeInputRead:
		fmt.Fprintf(h.Out, "%sCould not read input from %s\n", fail, detail(wpErr, "source"))

	case errors.ErrCodeWatch:
		fmt.Fprintf(h.Out, "%sCould not follow %s for changes\n", fail, detail(wpErr, "path"))

	case errors.ErrCodeInvalidInput:
		fmt.Fprintf(h.Out, "%s%s\n", fail, wpErr.Message)

	default:
		fmt.Fprintf(h.Out, "%sError: %v\n", fail, err)
	}

	if h.Verbose && wpErr != nil {
		fmt.Fprintf(h.Out, "\nError details:\n%s\n", wpErr.ToJSON())
	}
	return err
}

func detail(err *errors.WordpadError, key string) interface{} {
	if err == nil || err.Details == nil {
		return "unknown"
	}
	if v, ok := err.Details[key]; ok {
		return v
	}
	return "unknown"
}
