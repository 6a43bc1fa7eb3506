package output

import "errors"

// Exit codes:
// 0 = Success
// 1 = User error (bad args, declined confirmation)
// 2 = System error (I/O failure on a stream)
// 3 = Unsupported environment (interactive prompt without a terminal)
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
	ExitUnsupported = 3
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// ErrNotInteractive is returned by the interactive operations when the
// output stream is not attached to a terminal. It is recoverable: callers
// decide whether to fall back or give up.
var ErrNotInteractive = &ExitError{
	Code:    ExitUnsupported,
	Message: "interactive prompts require a terminal",
}

// NewUserError creates an error for user-caused issues (exit code 1).
// Use for: bad arguments, declined confirmations.
func NewUserError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
	}
}

// NewSystemError creates an error for system failures (exit code 2).
// Use for: read/write failures on the standard streams.
func NewSystemError(message string) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
	}
}

// NewSystemErrorWithCause creates a system error wrapping an underlying cause.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
		Cause:   cause,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUserError for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Default to user error for untyped errors
	return ExitUserError
}
