// Package output provides structured output and error handling for the git-home CLI.
package output

import "errors"

// Exit codes. The usage and I/O codes follow sysexits(3):
// 0  = Success, or the user declined an optional action
// 1  = Environment problem or an action aborted by the user
// 64 = Usage error (missing arguments, unknown command, path outside $HOME)
// 74 = Backend failure (store open/init, index write, commit creation)
const (
	ExitSuccess = 0
	ExitAborted = 1
	ExitUsage   = 64
	ExitBackend = 74
)

// ExitError is an error that carries an exit code for the CLI.
//
// Usage, when set, is printed before the message so the user sees how the
// command is meant to be called. Silent errors only carry a status code
// (a forwarded child process exit status) and print nothing.
type ExitError struct {
	Code    int
	Message string
	Usage   string
	Silent  bool
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

// NewUsageError creates an error for malformed or missing arguments (exit code 64).
// usage is the command-specific help text, may be empty.
func NewUsageError(message, usage string) *ExitError {
	return &ExitError{
		Code:    ExitUsage,
		Message: message,
		Usage:   usage,
	}
}

// NewScopeError creates an error for paths outside the invoking user's home (exit code 64).
func NewScopeError(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitUsage,
		Message: message,
		Cause:   cause,
	}
}

// NewEnvironmentError creates an error for a missing required environment value (exit code 1).
func NewEnvironmentError(message string) *ExitError {
	return &ExitError{
		Code:    ExitAborted,
		Message: message,
	}
}

// NewAbortedError creates an error for an action the user declined or aborted.
// code is ExitSuccess or ExitAborted depending on whether the abort is an error.
func NewAbortedError(message string, code int) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
	}
}

// NewBackendError creates an error for version-control backend failures (exit code 74).
func NewBackendError(message string) *ExitError {
	return &ExitError{
		Code:    ExitBackend,
		Message: message,
	}
}

// NewBackendErrorWithCause creates a backend error wrapping an underlying cause.
func NewBackendErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitBackend,
		Message: message,
		Cause:   cause,
	}
}

// NewExitStatus creates a silent error that only relays an exit status.
func NewExitStatus(code int) *ExitError {
	return &ExitError{
		Code:   code,
		Silent: true,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitBackend for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Anything unclassified escaped from the engine or the OS.
	return ExitBackend
}
