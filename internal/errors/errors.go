package errors

import (
	"fmt"
)

// LintError is the structured error type for polint.
// It provides context for error handling, logging, and user presentation.
type LintError struct {
	// Code is the unique error code (e.g., "ERR_301_TOOL_MISSING").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Tool, ...).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *LintError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *LintError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with LintError.
func (e *LintError) Is(target error) bool {
	if t, ok := target.(*LintError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *LintError) WithDetail(key, value string) *LintError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
// Returns the error for method chaining.
func (e *LintError) WithSuggestion(suggestion string) *LintError {
	e.Suggestion = suggestion
	return e
}

// New creates a new LintError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *LintError {
	return &LintError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a LintError from an existing error.
// The error's message becomes the LintError message.
func Wrap(code string, err error) *LintError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ToolMissing reports that a required external program is not installed.
func ToolMissing(program string) *LintError {
	return New(ErrCodeToolMissing, fmt.Sprintf("required program %q not found in PATH", program), nil).
		WithDetail("program", program).
		WithSuggestion(fmt.Sprintf("install %s and re-run", program))
}

// ToolFailed reports a non-zero exit from an external program, carrying
// its captured error stream.
func ToolFailed(program, stderr string, cause error) *LintError {
	return New(ErrCodeToolFailed, fmt.Sprintf("%s failed: %s", program, stderr), cause).
		WithDetail("program", program).
		WithDetail("stderr", stderr)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *LintError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// IsFatal reports whether err should abort the run immediately.
func IsFatal(err error) bool {
	if e, ok := err.(*LintError); ok {
		return e.Severity == SeverityFatal
	}
	return false
}
