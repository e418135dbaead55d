// Package errors provides structured error handling for polint.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: IO errors (catalog files)
//   - 3XX: External tool errors
//   - 4XX: Validation errors
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates catalog file I/O errors.
	CategoryIO Category = "IO"
	// CategoryTool indicates external tool errors.
	CategoryTool Category = "TOOL"
	// CategoryValidation indicates input validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates an unrecoverable error, the run must abort.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates the operation failed but the run can continue.
	SeverityError Severity = "ERROR"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigInvalid = "ERR_101_CONFIG_INVALID"

	// IO errors (200-299)
	ErrCodeFileNotFound = "ERR_201_FILE_NOT_FOUND"
	ErrCodeParseFailed  = "ERR_202_PARSE_FAILED"
	ErrCodeWriteFailed  = "ERR_203_WRITE_FAILED"

	// External tool errors (300-399)
	ErrCodeToolMissing = "ERR_301_TOOL_MISSING"
	ErrCodeToolFailed  = "ERR_302_TOOL_FAILED"

	// Validation errors (400-499)
	ErrCodeInvalidInput = "ERR_401_INVALID_INPUT"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
)

// categoryFromCode extracts the category from an error code.
func categoryFromCode(code string) Category {
	if len(code) < 5 {
		return CategoryInternal
	}
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	case '3':
		return CategoryTool
	case '4':
		return CategoryValidation
	default:
		return CategoryInternal
	}
}

// severityFromCode derives the severity from an error code. Missing tool
// and broken configuration abort a run before any work starts.
func severityFromCode(code string) Severity {
	if code == ErrCodeToolMissing || code == ErrCodeConfigInvalid {
		return SeverityFatal
	}
	return SeverityError
}
