// Package errors provides a lightweight structured error type (ViewpackError)
// for category-based classification and exit code mapping in the CLI.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCategory represents the category of a viewpack error for classification
type ErrorCategory string

const (
	// User-facing input errors
	CategoryValidation ErrorCategory = "validation"

	// Materialization errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryArchive    ErrorCategory = "archive"

	// Programming errors
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal ErrorSeverity = "fatal" // Stops execution
)

// ViewpackError is a structured error with category, severity, and context
type ViewpackError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for ViewpackError
type ContextFields map[string]any

// Error implements the error interface
func (e *ViewpackError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *ViewpackError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *ViewpackError) WithContext(key string, value any) *ViewpackError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new ViewpackError
func New(category ErrorCategory, severity ErrorSeverity, message string) *ViewpackError {
	return &ViewpackError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new ViewpackError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *ViewpackError {
	return &ViewpackError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As finds the first ViewpackError in err's chain.
func As(err error) (*ViewpackError, bool) {
	var vpe *ViewpackError
	if stdErrors.As(err, &vpe) {
		return vpe, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if vpe, ok := As(err); ok {
		return vpe.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a ViewpackError
func GetCategory(err error) ErrorCategory {
	if vpe, ok := As(err); ok {
		return vpe.Category
	}
	return CategoryInternal
}
