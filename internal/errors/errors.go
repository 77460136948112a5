// Package errors provides the error taxonomy for modgen.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrManifestLoad indicates the project manifest is missing or corrupt.
	ErrManifestLoad = errors.New("manifest load failed")

	// ErrManifestPersist indicates the project manifest could not be written.
	ErrManifestPersist = errors.New("manifest persist failed")

	// ErrManifestMutation indicates a group or file could not be registered
	// in the in-memory manifest.
	ErrManifestMutation = errors.New("manifest mutation failed")

	// ErrRender indicates a template file could not be turned into content.
	ErrRender = errors.New("render failed")

	// ErrWrite indicates a filesystem create or write failure.
	ErrWrite = errors.New("write failed")

	// ErrValidation indicates invalid input such as a bad template.yaml or flag.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a template, project file, or manifest was not found.
	ErrNotFound = errors.New("not found")
)

// Exit codes.
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitValidationError = 2
	ExitNotFound        = 5
	ExitManifestError   = 7
	ExitRenderError     = 8
	ExitWriteError      = 9
)

// ExitError carries a process exit code along with the error that caused it.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is set when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFor classifies an error into an exit code using the sentinel taxonomy.
func ExitCodeFor(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrManifestLoad),
		errors.Is(err, ErrManifestPersist),
		errors.Is(err, ErrManifestMutation):
		return ExitManifestError
	case errors.Is(err, ErrRender):
		return ExitRenderError
	case errors.Is(err, ErrWrite):
		return ExitWriteError
	default:
		return ExitGeneralError
	}
}

// DetailError captures structured error information for display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path involved (optional).
	Location string

	// Field is the offending field name (optional).
	Field string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// Wrapf annotates cause with a message and tags it with sentinel so that both
// errors.Is(err, sentinel) and errors.Is(err, cause) hold. A cause already
// tagged with sentinel is only annotated.
func Wrapf(sentinel, cause error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if errors.Is(cause, sentinel) {
		return fmt.Errorf("%s: %w", msg, cause)
	}
	return fmt.Errorf("%s: %w: %w", msg, sentinel, cause)
}
