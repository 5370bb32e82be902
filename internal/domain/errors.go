package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
var (
	// ErrPaperNotFound indicates that no reference row matches the supplied paper code.
	ErrPaperNotFound = errors.New("paper not found")

	// ErrColumnNotFound indicates that the reference CSV is missing a required header column.
	ErrColumnNotFound = errors.New("column not found")

	// ErrReferenceUnavailable indicates that the reference registry could not be loaded.
	ErrReferenceUnavailable = errors.New("reference registry unavailable")

	// ErrInvalidInput indicates that the input data is invalid.
	ErrInvalidInput = errors.New("invalid input")
)

// PaperNotFoundError provides details about a paper code with no reference entry.
// It is recoverable: in debug mode the caller may downgrade it to a placeholder
// summary instead of failing the validation run.
type PaperNotFoundError struct {
	Paper string
}

// Error implements the error interface.
func (e *PaperNotFoundError) Error() string {
	return fmt.Sprintf("no entry for paper %q in the reference list", e.Paper)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *PaperNotFoundError) Unwrap() error {
	return ErrPaperNotFound
}

// ColumnNotFoundError reports a missing header column in the reference CSV.
// This is a configuration error: the whole validation run must abort.
type ColumnNotFoundError struct {
	Column string
}

// Error implements the error interface.
func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("could not identify %q column in the reference csv", e.Column)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *ColumnNotFoundError) Unwrap() error {
	return ErrColumnNotFound
}

// ValidationError represents a validation error for a specific field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewPaperNotFoundError creates a new PaperNotFoundError.
func NewPaperNotFoundError(paper string) *PaperNotFoundError {
	return &PaperNotFoundError{Paper: paper}
}

// NewColumnNotFoundError creates a new ColumnNotFoundError.
func NewColumnNotFoundError(column string) *ColumnNotFoundError {
	return &ColumnNotFoundError{Column: column}
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
