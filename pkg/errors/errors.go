// Package errors provides custom error types for the gamecat system.
// These errors enable programmatic error checking with errors.Is and
// errors.As while keeping user-facing messages short enough to render
// as a single line in the shell.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the gamecat system
var (
	// ErrNotFound indicates that no record satisfied a lookup
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidFormat indicates a file path with the wrong extension
	ErrInvalidFormat = errors.New("invalid format")

	// ErrEmptyCatalog indicates an aggregate was requested over zero entries
	ErrEmptyCatalog = errors.New("empty catalog")

	// ErrIO indicates a read or write failure against the filesystem
	ErrIO = errors.New("io failure")
)

// NotFoundError represents an extremal lookup that matched nothing
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("cannot determine %s: no matching entries", e.Resource)
	}
	return fmt.Sprintf("cannot determine %s: no entries match %s", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// FormatError represents a file whose extension does not match the
// expected tabular format.
type FormatError struct {
	Path     string
	Expected string
}

// Error implements the error interface
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid file path %q: expected a %s file", e.Path, e.Expected)
}

// Is implements errors.Is support
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// NewFormatError creates a new FormatError
func NewFormatError(path, expected string) *FormatError {
	return &FormatError{Path: path, Expected: expected}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// EmptyCatalogError is returned by aggregates that have no defined
// result over zero entries (average, fewest-per-group).
type EmptyCatalogError struct {
	Operation string
}

// Error implements the error interface
func (e *EmptyCatalogError) Error() string {
	return fmt.Sprintf("cannot determine %s: catalog is empty", e.Operation)
}

// Is implements errors.Is support
func (e *EmptyCatalogError) Is(target error) bool {
	return target == ErrEmptyCatalog
}

// NewEmptyCatalogError creates a new EmptyCatalogError
func NewEmptyCatalogError(operation string) *EmptyCatalogError {
	return &EmptyCatalogError{Operation: operation}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsFormatError checks if an error is a wrong-extension error
func IsFormatError(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}

// IsIOError checks if an error is a filesystem error
func IsIOError(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsEmptyCatalog checks if an error came from an aggregate over no entries
func IsEmptyCatalog(err error) bool {
	return errors.Is(err, ErrEmptyCatalog)
}

// IsCannotDetermine reports whether err means a query had no answer,
// either because nothing matched or because the catalog was empty.
func IsCannotDetermine(err error) bool {
	return IsNotFound(err) || IsEmptyCatalog(err)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}
