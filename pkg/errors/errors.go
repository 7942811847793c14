// Package errors provides custom error types for the teammap system.
// These errors enable programmatic error checking and carry enough
// context to report which document and which expectation failed.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the teammap system
var (
	// ErrNotFound indicates that an expected input document is absent
	ErrNotFound = errors.New("not found")

	// ErrMalformed indicates that a document is not parseable as structured data
	ErrMalformed = errors.New("malformed document")

	// ErrSchema indicates that a required key is missing or has the wrong shape
	ErrSchema = errors.New("schema violation")

	// ErrWrite indicates that an output document cannot be persisted
	ErrWrite = errors.New("write failed")

	// ErrInvalidMembers indicates that validation found members outside the roster
	ErrInvalidMembers = errors.New("invalid members found")
)

// NotFoundError represents an error when an expected input file is absent
type NotFoundError struct {
	Resource string
	Path     string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s not found at %s", e.Resource, e.Path)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, path string) *NotFoundError {
	return &NotFoundError{Resource: resource, Path: path}
}

// ParseError represents an error when parsing a structured document
type ParseError struct {
	Format   string // "yaml", "json"
	Document string
	Message  string
	Err      error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Document != "" {
		return fmt.Sprintf("parse error in %s document %s: %s", e.Format, e.Document, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}

// NewParseError creates a new ParseError
func NewParseError(format, document, message string, err error) *ParseError {
	return &ParseError{
		Format:   format,
		Document: document,
		Message:  message,
		Err:      err,
	}
}

// SchemaError represents a required key that is missing or has the wrong shape
type SchemaError struct {
	Document string
	Key      string
	Message  string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("schema error in %s: key %q %s", e.Document, e.Key, e.Message)
	}
	return fmt.Sprintf("schema error in %s: %s", e.Document, e.Message)
}

// Is implements errors.Is support
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(document, key, message string) *SchemaError {
	return &SchemaError{Document: document, Key: key, Message: message}
}

// WriteError represents an error while persisting an output document
type WriteError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *WriteError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("write error for %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("write error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsMalformed checks if an error is a parse error
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformed)
}

// IsSchema checks if an error is a schema error
func IsSchema(err error) bool {
	return errors.Is(err, ErrSchema)
}

// IsWrite checks if an error is a write error
func IsWrite(err error) bool {
	return errors.Is(err, ErrWrite)
}

// Helper wrapping functions for common patterns

// WrapParse wraps an error as a ParseError
func WrapParse(format, document string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, document, err.Error(), err)
}

// WrapWrite wraps an error as a WriteError
func WrapWrite(path string, err error) error {
	if err == nil {
		return nil
	}
	return &WriteError{Path: path, Message: err.Error(), Err: err}
}
