package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidDeviceContext is matched by every InvalidDeviceContextError through errors.Is.
var ErrInvalidDeviceContext = errors.New("invalid device context")

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures device catalogue validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InvalidDeviceContextError reports device metrics the layout resolver cannot accept.
// Callers are expected to keep rendering with a previous or default profile.
type InvalidDeviceContextError struct {
	Field   string
	Value   any
	Message string
}

// NewInvalidDeviceContextError constructs an InvalidDeviceContextError.
func NewInvalidDeviceContextError(field string, value any, message string) error {
	return &InvalidDeviceContextError{Field: field, Value: value, Message: message}
}

func (e *InvalidDeviceContextError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid device context: %s=%v: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid device context: %s", e.Message)
}

// Is reports whether target is ErrInvalidDeviceContext.
func (e *InvalidDeviceContextError) Is(target error) bool {
	return target == ErrInvalidDeviceContext
}
