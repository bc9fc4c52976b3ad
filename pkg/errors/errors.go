package errors

import (
	"fmt"
)

// ParseError represents a failure to parse external input such as a hex
// colour, a stored invoice blob, or a configuration file.
type ParseError struct {
	Input   string
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(input string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Input: input, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Input != "" {
		return fmt.Sprintf("parse error: %q: %s", e.Input, e.Message)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures invoice or configuration validation issues.
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

// RenderError represents a failure while assembling a document layout.
type RenderError struct {
	Variant string
	Err     error
}

// NewRenderError constructs a RenderError for the given layout variant.
func NewRenderError(variant string, err error) error {
	return &RenderError{Variant: variant, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Variant != "" {
		return fmt.Sprintf("render error on layout %s: %v", e.Variant, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StoreError indicates issues reading or writing the user data store.
type StoreError struct {
	Path    string
	Message string
	Err     error
}

// NewStoreError constructs a StoreError for the given store path.
func NewStoreError(path string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &StoreError{Path: path, Message: message, Err: err}
}

func (e *StoreError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("store error [%s]: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("store error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *StoreError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
