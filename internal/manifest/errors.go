package manifest

import "fmt"

// ErrorType represents the type of manifest error.
type ErrorType int

const (
	// NotFound indicates the manifest file was not found.
	NotFound ErrorType = iota
	// Invalid indicates the manifest has invalid syntax or structure.
	Invalid
	// ValidationFailed indicates manifest validation failed.
	ValidationFailed
)

// Error represents a manifest-related error. Manifest errors are always
// fatal: a malformed manifest aborts the run before any file I/O.
type Error struct {
	// Type is the error type.
	Type ErrorType
	// File is the manifest file path.
	File string
	// Section is the manifest section that caused the error.
	Section string
	// Message is the error message.
	Message string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Section != "" {
		if e.Cause != nil {
			return fmt.Sprintf("manifest error in %s [section: %s]: %s: %v", e.File, e.Section, e.Message, e.Cause)
		}
		return fmt.Sprintf("manifest error in %s [section: %s]: %s", e.File, e.Section, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("manifest error in %s: %s: %v", e.File, e.Message, e.Cause)
	}
	return fmt.Sprintf("manifest error in %s: %s", e.File, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new manifest Error.
func NewError(typ ErrorType, file, message string) *Error {
	return &Error{
		Type:    typ,
		File:    file,
		Message: message,
	}
}

// NewErrorWithSection creates a new manifest Error with a section name.
func NewErrorWithSection(typ ErrorType, file, section, message string) *Error {
	return &Error{
		Type:    typ,
		File:    file,
		Section: section,
		Message: message,
	}
}

// NewErrorWithCause creates a new manifest Error with a cause.
func NewErrorWithCause(typ ErrorType, file, message string, cause error) *Error {
	return &Error{
		Type:    typ,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}
