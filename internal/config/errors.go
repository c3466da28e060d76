package config

import "fmt"

// ErrorType represents the type of configuration error.
type ErrorType int

const (
	// NotFound indicates the configuration file was not found.
	NotFound ErrorType = iota
	// Invalid indicates the configuration file has invalid syntax.
	Invalid
	// TypeMismatch indicates a parameter value does not match its declared type.
	TypeMismatch
	// MissingRequired indicates a required parameter has no value and no default.
	MissingRequired
	// UnresolvedReference indicates a "parameter:" default points at an
	// undeclared parameter.
	UnresolvedReference
)

// Error represents a configuration-related error. Validation errors surface
// before any file I/O begins.
type Error struct {
	// Type is the error type.
	Type ErrorType
	// File is the configuration file path, when file-related.
	File string
	// Param is the offending parameter name, when parameter-related.
	Param string
	// Message is the error message.
	Message string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Param != "" && e.Cause != nil:
		return fmt.Sprintf("configuration error [parameter: %s]: %s: %v", e.Param, e.Message, e.Cause)
	case e.Param != "":
		return fmt.Sprintf("configuration error [parameter: %s]: %s", e.Param, e.Message)
	case e.File != "" && e.Cause != nil:
		return fmt.Sprintf("configuration error in %s: %s: %v", e.File, e.Message, e.Cause)
	case e.File != "":
		return fmt.Sprintf("configuration error in %s: %s", e.File, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("configuration error: %s: %v", e.Message, e.Cause)
	default:
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
}

// Unwrap returns the underlying cause error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewFileError creates a file-level configuration error.
func NewFileError(typ ErrorType, file, message string, cause error) *Error {
	return &Error{
		Type:    typ,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// NewTypeMismatchError creates a TypeMismatch error identifying the
// parameter, the declared type, and the actual value.
func NewTypeMismatchError(param string, expected interface{}, actual interface{}) *Error {
	return &Error{
		Type:  TypeMismatch,
		Param: param,
		Message: fmt.Sprintf("type mismatch\n... expected type: %v\n... actual value : %#v",
			expected, actual),
	}
}

// NewMissingRequiredError creates a MissingRequired error naming the parameter.
func NewMissingRequiredError(param string) *Error {
	return &Error{
		Type:    MissingRequired,
		Param:   param,
		Message: "missing required config parameter",
	}
}

// NewUnresolvedReferenceError creates an UnresolvedReference error.
func NewUnresolvedReferenceError(param, target string) *Error {
	return &Error{
		Type:    UnresolvedReference,
		Param:   param,
		Message: fmt.Sprintf("default references undeclared parameter %q", target),
	}
}
