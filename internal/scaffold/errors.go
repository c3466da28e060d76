package scaffold

import "fmt"

// ErrorType represents the type of scaffolding error.
type ErrorType int

const (
	// FatalConfig indicates a malformed directive that aborts the run,
	// such as a glob in a 'to' pattern.
	FatalConfig ErrorType = iota
	// MissingSource indicates the source data directory does not exist.
	MissingSource
	// IOFailed indicates a filesystem read or write failed. Fatal for the
	// affected file; earlier writes stay on disk.
	IOFailed
	// RenderFailed indicates template rendering failed.
	RenderFailed
)

// Error represents a scaffolding error with enough context to locate the
// offending manifest entry or file.
type Error struct {
	// Type is the error type.
	Type ErrorType
	// Path is the file or pattern involved.
	Path string
	// Message is the error message.
	Message string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Path)
}

// Unwrap returns the underlying cause error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new scaffolding Error.
func NewError(typ ErrorType, path, message string, cause error) *Error {
	return &Error{
		Type:    typ,
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}
