package project

import "fmt"

// ErrorType categorizes project-layer failures.
type ErrorType int

const (
	// UnknownType indicates an unrecognized project type tag.
	UnknownType ErrorType = iota
	// CommandFailed indicates an external command exited nonzero.
	CommandFailed
)

// Error is a project-layer failure carrying the failing command context.
type Error struct {
	Type    ErrorType
	Command string
	Dir     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewUnknownTypeError creates an error for an unrecognized project type.
func NewUnknownTypeError(tag string) *Error {
	return &Error{
		Type:    UnknownType,
		Message: fmt.Sprintf("unknown project type %q (expected cpp or python)", tag),
	}
}

// NewCommandError creates an error for a failed external command.
func NewCommandError(command, dir string, cause error) *Error {
	return &Error{
		Type:    CommandFailed,
		Command: command,
		Dir:     dir,
		Message: fmt.Sprintf("command %q failed in %s", command, dir),
		Cause:   cause,
	}
}
