package app

import "fmt"

// ErrorType categorizes workflow failures.
type ErrorType int

const (
	// InvalidProjectType indicates a missing or unrecognized project type tag.
	InvalidProjectType ErrorType = iota
	// SourceMissing indicates the project-type data directory is absent.
	SourceMissing
	// ConfigExists indicates forge.toml already exists and Force was not set.
	ConfigExists
	// ConfigFailed indicates forge.toml could not be created or resolved.
	ConfigFailed
	// GenerateFailed indicates the generation pass failed.
	GenerateFailed
	// CommandsFailed indicates a post-generation command batch failed.
	CommandsFailed
	// CopyrightFailed indicates the copyright refresh failed.
	CopyrightFailed
)

// AppError is a workflow-level failure.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a workflow error.
func NewAppError(typ ErrorType, message string, cause error) *AppError {
	return &AppError{Type: typ, Message: message, Cause: cause}
}
