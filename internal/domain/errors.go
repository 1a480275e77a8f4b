package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports a violated checkout precondition. The message is
// one of the fixed strings surfaced to the sales counter; callers match on
// the type, not the text.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError wraps a fixed precondition message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// UnknownToolError reports a catalog miss for a tool code.
type UnknownToolError struct {
	Code ToolCode
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool code: %s", e.Code)
}

// IsUnknownToolError reports whether err is (or wraps) an UnknownToolError.
func IsUnknownToolError(err error) bool {
	var ute *UnknownToolError
	return errors.As(err, &ute)
}
