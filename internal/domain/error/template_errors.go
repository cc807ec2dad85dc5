// Package error defines domain-specific errors for the Budget Planner application.
package error

import "errors"

// Template domain errors.
var (
	// ErrTemplateNotFound is returned when a template is not found in the system.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidRecurrence is returned when a template carries a recurrence
	// kind the generator does not understand.
	ErrInvalidRecurrence = errors.New("invalid recurrence")

	// ErrMissingAnchor is returned when a template lacks the anchor field its
	// recurrence kind requires (day, month, weekday or explicit date).
	ErrMissingAnchor = errors.New("template is missing its recurrence anchor")
)

// TemplateErrorCode defines error codes for template errors.
// Format: TPL-XXYYYY where XX is category and YYYY is specific error.
type TemplateErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTemplateNotFound  TemplateErrorCode = "TPL-010001"
	ErrCodeInvalidRecurrence TemplateErrorCode = "TPL-010002"
	ErrCodeMissingAnchor     TemplateErrorCode = "TPL-010003"
)

// TemplateError represents a template error with code and message.
type TemplateError struct {
	Code    TemplateErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TemplateError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TemplateError) Unwrap() error {
	return e.Err
}

// NewTemplateError creates a new TemplateError with the given code and message.
func NewTemplateError(code TemplateErrorCode, message string, err error) *TemplateError {
	return &TemplateError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
