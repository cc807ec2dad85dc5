// Package error defines domain-specific errors for the Budget Planner application.
package error

import "errors"

// Instance domain errors.
var (
	// ErrInstanceNotFound is returned when an instance is not found in the system.
	ErrInstanceNotFound = errors.New("instance not found")

	// ErrInstanceAlreadySettled is returned when a manual transition targets
	// an instance that is already paid or deferred.
	ErrInstanceAlreadySettled = errors.New("instance already settled")

	// ErrInstanceNotSettled is returned when reopening an instance that is
	// neither paid nor deferred.
	ErrInstanceNotSettled = errors.New("instance is not settled")

	// ErrInvalidInstanceKind is returned when the instance kind is invalid.
	ErrInvalidInstanceKind = errors.New("invalid instance kind")

	// ErrInvalidDueDay is returned when the due day is outside 1-31.
	ErrInvalidDueDay = errors.New("due day must be between 1 and 31")

	// ErrInvalidInstanceAmount is returned when the instance amount is invalid.
	ErrInvalidInstanceAmount = errors.New("invalid instance amount")
)

// InstanceErrorCode defines error codes for instance errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InstanceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInstanceNotFound       InstanceErrorCode = "INS-010001"
	ErrCodeInstanceAlreadySettled InstanceErrorCode = "INS-010002"
	ErrCodeInstanceNotSettled     InstanceErrorCode = "INS-010003"
	ErrCodeInvalidInstanceKind    InstanceErrorCode = "INS-010004"
	ErrCodeInvalidDueDay          InstanceErrorCode = "INS-010005"
	ErrCodeInvalidInstanceAmount  InstanceErrorCode = "INS-010006"
	ErrCodeMissingInstanceFields  InstanceErrorCode = "INS-010007"
)

// InstanceError represents an instance error with code and message.
type InstanceError struct {
	Code    InstanceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InstanceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InstanceError) Unwrap() error {
	return e.Err
}

// NewInstanceError creates a new InstanceError with the given code and message.
func NewInstanceError(code InstanceErrorCode, message string, err error) *InstanceError {
	return &InstanceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
