// Package error defines domain-specific errors for the Budget Planner application.
package error

import "errors"

// Month key domain errors.
var (
	// ErrInvalidMonthKey is returned when a month key is not in YYYY-MM form.
	// Malformed keys are rejected before any storage access.
	ErrInvalidMonthKey = errors.New("invalid month key")

	// ErrNotCurrentMonth is returned when a current-month-only operation is
	// requested for a past or future month.
	ErrNotCurrentMonth = errors.New("operation only applies to the current month")
)

// MonthErrorCode defines error codes for month-scoped operations.
// Format: MON-XXYYYY where XX is category and YYYY is specific error.
type MonthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonthKey MonthErrorCode = "MON-010001"
	ErrCodeNotCurrentMonth MonthErrorCode = "MON-010002"
)

// MonthError represents a month-scoped error with code and message.
type MonthError struct {
	Code    MonthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MonthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MonthError) Unwrap() error {
	return e.Err
}

// NewMonthError creates a new MonthError with the given code and message.
func NewMonthError(code MonthErrorCode, message string, err error) *MonthError {
	return &MonthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
