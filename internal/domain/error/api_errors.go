// Package error defines domain-specific errors for the Budget Planner application.
package error

// APIErrorCode defines error codes for transport-level failures.
// Format: API-XXYYYY where XX is category and YYYY is specific error.
type APIErrorCode string

const (
	ErrCodeRateLimited APIErrorCode = "API-010001"
)
