// Package error defines domain-specific errors for the Budget Planner application.
package error

import "errors"

// Reference data errors.
var (
	// ErrSectionNotFound is returned when a section does not exist.
	ErrSectionNotFound = errors.New("section not found")

	// ErrCardNotFound is returned when a card does not exist.
	ErrCardNotFound = errors.New("card not found")
)

// ReferenceErrorCode defines error codes for reference data errors.
// Format: REF-XXYYYY where XX is category and YYYY is specific error.
type ReferenceErrorCode string

const (
	ErrCodeSectionNotFound ReferenceErrorCode = "REF-010001"
	ErrCodeCardNotFound    ReferenceErrorCode = "REF-010002"
)
