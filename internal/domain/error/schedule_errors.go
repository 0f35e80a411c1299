// Package error defines domain-specific errors for the Installment Ledger Engine.
package error

import "errors"

// Schedule generation errors.
var (
	// ErrInvalidSchedule is returned when schedule terms are invalid
	// (non-positive amount or installment count below one).
	ErrInvalidSchedule = errors.New("invalid schedule terms")

	// ErrScheduleGeneration is returned when the generator produces a
	// schedule that violates the sum-back invariant. This indicates a
	// programming defect, not bad input.
	ErrScheduleGeneration = errors.New("schedule generation failure")
)

// ScheduleErrorCode defines error codes for schedule errors.
// Format: SCH-XXYYYY where XX is category and YYYY is specific error.
type ScheduleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidScheduleAmount ScheduleErrorCode = "SCH-010001"
	ErrCodeInvalidScheduleCount  ScheduleErrorCode = "SCH-010002"

	// Internal errors (02XXXX)
	ErrCodeScheduleSumMismatch ScheduleErrorCode = "SCH-020001"
)

// ScheduleError represents a schedule error with code and message.
type ScheduleError struct {
	Code    ScheduleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ScheduleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ScheduleError) Unwrap() error {
	return e.Err
}

// NewScheduleError creates a new ScheduleError with the given code and message.
func NewScheduleError(code ScheduleErrorCode, message string, err error) *ScheduleError {
	return &ScheduleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
