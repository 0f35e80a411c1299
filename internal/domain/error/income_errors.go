// Package error defines domain-specific errors for the Installment Ledger Engine.
package error

import "errors"

// Income domain errors.
var (
	// ErrIncomeNotFound is returned when an income is not found in the store.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrEmptyIncomeName is returned when the income name is empty.
	ErrEmptyIncomeName = errors.New("income name cannot be empty")

	// ErrInvalidIncomeAmount is returned when the income amount is not positive.
	ErrInvalidIncomeAmount = errors.New("income amount must be positive")

	// ErrInvalidIncomeDate is returned when the income date is missing.
	ErrInvalidIncomeDate = errors.New("income date is required")
)

// IncomeErrorCode defines error codes for income errors.
// Format: INC-XXYYYY where XX is category and YYYY is specific error.
type IncomeErrorCode string

const (
	ErrCodeEmptyIncomeName     IncomeErrorCode = "INC-010001"
	ErrCodeInvalidIncomeAmount IncomeErrorCode = "INC-010002"
	ErrCodeInvalidIncomeDate   IncomeErrorCode = "INC-010003"
	ErrCodeIncomeNotFound      IncomeErrorCode = "INC-010004"
)

// IncomeError represents an income error with code and message.
type IncomeError struct {
	Code    IncomeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *IncomeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *IncomeError) Unwrap() error {
	return e.Err
}

// NewIncomeError creates a new IncomeError with the given code and message.
func NewIncomeError(code IncomeErrorCode, message string, err error) *IncomeError {
	return &IncomeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
