// Package error defines domain-specific errors for the Installment Ledger Engine.
package error

import "errors"

// Installment domain errors.
var (
	// ErrInstallmentNotFound is returned when an installment is not found in the store.
	ErrInstallmentNotFound = errors.New("installment not found")
)

// InstallmentErrorCode defines error codes for installment errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InstallmentErrorCode string

const (
	ErrCodeInstallmentNotFound InstallmentErrorCode = "INS-010001"
)

// InstallmentError represents an installment error with code and message.
type InstallmentError struct {
	Code    InstallmentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InstallmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InstallmentError) Unwrap() error {
	return e.Err
}

// NewInstallmentError creates a new InstallmentError with the given code and message.
func NewInstallmentError(code InstallmentErrorCode, message string, err error) *InstallmentError {
	return &InstallmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
