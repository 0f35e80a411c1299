// Package error defines domain-specific errors for the Installment Ledger Engine.
package error

import "errors"

// Storage errors.
var (
	// ErrStorageUnavailable is returned when the underlying storage medium
	// could not be opened, or a health check failed twice in a row. Callers
	// should prompt the user to retry; the engine does not retry further.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// StorageErrorCode defines error codes for storage errors.
// Format: STO-XXYYYY where XX is category and YYYY is specific error.
type StorageErrorCode string

const (
	ErrCodeStorageOpenFailed  StorageErrorCode = "STO-010001"
	ErrCodeStorageHealthCheck StorageErrorCode = "STO-010002"
	ErrCodeStorageResetFailed StorageErrorCode = "STO-010003"
)

// StorageError represents a storage error with code and message.
type StorageError struct {
	Code    StorageErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError with the given code and message.
func NewStorageError(code StorageErrorCode, message string, err error) *StorageError {
	return &StorageError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
