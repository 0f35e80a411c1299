// Package error defines domain-specific errors for the Installment Ledger Engine.
package error

import "errors"

// Payment domain errors.
var (
	// ErrPaymentNotFound is returned when a payment is not found in the store.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrEmptyPaymentName is returned when the payment name is empty.
	ErrEmptyPaymentName = errors.New("payment name cannot be empty")

	// ErrInvalidPaymentAmount is returned when the payment amount is not positive.
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")

	// ErrInvalidInstallmentCount is returned when the installment count is below one.
	ErrInvalidInstallmentCount = errors.New("installment count must be at least 1")

	// ErrInvalidPaymentStartDate is returned when the start date is missing.
	ErrInvalidPaymentStartDate = errors.New("payment start date is required")

	// ErrCategoryNotFoundForPayment is returned when the referenced category does not exist.
	ErrCategoryNotFoundForPayment = errors.New("category not found")
)

// PaymentErrorCode defines error codes for payment errors.
// Format: PAY-XXYYYY where XX is category and YYYY is specific error.
type PaymentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyPaymentName        PaymentErrorCode = "PAY-010001"
	ErrCodeInvalidPaymentAmount    PaymentErrorCode = "PAY-010002"
	ErrCodeInvalidInstallmentCount PaymentErrorCode = "PAY-010003"
	ErrCodeInvalidPaymentStartDate PaymentErrorCode = "PAY-010004"
	ErrCodePaymentNotFound         PaymentErrorCode = "PAY-010005"
	ErrCodePayCategoryNotFound     PaymentErrorCode = "PAY-010006"
)

// PaymentError represents a payment error with code and message.
type PaymentError struct {
	Code    PaymentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PaymentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// NewPaymentError creates a new PaymentError with the given code and message.
func NewPaymentError(code PaymentErrorCode, message string, err error) *PaymentError {
	return &PaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
