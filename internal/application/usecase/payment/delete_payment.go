// Package payment contains payment-related use cases.
package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/loan-tracker/engine/internal/application/adapter"
)

// DeletePaymentInput represents the input for payment deletion.
type DeletePaymentInput struct {
	PaymentID uuid.UUID
}

// DeletePaymentOutput represents the output of payment deletion.
type DeletePaymentOutput struct {
	Success bool
}

// DeletePaymentUseCase handles payment deletion logic. Deletion cascades to
// every owned installment and is idempotent.
type DeletePaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewDeletePaymentUseCase creates a new DeletePaymentUseCase instance.
func NewDeletePaymentUseCase(paymentRepo adapter.PaymentRepository) *DeletePaymentUseCase {
	return &DeletePaymentUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute performs the payment deletion.
func (uc *DeletePaymentUseCase) Execute(ctx context.Context, input DeletePaymentInput) (*DeletePaymentOutput, error) {
	if err := uc.paymentRepo.Delete(ctx, input.PaymentID); err != nil {
		return nil, fmt.Errorf("failed to delete payment: %w", err)
	}

	return &DeletePaymentOutput{Success: true}, nil
}
