// Package payment contains payment-related use cases.
package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/loan-tracker/engine/internal/application/adapter"
	"github.com/loan-tracker/engine/internal/domain/entity"
)

// ListPaymentsInput represents the input for payment listing. Both bounds
// are optional; a nil bound leaves that side of the window open.
type ListPaymentsInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// ListPaymentsOutput represents the output of payment listing.
type ListPaymentsOutput struct {
	Payments []*entity.PaymentWithStats
}

// ListPaymentsUseCase handles payment listing logic.
type ListPaymentsUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewListPaymentsUseCase creates a new ListPaymentsUseCase instance.
func NewListPaymentsUseCase(paymentRepo adapter.PaymentRepository) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute performs the payment listing.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, input ListPaymentsInput) (*ListPaymentsOutput, error) {
	window := adapter.DateWindow{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}

	payments, err := uc.paymentRepo.FindWithStats(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return &ListPaymentsOutput{Payments: payments}, nil
}
