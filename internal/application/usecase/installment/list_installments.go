// Package installment contains installment-related use cases.
package installment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/loan-tracker/engine/internal/application/adapter"
	"github.com/loan-tracker/engine/internal/domain/entity"
	domainerror "github.com/loan-tracker/engine/internal/domain/error"
)

// ListInstallmentsInput represents the input for installment listing.
type ListInstallmentsInput struct {
	PaymentID uuid.UUID
}

// ListInstallmentsOutput represents the output of installment listing.
type ListInstallmentsOutput struct {
	Installments []*entity.InstallmentWithStatus
}

// ListInstallmentsUseCase retrieves a payment's schedule ordered by due
// date, annotated with the derived overdue flag.
type ListInstallmentsUseCase struct {
	paymentRepo     adapter.PaymentRepository
	installmentRepo adapter.InstallmentRepository
	clock           adapter.Clock
}

// NewListInstallmentsUseCase creates a new ListInstallmentsUseCase instance.
func NewListInstallmentsUseCase(
	paymentRepo adapter.PaymentRepository,
	installmentRepo adapter.InstallmentRepository,
	clock adapter.Clock,
) *ListInstallmentsUseCase {
	return &ListInstallmentsUseCase{
		paymentRepo:     paymentRepo,
		installmentRepo: installmentRepo,
		clock:           clock,
	}
}

// Execute performs the installment listing.
func (uc *ListInstallmentsUseCase) Execute(ctx context.Context, input ListInstallmentsInput) (*ListInstallmentsOutput, error) {
	if _, err := uc.paymentRepo.FindByID(ctx, input.PaymentID); err != nil {
		if errors.Is(err, domainerror.ErrPaymentNotFound) {
			// A deleted payment has no schedule; cascade deletion makes
			// this the empty result, not an error.
			return &ListInstallmentsOutput{}, nil
		}
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}

	installments, err := uc.installmentRepo.FindByPayment(ctx, input.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list installments: %w", err)
	}

	today := uc.clock.Now()
	annotated := make([]*entity.InstallmentWithStatus, len(installments))
	for i, installment := range installments {
		annotated[i] = &entity.InstallmentWithStatus{
			Installment: installment,
			IsOverdue:   installment.IsOverdue(today),
		}
	}

	return &ListInstallmentsOutput{Installments: annotated}, nil
}
