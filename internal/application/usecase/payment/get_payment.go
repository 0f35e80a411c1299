// Package payment contains payment-related use cases.
package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/loan-tracker/engine/internal/application/adapter"
	"github.com/loan-tracker/engine/internal/domain/entity"
	domainerror "github.com/loan-tracker/engine/internal/domain/error"
)

// GetPaymentInput represents the input for payment detail retrieval.
type GetPaymentInput struct {
	PaymentID uuid.UUID
}

// GetPaymentOutput represents the output of payment detail retrieval.
type GetPaymentOutput struct {
	Detail *entity.PaymentDetail
}

// GetPaymentUseCase retrieves a payment with its stats and full annotated
// schedule.
type GetPaymentUseCase struct {
	paymentRepo     adapter.PaymentRepository
	installmentRepo adapter.InstallmentRepository
	clock           adapter.Clock
}

// NewGetPaymentUseCase creates a new GetPaymentUseCase instance.
func NewGetPaymentUseCase(
	paymentRepo adapter.PaymentRepository,
	installmentRepo adapter.InstallmentRepository,
	clock adapter.Clock,
) *GetPaymentUseCase {
	return &GetPaymentUseCase{
		paymentRepo:     paymentRepo,
		installmentRepo: installmentRepo,
		clock:           clock,
	}
}

// Execute performs the payment detail retrieval.
func (uc *GetPaymentUseCase) Execute(ctx context.Context, input GetPaymentInput) (*GetPaymentOutput, error) {
	payment, err := uc.paymentRepo.FindByID(ctx, input.PaymentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPaymentNotFound) {
			return nil, domainerror.NewPaymentError(
				domainerror.ErrCodePaymentNotFound,
				"payment not found",
				domainerror.ErrPaymentNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}

	installments, err := uc.installmentRepo.FindByPayment(ctx, payment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	today := uc.clock.Now()
	annotated := make([]*entity.InstallmentWithStatus, len(installments))
	for i, installment := range installments {
		annotated[i] = &entity.InstallmentWithStatus{
			Installment: installment,
			IsOverdue:   installment.IsOverdue(today),
		}
	}

	return &GetPaymentOutput{
		Detail: &entity.PaymentDetail{
			Payment:  entity.NewPaymentWithStats(payment, installments),
			Schedule: annotated,
		},
	}, nil
}
