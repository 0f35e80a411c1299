// Package payment contains payment-related use cases.
package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/loan-tracker/engine/internal/application/adapter"
	"github.com/loan-tracker/engine/internal/domain/entity"
	domainerror "github.com/loan-tracker/engine/internal/domain/error"
	"github.com/loan-tracker/engine/internal/domain/schedule"
)

// CreatePaymentInput represents the input for payment creation.
type CreatePaymentInput struct {
	Name         string
	Amount       decimal.Decimal
	StartDate    time.Time
	IsRecurring  bool
	Installments int
	CategoryID   *uuid.UUID
	Description  string
}

// CreatePaymentOutput represents the output of payment creation.
type CreatePaymentOutput struct {
	Payment  *entity.Payment
	Schedule []*entity.Installment
}

// CreatePaymentUseCase handles payment creation logic: validation, schedule
// generation, and the atomic persist of payment plus schedule.
type CreatePaymentUseCase struct {
	paymentRepo  adapter.PaymentRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreatePaymentUseCase creates a new CreatePaymentUseCase instance.
func NewCreatePaymentUseCase(
	paymentRepo adapter.PaymentRepository,
	categoryRepo adapter.CategoryRepository,
) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{
		paymentRepo:  paymentRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the payment creation.
func (uc *CreatePaymentUseCase) Execute(ctx context.Context, input CreatePaymentInput) (*CreatePaymentOutput, error) {
	// Fail fast: no storage is touched until the input is valid.
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeEmptyPaymentName,
			"payment name cannot be empty",
			domainerror.ErrEmptyPaymentName,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"payment amount must be positive",
			domainerror.ErrInvalidPaymentAmount,
		)
	}
	if input.StartDate.IsZero() {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentStartDate,
			"payment start date is required",
			domainerror.ErrInvalidPaymentStartDate,
		)
	}
	if input.Installments < 1 {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidInstallmentCount,
			"installment count must be at least 1",
			domainerror.ErrInvalidInstallmentCount,
		)
	}

	// A one-time payment owns exactly one installment whatever the caller
	// supplied.
	installments := input.Installments
	if !input.IsRecurring {
		installments = 1
	}

	if input.CategoryID != nil {
		if _, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil, domainerror.NewPaymentError(
					domainerror.ErrCodePayCategoryNotFound,
					"category not found",
					domainerror.ErrCategoryNotFoundForPayment,
				)
			}
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
	}

	payment := entity.NewPayment(
		strings.TrimSpace(input.Name),
		input.Amount.Round(2),
		input.StartDate,
		input.IsRecurring,
		installments,
		input.CategoryID,
		input.Description,
	)

	drafts, err := schedule.Generate(payment.Amount, payment.StartDate, payment.IsRecurring, payment.Installments)
	if err != nil {
		return nil, err
	}

	installmentEntities := make([]*entity.Installment, len(drafts))
	for i, draft := range drafts {
		installmentEntities[i] = entity.NewInstallment(payment.ID, draft.Amount, draft.DueDate)
	}

	if err := uc.paymentRepo.Create(ctx, payment, installmentEntities); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return &CreatePaymentOutput{
		Payment:  payment,
		Schedule: installmentEntities,
	}, nil
}
