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

// MarkInstallmentPaidInput represents the input for marking an installment paid.
type MarkInstallmentPaidInput struct {
	InstallmentID uuid.UUID
	PaymentMethod string // optional, e.g. "cash", "transfer"
	Notes         string // optional
}

// MarkInstallmentPaidOutput represents the output of marking an installment paid.
type MarkInstallmentPaidOutput struct {
	Installment *entity.Installment
}

// MarkInstallmentPaidUseCase transitions an installment to the paid state.
// Marking an already-paid installment refreshes its paid date.
type MarkInstallmentPaidUseCase struct {
	installmentRepo adapter.InstallmentRepository
	clock           adapter.Clock
}

// NewMarkInstallmentPaidUseCase creates a new MarkInstallmentPaidUseCase instance.
func NewMarkInstallmentPaidUseCase(
	installmentRepo adapter.InstallmentRepository,
	clock adapter.Clock,
) *MarkInstallmentPaidUseCase {
	return &MarkInstallmentPaidUseCase{
		installmentRepo: installmentRepo,
		clock:           clock,
	}
}

// Execute performs the paid transition.
func (uc *MarkInstallmentPaidUseCase) Execute(ctx context.Context, input MarkInstallmentPaidInput) (*MarkInstallmentPaidOutput, error) {
	installment, err := uc.findInstallment(ctx, input.InstallmentID)
	if err != nil {
		return nil, err
	}

	installment.MarkPaid(uc.clock.Now(), input.PaymentMethod, input.Notes)

	if err := uc.installmentRepo.Update(ctx, installment); err != nil {
		return nil, fmt.Errorf("failed to mark installment paid: %w", err)
	}

	return &MarkInstallmentPaidOutput{Installment: installment}, nil
}

func (uc *MarkInstallmentPaidUseCase) findInstallment(ctx context.Context, id uuid.UUID) (*entity.Installment, error) {
	installment, err := uc.installmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrInstallmentNotFound) {
			return nil, domainerror.NewInstallmentError(
				domainerror.ErrCodeInstallmentNotFound,
				"installment not found",
				domainerror.ErrInstallmentNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find installment: %w", err)
	}
	return installment, nil
}
