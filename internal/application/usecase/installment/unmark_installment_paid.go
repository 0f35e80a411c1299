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

// UnmarkInstallmentPaidInput represents the input for reversing a paid transition.
type UnmarkInstallmentPaidInput struct {
	InstallmentID uuid.UUID
}

// UnmarkInstallmentPaidOutput represents the output of reversing a paid transition.
type UnmarkInstallmentPaidOutput struct {
	Installment *entity.Installment
}

// UnmarkInstallmentPaidUseCase reverses a paid transition, restoring the
// installment to its pre-mark state.
type UnmarkInstallmentPaidUseCase struct {
	installmentRepo adapter.InstallmentRepository
}

// NewUnmarkInstallmentPaidUseCase creates a new UnmarkInstallmentPaidUseCase instance.
func NewUnmarkInstallmentPaidUseCase(installmentRepo adapter.InstallmentRepository) *UnmarkInstallmentPaidUseCase {
	return &UnmarkInstallmentPaidUseCase{
		installmentRepo: installmentRepo,
	}
}

// Execute performs the unpaid transition.
func (uc *UnmarkInstallmentPaidUseCase) Execute(ctx context.Context, input UnmarkInstallmentPaidInput) (*UnmarkInstallmentPaidOutput, error) {
	installment, err := uc.installmentRepo.FindByID(ctx, input.InstallmentID)
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

	installment.UnmarkPaid()

	if err := uc.installmentRepo.Update(ctx, installment); err != nil {
		return nil, fmt.Errorf("failed to unmark installment: %w", err)
	}

	return &UnmarkInstallmentPaidOutput{Installment: installment}, nil
}
