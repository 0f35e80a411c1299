// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/loan-tracker/engine/internal/application/adapter"
)

// DeleteIncomeInput represents the input for income deletion.
type DeleteIncomeInput struct {
	IncomeID uuid.UUID
}

// DeleteIncomeOutput represents the output of income deletion.
type DeleteIncomeOutput struct {
	Success bool
}

// DeleteIncomeUseCase handles income deletion logic. Idempotent.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(incomeRepo adapter.IncomeRepository) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income deletion.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) (*DeleteIncomeOutput, error) {
	if err := uc.incomeRepo.Delete(ctx, input.IncomeID); err != nil {
		return nil, fmt.Errorf("failed to delete income: %w", err)
	}

	return &DeleteIncomeOutput{Success: true}, nil
}
