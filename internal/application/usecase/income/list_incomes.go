// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"
	"time"

	"github.com/loan-tracker/engine/internal/application/adapter"
	"github.com/loan-tracker/engine/internal/domain/entity"
)

// ListIncomesInput represents the input for income listing. Both bounds are
// optional.
type ListIncomesInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// ListIncomesOutput represents the output of income listing.
type ListIncomesOutput struct {
	Incomes []*entity.Income
}

// ListIncomesUseCase handles income listing logic.
type ListIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(incomeRepo adapter.IncomeRepository) *ListIncomesUseCase {
	return &ListIncomesUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income listing.
func (uc *ListIncomesUseCase) Execute(ctx context.Context, input ListIncomesInput) (*ListIncomesOutput, error) {
	window := adapter.DateWindow{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}

	incomes, err := uc.incomeRepo.FindByWindow(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}

	return &ListIncomesOutput{Incomes: incomes}, nil
}
