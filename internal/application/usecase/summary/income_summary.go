package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/loan-tracker/engine/internal/application/adapter"
	"github.com/loan-tracker/engine/internal/domain/entity"
)

// IncomeSummaryInput represents the input for the income summary
// projection. Both bounds are optional; an open window covers every income.
type IncomeSummaryInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// IncomeSummaryOutput represents the output of the income summary projection.
type IncomeSummaryOutput struct {
	Summary *entity.IncomeSummary
}

// IncomeSummaryUseCase computes income totals over a date window. The
// monthly and yearly totals are relative to today regardless of the window.
type IncomeSummaryUseCase struct {
	incomeRepo adapter.IncomeRepository
	clock      adapter.Clock
}

// NewIncomeSummaryUseCase creates a new IncomeSummaryUseCase instance.
func NewIncomeSummaryUseCase(incomeRepo adapter.IncomeRepository, clock adapter.Clock) *IncomeSummaryUseCase {
	return &IncomeSummaryUseCase{
		incomeRepo: incomeRepo,
		clock:      clock,
	}
}

// Execute computes the income summary.
func (uc *IncomeSummaryUseCase) Execute(ctx context.Context, input IncomeSummaryInput) (*IncomeSummaryOutput, error) {
	window := adapter.DateWindow{StartDate: input.StartDate, EndDate: input.EndDate}

	incomes, err := uc.incomeRepo.FindByWindow(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to read incomes for summary: %w", err)
	}

	today := uc.clock.Now()
	summary := entity.NewIncomeSummary()
	summary.TotalIncomes = len(incomes)

	for _, income := range incomes {
		summary.TotalAmount = summary.TotalAmount.Add(income.Amount)

		if sameMonth(income.Date, today) {
			summary.MonthlyTotal = summary.MonthlyTotal.Add(income.Amount)
		}
		if income.Date.Year() == today.Year() {
			summary.YearlyTotal = summary.YearlyTotal.Add(income.Amount)
		}
	}

	return &IncomeSummaryOutput{Summary: summary}, nil
}
