// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/loan-tracker/engine/internal/application/adapter"
	"github.com/loan-tracker/engine/internal/domain/entity"
	domainerror "github.com/loan-tracker/engine/internal/domain/error"
)

// CreateIncomeInput represents the input for income creation.
type CreateIncomeInput struct {
	Name        string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// CreateIncomeOutput represents the output of income creation.
type CreateIncomeOutput struct {
	Income *entity.Income
}

// CreateIncomeUseCase handles income creation logic.
type CreateIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(incomeRepo adapter.IncomeRepository) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo: incomeRepo,
	}
}

// Execute performs the income creation.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeEmptyIncomeName,
			"income name cannot be empty",
			domainerror.ErrEmptyIncomeName,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeAmount,
			"income amount must be positive",
			domainerror.ErrInvalidIncomeAmount,
		)
	}
	if input.Date.IsZero() {
		return nil, domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeDate,
			"income date is required",
			domainerror.ErrInvalidIncomeDate,
		)
	}

	income := entity.NewIncome(
		strings.TrimSpace(input.Name),
		input.Amount.Round(2),
		input.Date,
		input.Description,
	)

	if err := uc.incomeRepo.Create(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	return &CreateIncomeOutput{Income: income}, nil
}
