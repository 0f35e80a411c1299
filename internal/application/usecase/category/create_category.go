// Package category contains payment category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/loan-tracker/engine/internal/application/adapter"
	"github.com/loan-tracker/engine/internal/domain/entity"
	domainerror "github.com/loan-tracker/engine/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name string
	Icon string // optional; defaulted when empty
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeEmptyCategoryName,
			"category name cannot be empty",
			domainerror.ErrEmptyCategoryName,
		)
	}

	icon := input.Icon
	if icon == "" {
		icon = entity.DefaultCategoryIcon
	}

	category := entity.NewCategory(strings.TrimSpace(input.Name), icon)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}
