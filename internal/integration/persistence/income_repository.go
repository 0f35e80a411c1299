// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/loan-tracker/engine/internal/application/adapter"
	"github.com/loan-tracker/engine/internal/domain/entity"
	"github.com/loan-tracker/engine/internal/integration/persistence/model"
)

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	store SessionProvider
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(store SessionProvider) adapter.IncomeRepository {
	return &incomeRepository{
		store: store,
	}
}

// Create persists a new income record.
func (r *incomeRepository) Create(ctx context.Context, income *entity.Income) error {
	conn, err := r.store.Session(ctx)
	if err != nil {
		return err
	}

	incomeModel := model.IncomeFromEntity(income)
	if err := conn.WithContext(ctx).Create(incomeModel).Error; err != nil {
		return err
	}

	slog.Info("Income created", "income_id", income.ID, "amount", income.Amount)
	return nil
}

// FindByWindow retrieves incomes inside the window, ordered by date descending.
func (r *incomeRepository) FindByWindow(ctx context.Context, window adapter.DateWindow) ([]*entity.Income, error) {
	conn, err := r.store.Session(ctx)
	if err != nil {
		return nil, err
	}

	query := conn.WithContext(ctx).Model(&model.IncomeModel{})
	if window.StartDate != nil {
		query = query.Where("date >= ?", *window.StartDate)
	}
	if window.EndDate != nil {
		query = query.Where("date <= ?", *window.EndDate)
	}

	var incomeModels []model.IncomeModel
	if err := query.Order("date DESC").Find(&incomeModels).Error; err != nil {
		return nil, err
	}

	incomes := make([]*entity.Income, len(incomeModels))
	for i, im := range incomeModels {
		incomes[i] = im.ToEntity()
	}
	return incomes, nil
}

// Delete removes an income. Idempotent: deleting a non-existent id is not
// an error.
func (r *incomeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	conn, err := r.store.Session(ctx)
	if err != nil {
		return err
	}

	if err := conn.WithContext(ctx).Where("id = ?", id).Delete(&model.IncomeModel{}).Error; err != nil {
		return err
	}

	slog.Info("Income deleted", "income_id", id)
	return nil
}
