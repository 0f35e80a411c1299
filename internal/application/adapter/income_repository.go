// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/loan-tracker/engine/internal/domain/entity"
)

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	// Create persists a new income record.
	Create(ctx context.Context, income *entity.Income) error

	// FindByWindow retrieves incomes whose date falls inside the window,
	// ordered by date descending.
	FindByWindow(ctx context.Context, window DateWindow) ([]*entity.Income, error)

	// Delete removes an income. Deleting a non-existent id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
