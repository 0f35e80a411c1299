// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/loan-tracker/engine/internal/domain/entity"
)

// CategoryRepository defines the interface for payment category persistence operations.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindAll retrieves all categories, ordered by name ascending.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// Delete removes a category and detaches it from any payments that
	// reference it. Deleting a non-existent id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
