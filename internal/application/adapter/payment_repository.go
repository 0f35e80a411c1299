// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/loan-tracker/engine/internal/domain/entity"
)

// PaymentRepository defines the interface for payment persistence operations.
type PaymentRepository interface {
	// Create persists a payment together with its full installment
	// schedule as a single atomic unit: either both land or neither does.
	Create(ctx context.Context, payment *entity.Payment, schedule []*entity.Installment) error

	// FindByID retrieves a payment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindWithStats retrieves payments whose installments fall inside the
	// window, annotated with schedule progress over the in-window subset,
	// ordered by creation time descending. Payments with no in-window
	// installment are omitted.
	FindWithStats(ctx context.Context, window DateWindow) ([]*entity.PaymentWithStats, error)

	// Delete removes a payment and cascades deletion of every owned
	// installment. Deleting a non-existent id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
