// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/loan-tracker/engine/internal/domain/entity"
)

// InstallmentRepository defines the interface for installment persistence operations.
type InstallmentRepository interface {
	// FindByID retrieves an installment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Installment, error)

	// FindByPayment retrieves all installments owned by a payment,
	// ordered by due date ascending.
	FindByPayment(ctx context.Context, paymentID uuid.UUID) ([]*entity.Installment, error)

	// Update persists the mutable state of an installment (paid flag,
	// paid date, payment method, notes).
	Update(ctx context.Context, installment *entity.Installment) error
}
