// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/loan-tracker/engine/internal/application/adapter"
	"github.com/loan-tracker/engine/internal/domain/entity"
	domainerror "github.com/loan-tracker/engine/internal/domain/error"
	"github.com/loan-tracker/engine/internal/integration/persistence/model"
)

// paymentRepository implements the adapter.PaymentRepository interface.
type paymentRepository struct {
	store SessionProvider
}

// NewPaymentRepository creates a new payment repository instance.
func NewPaymentRepository(store SessionProvider) adapter.PaymentRepository {
	return &paymentRepository{
		store: store,
	}
}

// Create persists a payment together with its full installment schedule in
// a single transaction: either both land or neither does.
func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment, schedule []*entity.Installment) error {
	conn, err := r.store.Session(ctx)
	if err != nil {
		return err
	}

	paymentModel := model.PaymentFromEntity(payment)
	installmentModels := make([]model.InstallmentModel, len(schedule))
	for i, installment := range schedule {
		installmentModels[i] = *model.InstallmentFromEntity(installment)
	}

	err = conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(paymentModel).Error; err != nil {
			return err
		}
		if err := tx.Create(&installmentModels).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Payment created",
		"payment_id", payment.ID,
		"amount", payment.Amount,
		"installments", len(schedule),
	)
	return nil
}

// FindByID retrieves a payment by its ID.
func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	conn, err := r.store.Session(ctx)
	if err != nil {
		return nil, err
	}

	var paymentModel model.PaymentModel
	result := conn.WithContext(ctx).Where("id = ?", id).First(&paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPaymentNotFound
		}
		return nil, result.Error
	}
	return paymentModel.ToEntity(), nil
}

// FindWithStats retrieves payments with at least one installment inside the
// window, annotated with progress over the in-window subset, most recently
// created first. The window filter and the aggregation both run in Go so
// the query stays free of any dialect-specific SQL.
func (r *paymentRepository) FindWithStats(ctx context.Context, window adapter.DateWindow) ([]*entity.PaymentWithStats, error) {
	conn, err := r.store.Session(ctx)
	if err != nil {
		return nil, err
	}

	var paymentModels []model.PaymentModel
	result := conn.WithContext(ctx).
		Preload("Schedule").
		Order("created_at DESC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.PaymentWithStats, 0, len(paymentModels))
	for _, pm := range paymentModels {
		inWindow := make([]*entity.Installment, 0, len(pm.Schedule))
		for _, im := range pm.Schedule {
			if window.Contains(im.DueDate) {
				inWindow = append(inWindow, im.ToEntity())
			}
		}
		// Inclusion is gated by the payment's installments, not its own
		// dates: a payment with no in-window installment is omitted.
		if len(inWindow) == 0 {
			continue
		}
		payments = append(payments, entity.NewPaymentWithStats(pm.ToEntity(), inWindow))
	}
	return payments, nil
}

// Delete removes a payment and its installments. Idempotent: deleting a
// non-existent id is not an error.
func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	conn, err := r.store.Session(ctx)
	if err != nil {
		return err
	}

	err = conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The schema declares ON DELETE CASCADE, but the repository owns
		// the cascade so it holds on engines without enforced constraints.
		if err := tx.Where("payment_id = ?", id).Delete(&model.InstallmentModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.PaymentModel{}).Error
	})
	if err != nil {
		return err
	}

	slog.Info("Payment deleted", "payment_id", id)
	return nil
}
