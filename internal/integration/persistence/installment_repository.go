// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/loan-tracker/engine/internal/application/adapter"
	"github.com/loan-tracker/engine/internal/domain/entity"
	domainerror "github.com/loan-tracker/engine/internal/domain/error"
	"github.com/loan-tracker/engine/internal/integration/persistence/model"
)

// installmentRepository implements the adapter.InstallmentRepository interface.
type installmentRepository struct {
	store SessionProvider
}

// NewInstallmentRepository creates a new installment repository instance.
func NewInstallmentRepository(store SessionProvider) adapter.InstallmentRepository {
	return &installmentRepository{
		store: store,
	}
}

// FindByID retrieves an installment by its ID.
func (r *installmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Installment, error) {
	conn, err := r.store.Session(ctx)
	if err != nil {
		return nil, err
	}

	var installmentModel model.InstallmentModel
	result := conn.WithContext(ctx).Where("id = ?", id).First(&installmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInstallmentNotFound
		}
		return nil, result.Error
	}
	return installmentModel.ToEntity(), nil
}

// FindByPayment retrieves all installments owned by a payment, ordered by
// due date ascending.
func (r *installmentRepository) FindByPayment(ctx context.Context, paymentID uuid.UUID) ([]*entity.Installment, error) {
	conn, err := r.store.Session(ctx)
	if err != nil {
		return nil, err
	}

	var installmentModels []model.InstallmentModel
	result := conn.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		Order("due_date ASC").
		Find(&installmentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	installments := make([]*entity.Installment, len(installmentModels))
	for i, im := range installmentModels {
		installments[i] = im.ToEntity()
	}
	return installments, nil
}

// Update persists the mutable paid state of an installment.
func (r *installmentRepository) Update(ctx context.Context, installment *entity.Installment) error {
	conn, err := r.store.Session(ctx)
	if err != nil {
		return err
	}

	installmentModel := model.InstallmentFromEntity(installment)
	result := conn.WithContext(ctx).
		Model(&model.InstallmentModel{}).
		Where("id = ?", installment.ID).
		Select("IsPaid", "PaidDate", "PaymentMethod", "Notes").
		Updates(installmentModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrInstallmentNotFound
	}
	return nil
}
