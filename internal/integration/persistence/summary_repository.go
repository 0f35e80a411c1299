// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/loan-tracker/engine/internal/application/adapter"
	"github.com/loan-tracker/engine/internal/domain/entity"
	"github.com/loan-tracker/engine/internal/integration/persistence/model"
)

// summaryRepository implements the adapter.SummaryRepository interface.
// It only filters and joins; aggregation happens in the application layer,
// keeping the queries portable across storage engines.
type summaryRepository struct {
	store SessionProvider
}

// NewSummaryRepository creates a new summary repository instance.
func NewSummaryRepository(store SessionProvider) adapter.SummaryRepository {
	return &summaryRepository{
		store: store,
	}
}

// FindInstallmentsInWindow retrieves installments due inside the window,
// each paired with its owning payment.
func (r *summaryRepository) FindInstallmentsInWindow(ctx context.Context, window adapter.DateWindow) ([]*entity.InstallmentWithPayment, error) {
	conn, err := r.store.Session(ctx)
	if err != nil {
		return nil, err
	}

	query := conn.WithContext(ctx).Model(&model.InstallmentModel{})
	if window.StartDate != nil {
		query = query.Where("due_date >= ?", *window.StartDate)
	}
	if window.EndDate != nil {
		query = query.Where("due_date <= ?", *window.EndDate)
	}

	var installmentModels []model.InstallmentModel
	if err := query.Order("due_date ASC").Find(&installmentModels).Error; err != nil {
		return nil, err
	}

	return r.attachPayments(ctx, installmentModels)
}

// FindUnpaidInstallmentsDueBy retrieves unpaid installments due on or
// before the cutoff, each paired with its owning payment, ordered by due
// date ascending.
func (r *summaryRepository) FindUnpaidInstallmentsDueBy(ctx context.Context, cutoff time.Time) ([]*entity.InstallmentWithPayment, error) {
	conn, err := r.store.Session(ctx)
	if err != nil {
		return nil, err
	}

	var installmentModels []model.InstallmentModel
	result := conn.WithContext(ctx).
		Where("is_paid = ? AND due_date <= ?", false, cutoff).
		Order("due_date ASC").
		Find(&installmentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return r.attachPayments(ctx, installmentModels)
}

// attachPayments loads the owning payments for a set of installments in one
// query and pairs them up.
func (r *summaryRepository) attachPayments(ctx context.Context, installmentModels []model.InstallmentModel) ([]*entity.InstallmentWithPayment, error) {
	if len(installmentModels) == 0 {
		return nil, nil
	}

	conn, err := r.store.Session(ctx)
	if err != nil {
		return nil, err
	}

	paymentIDs := make([]uuid.UUID, 0, len(installmentModels))
	seen := make(map[uuid.UUID]bool, len(installmentModels))
	for _, im := range installmentModels {
		if !seen[im.PaymentID] {
			seen[im.PaymentID] = true
			paymentIDs = append(paymentIDs, im.PaymentID)
		}
	}

	var paymentModels []model.PaymentModel
	if err := conn.WithContext(ctx).Where("id IN ?", paymentIDs).Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	paymentsByID := make(map[uuid.UUID]*entity.Payment, len(paymentModels))
	for i := range paymentModels {
		paymentsByID[paymentModels[i].ID] = paymentModels[i].ToEntity()
	}

	pairs := make([]*entity.InstallmentWithPayment, 0, len(installmentModels))
	for _, im := range installmentModels {
		payment, ok := paymentsByID[im.PaymentID]
		if !ok {
			// Orphaned row; cascade deletion should make this unreachable.
			continue
		}
		pairs = append(pairs, &entity.InstallmentWithPayment{
			Installment: im.ToEntity(),
			Payment:     payment,
		})
	}
	return pairs, nil
}
