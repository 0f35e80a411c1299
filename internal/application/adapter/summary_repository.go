// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/loan-tracker/engine/internal/domain/entity"
)

// SummaryRepository defines the read-only queries backing the summary
// projections. Implementations only filter and join; all aggregation is
// computed in the application layer so the same logic runs against any
// storage engine.
type SummaryRepository interface {
	// FindInstallmentsInWindow retrieves installments due inside the
	// window, each paired with its owning payment.
	FindInstallmentsInWindow(ctx context.Context, window DateWindow) ([]*entity.InstallmentWithPayment, error)

	// FindUnpaidInstallmentsDueBy retrieves unpaid installments with a due
	// date on or before the cutoff, each paired with its owning payment,
	// ordered by due date ascending.
	FindUnpaidInstallmentsDueBy(ctx context.Context, cutoff time.Time) ([]*entity.InstallmentWithPayment, error)
}
