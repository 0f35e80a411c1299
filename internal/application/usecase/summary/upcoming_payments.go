package summary

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/loan-tracker/engine/config"
	"github.com/loan-tracker/engine/internal/application/adapter"
	"github.com/loan-tracker/engine/internal/domain/entity"
)

// UpcomingPaymentsInput represents the input for the upcoming payments
// projection. Zero values fall back to the configured horizon and limit.
type UpcomingPaymentsInput struct {
	HorizonDays int
	Limit       int
}

// UpcomingPaymentsOutput represents the output of the upcoming payments projection.
type UpcomingPaymentsOutput struct {
	Payments []*entity.UpcomingPayment
}

// UpcomingPaymentsUseCase lists the next unpaid installment of each payment
// falling due within the horizon. A payment contributes at most one row.
type UpcomingPaymentsUseCase struct {
	summaryRepo adapter.SummaryRepository
	clock       adapter.Clock
	cfg         *config.SummaryConfig
}

// NewUpcomingPaymentsUseCase creates a new UpcomingPaymentsUseCase instance.
func NewUpcomingPaymentsUseCase(summaryRepo adapter.SummaryRepository, clock adapter.Clock, cfg *config.SummaryConfig) *UpcomingPaymentsUseCase {
	return &UpcomingPaymentsUseCase{
		summaryRepo: summaryRepo,
		clock:       clock,
		cfg:         cfg,
	}
}

// Execute lists upcoming payments ordered by due date.
func (uc *UpcomingPaymentsUseCase) Execute(ctx context.Context, input UpcomingPaymentsInput) (*UpcomingPaymentsOutput, error) {
	horizonDays := input.HorizonDays
	if horizonDays <= 0 {
		horizonDays = uc.cfg.UpcomingHorizonDays
	}
	limit := input.Limit
	if limit <= 0 {
		limit = uc.cfg.UpcomingLimit
	}

	cutoff := uc.clock.Now().AddDate(0, 0, horizonDays)

	pairs, err := uc.summaryRepo.FindUnpaidInstallmentsDueBy(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to read unpaid installments: %w", err)
	}

	// Keep the earliest unpaid installment per payment; the repository
	// already returns rows in due date order.
	seen := make(map[uuid.UUID]bool)
	upcoming := make([]*entity.UpcomingPayment, 0, limit)
	for _, pair := range pairs {
		if seen[pair.Payment.ID] {
			continue
		}
		seen[pair.Payment.ID] = true
		upcoming = append(upcoming, &entity.UpcomingPayment{
			PaymentID:     pair.Payment.ID,
			InstallmentID: pair.Installment.ID,
			Name:          pair.Payment.Name,
			Amount:        pair.Installment.Amount,
			DueDate:       pair.Installment.DueDate,
		})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}

	return &UpcomingPaymentsOutput{Payments: upcoming}, nil
}
