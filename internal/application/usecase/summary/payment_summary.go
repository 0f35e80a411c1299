// Package summary contains the read-side summary projections. All three
// use cases are read-only: they never mutate ledger state, and an empty
// store yields zeroed results rather than an error.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/loan-tracker/engine/internal/application/adapter"
	"github.com/loan-tracker/engine/internal/domain/entity"
)

// defaultWindowMonths is the trailing window applied when the caller
// supplies no bounds.
const defaultWindowMonths = 12

// PaymentSummaryInput represents the input for the payment summary
// projection. With neither bound supplied the window defaults to the
// trailing twelve months from today.
type PaymentSummaryInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// PaymentSummaryOutput represents the output of the payment summary projection.
type PaymentSummaryOutput struct {
	Summary *entity.PaymentSummary
}

// PaymentSummaryUseCase computes payment totals and counts over a date
// window. The aggregation runs in memory over window-filtered reads, so it
// is identical across storage engines.
type PaymentSummaryUseCase struct {
	summaryRepo adapter.SummaryRepository
	clock       adapter.Clock
}

// NewPaymentSummaryUseCase creates a new PaymentSummaryUseCase instance.
func NewPaymentSummaryUseCase(summaryRepo adapter.SummaryRepository, clock adapter.Clock) *PaymentSummaryUseCase {
	return &PaymentSummaryUseCase{
		summaryRepo: summaryRepo,
		clock:       clock,
	}
}

// Execute computes the payment summary.
func (uc *PaymentSummaryUseCase) Execute(ctx context.Context, input PaymentSummaryInput) (*PaymentSummaryOutput, error) {
	today := uc.clock.Now()

	window := adapter.DateWindow{StartDate: input.StartDate, EndDate: input.EndDate}
	if window.IsOpen() {
		start := today.AddDate(0, -defaultWindowMonths, 0)
		window = adapter.DateWindow{StartDate: &start, EndDate: &today}
	}

	pairs, err := uc.summaryRepo.FindInstallmentsInWindow(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to read installments for summary: %w", err)
	}

	summary := entity.NewPaymentSummary()
	recurringSeen := make(map[uuid.UUID]bool)
	oneTimeSeen := make(map[uuid.UUID]bool)

	for _, pair := range pairs {
		installment := pair.Installment
		payment := pair.Payment

		summary.TotalAmount = summary.TotalAmount.Add(installment.Amount)

		if payment.IsRecurring {
			recurringSeen[payment.ID] = true
		} else {
			oneTimeSeen[payment.ID] = true
		}

		if installment.IsPaid {
			summary.TotalPaid = summary.TotalPaid.Add(installment.Amount)
		} else {
			summary.TotalRemaining = summary.TotalRemaining.Add(installment.Amount)
		}

		if sameMonth(installment.DueDate, today) {
			summary.MonthlyPayment = summary.MonthlyPayment.Add(installment.Amount)
		}

		if installment.IsOverdue(today) {
			summary.OverdueCount++
		}
	}

	summary.RecurringPayments = len(recurringSeen)
	summary.OneTimePayments = len(oneTimeSeen)
	summary.TotalPayments = len(recurringSeen) + len(oneTimeSeen)

	return &PaymentSummaryOutput{Summary: summary}, nil
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
