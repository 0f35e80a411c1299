// Package schedule generates amortization schedules for payments. It is
// pure: no I/O, no clock, no store access.
package schedule

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/loan-tracker/engine/internal/domain/error"
)

// Draft is one generated installment before persistence: an amount and a
// due date, in schedule order.
type Draft struct {
	Amount  decimal.Decimal
	DueDate time.Time
}

// Generate produces the ordered installment drafts for the given payment
// terms.
//
// A non-recurring payment yields exactly one draft for the full amount due
// on the start date, regardless of the supplied count. A recurring payment
// yields count drafts of amount/count rounded to two decimals, due on the
// start date advanced by 0..count-1 whole calendar months. The rounding
// difference is applied to the final installment so the drafts always sum
// back to the original amount exactly (100.00 / 3 -> 33.33, 33.33, 33.34).
func Generate(amount decimal.Decimal, startDate time.Time, isRecurring bool, installments int) ([]Draft, error) {
	if !amount.IsPositive() {
		return nil, domainerror.NewScheduleError(
			domainerror.ErrCodeInvalidScheduleAmount,
			"amount must be positive",
			domainerror.ErrInvalidSchedule,
		)
	}
	if installments < 1 {
		return nil, domainerror.NewScheduleError(
			domainerror.ErrCodeInvalidScheduleCount,
			"installment count must be at least 1",
			domainerror.ErrInvalidSchedule,
		)
	}

	amount = amount.Round(2)

	if !isRecurring || installments == 1 {
		return []Draft{{Amount: amount, DueDate: startDate}}, nil
	}

	count := decimal.NewFromInt(int64(installments))
	base := amount.Div(count).Round(2)
	// Remainder policy: the final installment absorbs the rounding
	// difference, keeping sum(drafts) == amount exact.
	last := amount.Sub(base.Mul(decimal.NewFromInt(int64(installments - 1))))

	drafts := make([]Draft, installments)
	sum := decimal.Zero
	for i := 0; i < installments; i++ {
		installmentAmount := base
		if i == installments-1 {
			installmentAmount = last
		}
		drafts[i] = Draft{
			Amount:  installmentAmount,
			DueDate: addMonths(startDate, i),
		}
		sum = sum.Add(installmentAmount)
	}

	if !sum.Equal(amount) {
		return nil, domainerror.NewScheduleError(
			domainerror.ErrCodeScheduleSumMismatch,
			fmt.Sprintf("generated schedule sums to %s, want %s", sum, amount),
			domainerror.ErrScheduleGeneration,
		)
	}

	return drafts, nil
}

// addMonths advances a date by whole calendar months, preserving the day of
// month where the target month permits and clamping to its last day
// otherwise (Jan 31 + 1 month -> Feb 28/29).
func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := lastDayOfMonth(firstOfTarget); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, t.Location())
}

func lastDayOfMonth(firstOfMonth time.Time) int {
	return firstOfMonth.AddDate(0, 1, -1).Day()
}
