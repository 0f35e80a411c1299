// Package entity contains the engine's domain entities.
package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewPaymentWithStats(t *testing.T) {
	start := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	payment := NewPayment("Car", decimal.RequireFromString("1200.00"), start, true, 12, nil, "")

	schedule := make([]*Installment, 12)
	for i := range schedule {
		schedule[i] = NewInstallment(payment.ID, decimal.RequireFromString("100.00"), start.AddDate(0, i, 0))
	}

	t.Run("no installments paid", func(t *testing.T) {
		stats := NewPaymentWithStats(payment, schedule)
		if stats.TotalInstallments != 12 || stats.PaidInstallments != 0 {
			t.Errorf("expected 0 of 12 paid, got %d of %d", stats.PaidInstallments, stats.TotalInstallments)
		}
		if !stats.TotalPaid.IsZero() {
			t.Errorf("expected zero total paid, got %s", stats.TotalPaid)
		}
		if stats.Progress != 0 {
			t.Errorf("expected 0%% progress, got %.2f", stats.Progress)
		}
	})

	t.Run("partial repayment", func(t *testing.T) {
		schedule[0].MarkPaid(start, "", "")
		schedule[1].MarkPaid(start, "", "")
		defer schedule[0].UnmarkPaid()
		defer schedule[1].UnmarkPaid()

		stats := NewPaymentWithStats(payment, schedule)
		if stats.PaidInstallments != 2 {
			t.Errorf("expected 2 paid, got %d", stats.PaidInstallments)
		}
		if !stats.TotalPaid.Equal(decimal.RequireFromString("200.00")) {
			t.Errorf("expected total paid 200.00, got %s", stats.TotalPaid)
		}
		want := 100.0 * 2 / 12
		if diff := stats.Progress - want; diff > 0.01 || diff < -0.01 {
			t.Errorf("expected progress %.2f, got %.2f", want, stats.Progress)
		}
	})

	t.Run("empty schedule has zero progress", func(t *testing.T) {
		stats := NewPaymentWithStats(payment, nil)
		if stats.Progress != 0 {
			t.Errorf("expected 0%% progress for empty schedule, got %.2f", stats.Progress)
		}
	})
}

func TestInstallment_Overdue(t *testing.T) {
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	paymentID := NewPayment("x", decimal.RequireFromString("1.00"), today, false, 1, nil, "").ID

	t.Run("unpaid past due date is overdue", func(t *testing.T) {
		installment := NewInstallment(paymentID, decimal.RequireFromString("1.00"), today.AddDate(0, 0, -1))
		if !installment.IsOverdue(today) {
			t.Error("expected overdue")
		}
	})

	t.Run("due today is not overdue", func(t *testing.T) {
		installment := NewInstallment(paymentID, decimal.RequireFromString("1.00"), today)
		if installment.IsOverdue(today) {
			t.Error("expected not overdue on the due date")
		}
	})

	t.Run("paid is never overdue", func(t *testing.T) {
		installment := NewInstallment(paymentID, decimal.RequireFromString("1.00"), today.AddDate(0, 0, -30))
		installment.MarkPaid(today, "", "")
		if installment.IsOverdue(today) {
			t.Error("expected paid installment not overdue")
		}
	})

	t.Run("mark then unmark restores the original state", func(t *testing.T) {
		installment := NewInstallment(paymentID, decimal.RequireFromString("1.00"), today)
		installment.MarkPaid(today, "cash", "note")
		installment.UnmarkPaid()
		if installment.IsPaid || installment.PaidDate != nil ||
			installment.PaymentMethod != "" || installment.Notes != "" {
			t.Errorf("expected pristine state, got %+v", installment)
		}
	})
}
