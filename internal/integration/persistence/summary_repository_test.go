package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/loan-tracker/engine/internal/application/adapter"
)

func TestSummaryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("installments in window carry their owning payment", func(t *testing.T) {
		store := newTestStore(t)
		payments := NewPaymentRepository(store)
		summaries := NewSummaryRepository(store)

		car := createPayment(t, payments, "Car", "1200.00", date(2024, time.May, 1), 12)
		createPayment(t, payments, "Later", "500.00", date(2025, time.January, 1), 1)

		start := date(2024, time.May, 1)
		end := date(2024, time.June, 30)
		pairs, err := summaries.FindInstallmentsInWindow(ctx, adapter.DateWindow{StartDate: &start, EndDate: &end})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(pairs) != 2 {
			t.Fatalf("expected 2 installments in window, got %d", len(pairs))
		}
		for _, pair := range pairs {
			if pair.Payment == nil || pair.Payment.ID != car.ID {
				t.Errorf("expected owning payment Car, got %+v", pair.Payment)
			}
		}
	})

	t.Run("unpaid due by cutoff excludes paid and later installments", func(t *testing.T) {
		store := newTestStore(t)
		payments := NewPaymentRepository(store)
		installments := NewInstallmentRepository(store)
		summaries := NewSummaryRepository(store)

		car := createPayment(t, payments, "Car", "1200.00", date(2024, time.May, 1), 12)
		schedule, err := installments.FindByPayment(ctx, car.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		schedule[0].MarkPaid(date(2024, time.May, 2), "", "")
		if err := installments.Update(ctx, schedule[0]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cutoff := date(2024, time.June, 25)
		pairs, err := summaries.FindUnpaidInstallmentsDueBy(ctx, cutoff)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Only the June installment: May is paid, July and later are past
		// the cutoff.
		if len(pairs) != 1 {
			t.Fatalf("expected 1 unpaid installment, got %d", len(pairs))
		}
		if !pairs[0].Installment.DueDate.Equal(date(2024, time.June, 1)) {
			t.Errorf("expected the June installment, got due %s", pairs[0].Installment.DueDate)
		}
	})

	t.Run("results are ordered by due date ascending", func(t *testing.T) {
		store := newTestStore(t)
		payments := NewPaymentRepository(store)
		summaries := NewSummaryRepository(store)

		createPayment(t, payments, "Car", "300.00", date(2024, time.May, 10), 3)
		createPayment(t, payments, "Rent", "200.00", date(2024, time.May, 1), 2)

		pairs, err := summaries.FindUnpaidInstallmentsDueBy(ctx, date(2024, time.December, 31))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 1; i < len(pairs); i++ {
			if pairs[i].Installment.DueDate.Before(pairs[i-1].Installment.DueDate) {
				t.Fatal("expected due date ascending order")
			}
		}
	})
}
