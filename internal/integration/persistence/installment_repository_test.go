package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/loan-tracker/engine/internal/domain/entity"
	domainerror "github.com/loan-tracker/engine/internal/domain/error"
)

func TestInstallmentRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("paid state survives a persistence round trip", func(t *testing.T) {
		store := newTestStore(t)
		payments := NewPaymentRepository(store)
		installments := NewInstallmentRepository(store)

		payment := createPayment(t, payments, "Car", "1200.00", date(2024, time.May, 1), 12)
		schedule, err := installments.FindByPayment(ctx, payment.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		first := schedule[0]
		first.MarkPaid(date(2024, time.May, 3), "transfer", "first one")
		if err := installments.Update(ctx, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := installments.FindByID(ctx, first.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !stored.IsPaid {
			t.Error("expected stored installment to be paid")
		}
		if stored.PaidDate == nil || !stored.PaidDate.Equal(date(2024, time.May, 3)) {
			t.Errorf("expected paid date 2024-05-03, got %v", stored.PaidDate)
		}
		if stored.PaymentMethod != "transfer" || stored.Notes != "first one" {
			t.Errorf("expected method and notes to persist, got %q %q", stored.PaymentMethod, stored.Notes)
		}
	})

	t.Run("unmark clears every paid field", func(t *testing.T) {
		store := newTestStore(t)
		payments := NewPaymentRepository(store)
		installments := NewInstallmentRepository(store)

		payment := createPayment(t, payments, "TV", "300.00", date(2024, time.May, 1), 3)
		schedule, err := installments.FindByPayment(ctx, payment.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		first := schedule[0]
		first.MarkPaid(date(2024, time.May, 3), "cash", "note")
		if err := installments.Update(ctx, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		first.UnmarkPaid()
		if err := installments.Update(ctx, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := installments.FindByID(ctx, first.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stored.IsPaid || stored.PaidDate != nil || stored.PaymentMethod != "" || stored.Notes != "" {
			t.Errorf("expected pristine unpaid state, got %+v", stored)
		}
	})

	t.Run("updating an unknown installment yields not found", func(t *testing.T) {
		store := newTestStore(t)
		installments := NewInstallmentRepository(store)

		ghost := entity.NewInstallment(uuid.New(), amount("10.00"), date(2024, time.May, 1))
		if err := installments.Update(ctx, ghost); !errors.Is(err, domainerror.ErrInstallmentNotFound) {
			t.Fatalf("expected ErrInstallmentNotFound, got %v", err)
		}
	})
}
