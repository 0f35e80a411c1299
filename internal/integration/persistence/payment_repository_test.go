package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/loan-tracker/engine/internal/application/adapter"
	"github.com/loan-tracker/engine/internal/domain/entity"
	domainerror "github.com/loan-tracker/engine/internal/domain/error"
)

// createPayment persists a payment with a monthly schedule and returns it.
func createPayment(t *testing.T, repo adapter.PaymentRepository, name string, total string, start time.Time, installments int) *entity.Payment {
	t.Helper()
	payment := entity.NewPayment(name, amount(total), start, installments > 1, installments, nil, "")
	each := amount(total).Div(decimal.NewFromInt(int64(installments))).Round(2)
	schedule := make([]*entity.Installment, installments)
	for i := range schedule {
		schedule[i] = entity.NewInstallment(payment.ID, each, start.AddDate(0, i, 0))
	}
	if err := repo.Create(context.Background(), payment, schedule); err != nil {
		t.Fatalf("failed to create payment: %v", err)
	}
	return payment
}

func TestPaymentRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create persists payment and schedule together", func(t *testing.T) {
		store := newTestStore(t)
		payments := NewPaymentRepository(store)
		installments := NewInstallmentRepository(store)

		payment := createPayment(t, payments, "Laptop", "1200.00", date(2024, time.January, 15), 12)

		found, err := payments.FindByID(ctx, payment.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Name != "Laptop" || !found.Amount.Equal(amount("1200.00")) {
			t.Errorf("unexpected payment: %+v", found)
		}

		schedule, err := installments.FindByPayment(ctx, payment.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(schedule) != 12 {
			t.Fatalf("expected 12 installments, got %d", len(schedule))
		}
		for i := 1; i < len(schedule); i++ {
			if schedule[i].DueDate.Before(schedule[i-1].DueDate) {
				t.Fatal("expected schedule ordered by due date ascending")
			}
		}
	})

	t.Run("find by unknown id yields not found", func(t *testing.T) {
		store := newTestStore(t)
		payments := NewPaymentRepository(store)

		_, err := payments.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("stats gate on in-window installments", func(t *testing.T) {
		store := newTestStore(t)
		payments := NewPaymentRepository(store)

		createPayment(t, payments, "January", "100.00", date(2024, time.January, 10), 1)
		createPayment(t, payments, "June", "200.00", date(2024, time.June, 10), 1)

		start := date(2024, time.June, 1)
		end := date(2024, time.June, 30)
		stats, err := payments.FindWithStats(ctx, adapter.DateWindow{StartDate: &start, EndDate: &end})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stats) != 1 {
			t.Fatalf("expected 1 payment in window, got %d", len(stats))
		}
		if stats[0].Payment.Name != "June" {
			t.Errorf("expected June, got %s", stats[0].Payment.Name)
		}
	})

	t.Run("open window returns every payment with progress", func(t *testing.T) {
		store := newTestStore(t)
		payments := NewPaymentRepository(store)
		installments := NewInstallmentRepository(store)

		payment := createPayment(t, payments, "Car", "1200.00", date(2024, time.May, 1), 12)
		schedule, err := installments.FindByPayment(ctx, payment.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		schedule[0].MarkPaid(date(2024, time.May, 2), "", "")
		if err := installments.Update(ctx, schedule[0]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stats, err := payments.FindWithStats(ctx, adapter.DateWindow{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stats) != 1 {
			t.Fatalf("expected 1 payment, got %d", len(stats))
		}
		got := stats[0]
		if got.TotalInstallments != 12 || got.PaidInstallments != 1 {
			t.Errorf("expected 1 of 12 paid, got %d of %d", got.PaidInstallments, got.TotalInstallments)
		}
		if !got.TotalPaid.Equal(amount("100.00")) {
			t.Errorf("expected total paid 100.00, got %s", got.TotalPaid)
		}
	})

	t.Run("delete cascades to installments and is idempotent", func(t *testing.T) {
		store := newTestStore(t)
		payments := NewPaymentRepository(store)
		installments := NewInstallmentRepository(store)

		payment := createPayment(t, payments, "Phone", "600.00", date(2024, time.February, 1), 6)
		schedule, err := installments.FindByPayment(ctx, payment.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := payments.Delete(ctx, payment.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := payments.FindByID(ctx, payment.ID); !errors.Is(err, domainerror.ErrPaymentNotFound) {
			t.Fatalf("expected payment to be gone, got %v", err)
		}
		if _, err := installments.FindByID(ctx, schedule[0].ID); !errors.Is(err, domainerror.ErrInstallmentNotFound) {
			t.Fatalf("expected installments to be gone, got %v", err)
		}

		// Second delete of the same id succeeds.
		if err := payments.Delete(ctx, payment.ID); err != nil {
			t.Fatalf("expected idempotent delete, got %v", err)
		}
	})
}
