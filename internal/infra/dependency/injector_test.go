// Package dependency provides dependency injection for the engine.
package dependency

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/loan-tracker/engine/config"
	"github.com/loan-tracker/engine/internal/application/usecase/installment"
	"github.com/loan-tracker/engine/internal/application/usecase/payment"
	"github.com/loan-tracker/engine/internal/application/usecase/summary"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func newTestInjector(t *testing.T, today time.Time) *Injector {
	t.Helper()
	cfg := config.Load()
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.Path = filepath.Join(t.TempDir(), "ledger.db")

	injector := NewInjector(cfg, fixedClock{now: today})
	t.Cleanup(func() { _ = injector.Close() })
	return injector
}

// TestEngineEndToEnd drives the engine through its wired use cases the way
// an embedding application would: create a payment, pay an installment, and
// read every projection back.
func TestEngineEndToEnd(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	engine := newTestInjector(t, today)

	created, err := engine.CreatePayment.Execute(ctx, payment.CreatePaymentInput{
		Name:         "Car loan",
		Amount:       decimal.RequireFromString("1200.00"),
		StartDate:    time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC),
		IsRecurring:  true,
		Installments: 12,
	})
	if err != nil {
		t.Fatalf("failed to create payment: %v", err)
	}
	if len(created.Schedule) != 12 {
		t.Fatalf("expected 12 installments, got %d", len(created.Schedule))
	}

	listed, err := engine.ListInstallments.Execute(ctx, installment.ListInstallmentsInput{
		PaymentID: created.Payment.ID,
	})
	if err != nil {
		t.Fatalf("failed to list installments: %v", err)
	}
	if len(listed.Installments) != 12 {
		t.Fatalf("expected 12 installments, got %d", len(listed.Installments))
	}
	if !listed.Installments[0].IsOverdue {
		t.Error("expected the May installment to be overdue")
	}
	if listed.Installments[1].IsOverdue {
		t.Error("expected the June installment not yet overdue on its due date")
	}

	marked, err := engine.MarkInstallmentPaid.Execute(ctx, installment.MarkInstallmentPaidInput{
		InstallmentID: listed.Installments[0].Installment.ID,
		PaymentMethod: "transfer",
	})
	if err != nil {
		t.Fatalf("failed to mark installment paid: %v", err)
	}
	if marked.Installment.PaidDate == nil || !marked.Installment.PaidDate.Equal(today) {
		t.Errorf("expected paid date %s, got %v", today, marked.Installment.PaidDate)
	}

	detail, err := engine.GetPayment.Execute(ctx, payment.GetPaymentInput{PaymentID: created.Payment.ID})
	if err != nil {
		t.Fatalf("failed to get payment: %v", err)
	}
	stats := detail.Detail.Payment
	if stats.PaidInstallments != 1 || stats.TotalInstallments != 12 {
		t.Errorf("expected 1 of 12 paid, got %d of %d", stats.PaidInstallments, stats.TotalInstallments)
	}
	if !stats.TotalPaid.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("expected total paid 100.00, got %s", stats.TotalPaid)
	}

	sum, err := engine.PaymentSummary.Execute(ctx, summary.PaymentSummaryInput{})
	if err != nil {
		t.Fatalf("failed to compute summary: %v", err)
	}
	if sum.Summary.TotalPayments != 1 {
		t.Errorf("expected 1 payment in summary, got %d", sum.Summary.TotalPayments)
	}
	if !sum.Summary.TotalPaid.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("expected summary total paid 100.00, got %s", sum.Summary.TotalPaid)
	}
	// In-window installments are May and June; June is unpaid.
	if !sum.Summary.TotalRemaining.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("expected summary total remaining 100.00, got %s", sum.Summary.TotalRemaining)
	}
	if sum.Summary.OverdueCount != 0 {
		t.Errorf("expected no overdue after paying May, got %d", sum.Summary.OverdueCount)
	}

	upcoming, err := engine.UpcomingPayments.Execute(ctx, summary.UpcomingPaymentsInput{})
	if err != nil {
		t.Fatalf("failed to list upcoming payments: %v", err)
	}
	if len(upcoming.Payments) != 1 {
		t.Fatalf("expected 1 upcoming payment, got %d", len(upcoming.Payments))
	}
	if !upcoming.Payments[0].DueDate.Equal(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected the June installment upcoming, got due %s", upcoming.Payments[0].DueDate)
	}

	if _, err := engine.ResetStore.Execute(ctx); err != nil {
		t.Fatalf("failed to reset store: %v", err)
	}
	emptied, err := engine.ListPayments.Execute(ctx, payment.ListPaymentsInput{})
	if err != nil {
		t.Fatalf("failed to list payments after reset: %v", err)
	}
	if len(emptied.Payments) != 0 {
		t.Errorf("expected empty ledger after reset, got %d payments", len(emptied.Payments))
	}
}

// TestInjector_DefaultClock covers the nil-clock path.
func TestInjector_DefaultClock(t *testing.T) {
	cfg := config.Load()
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.Path = filepath.Join(t.TempDir(), "ledger.db")

	injector := NewInjector(cfg, nil)
	t.Cleanup(func() { _ = injector.Close() })

	if _, err := injector.ListPayments.Execute(context.Background(), payment.ListPaymentsInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
