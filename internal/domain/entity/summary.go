// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentSummary aggregates payment totals and counts over a date window.
// It is a pure read-side projection, never persisted.
type PaymentSummary struct {
	TotalPayments     int             // distinct payments with an in-window installment
	TotalAmount       decimal.Decimal // sum of in-window installment amounts
	RecurringPayments int
	OneTimePayments   int
	TotalPaid         decimal.Decimal
	TotalRemaining    decimal.Decimal
	MonthlyPayment    decimal.Decimal // installments due in the current calendar month
	OverdueCount      int
}

// NewPaymentSummary returns a zeroed summary, the legitimate result for an
// empty store.
func NewPaymentSummary() *PaymentSummary {
	return &PaymentSummary{
		TotalAmount:    decimal.Zero,
		TotalPaid:      decimal.Zero,
		TotalRemaining: decimal.Zero,
		MonthlyPayment: decimal.Zero,
	}
}

// IncomeSummary aggregates income totals over a date window.
type IncomeSummary struct {
	TotalAmount  decimal.Decimal
	TotalIncomes int
	MonthlyTotal decimal.Decimal // current calendar month
	YearlyTotal  decimal.Decimal // current calendar year
}

// NewIncomeSummary returns a zeroed summary.
func NewIncomeSummary() *IncomeSummary {
	return &IncomeSummary{
		TotalAmount:  decimal.Zero,
		MonthlyTotal: decimal.Zero,
		YearlyTotal:  decimal.Zero,
	}
}

// UpcomingPayment is the earliest unpaid installment of a payment falling
// inside the upcoming horizon. One row per payment.
type UpcomingPayment struct {
	PaymentID     uuid.UUID
	InstallmentID uuid.UUID
	Name          string
	Amount        decimal.Decimal
	DueDate       time.Time
}
