// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment represents a loan, bill, or recurring obligation. It is the
// aggregate root owning a schedule of installments: the installments are
// created atomically with the payment and deleted when it is deleted.
type Payment struct {
	ID           uuid.UUID
	Name         string
	Amount       decimal.Decimal // total value, two decimal places
	StartDate    time.Time
	IsRecurring  bool
	Installments int // count of owned installments, >= 1
	CategoryID   *uuid.UUID
	Description  string
	CreatedAt    time.Time
}

// NewPayment creates a new Payment entity.
// Note: the non-recurring-forces-one-installment rule is applied in the
// application layer (use case) before calling this constructor.
func NewPayment(
	name string,
	amount decimal.Decimal,
	startDate time.Time,
	isRecurring bool,
	installments int,
	categoryID *uuid.UUID,
	description string,
) *Payment {
	return &Payment{
		ID:           uuid.New(),
		Name:         name,
		Amount:       amount,
		StartDate:    startDate,
		IsRecurring:  isRecurring,
		Installments: installments,
		CategoryID:   categoryID,
		Description:  description,
		CreatedAt:    time.Now().UTC(),
	}
}

// PaymentWithStats represents a payment annotated with schedule progress.
type PaymentWithStats struct {
	Payment           *Payment
	TotalInstallments int
	PaidInstallments  int
	TotalPaid         decimal.Decimal
	Progress          float64 // paid / total * 100
}

// NewPaymentWithStats computes the schedule progress annotation for a
// payment from its (possibly window-filtered) installments.
func NewPaymentWithStats(payment *Payment, installments []*Installment) *PaymentWithStats {
	stats := &PaymentWithStats{
		Payment:           payment,
		TotalInstallments: len(installments),
		TotalPaid:         decimal.Zero,
	}

	for _, installment := range installments {
		if installment.IsPaid {
			stats.PaidInstallments++
			stats.TotalPaid = stats.TotalPaid.Add(installment.Amount)
		}
	}

	if stats.TotalInstallments > 0 {
		stats.Progress = float64(stats.PaidInstallments) / float64(stats.TotalInstallments) * 100
	}

	return stats
}

// PaymentDetail represents a payment with its full annotated schedule.
type PaymentDetail struct {
	Payment  *PaymentWithStats
	Schedule []*InstallmentWithStatus
}
