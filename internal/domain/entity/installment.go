// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Installment represents one scheduled, individually payable portion of a
// Payment. Only the paid state (and its annotations) mutates after creation.
type Installment struct {
	ID            uuid.UUID
	PaymentID     uuid.UUID
	Amount        decimal.Decimal
	DueDate       time.Time
	IsPaid        bool
	PaidDate      *time.Time // set exactly while IsPaid is true
	PaymentMethod string     // e.g. "cash", "transfer"; set when marked paid
	Notes         string
}

// NewInstallment creates a new unpaid Installment entity.
func NewInstallment(paymentID uuid.UUID, amount decimal.Decimal, dueDate time.Time) *Installment {
	return &Installment{
		ID:        uuid.New(),
		PaymentID: paymentID,
		Amount:    amount,
		DueDate:   dueDate,
	}
}

// IsOverdue reports whether the installment is unpaid past its due date,
// relative to the supplied current date.
func (i *Installment) IsOverdue(today time.Time) bool {
	return !i.IsPaid && i.DueDate.Before(truncateToDate(today))
}

// MarkPaid transitions the installment to the paid state. Marking an
// already-paid installment refreshes the paid date.
func (i *Installment) MarkPaid(today time.Time, paymentMethod, notes string) {
	paidDate := truncateToDate(today)
	i.IsPaid = true
	i.PaidDate = &paidDate
	if paymentMethod != "" {
		i.PaymentMethod = paymentMethod
	}
	if notes != "" {
		i.Notes = notes
	}
}

// UnmarkPaid reverses a paid transition, restoring the pre-mark state.
func (i *Installment) UnmarkPaid() {
	i.IsPaid = false
	i.PaidDate = nil
	i.PaymentMethod = ""
	i.Notes = ""
}

// InstallmentWithStatus represents an installment annotated with its derived
// overdue flag. The flag is computed at read time and never persisted.
type InstallmentWithStatus struct {
	Installment *Installment
	IsOverdue   bool
}

// InstallmentWithPayment pairs an installment with its owning payment, as
// read back for summary projections.
type InstallmentWithPayment struct {
	Installment *Installment
	Payment     *Payment
}

// truncateToDate drops the time-of-day component, keeping calendar-date
// precision in UTC.
func truncateToDate(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
