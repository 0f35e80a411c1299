// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Income represents a one-off income record. Incomes carry no schedule and
// no paid state.
type Income struct {
	ID          uuid.UUID
	Name        string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	CreatedAt   time.Time
}

// NewIncome creates a new Income entity.
func NewIncome(name string, amount decimal.Decimal, date time.Time, description string) *Income {
	return &Income{
		ID:          uuid.New(),
		Name:        name,
		Amount:      amount,
		Date:        date,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}
