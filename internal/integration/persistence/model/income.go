// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/loan-tracker/engine/internal/domain/entity"
)

// IncomeModel represents the incomes table in the database.
type IncomeModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Description string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	return &entity.Income{
		ID:          m.ID,
		Name:        m.Name,
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(income *entity.Income) *IncomeModel {
	return &IncomeModel{
		ID:          income.ID,
		Name:        income.Name,
		Amount:      income.Amount,
		Date:        income.Date,
		Description: income.Description,
		CreatedAt:   income.CreatedAt,
	}
}
