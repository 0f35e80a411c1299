// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/loan-tracker/engine/internal/domain/entity"
)

// PaymentModel represents the payments table in the database.
type PaymentModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	StartDate    time.Time       `gorm:"type:date;not null;index"`
	IsRecurring  bool            `gorm:"default:false"`
	Installments int             `gorm:"not null;default:1"`
	CategoryID   *uuid.UUID      `gorm:"type:uuid;index"`
	Description  string          `gorm:"type:text"`
	CreatedAt    time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Schedule []InstallmentModel `gorm:"foreignKey:PaymentID;references:ID;constraint:OnDelete:CASCADE"`
	Category *CategoryModel     `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for the PaymentModel.
func (PaymentModel) TableName() string {
	return "payments"
}

// ToEntity converts a PaymentModel to a domain Payment entity.
func (m *PaymentModel) ToEntity() *entity.Payment {
	return &entity.Payment{
		ID:           m.ID,
		Name:         m.Name,
		Amount:       m.Amount,
		StartDate:    m.StartDate,
		IsRecurring:  m.IsRecurring,
		Installments: m.Installments,
		CategoryID:   m.CategoryID,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
	}
}

// PaymentFromEntity creates a PaymentModel from a domain Payment entity.
func PaymentFromEntity(payment *entity.Payment) *PaymentModel {
	return &PaymentModel{
		ID:           payment.ID,
		Name:         payment.Name,
		Amount:       payment.Amount,
		StartDate:    payment.StartDate,
		IsRecurring:  payment.IsRecurring,
		Installments: payment.Installments,
		CategoryID:   payment.CategoryID,
		Description:  payment.Description,
		CreatedAt:    payment.CreatedAt,
	}
}
