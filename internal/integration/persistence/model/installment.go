// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/loan-tracker/engine/internal/domain/entity"
)

// InstallmentModel represents the installments table in the database.
type InstallmentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PaymentID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDate       time.Time       `gorm:"type:date;not null;index"`
	IsPaid        bool            `gorm:"default:false;index"`
	PaidDate      *time.Time      `gorm:"type:date"`
	PaymentMethod string          `gorm:"type:varchar(50)"`
	Notes         string          `gorm:"type:text"`
}

// TableName returns the table name for the InstallmentModel.
func (InstallmentModel) TableName() string {
	return "installments"
}

// ToEntity converts an InstallmentModel to a domain Installment entity.
func (m *InstallmentModel) ToEntity() *entity.Installment {
	return &entity.Installment{
		ID:            m.ID,
		PaymentID:     m.PaymentID,
		Amount:        m.Amount,
		DueDate:       m.DueDate,
		IsPaid:        m.IsPaid,
		PaidDate:      m.PaidDate,
		PaymentMethod: m.PaymentMethod,
		Notes:         m.Notes,
	}
}

// InstallmentFromEntity creates an InstallmentModel from a domain Installment entity.
func InstallmentFromEntity(installment *entity.Installment) *InstallmentModel {
	return &InstallmentModel{
		ID:            installment.ID,
		PaymentID:     installment.PaymentID,
		Amount:        installment.Amount,
		DueDate:       installment.DueDate,
		IsPaid:        installment.IsPaid,
		PaidDate:      installment.PaidDate,
		PaymentMethod: installment.PaymentMethod,
		Notes:         installment.Notes,
	}
}
