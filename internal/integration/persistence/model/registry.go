// Package model defines database models for persistence layer.
package model

// All returns every model the store migrates, in dependency order so
// foreign key constraints resolve during migration.
func All() []any {
	return []any{
		&CategoryModel{},
		&PaymentModel{},
		&InstallmentModel{},
		&IncomeModel{},
	}
}
