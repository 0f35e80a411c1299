// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"
)

// SessionProvider hands out a healthy database handle for a single
// repository operation. The ledger store implements it, performing its
// health-check-and-reacquire-once policy behind this interface.
type SessionProvider interface {
	Session(ctx context.Context) (*gorm.DB, error)
}
