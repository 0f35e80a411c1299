// Package persistence contains the gorm-backed repository implementations.
package persistence

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/loan-tracker/engine/config"
	"github.com/loan-tracker/engine/internal/infra/db"
)

// newTestStore opens a throwaway sqlite-backed store for one test.
func newTestStore(t *testing.T) *db.Store {
	t.Helper()
	cfg := &config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		Path:            filepath.Join(t.TempDir(), "ledger.db"),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 5 * time.Minute,
	}
	store := db.NewStore(cfg)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func amount(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
