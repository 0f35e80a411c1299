// Package config provides application configuration management.
package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := Load()

		if cfg.Database.Driver != DriverSQLite {
			t.Errorf("expected default driver %s, got %s", DriverSQLite, cfg.Database.Driver)
		}
		if cfg.Database.Path != "loan-tracker.db" {
			t.Errorf("expected default path loan-tracker.db, got %s", cfg.Database.Path)
		}
		if cfg.Database.MaxOpenConns != 1 || cfg.Database.MaxIdleConns != 1 {
			t.Errorf("expected single-connection pool defaults, got %d/%d",
				cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
		}
		if cfg.Database.ConnMaxLifetime != 5*time.Minute {
			t.Errorf("expected 5m connection lifetime, got %s", cfg.Database.ConnMaxLifetime)
		}
		if cfg.Summary.UpcomingHorizonDays != 10 {
			t.Errorf("expected 10 day upcoming horizon, got %d", cfg.Summary.UpcomingHorizonDays)
		}
		if cfg.Summary.UpcomingLimit != 5 {
			t.Errorf("expected upcoming limit 5, got %d", cfg.Summary.UpcomingLimit)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("LEDGER_DB_DRIVER", DriverPostgres)
		t.Setenv("LEDGER_DB_URL", "postgres://localhost/ledger")
		t.Setenv("LEDGER_DB_MAX_OPEN_CONNS", "4")
		t.Setenv("LEDGER_DB_CONN_MAX_LIFETIME", "30s")
		t.Setenv("LEDGER_UPCOMING_HORIZON_DAYS", "14")

		cfg := Load()

		if cfg.Database.Driver != DriverPostgres {
			t.Errorf("expected driver override, got %s", cfg.Database.Driver)
		}
		if cfg.Database.URL != "postgres://localhost/ledger" {
			t.Errorf("expected URL override, got %s", cfg.Database.URL)
		}
		if cfg.Database.MaxOpenConns != 4 {
			t.Errorf("expected 4 open conns, got %d", cfg.Database.MaxOpenConns)
		}
		if cfg.Database.ConnMaxLifetime != 30*time.Second {
			t.Errorf("expected 30s lifetime, got %s", cfg.Database.ConnMaxLifetime)
		}
		if cfg.Summary.UpcomingHorizonDays != 14 {
			t.Errorf("expected 14 day horizon, got %d", cfg.Summary.UpcomingHorizonDays)
		}
	})

	t.Run("malformed numeric values fall back to defaults", func(t *testing.T) {
		t.Setenv("LEDGER_DB_MAX_OPEN_CONNS", "many")
		t.Setenv("LEDGER_DB_CONN_MAX_LIFETIME", "soon")

		cfg := Load()

		if cfg.Database.MaxOpenConns != 1 {
			t.Errorf("expected fallback to 1, got %d", cfg.Database.MaxOpenConns)
		}
		if cfg.Database.ConnMaxLifetime != 5*time.Minute {
			t.Errorf("expected fallback to 5m, got %s", cfg.Database.ConnMaxLifetime)
		}
	})
}
