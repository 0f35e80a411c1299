// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DriverSQLite selects the embedded single-file store (the default for a
// single-device ledger).
const DriverSQLite = "sqlite"

// DriverPostgres selects a PostgreSQL store. The engine logic is
// dialect-free, so the same repositories run unchanged against it.
const DriverPostgres = "postgres"

// Config holds all engine configuration.
type Config struct {
	Database DatabaseConfig
	Summary  SummaryConfig
}

// DatabaseConfig holds ledger store configuration.
type DatabaseConfig struct {
	Driver          string
	Path            string // sqlite database file path
	URL             string // postgres connection URL
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// SummaryConfig holds defaults for the summary projections.
type SummaryConfig struct {
	UpcomingHorizonDays int
	UpcomingLimit       int
}

// Load loads configuration from environment variables.
// A .env file in the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			Driver:          getEnv("LEDGER_DB_DRIVER", DriverSQLite),
			Path:            getEnv("LEDGER_DB_PATH", "loan-tracker.db"),
			URL:             getEnv("LEDGER_DB_URL", ""),
			MaxOpenConns:    getEnvAsInt("LEDGER_DB_MAX_OPEN_CONNS", 1),
			MaxIdleConns:    getEnvAsInt("LEDGER_DB_MAX_IDLE_CONNS", 1),
			ConnMaxLifetime: getEnvAsDuration("LEDGER_DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Summary: SummaryConfig{
			UpcomingHorizonDays: getEnvAsInt("LEDGER_UPCOMING_HORIZON_DAYS", 10),
			UpcomingLimit:       getEnvAsInt("LEDGER_UPCOMING_LIMIT", 5),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
