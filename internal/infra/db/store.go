// Package db provides the ledger store: ownership of the storage connection
// and its open/retry/reset lifecycle.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/loan-tracker/engine/config"
	domainerror "github.com/loan-tracker/engine/internal/domain/error"
	"github.com/loan-tracker/engine/internal/integration/persistence/model"
)

const healthCheckTimeout = 2 * time.Second

// Store owns the single live handle to durable storage. Access to the
// cached handle is serialized so concurrent callers never race to open two
// connections; the first caller after cold start pays the migration cost.
type Store struct {
	cfg *config.DatabaseConfig

	mu   sync.Mutex
	conn *gorm.DB
}

// NewStore creates a ledger store. The storage medium is not touched until
// the first Acquire or Session call.
func NewStore(cfg *config.DatabaseConfig) *Store {
	return &Store{cfg: cfg}
}

// Acquire returns the current live handle, lazily opening and migrating the
// store on first use.
func (s *Store) Acquire(ctx context.Context) (*gorm.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acquireLocked(ctx)
}

func (s *Store) acquireLocked(ctx context.Context) (*gorm.DB, error) {
	if s.conn != nil {
		return s.conn, nil
	}

	conn, err := s.open(ctx)
	if err != nil {
		return nil, domainerror.NewStorageError(
			domainerror.ErrCodeStorageOpenFailed,
			"failed to open ledger store",
			fmt.Errorf("%w: %v", domainerror.ErrStorageUnavailable, err),
		)
	}

	s.conn = conn
	return s.conn, nil
}

func (s *Store) open(ctx context.Context) (*gorm.DB, error) {
	dialector, err := s.dialector()
	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open connection: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(s.cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(s.cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(s.cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	// Idempotent schema migration: every table is created if absent.
	if err := conn.AutoMigrate(model.All()...); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	slog.Info("Ledger store opened", "driver", s.cfg.Driver)
	return conn, nil
}

func (s *Store) dialector() (gorm.Dialector, error) {
	switch s.cfg.Driver {
	case config.DriverSQLite:
		return sqlite.Open(s.cfg.Path), nil
	case config.DriverPostgres:
		return postgres.Open(s.cfg.URL), nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", s.cfg.Driver)
	}
}

// HealthCheck issues a trivial no-op query against the given handle to
// detect a severed connection.
func (s *Store) HealthCheck(ctx context.Context, conn *gorm.DB) bool {
	sqlDB, err := conn.DB()
	if err != nil {
		slog.Error("Failed to get sql.DB for health check", "error", err)
		return false
	}

	pingCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		slog.Error("Ledger store health check failed", "error", err)
		return false
	}

	return true
}

// Session returns a healthy handle for a repository operation. When the
// health check on the cached handle fails, the handle is discarded and
// reacquired exactly once before the failure propagates. This bounds
// recovery cost while tolerating a backgrounded-then-resumed host
// invalidating its connection.
func (s *Store) Session(ctx context.Context) (*gorm.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conn, err := s.acquireLocked(ctx)
	if err == nil && s.HealthCheck(ctx, conn) {
		return conn, nil
	}

	slog.Warn("Ledger store handle unusable, reacquiring", "error", err)
	s.discardLocked()

	conn, err = s.acquireLocked(ctx)
	if err != nil {
		return nil, err
	}
	if !s.HealthCheck(ctx, conn) {
		s.discardLocked()
		return nil, domainerror.NewStorageError(
			domainerror.ErrCodeStorageHealthCheck,
			"ledger store health check failed twice",
			domainerror.ErrStorageUnavailable,
		)
	}

	return conn, nil
}

func (s *Store) discardLocked() {
	if s.conn == nil {
		return
	}
	if sqlDB, err := s.conn.DB(); err == nil {
		_ = sqlDB.Close()
	}
	s.conn = nil
}

// Reset closes any live handle, deletes the underlying storage artifact,
// and re-opens a fresh, empty, migrated store. Destructive; intended only
// for an explicit user-initiated wipe.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.cfg.Driver {
	case config.DriverSQLite:
		s.discardLocked()
		if err := s.removeSQLiteArtifacts(); err != nil {
			return domainerror.NewStorageError(
				domainerror.ErrCodeStorageResetFailed,
				"failed to remove ledger database file",
				fmt.Errorf("%w: %v", domainerror.ErrStorageUnavailable, err),
			)
		}
	case config.DriverPostgres:
		conn, err := s.acquireLocked(ctx)
		if err != nil {
			return err
		}
		// No file to delete; drop the engine's tables instead.
		for _, m := range model.All() {
			if err := conn.WithContext(ctx).Migrator().DropTable(m); err != nil {
				return domainerror.NewStorageError(
					domainerror.ErrCodeStorageResetFailed,
					"failed to drop ledger tables",
					fmt.Errorf("%w: %v", domainerror.ErrStorageUnavailable, err),
				)
			}
		}
		s.discardLocked()
	}

	if _, err := s.acquireLocked(ctx); err != nil {
		return err
	}

	slog.Info("Ledger store reset", "driver", s.cfg.Driver)
	return nil
}

func (s *Store) removeSQLiteArtifacts() error {
	for _, path := range []string{s.cfg.Path, s.cfg.Path + "-wal", s.cfg.Path + "-shm"} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}

	sqlDB, err := s.conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB for closing: %w", err)
	}
	s.conn = nil

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close ledger store: %w", err)
	}

	slog.Info("Ledger store closed")
	return nil
}
