// Package maintenance contains administrative operations on the ledger store.
package maintenance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/loan-tracker/engine/internal/application/adapter"
)

// ResetStoreOutput represents the output of a store reset.
type ResetStoreOutput struct {
	Success bool
}

// ResetStoreUseCase wipes all ledger data and reinitializes the store.
type ResetStoreUseCase struct {
	storeManager adapter.StoreManager
}

// NewResetStoreUseCase creates a new ResetStoreUseCase instance.
func NewResetStoreUseCase(storeManager adapter.StoreManager) *ResetStoreUseCase {
	return &ResetStoreUseCase{storeManager: storeManager}
}

// Execute resets the ledger store to an empty state.
func (uc *ResetStoreUseCase) Execute(ctx context.Context) (*ResetStoreOutput, error) {
	if err := uc.storeManager.Reset(ctx); err != nil {
		return nil, fmt.Errorf("failed to reset store: %w", err)
	}

	slog.Info("ledger store reset")

	return &ResetStoreOutput{Success: true}, nil
}
