// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// StoreManager exposes the destructive lifecycle of the ledger store to the
// application layer without binding it to a concrete storage engine.
type StoreManager interface {
	// Reset wipes the underlying storage artifact and re-creates a fresh,
	// empty, migrated store.
	Reset(ctx context.Context) error
}
