// Package storage owns the transaction collection and its persistence.
package storage

import (
	"context"

	"github.com/amanjot-a/fintrack/internal/model"
)

// Store is the persistence medium for the transaction collection. The
// whole collection is written on every mutation; there is no incremental
// persistence. Implementations must treat absent data as an empty
// collection.
type Store interface {
	// Load reads the persisted collection. A missing backing document
	// yields an empty slice, not an error.
	Load(ctx context.Context) ([]model.Transaction, error)
	// Save replaces the persisted collection.
	Save(ctx context.Context, transactions []model.Transaction) error
}
