package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amanjot-a/fintrack/internal/common"
	"github.com/amanjot-a/fintrack/internal/model"
)

// Entry holds the user-supplied fields of a new transaction; the ledger
// assigns the ID.
type Entry struct {
	Date        time.Time
	Type        model.TransactionType
	Category    string
	Description string
	Amount      float64
}

// Ledger is the single owner of the ordered transaction collection.
// Order is newest-first: Add prepends. Every mutation synchronously
// persists the whole collection through the injected Store.
type Ledger struct {
	store        Store
	transactions []model.Transaction
}

// NewLedger creates a ledger backed by the given store. Call Load before
// use.
func NewLedger(store Store) *Ledger {
	return &Ledger{
		store:        store,
		transactions: []model.Transaction{},
	}
}

// Load reads the persisted collection. A malformed or unreadable backing
// document falls back to an empty collection with a logged warning; the
// application never fails to start over bad data.
func (l *Ledger) Load(ctx context.Context) error {
	transactions, err := l.store.Load(ctx)
	if err != nil {
		slog.Warn("failed to load transactions, starting empty", "error", err)
		l.transactions = []model.Transaction{}
		return nil
	}
	l.transactions = transactions
	return nil
}

// Add creates a transaction from the entry fields, prepends it, and
// persists the collection.
func (l *Ledger) Add(ctx context.Context, entry Entry) (model.Transaction, error) {
	tx := model.NewTransaction(entry.Amount, entry.Type, entry.Category, entry.Date, entry.Description)
	if err := tx.Validate(); err != nil {
		return model.Transaction{}, fmt.Errorf("invalid transaction: %w", err)
	}

	updated := make([]model.Transaction, 0, len(l.transactions)+1)
	updated = append(updated, tx)
	updated = append(updated, l.transactions...)

	if err := l.store.Save(ctx, updated); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to persist transactions: %w", err)
	}

	l.transactions = updated
	return tx, nil
}

// Remove deletes at most one transaction by ID and persists the result.
// An unknown ID is a no-op.
func (l *Ledger) Remove(ctx context.Context, id string) error {
	idx := -1
	for i, tx := range l.transactions {
		if tx.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	updated := make([]model.Transaction, 0, len(l.transactions)-1)
	updated = append(updated, l.transactions[:idx]...)
	updated = append(updated, l.transactions[idx+1:]...)

	if err := l.store.Save(ctx, updated); err != nil {
		return fmt.Errorf("failed to persist transactions: %w", err)
	}

	l.transactions = updated
	return nil
}

// Find returns the transaction with the given ID.
func (l *Ledger) Find(id string) (model.Transaction, error) {
	for _, tx := range l.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return model.Transaction{}, fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
}

// Transactions returns a read-only snapshot of the collection,
// newest-first.
func (l *Ledger) Transactions() []model.Transaction {
	return append([]model.Transaction(nil), l.transactions...)
}

// Len returns the number of transactions.
func (l *Ledger) Len() int {
	return len(l.transactions)
}
