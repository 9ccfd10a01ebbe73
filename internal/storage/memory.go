package storage

import (
	"context"
	"fmt"

	"github.com/amanjot-a/fintrack/internal/model"
)

// MemoryStore is an in-memory Store used in tests and anywhere persistence
// should be a no-op.
type MemoryStore struct {
	transactions []model.Transaction
	loadErr      error
	saveErr      error
	LoadCalls    int
	SaveCalls    int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{transactions: []model.Transaction{}}
}

// Seed replaces the stored collection without counting as a Save.
func (s *MemoryStore) Seed(transactions []model.Transaction) {
	s.transactions = append([]model.Transaction(nil), transactions...)
}

// FailLoad makes subsequent Load calls return an error.
func (s *MemoryStore) FailLoad(msg string) {
	s.loadErr = fmt.Errorf("%s", msg)
}

// FailSave makes subsequent Save calls return an error.
func (s *MemoryStore) FailSave(msg string) {
	s.saveErr = fmt.Errorf("%s", msg)
}

// Load returns a copy of the stored collection.
func (s *MemoryStore) Load(_ context.Context) ([]model.Transaction, error) {
	s.LoadCalls++
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return append([]model.Transaction(nil), s.transactions...), nil
}

// Save replaces the stored collection.
func (s *MemoryStore) Save(_ context.Context, transactions []model.Transaction) error {
	s.SaveCalls++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.transactions = append([]model.Transaction(nil), transactions...)
	return nil
}
