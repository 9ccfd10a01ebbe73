// Package model defines the core domain types for the finance tracker.
package model

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// TransactionType indicates whether a transaction adds to or subtracts from the balance.
type TransactionType string

const (
	// Income represents money coming in.
	Income TransactionType = "income"
	// Expense represents money going out.
	Expense TransactionType = "expense"
)

// Transaction represents a single recorded income or expense event.
// The JSON field names define the persisted layout and must not change.
type Transaction struct {
	Date        time.Time       `json:"date"`
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
}

// DefaultDescription is used when a transaction is created without one.
const DefaultDescription = "No description"

// NewTransaction creates a transaction with a fresh ID, applying the
// description placeholder when none is given.
func NewTransaction(amount float64, txType TransactionType, category string, date time.Time, description string) Transaction {
	if description == "" {
		description = DefaultDescription
	}
	return Transaction{
		ID:          uuid.New().String(),
		Amount:      amount,
		Type:        txType,
		Category:    category,
		Date:        date,
		Description: description,
	}
}

// Validate checks that the transaction is well-formed.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transaction ID is required")
	}
	if math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return fmt.Errorf("amount must be a finite number")
	}
	if t.Amount < 0 {
		return fmt.Errorf("amount must not be negative, got %.2f", t.Amount)
	}
	if t.Type != Income && t.Type != Expense {
		return fmt.Errorf("invalid transaction type: %q", t.Type)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction date is required")
	}
	return nil
}

// Day returns the transaction's calendar day in its own location,
// formatted as YYYY-MM-DD. Used for day-bucketing and prompt reduction.
func (t *Transaction) Day() string {
	return t.Date.Format("2006-01-02")
}

// Signed returns the amount with expense values negated.
func (t *Transaction) Signed() float64 {
	if t.Type == Expense {
		return -t.Amount
	}
	return t.Amount
}
