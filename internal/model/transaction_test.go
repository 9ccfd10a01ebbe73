package model

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)

	tx := NewTransaction(42.50, Expense, CategoryFood, date, "lunch")
	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, 42.50, tx.Amount)
	assert.Equal(t, Expense, tx.Type)
	assert.Equal(t, CategoryFood, tx.Category)
	assert.Equal(t, date, tx.Date)
	assert.Equal(t, "lunch", tx.Description)

	other := NewTransaction(1, Income, CategorySalary, date, "")
	assert.Equal(t, DefaultDescription, other.Description)
	assert.NotEqual(t, tx.ID, other.ID)
}

func TestTransaction_Validate(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)
	valid := Transaction{ID: "abc", Amount: 10, Type: Income, Category: CategorySalary, Date: date}

	tests := []struct {
		mutate  func(*Transaction)
		name    string
		errMsg  string
		wantErr bool
	}{
		{
			name:   "valid transaction",
			mutate: func(*Transaction) {},
		},
		{
			name:    "missing ID",
			mutate:  func(tx *Transaction) { tx.ID = "" },
			wantErr: true,
			errMsg:  "transaction ID is required",
		},
		{
			name:    "negative amount",
			mutate:  func(tx *Transaction) { tx.Amount = -5 },
			wantErr: true,
			errMsg:  "amount must not be negative",
		},
		{
			name:    "NaN amount",
			mutate:  func(tx *Transaction) { tx.Amount = math.NaN() },
			wantErr: true,
			errMsg:  "amount must be a finite number",
		},
		{
			name:    "unknown type",
			mutate:  func(tx *Transaction) { tx.Type = "transfer" },
			wantErr: true,
			errMsg:  "invalid transaction type",
		},
		{
			name:    "zero date",
			mutate:  func(tx *Transaction) { tx.Date = time.Time{} },
			wantErr: true,
			errMsg:  "transaction date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_Day(t *testing.T) {
	tx := Transaction{Date: time.Date(2024, 3, 15, 23, 45, 0, 0, time.Local)}
	assert.Equal(t, "2024-03-15", tx.Day())
}

func TestTransaction_Signed(t *testing.T) {
	income := Transaction{Amount: 100, Type: Income}
	expense := Transaction{Amount: 30, Type: Expense}
	assert.Equal(t, 100.0, income.Signed())
	assert.Equal(t, -30.0, expense.Signed())
}

func TestTransaction_JSONLayout(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	tx := Transaction{
		ID:          "id-1",
		Amount:      12.5,
		Type:        Expense,
		Category:    CategoryShopping,
		Date:        date,
		Description: "socks",
	}

	data, err := json.Marshal(tx)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "id-1", fields["id"])
	assert.Equal(t, 12.5, fields["amount"])
	assert.Equal(t, "expense", fields["type"])
	assert.Equal(t, "Shopping", fields["category"])
	assert.Equal(t, "socks", fields["description"])
	assert.Equal(t, "2024-03-15T00:00:00Z", fields["date"])

	// Older records may lack fields added later.
	var sparse Transaction
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","amount":1,"type":"income"}`), &sparse))
	assert.Equal(t, "x", sparse.ID)
	assert.Empty(t, sparse.Description)
}

func TestCategoryColor(t *testing.T) {
	assert.Equal(t, "#f59e0b", CategoryColor(CategoryFood))
	assert.Equal(t, CategoryColor(CategoryOther), CategoryColor("Llama Grooming"))
}
