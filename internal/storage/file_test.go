package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/amanjot-a/fintrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "transactions.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	transactions := []model.Transaction{
		{
			ID:          "b",
			Amount:      30,
			Type:        model.Expense,
			Category:    model.CategoryFood,
			Date:        time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			Description: "groceries",
		},
		{
			ID:          "a",
			Amount:      100,
			Type:        model.Income,
			Category:    model.CategorySalary,
			Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Description: "paycheck",
		},
	}

	require.NoError(t, store.Save(ctx, transactions))

	// Content and order survive the round trip.
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, transactions, loaded)
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "transactions.json"))
	require.NoError(t, err)

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFileStore_MalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse data file")
}

func TestFileStore_EmptyFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFileStore_SaveNilWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "transactions.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestNewFileStore_RequiresPath(t *testing.T) {
	_, err := NewFileStore("")
	require.Error(t, err)
}
