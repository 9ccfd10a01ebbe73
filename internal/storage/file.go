package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/amanjot-a/fintrack/internal/model"
)

// FileStore persists the transaction collection as a single JSON array on
// disk, the equivalent of the one local-storage key a browser app would use.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store at the given path, creating the
// parent directory if needed.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("data file path is required")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &FileStore{path: path}, nil
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the persisted JSON array. A missing file yields an empty
// collection; a malformed file yields an error the caller may choose to
// recover from.
func (s *FileStore) Load(_ context.Context) ([]model.Transaction, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Transaction{}, nil
		}
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	if len(data) == 0 {
		return []model.Transaction{}, nil
	}

	var transactions []model.Transaction
	if err := json.Unmarshal(data, &transactions); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}
	if transactions == nil {
		transactions = []model.Transaction{}
	}

	return transactions, nil
}

// Save rewrites the whole collection. The write goes through a temp file
// and rename so a crash mid-write cannot corrupt the previous data.
func (s *FileStore) Save(_ context.Context, transactions []model.Transaction) error {
	if transactions == nil {
		transactions = []model.Transaction{}
	}

	data, err := json.MarshalIndent(transactions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}

	return nil
}
