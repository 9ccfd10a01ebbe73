package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/amanjot-a/fintrack/internal/advice"
	"github.com/amanjot-a/fintrack/internal/config"
	"github.com/amanjot-a/fintrack/internal/storage"
)

// openLedger creates the file-backed ledger and loads the persisted
// collection. Bad data degrades to an empty ledger, never an error.
func openLedger(ctx context.Context) (*storage.Ledger, error) {
	path := viper.GetString("data.file")
	if path == "" {
		path = config.DefaultDataFile()
	}
	path = config.ExpandPath(path)

	store, err := storage.NewFileStore(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}

	ledger := storage.NewLedger(store)
	if err := ledger.Load(ctx); err != nil {
		return nil, err
	}
	return ledger, nil
}

// newAdviser builds the advice service from configuration. With no API key
// the service still works; it just answers with the missing-config message.
func newAdviser() (*advice.Service, error) {
	apiKey := viper.GetString("advice.api_key")
	if apiKey == "" {
		// GEMINI_API_KEY is what the Gemini tooling conventionally exports.
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	generator, err := advice.NewGenerator(advice.Config{
		Provider: viper.GetString("advice.provider"),
		APIKey:   apiKey,
		Model:    viper.GetString("advice.model"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure advice provider: %w", err)
	}

	return advice.NewService(generator), nil
}
