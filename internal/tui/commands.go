package tui

import (
	"context"
	"time"

	"github.com/amanjot-a/fintrack/internal/storage"
	tea "github.com/charmbracelet/bubbletea"
)

// addTransaction persists a new entry through the ledger.
func (m Model) addTransaction(entry storage.Entry) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		tx, err := m.ledger.Add(ctx, entry)
		return transactionAddedMsg{transaction: tx, err: err}
	}
}

// removeTransaction deletes a transaction by ID through the ledger.
func (m Model) removeTransaction(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := m.ledger.Remove(ctx, id)
		return transactionRemovedMsg{id: id, err: err}
	}
}

// fetchInsights requests advice for the current snapshot. The service
// never returns an error; every outcome arrives as a displayable result.
func (m Model) fetchInsights() tea.Cmd {
	snapshot := m.transactions
	return func() tea.Msg {
		result := m.adviser.Insights(context.Background(), snapshot)
		return adviceResultMsg{result: result}
	}
}
