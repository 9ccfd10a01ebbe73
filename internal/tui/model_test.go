package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/amanjot-a/fintrack/internal/advice"
	"github.com/amanjot-a/fintrack/internal/model"
	"github.com/amanjot-a/fintrack/internal/storage"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, transactions ...model.Transaction) Model {
	t.Helper()
	store := storage.NewMemoryStore()
	store.Seed(transactions)
	ledger := storage.NewLedger(store)
	require.NoError(t, ledger.Load(context.Background()))

	return New(Config{
		Ledger:  ledger,
		Adviser: advice.NewService(nil),
	})
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleTx(id string, amount float64, txType model.TransactionType, day time.Time) model.Transaction {
	return model.Transaction{
		ID:          id,
		Amount:      amount,
		Type:        txType,
		Category:    model.CategoryFood,
		Date:        day,
		Description: "test " + id,
	}
}

func TestModel_TabSwitching(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, TabDashboard, m.tab)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, TabTransactions, m.tab)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, TabDashboard, m.tab)

	updated, _ = m.Update(keyMsg("2"))
	m = updated.(Model)
	assert.Equal(t, TabTransactions, m.tab)

	// Switching views never touches the underlying data.
	assert.Equal(t, 0, m.ledger.Len())
}

func TestModel_StatCardsFormatCurrency(t *testing.T) {
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	m := newTestModel(t,
		sampleTx("b", 30, model.Expense, d.AddDate(0, 0, 1)),
		sampleTx("a", 100, model.Income, d),
	)

	view := m.View()
	assert.Contains(t, view, "$70.00")
	assert.Contains(t, view, "$100.00")
	assert.Contains(t, view, "$30.00")
}

func TestModel_DeleteSelectedTransaction(t *testing.T) {
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	m := newTestModel(t,
		sampleTx("newer", 30, model.Expense, d.AddDate(0, 0, 1)),
		sampleTx("older", 100, model.Income, d),
	)

	updated, _ := m.Update(keyMsg("2"))
	m = updated.(Model)

	updated, cmd := m.Update(keyMsg("d"))
	m = updated.(Model)
	require.NotNil(t, cmd)

	msg := cmd()
	removed, ok := msg.(transactionRemovedMsg)
	require.True(t, ok)
	require.NoError(t, removed.err)
	assert.Equal(t, "newer", removed.id)

	updated, _ = m.Update(removed)
	m = updated.(Model)
	assert.Equal(t, 1, m.ledger.Len())
	assert.Equal(t, "older", m.transactions[0].ID)
}

func TestModel_AddTransactionThroughForm(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyMsg("a"))
	m = updated.(Model)
	assert.True(t, m.showForm)

	// Fill the amount field.
	for _, r := range "42.50" {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.NotNil(t, cmd)

	msg := cmd()
	added, ok := msg.(transactionAddedMsg)
	require.True(t, ok)
	require.NoError(t, added.err)
	assert.Equal(t, 42.50, added.transaction.Amount)
	assert.Equal(t, model.Expense, added.transaction.Type)
	assert.Equal(t, model.Categories[0], added.transaction.Category)
	assert.Equal(t, model.DefaultDescription, added.transaction.Description)

	updated, _ = m.Update(added)
	m = updated.(Model)
	assert.False(t, m.showForm)
	assert.Equal(t, 1, m.ledger.Len())
}

func TestModel_FormValidationError(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyMsg("a"))
	m = updated.(Model)

	// Submitting without an amount keeps the form open with an error.
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	assert.Nil(t, cmd)
	assert.True(t, m.showForm)
	assert.Contains(t, m.View(), "amount is required")
}

func TestModel_InsightsFlow(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(keyMsg("g"))
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.adviceInFlight)
	assert.Contains(t, m.View(), "Analyzing your finances")

	// No API key configured: the result is the fixed missing-config text.
	msg := cmd()
	result, ok := msg.(adviceResultMsg)
	require.True(t, ok)
	assert.Equal(t, advice.KindMissingConfig, result.result.Kind)

	updated, _ = m.Update(result)
	m = updated.(Model)
	assert.Equal(t, 0, m.adviceInFlight)
	assert.Contains(t, m.View(), "API key is missing")
}

func TestModel_LastResolvingAdviceWins(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyMsg("g"))
	m = updated.(Model)
	updated, _ = m.Update(keyMsg("g"))
	m = updated.(Model)
	assert.Equal(t, 2, m.adviceInFlight)

	first := adviceResultMsg{result: advice.Result{Kind: advice.KindAdvice, Text: "first"}}
	second := adviceResultMsg{result: advice.Result{Kind: advice.KindAdvice, Text: "second"}}

	updated, _ = m.Update(first)
	m = updated.(Model)
	assert.Equal(t, "first", m.adviceText)
	assert.Equal(t, 1, m.adviceInFlight)

	updated, _ = m.Update(second)
	m = updated.(Model)
	assert.Equal(t, "second", m.adviceText)
	assert.Equal(t, 0, m.adviceInFlight)
}

func TestModel_TransactionListNewestFirst(t *testing.T) {
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	m := newTestModel(t,
		sampleTx("newest", 1, model.Expense, d.AddDate(0, 0, 2)),
		sampleTx("middle", 2, model.Expense, d.AddDate(0, 0, 1)),
		sampleTx("oldest", 3, model.Income, d),
	)

	updated, _ := m.Update(keyMsg("2"))
	m = updated.(Model)
	view := m.View()

	newest := strings.Index(view, "test newest")
	oldest := strings.Index(view, "test oldest")
	require.GreaterOrEqual(t, newest, 0)
	require.GreaterOrEqual(t, oldest, 0)
	assert.Less(t, newest, oldest)
}
