// Package tui implements the interactive dashboard.
package tui

import (
	"sort"

	"github.com/amanjot-a/fintrack/internal/advice"
	"github.com/amanjot-a/fintrack/internal/model"
	"github.com/amanjot-a/fintrack/internal/report"
	"github.com/amanjot-a/fintrack/internal/storage"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tab represents the active view.
type Tab int

const (
	// TabDashboard shows stat cards, charts, and AI insights.
	TabDashboard Tab = iota
	// TabTransactions shows the transaction list.
	TabTransactions
)

// Config holds the dependencies of the dashboard.
type Config struct {
	Ledger  *storage.Ledger
	Adviser *advice.Service
}

// Model holds the dashboard state. All mutations flow through the ledger;
// the derived views are recomputed after every change.
type Model struct {
	ledger  *storage.Ledger
	adviser *advice.Service

	transactions []model.Transaction // collection order, newest-first
	display      []model.Transaction // list order, re-sorted by date descending
	summary      report.Summary
	breakdown    []report.CategorySlice
	series       []report.DailyBalance

	form    FormModel
	keymap  KeyMap
	spinner spinner.Model

	adviceText     string
	adviceInFlight int
	statusMessage  string

	cursor   int
	width    int
	height   int
	tab      Tab
	showForm bool
	quitting bool
}

// New creates the dashboard model. The ledger must already be loaded.
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	m := Model{
		ledger:  cfg.Ledger,
		adviser: cfg.Adviser,
		keymap:  DefaultKeyMap(),
		spinner: sp,
		form:    NewFormModel(),
	}
	m.refresh()
	return m
}

// refresh re-derives every aggregate view from the current snapshot.
func (m *Model) refresh() {
	m.transactions = m.ledger.Transactions()
	m.display = append([]model.Transaction(nil), m.transactions...)
	sort.SliceStable(m.display, func(i, j int) bool {
		return m.display[i].Date.After(m.display[j].Date)
	})
	m.summary = report.Summarize(m.transactions)
	m.breakdown = report.BreakdownByCategory(m.transactions)
	m.series = report.DailyBalanceSeries(m.transactions)
	if m.cursor >= len(m.display) {
		m.cursor = len(m.display) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, m.spinner.Tick)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case transactionAddedMsg:
		if msg.err != nil {
			m.statusMessage = "could not save: " + msg.err.Error()
			return m, nil
		}
		m.showForm = false
		m.statusMessage = "added " + msg.transaction.Description
		m.refresh()
		return m, nil

	case transactionRemovedMsg:
		if msg.err != nil {
			m.statusMessage = "could not delete: " + msg.err.Error()
			return m, nil
		}
		m.statusMessage = "transaction deleted"
		m.refresh()
		return m, nil

	case adviceResultMsg:
		// Responses may race; whichever resolves last wins the panel.
		if m.adviceInFlight > 0 {
			m.adviceInFlight--
		}
		m.adviceText = msg.result.Display()
		return m, nil

	case tea.KeyMsg:
		if m.showForm {
			return m.updateForm(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case keyMatches(msg, m.keymap.SwitchTab):
		if m.tab == TabDashboard {
			m.tab = TabTransactions
		} else {
			m.tab = TabDashboard
		}
		return m, nil

	case keyMatches(msg, m.keymap.Dashboard):
		m.tab = TabDashboard
		return m, nil

	case keyMatches(msg, m.keymap.Transactions):
		m.tab = TabTransactions
		return m, nil

	case keyMatches(msg, m.keymap.Add):
		m.form = NewFormModel()
		m.showForm = true
		return m, m.form.Focus()

	case keyMatches(msg, m.keymap.Delete):
		if m.tab == TabTransactions && len(m.display) > 0 {
			return m, m.removeTransaction(m.display[m.cursor].ID)
		}
		return m, nil

	case keyMatches(msg, m.keymap.Insights):
		m.adviceInFlight++
		return m, m.fetchInsights()

	case keyMatches(msg, m.keymap.Up):
		if m.tab == TabTransactions && m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case keyMatches(msg, m.keymap.Down):
		if m.tab == TabTransactions && m.cursor < len(m.display)-1 {
			m.cursor++
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.showForm = false
		return m, nil
	case "enter":
		entry, err := m.form.Entry()
		if err != nil {
			m.form.SetError(err)
			return m, nil
		}
		return m, m.addTransaction(entry)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// View renders the full dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.showForm {
		body = m.form.View()
	} else if m.tab == TabDashboard {
		body = m.dashboardView()
	} else {
		body = m.transactionsView()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		body,
		m.footerView(),
	)
}
