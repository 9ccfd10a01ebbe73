package tui

import (
	"fmt"
	"strings"

	"github.com/amanjot-a/fintrack/internal/cli"
	"github.com/amanjot-a/fintrack/internal/model"
	"github.com/amanjot-a/fintrack/internal/report"
	"github.com/charmbracelet/lipgloss"
)

const (
	barWidth       = 30
	sparklineWidth = 60
	listPageSize   = 15
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

func (m Model) headerView() string {
	title := headerStyle.Render("💰 fintrack")

	dashboard := tabStyle
	transactions := tabStyle
	if m.tab == TabDashboard {
		dashboard = activeTabStyle
	} else {
		transactions = activeTabStyle
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		title,
		dashboard.Render("[1] Dashboard"),
		transactions.Render("[2] Transactions"),
	)
}

func (m Model) footerView() string {
	help := "a add · d delete · g insights · tab switch · q quit"
	if m.statusMessage != "" {
		help = m.statusMessage + "   " + help
	}
	return subtleStyle.Render(help)
}

func (m Model) dashboardView() string {
	sections := []string{
		m.statCards(),
		m.breakdownPanel(),
		m.trendPanel(),
		m.insightsPanel(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// statCards renders the three headline cards with 2-decimal currency.
func (m Model) statCards() string {
	balanceStyle := incomeStyle
	if m.summary.Balance < 0 {
		balanceStyle = expenseStyle
	}

	balance := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render("Total Balance"),
		balanceStyle.Render(cli.Currency(m.summary.Balance)),
	))
	income := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render("Total Income"),
		incomeStyle.Render(cli.Currency(m.summary.TotalIncome)),
	))
	expense := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render("Total Expenses"),
		expenseStyle.Render(cli.Currency(m.summary.TotalExpense)),
	))

	return lipgloss.JoinHorizontal(lipgloss.Top, balance, income, expense)
}

// breakdownPanel renders per-category expense totals as proportional bars.
func (m Model) breakdownPanel() string {
	if len(m.breakdown) == 0 {
		return panelStyle.Render(panelTitleStyle.Render("Spending by Category") +
			"\n" + subtleStyle.Render("No expense data to display"))
	}

	maxValue := m.breakdown[0].Value
	lines := make([]string, 0, len(m.breakdown)+1)
	lines = append(lines, panelTitleStyle.Render("Spending by Category"))
	for _, slice := range m.breakdown {
		width := int(slice.Value / maxValue * barWidth)
		if width < 1 {
			width = 1
		}
		bar := lipgloss.NewStyle().
			Foreground(lipgloss.Color(slice.Color)).
			Render(strings.Repeat("█", width))
		lines = append(lines, fmt.Sprintf("%-18s %s %s",
			truncate(slice.Name, 18), bar, cli.Currency(slice.Value)))
	}

	return panelStyle.Render(strings.Join(lines, "\n"))
}

// trendPanel renders the cumulative daily balance as a sparkline.
func (m Model) trendPanel() string {
	if len(m.series) == 0 {
		return panelStyle.Render(panelTitleStyle.Render("Balance Trend") +
			"\n" + subtleStyle.Render("No transaction history"))
	}

	spark := sparkline(m.series, sparklineWidth)
	first := m.series[0]
	last := m.series[len(m.series)-1]
	caption := subtleStyle.Render(fmt.Sprintf("%s %s → %s %s",
		first.Date, cli.Currency(first.Balance),
		last.Date, cli.Currency(last.Balance)))

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		panelTitleStyle.Render("Balance Trend"),
		spark,
		caption,
	))
}

func (m Model) insightsPanel() string {
	title := panelTitleStyle.Render("🤖 AI Insights")

	var body string
	switch {
	case m.adviceInFlight > 0:
		body = m.spinner.View() + " Analyzing your finances..."
	case m.adviceText != "":
		body = m.adviceText
	default:
		body = subtleStyle.Render("Press g to generate financial insights")
	}

	return panelStyle.Render(title + "\n" + body)
}

// transactionsView renders the list, newest-first by date, with a
// selection cursor.
func (m Model) transactionsView() string {
	if len(m.display) == 0 {
		return panelStyle.Render(subtleStyle.Render("No transactions yet. Press a to add one."))
	}

	start := 0
	if m.cursor >= listPageSize {
		start = m.cursor - listPageSize + 1
	}
	end := start + listPageSize
	if end > len(m.display) {
		end = len(m.display)
	}

	lines := make([]string, 0, listPageSize+1)
	lines = append(lines, panelTitleStyle.Render(
		fmt.Sprintf("Transactions (%d)", len(m.display))))

	for i := start; i < end; i++ {
		tx := m.display[i]
		amount := incomeStyle.Render("+" + cli.Currency(tx.Amount))
		if tx.Type == model.Expense {
			amount = expenseStyle.Render("-" + cli.Currency(tx.Amount))
		}
		line := fmt.Sprintf("%s  %-22s %-16s %s",
			tx.Day(), truncate(tx.Description, 22), truncate(tx.Category, 16), amount)
		if i == m.cursor {
			line = selectedRowStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	return panelStyle.Render(strings.Join(lines, "\n"))
}

// sparkline scales the series into a row of block characters.
func sparkline(series []report.DailyBalance, width int) string {
	if len(series) == 0 {
		return ""
	}

	points := series
	if len(points) > width {
		points = points[len(points)-width:]
	}

	minVal, maxVal := points[0].Balance, points[0].Balance
	for _, p := range points {
		if p.Balance < minVal {
			minVal = p.Balance
		}
		if p.Balance > maxVal {
			maxVal = p.Balance
		}
	}

	span := maxVal - minVal
	var b strings.Builder
	for _, p := range points {
		idx := 0
		if span > 0 {
			idx = int((p.Balance - minVal) / span * float64(len(sparkRunes)-1))
		}
		b.WriteRune(sparkRunes[idx])
	}

	return lipgloss.NewStyle().Foreground(colorPrimary).Render(b.String())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
