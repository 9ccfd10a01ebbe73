package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#6366F1")
	colorIncome  = lipgloss.Color("#22C55E")
	colorExpense = lipgloss.Color("#EF4444")
	colorSubtle  = lipgloss.Color("#666666")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorSubtle).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Underline(true).
			Padding(0, 2)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 2).
			Width(24)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true)

	incomeStyle  = lipgloss.NewStyle().Foreground(colorIncome)
	expenseStyle = lipgloss.NewStyle().Foreground(colorExpense)
	subtleStyle  = lipgloss.NewStyle().Foreground(colorSubtle)
	errorStyle   = lipgloss.NewStyle().Foreground(colorExpense)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	formTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	formBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)
)
