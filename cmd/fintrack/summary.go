package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/amanjot-a/fintrack/internal/cli"
	"github.com/amanjot-a/fintrack/internal/report"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals and the spending breakdown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ledger, err := openLedger(ctx)
			if err != nil {
				return err
			}
			transactions := ledger.Transactions()

			summary := report.Summarize(transactions)
			balanceStyle := cli.IncomeStyle
			if summary.Balance < 0 {
				balanceStyle = cli.ExpenseStyle
			}

			cards := lipgloss.JoinHorizontal(lipgloss.Top,
				statCard("Total Balance", balanceStyle.Render(cli.Currency(summary.Balance))),
				statCard("Total Income", cli.IncomeStyle.Render(cli.Currency(summary.TotalIncome))),
				statCard("Total Expenses", cli.ExpenseStyle.Render(cli.Currency(summary.TotalExpense))),
			)
			fmt.Println(cards)

			breakdown := report.BreakdownByCategory(transactions)
			if len(breakdown) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No expense data to display"))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render(cli.ChartIcon + " Spending by Category"))
			maxValue := breakdown[0].Value
			for _, slice := range breakdown {
				width := int(slice.Value / maxValue * 30)
				if width < 1 {
					width = 1
				}
				bar := lipgloss.NewStyle().
					Foreground(lipgloss.Color(slice.Color)).
					Render(strings.Repeat("█", width))
				fmt.Printf("%-18s %s %s\n", slice.Name, bar, cli.Currency(slice.Value))
			}

			return nil
		},
	}
}

func statCard(title, value string) string {
	return cli.BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cli.SubtleStyle.Render(title),
		value,
	))
}
