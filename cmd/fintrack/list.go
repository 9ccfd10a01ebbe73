package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/amanjot-a/fintrack/internal/cli"
	"github.com/amanjot-a/fintrack/internal/model"
)

func listCmd() *cobra.Command {
	var (
		showIDs bool
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ledger, err := openLedger(ctx)
			if err != nil {
				return err
			}

			transactions := ledger.Transactions()
			if len(transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions yet. Use 'fintrack add' to record one."))
				return nil
			}

			// Display order is by date, not insertion.
			sort.SliceStable(transactions, func(i, j int) bool {
				return transactions[i].Date.After(transactions[j].Date)
			})
			if limit > 0 && len(transactions) > limit {
				transactions = transactions[:limit]
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			columns := []string{"Date", "Type", "Category", "Description", "Amount"}
			if showIDs {
				columns = append(columns, "ID")
			}
			for i, col := range columns {
				columns[i] = headerStyle.Render(col)
			}
			fmt.Fprintln(w, strings.Join(columns, "\t"))

			for _, tx := range transactions {
				amount := cli.IncomeStyle.Render("+" + cli.Currency(tx.Amount))
				if tx.Type == model.Expense {
					amount = cli.ExpenseStyle.Render("-" + cli.Currency(tx.Amount))
				}
				row := []string{tx.Day(), string(tx.Type), tx.Category, tx.Description, amount}
				if showIDs {
					row = append(row, cli.SubtleStyle.Render(tx.ID))
				}
				fmt.Fprintln(w, strings.Join(row, "\t"))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&showIDs, "ids", false, "show transaction IDs")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n transactions (0 = all)")

	return cmd
}
