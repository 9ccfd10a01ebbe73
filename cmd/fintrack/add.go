package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/amanjot-a/fintrack/internal/cli"
	"github.com/amanjot-a/fintrack/internal/model"
	"github.com/amanjot-a/fintrack/internal/storage"
)

func addCmd() *cobra.Command {
	var (
		txType      string
		category    string
		date        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a new transaction",
		Long: `Record an income or expense transaction. The type defaults to expense
and the category to the first known category.

Examples:
  fintrack add 12.50 --category "Food & Dining" --description "lunch"
  fintrack add 3200 --type income --category Salary --date 2024-03-01`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: must be a number", args[0])
			}

			parsedType := model.TransactionType(txType)
			if parsedType != model.Income && parsedType != model.Expense {
				return fmt.Errorf("invalid type %q: must be income or expense", txType)
			}

			when := time.Now()
			if date != "" {
				parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid date %q: must be YYYY-MM-DD", date)
				}
				when = parsed
			}

			ledger, err := openLedger(ctx)
			if err != nil {
				return err
			}

			tx, err := ledger.Add(ctx, storage.Entry{
				Amount:      amount,
				Type:        parsedType,
				Category:    category,
				Date:        when,
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("failed to add transaction: %w", err)
			}

			fmt.Printf("%s Recorded %s %s (%s) %s\n",
				cli.SuccessStyle.Render(cli.SuccessIcon),
				tx.Type,
				cli.Currency(tx.Amount),
				tx.Category,
				cli.SubtleStyle.Render(tx.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", string(model.Expense), "transaction type (income, expense)")
	cmd.Flags().StringVarP(&category, "category", "c", model.Categories[0], "transaction category")
	cmd.Flags().StringVarP(&date, "date", "d", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&description, "description", "m", "", "free-text description")

	return cmd
}
