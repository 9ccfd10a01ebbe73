package main

import (
	"github.com/spf13/cobra"

	"github.com/amanjot-a/fintrack/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Open the interactive dashboard",
		Long: `Open the full-screen dashboard: stat cards, spending breakdown,
balance trend, AI insights, and the transaction list.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ledger, err := openLedger(ctx)
			if err != nil {
				return err
			}

			adviser, err := newAdviser()
			if err != nil {
				return err
			}

			return tui.Run(tui.Config{
				Ledger:  ledger,
				Adviser: adviser,
			})
		},
	}
}
