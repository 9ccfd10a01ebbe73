package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/amanjot-a/fintrack/internal/chart"
	"github.com/amanjot-a/fintrack/internal/cli"
	"github.com/amanjot-a/fintrack/internal/config"
	"github.com/amanjot-a/fintrack/internal/report"
)

func chartCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Export spending and balance charts as PNG files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ledger, err := openLedger(ctx)
			if err != nil {
				return err
			}
			transactions := ledger.Transactions()

			outDir = config.ExpandPath(outDir)
			if err := os.MkdirAll(outDir, 0o750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			wrote := 0

			pie, err := chart.SpendingPie(report.BreakdownByCategory(transactions))
			switch {
			case errors.Is(err, chart.ErrNoData):
				fmt.Println(cli.InfoStyle.Render("No expense data; skipping spending chart."))
			case err != nil:
				return err
			default:
				path := filepath.Join(outDir, "spending.png")
				if err := os.WriteFile(path, pie, 0o600); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				fmt.Printf("%s Wrote %s\n", cli.SuccessStyle.Render(cli.SuccessIcon), path)
				wrote++
			}

			trend, err := chart.BalanceTrend(report.DailyBalanceSeries(transactions))
			switch {
			case errors.Is(err, chart.ErrNoData):
				fmt.Println(cli.InfoStyle.Render("No transaction history; skipping balance chart."))
			case err != nil:
				return err
			default:
				path := filepath.Join(outDir, "balance.png")
				if err := os.WriteFile(path, trend, 0o600); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				fmt.Printf("%s Wrote %s\n", cli.SuccessStyle.Render(cli.SuccessIcon), path)
				wrote++
			}

			if wrote == 0 {
				fmt.Println(cli.SubtleStyle.Render("Nothing to chart yet."))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to write chart PNGs into")

	return cmd
}
