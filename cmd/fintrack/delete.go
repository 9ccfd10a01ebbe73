package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amanjot-a/fintrack/internal/cli"
	"github.com/amanjot-a/fintrack/internal/common"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction by ID",
		Long:  `Delete exactly one transaction. Use 'fintrack list --ids' to find IDs.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			ledger, err := openLedger(ctx)
			if err != nil {
				return err
			}

			if _, err := ledger.Find(id); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					fmt.Println(cli.InfoStyle.Render("No transaction with that ID; nothing deleted."))
					return nil
				}
				return err
			}

			if err := ledger.Remove(ctx, id); err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}

			fmt.Printf("%s Deleted %s\n", cli.SuccessStyle.Render(cli.SuccessIcon), cli.SubtleStyle.Render(id))
			return nil
		},
	}
}
