package main

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/amanjot-a/fintrack/internal/advice"
	"github.com/amanjot-a/fintrack/internal/cli"
)

func adviceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advice",
		Short: "Ask the AI advisor about your finances",
		Long: `Send your recent transaction history to the configured text-generation
service and print its financial advice. Requires an API key in
FINTRACK_ADVICE_API_KEY (or GEMINI_API_KEY).`,
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

			bar := progressbar.NewOptions(-1,
				progressbar.OptionSetDescription(cli.RobotIcon+" Analyzing your finances..."),
				progressbar.OptionSpinnerType(14),
				progressbar.OptionClearOnFinish(),
			)

			type outcome struct{ result advice.Result }
			done := make(chan outcome, 1)
			go func() {
				done <- outcome{result: adviser.Insights(ctx, ledger.Transactions())}
			}()

			ticker := time.NewTicker(100 * time.Millisecond)
			defer ticker.Stop()

			var result advice.Result
		wait:
			for {
				select {
				case o := <-done:
					result = o.result
					break wait
				case <-ctx.Done():
					_ = bar.Finish()
					return ctx.Err()
				case <-ticker.C:
					_ = bar.Add(1)
				}
			}
			_ = bar.Finish()

			switch result.Kind {
			case advice.KindAdvice:
				fmt.Println(cli.TitleStyle.Render(cli.RobotIcon + " AI Insights"))
				fmt.Println(result.Display())
			case advice.KindMissingConfig:
				fmt.Println(cli.WarningStyle.Render(result.Display()))
			case advice.KindNoData:
				fmt.Println(cli.InfoStyle.Render(result.Display()))
			default:
				fmt.Println(cli.ErrorStyle.Render(result.Display()))
			}

			return nil
		},
	}
}
