package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepdash/internal/analytics"
	"github.com/abhisek/prepdash/internal/config"
	"github.com/abhisek/prepdash/internal/forecast"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project when the target accuracy will be reached",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		log, cat, err := loadData(ctx, st)
		if err != nil {
			return err
		}

		settings := config.FromEnv()
		summary := analytics.Aggregate(log, cat, analytics.Options{
			TimePolicyFactor: settings.TimePolicy.Factor(),
		})
		if summary.Empty() {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		res := forecast.Forecast(summary.Window.DailyAccuracy(),
			settings.TargetRate, summary.Overall.Accuracy, time.Now())

		fmt.Printf("Current accuracy: %.1f%%\n", summary.Overall.Accuracy*100)
		fmt.Printf("Target accuracy:  %.0f%%\n", settings.TargetRate*100)
		if gap := forecast.Gap(summary.Overall.Accuracy, settings.TargetRate); gap > 0 {
			fmt.Printf("Gap:              %.1f points\n", gap*100)
		}
		fmt.Printf("\n%s\n", forecast.Describe(res))
		if res.Slope != 0 {
			fmt.Printf("Daily trend: %+.2f points/day\n", res.Slope*100)
		}
		return nil
	},
}
