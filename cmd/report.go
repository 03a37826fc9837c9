package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepdash/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the weekly study report",
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

		weekly, ok := report.BuildWeekly(log, cat, time.Now())
		if !ok {
			fmt.Println("No attempts in the past week.")
			return nil
		}
		fmt.Print(report.Render(weekly))
		return nil
	},
}
