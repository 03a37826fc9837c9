package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepdash/internal/analytics"
	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/config"
	"github.com/abhisek/prepdash/internal/planner"
	"github.com/abhisek/prepdash/internal/weakness"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the day-by-day study plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		extended, _ := cmd.Flags().GetBool("extended")

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
		if settings.ExamDate.IsZero() {
			fmt.Println("No exam date set. Export PREPDASH_EXAM_DATE=YYYY-MM-DD first.")
			return nil
		}

		summary := analytics.Aggregate(log, cat, analytics.Options{
			TimePolicyFactor: settings.TimePolicy.Factor(),
		})
		weak := weakness.Rank(summary)

		cfg := planner.DefaultConfig(settings.DailyLimitMins)
		if extended {
			cfg = planner.ExtendedConfig(settings.DailyLimitMins)
		}

		now := time.Now()
		days := planner.Build(log, cat, weak, settings.ExamDate, now, cfg)
		if len(days) == 0 {
			fmt.Println("Nothing to plan — the exam has passed or the log is empty.")
			return nil
		}

		daysLeft := int(attemptlog.Day(settings.ExamDate).
			Sub(attemptlog.Day(now)).Hours() / 24)
		fmt.Printf("Exam %s — %d day(s) left\n\n",
			settings.ExamDate.Format("2006/01/02"), daysLeft)

		today := attemptlog.Day(now)
		for _, day := range days {
			label := day.Date.Format("Mon Jan 02")
			if day.Date.Equal(today) {
				label += " (today)"
			}
			fmt.Printf("%-18s %3d min", label, day.TotalMinutes)
			for _, u := range day.Units {
				fmt.Printf("  [%s] %s", u.Origin, u.Name)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	planCmd.Flags().Bool("extended", false, "Replay the past week and plan up to 28 days ahead")
}
