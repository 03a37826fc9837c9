package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepdash/internal/analytics"
	"github.com/abhisek/prepdash/internal/catalog"
	"github.com/abhisek/prepdash/internal/config"
	"github.com/abhisek/prepdash/internal/insights"
	"github.com/abhisek/prepdash/internal/weakness"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print practice statistics and insights",
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
		now := time.Now()
		summary := analytics.Aggregate(log, cat, analytics.Options{
			TimePolicyFactor: settings.TimePolicy.Factor(),
		})
		if summary.Empty() {
			fmt.Println("No attempts recorded yet. Run `prepdash import attempts` first.")
			return nil
		}

		o := summary.Overall
		fmt.Printf("Attempts: %d\n", o.Attempts)
		fmt.Printf("Accuracy: %.1f%% (target %.0f%%)\n", o.Accuracy*100, settings.TargetRate*100)
		if o.AvgTargetSecs > 0 {
			fmt.Printf("Avg time: %.0fs / %.0fs target, %.0f%% over time\n",
				o.AvgAnswerSecs, o.AvgTargetSecs, o.TimeOverrunRate*100)
		}
		fmt.Printf("Streak:   %d day(s)\n", log.StreakDays())

		fmt.Println("\nTiers:")
		for _, t := range catalog.Tiers() {
			ts := summary.Tiers[t]
			fmt.Printf("  %-4s  %.1f%% accuracy, %d/%d solved (%.0f%% coverage)\n",
				t, ts.Accuracy*100, ts.Solved, ts.Total, ts.Coverage)
		}

		fmt.Println("\nUnits (weakest first):")
		for i, r := range weakness.Rank(summary) {
			if i == 10 {
				break
			}
			fmt.Printf("  %-20s  %.1f%% over %d attempt(s), score %.1f\n",
				r.Unit, r.Accuracy*100, r.Attempts, r.Score)
		}

		if menu := weakness.TodayMenu(summary, 3); len(menu) > 0 {
			fmt.Println("\nToday's menu:")
			for i, item := range menu {
				fmt.Printf("  %d. %s — %d question(s)\n", i+1, item.Unit, item.Questions)
			}
		}

		if ins := insights.Analyze(summary, settings, now); len(ins) > 0 {
			fmt.Println("\nInsights:")
			for _, in := range ins {
				fmt.Printf("  [%s] %s\n", in.Priority, in.Message)
			}
		}

		if badges := insights.Badges(summary, now); len(badges) > 0 {
			labels := make([]string, len(badges))
			for i, b := range badges {
				labels[i] = b.Label
			}
			sort.Strings(labels)
			fmt.Println("\nBadges:")
			for _, l := range labels {
				fmt.Printf("  🏅 %s\n", l)
			}
		}

		return nil
	},
}
