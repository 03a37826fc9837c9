package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepdash/internal/analytics"
	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/coach"
	"github.com/abhisek/prepdash/internal/config"
	"github.com/abhisek/prepdash/internal/forecast"
	"github.com/abhisek/prepdash/internal/llm"
	"github.com/abhisek/prepdash/internal/weakness"
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Get study advice for the coming week",
	Long: `Generate coaching advice from your practice statistics. With an LLM
provider configured (PREPDASH_LLM_PROVIDER or a standard API key
variable), the advice comes from the model; otherwise a rule-based
fallback runs. Only aggregate statistics are sent.`,
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
		if len(log) == 0 {
			fmt.Println("No attempts recorded yet. Run `prepdash import attempts` first.")
			return nil
		}

		settings := config.FromEnv()
		now := time.Now()
		summary := analytics.Aggregate(log, cat, analytics.Options{
			TimePolicyFactor: settings.TimePolicy.Factor(),
		})

		daysToExam := 0
		if !settings.ExamDate.IsZero() {
			daysToExam = int(attemptlog.Day(settings.ExamDate).
				Sub(attemptlog.Day(now)).Hours() / 24)
			if daysToExam < 0 {
				daysToExam = 0
			}
		}

		input := coach.Input{
			Summary: summary,
			Weak:    weakness.Rank(summary),
			Trend: forecast.Forecast(summary.Window.DailyAccuracy(),
				settings.TargetRate, summary.Overall.Accuracy, now),
			TargetRate: settings.TargetRate,
			StreakDays: log.StreakDays(),
			DaysToExam: daysToExam,
		}

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Warning:", err)
			provider = nil
		}

		svc := coach.NewService(provider, coach.DefaultConfig())
		adv, err := svc.Generate(ctx, input)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Warning: LLM call failed, using rule-based advice:", err)
			adv = coach.Fallback(input)
		}

		fmt.Println(adv.Summary)
		if adv.FocusUnit != "" {
			fmt.Printf("\nFocus unit: %s\n", adv.FocusUnit)
		}
		if len(adv.Tips) > 0 {
			fmt.Println()
			for _, tip := range adv.Tips {
				fmt.Printf("  • %s\n", tip)
			}
		}
		if !adv.FromLLM {
			fmt.Println("\n(rule-based advice — configure an LLM provider for personalized coaching)")
		}
		return nil
	},
}
