package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepdash/internal/progression"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Print the tier progression roadmap",
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

		ev := progression.Evaluate(log, cat)

		fmt.Printf("Phase: %s\n\n", ev.Phase)
		for _, tr := range ev.Tiers {
			marker := " "
			if tr.Tier == ev.ActiveTier {
				marker = "←"
			}
			fmt.Printf("%-4s [%s] %s  %.1f%% accuracy, %d/%d solved (%.0f%% coverage)\n",
				tr.Tier, tr.Status, marker,
				tr.Stats.Accuracy*100, tr.Stats.Solved, tr.Stats.Total, tr.Stats.Coverage)
		}

		if ev.NextUnit != "" {
			fmt.Printf("\nNext unit: %s\n", ev.NextUnit)
		}
		if len(ev.Recommendations) > 0 {
			fmt.Println("\nRecommendations:")
			for _, rec := range ev.Recommendations {
				fmt.Printf("  • %s\n", rec)
			}
		}
		return nil
	},
}
