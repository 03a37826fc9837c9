package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/prepdash/internal/dataio"
	"github.com/abhisek/prepdash/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a practice log or problem master from CSV",
}

var importAttemptsCmd = &cobra.Command{
	Use:   "attempts <file>",
	Short: "Append attempts from a CSV practice log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		result, err := dataio.ReadAttempts(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		batchID := uuid.NewString()
		if err := st.AttemptRepo().Append(ctx, result.Log, batchID); err != nil {
			return fmt.Errorf("store attempts: %w", err)
		}

		fmt.Printf("Imported %d attempt(s)", len(result.Log))
		if result.Dropped > 0 {
			fmt.Printf(", dropped %d malformed row(s)", result.Dropped)
		}
		fmt.Println()

		return saveSnapshot(cmd, st)
	},
}

var importCatalogCmd = &cobra.Command{
	Use:   "catalog <file>",
	Short: "Replace the problem master from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		cat, err := dataio.ReadCatalog(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		problems := cat.Problems()
		if err := st.CatalogRepo().Replace(ctx, problems); err != nil {
			return fmt.Errorf("store catalog: %w", err)
		}

		fmt.Printf("Loaded %d problem(s) into the master\n", len(problems))
		return nil
	},
}

// saveSnapshot caches headline stats so the dashboard header can render
// without replaying the log.
func saveSnapshot(cmd *cobra.Command, st *store.Store) error {
	ctx := cmd.Context()

	log, err := st.AttemptRepo().Log(ctx)
	if err != nil {
		return err
	}

	correct := 0
	for _, e := range log {
		if e.Correct() {
			correct++
		}
	}
	accuracy := 0.0
	if len(log) > 0 {
		accuracy = float64(correct) / float64(len(log))
	}

	snap := &store.Snapshot{
		Data: store.SnapshotData{
			Version:    1,
			Attempts:   len(log),
			Accuracy:   accuracy,
			StreakDays: log.StreakDays(),
			AsOf:       time.Now(),
		},
	}
	if err := st.SnapshotRepo().Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return st.SnapshotRepo().Prune(ctx, 10)
}

func init() {
	importCmd.AddCommand(importAttemptsCmd)
	importCmd.AddCommand(importCatalogCmd)
}
