package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/prepdash/internal/dataio"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the stored attempt log to a re-importable CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		log, err := st.AttemptRepo().Log(ctx)
		if err != nil {
			return fmt.Errorf("load attempt log: %w", err)
		}

		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		if err := dataio.WriteAttempts(f, log); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}
		fmt.Printf("Exported %d attempt(s) to %s\n", len(log), args[0])
		return nil
	},
}
