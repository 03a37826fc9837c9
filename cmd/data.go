package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/prepdash/internal/attemptlog"
	"github.com/abhisek/prepdash/internal/catalog"
	"github.com/abhisek/prepdash/internal/store"
	"github.com/spf13/cobra"
)

// openStore opens the SQLite store for the resolved DB path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadData returns the full attempt log and catalog from the store.
func loadData(ctx context.Context, st *store.Store) (attemptlog.Log, *catalog.Catalog, error) {
	log, err := st.AttemptRepo().Log(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load attempt log: %w", err)
	}
	cat, err := st.CatalogRepo().Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	return log, cat, nil
}
