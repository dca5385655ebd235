package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-search/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Run database migrations",
	Long:      "Applies the embedded SQL migrations against DATABASE_URL.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"up", "down", "status"},
	RunE:      runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if err := store.Migrate(cmd.Context(), databaseURL, args[0]); err != nil {
		return fmt.Errorf("migration %s failed: %w", args[0], err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Migration %s complete\n", args[0])
	return nil
}
