package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/focustrack/focustrack/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long:  `Apply all pending database migrations to the configured database.`,
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrate.RunAll(context.Background(), db.DB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	fmt.Println("Migrations applied")
	return nil
}
