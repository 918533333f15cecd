package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/scoresense/sports-api/internal/infrastructure/db/postgres"
	"github.com/scoresense/sports-api/internal/pkg/config"
)

// migrateCmd creates the schema and seeds the role lookup table.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema and seed the built-in roles",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		cfg := config.Load()

		ctx := cmd.Context()

		db, err := postgres.Connect(ctx, cfg.Postgres.DSN())
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer func() { _ = postgres.Close(db) }()

		if err := postgres.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		if err := postgres.SeedRoles(ctx, db); err != nil {
			return fmt.Errorf("seed roles: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
