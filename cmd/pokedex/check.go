package main

import (
	"fmt"

	"pokedex_server/config"
	"pokedex_server/internal/db"
	"pokedex_server/pkg/colors"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report missing catalog tables, columns, foreign keys and unique indexes",
	Long: `Connect without migrating and compare the database schema with the catalog models.
Exits non-zero when anything is missing; run "pokedex migrate" to repair it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadEnvFiles(flagEnvFile); err != nil {
			return fmt.Errorf("load %s: %w", flagEnvFile, err)
		}
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		database, err := db.Connect(&cfg.Database)
		if err != nil {
			return err
		}
		catalog = database

		checks, err := db.Inspect(database)
		if err != nil {
			return err
		}

		colors.PrintHeader("CATALOG SCHEMA")
		missing := 0
		for _, c := range checks {
			if c.OK {
				colors.PrintSuccess("✓ %s %s", c.Kind, c.Name)
				continue
			}
			missing++
			colors.PrintError("%s %s is missing", c.Kind, c.Name)
		}
		if missing > 0 {
			return fmt.Errorf("%d schema objects missing", missing)
		}
		return nil
	},
}
