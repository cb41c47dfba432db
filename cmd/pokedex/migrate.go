package main

import (
	"pokedex_server/internal/db"
	"pokedex_server/pkg/colors"

	"github.com/spf13/cobra"
)

var flagReset bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the catalog schema",
	Long: `Create or upgrade the catalog tables, foreign keys and unique indexes.
With --reset every catalog table is dropped first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openCatalog()
		if err != nil {
			return err
		}
		if !flagReset {
			return nil
		}

		colors.PrintWarning("Dropping every catalog table")
		if err := db.DropAll(database); err != nil {
			return err
		}
		return db.RunMigrations(database)
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&flagReset, "reset", false, "drop all catalog tables before migrating")
}
