package main

import (
	"fmt"

	"pokedex_server/config"
	"pokedex_server/internal/db"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	// flagEnvFile is set by the --env-file flag.
	flagEnvFile string

	// catalog is opened by openCatalog for the commands that need the database.
	catalog *gorm.DB
)

var rootCmd = &cobra.Command{
	Use:           "pokedex",
	Short:         "Pokedex catalog administration",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if catalog == nil {
			return nil
		}
		return db.Close(catalog)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "environment file to load before reading configuration")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(checkCmd)
}

// openCatalog loads configuration, connects, and brings the schema up to date.
func openCatalog() (*gorm.DB, error) {
	if _, err := config.LoadEnvFiles(flagEnvFile); err != nil {
		return nil, fmt.Errorf("load %s: %w", flagEnvFile, err)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	database, err := db.Connect(&cfg.Database)
	if err != nil {
		return nil, err
	}
	catalog = database

	if err := db.RunMigrations(database); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return database, nil
}
