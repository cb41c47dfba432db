package main

import (
	"os"

	"pokedex_server/internal/seed"
	"pokedex_server/pkg/colors"

	"github.com/spf13/cobra"
)

var (
	flagSeedFile     string
	flagSkipExisting bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load Pokemon with their items and moves into the catalog",
	Long: `Load a JSON array of Pokemon, each with optional "items" and "moves" (move names),
into the catalog. Without --file the bundled starter set is loaded.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := loadEntries()
		if err != nil {
			return err
		}

		database, err := openCatalog()
		if err != nil {
			return err
		}

		colors.PrintHeader("SEEDING %d POKEMON", len(entries))
		res, err := seed.NewSeeder(database).Run(cmd.Context(), entries, seed.Options{SkipExisting: flagSkipExisting})
		if err != nil {
			return err
		}
		colors.PrintSuccess("Seeded %d pokemon, %d items, %d moves (%d skipped)", res.Pokemon, res.Items, res.Moves, res.Skipped)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&flagSeedFile, "file", "f", "", "seed file (default: bundled starter set)")
	seedCmd.Flags().BoolVar(&flagSkipExisting, "skip-existing", false, "skip entries whose number is already in the catalog")
}

func loadEntries() ([]seed.Entry, error) {
	if flagSeedFile == "" {
		return seed.Starter()
	}
	f, err := os.Open(flagSeedFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return seed.Parse(f)
}
