package db

import (
	"fmt"

	"pokedex_server/internal/models"
	"pokedex_server/pkg/colors"

	"gorm.io/gorm"
)

type table struct {
	label string
	model interface{}
}

// Parents before children so foreign keys resolve.
var tables = []table{
	{"pokemons", &models.Pokemon{}},
	{"moves", &models.Move{}},
	{"poke_moves", &models.PokeMove{}},
	{"items", &models.Item{}},
}

type uniqueIndex struct {
	model interface{}
	name  string
}

// Every uniqueness rule must be backed by one of these.
var uniqueIndexes = []uniqueIndex{
	{&models.Pokemon{}, models.IdxPokemonsNumber},
	{&models.Pokemon{}, models.IdxPokemonsName},
	{&models.Move{}, models.IdxMovesName},
	{&models.PokeMove{}, models.IdxPokeMovesPair},
}

// RunMigrations creates or updates the catalog schema
func RunMigrations(database *gorm.DB) error {
	colors.PrintSubHeader("Running Database Migrations")

	for _, t := range tables {
		if err := database.AutoMigrate(t.model); err != nil {
			return fmt.Errorf("%s table migration failed: %w", t.label, err)
		}
		colors.PrintSuccess("✓ %s table ready", t.label)
	}

	if err := ensureUniqueIndexes(database); err != nil {
		return err
	}

	colors.PrintSuccess("Database migrations completed successfully")
	return nil
}

// ensureUniqueIndexes recreates unique indexes missing from tables that predate them.
func ensureUniqueIndexes(database *gorm.DB) error {
	m := database.Migrator()
	for _, idx := range uniqueIndexes {
		if m.HasIndex(idx.model, idx.name) {
			continue
		}
		colors.PrintWarning("Unique index %s missing, creating it...", idx.name)
		if err := m.CreateIndex(idx.model, idx.name); err != nil {
			return fmt.Errorf("failed to create unique index %s: %w", idx.name, err)
		}
		colors.PrintSuccess("Created unique index %s", idx.name)
	}
	return nil
}

// DropAll removes every catalog table, children first.
func DropAll(database *gorm.DB) error {
	for i := len(tables) - 1; i >= 0; i-- {
		if err := database.Migrator().DropTable(tables[i].model); err != nil {
			return fmt.Errorf("drop %s: %w", tables[i].label, err)
		}
		colors.PrintInfo("Dropped %s table", tables[i].label)
	}
	return nil
}
