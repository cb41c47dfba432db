package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pokedex_server/config"
	"pokedex_server/internal/db"
	"pokedex_server/internal/models"
	"pokedex_server/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openCatalog(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := db.Connect(&config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(database) })
	require.NoError(t, db.RunMigrations(database))
	return database
}

func count(t *testing.T, database *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, database.Model(model).Count(&n).Error)
	return n
}

func TestStarterEntriesParse(t *testing.T) {
	entries, err := Starter()
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, "Bulbasaur", *entries[0].Name)
	assert.Equal(t, []string{"Tackle", "Growl", "Vine Whip"}, entries[0].Moves)
	assert.Len(t, entries[3].Items, 2)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader(`[{"number":1,"nmae":"Bulbasaur"}]`))
	assert.Error(t, err)
}

func TestRunSeedsStarterSet(t *testing.T) {
	database := openCatalog(t)
	entries, err := Starter()
	require.NoError(t, err)

	res, err := NewSeeder(database).Run(context.Background(), entries, Options{})
	require.NoError(t, err)
	assert.Equal(t, Result{Pokemon: 4, Items: 5, Moves: 12}, res)

	assert.Equal(t, int64(4), count(t, database, &models.Pokemon{}))
	// Tackle and Growl are shared
	assert.Equal(t, int64(9), count(t, database, &models.Move{}))
	assert.Equal(t, int64(12), count(t, database, &models.PokeMove{}))
}

func TestRunSkipsExisting(t *testing.T) {
	database := openCatalog(t)
	entries, err := Starter()
	require.NoError(t, err)
	seeder := NewSeeder(database)

	_, err = seeder.Run(context.Background(), entries[:2], Options{})
	require.NoError(t, err)

	res, err := seeder.Run(context.Background(), entries, Options{SkipExisting: true})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Skipped)
	assert.Equal(t, 2, res.Pokemon)
	assert.Equal(t, int64(4), count(t, database, &models.Pokemon{}))
}

func TestRunStopsOnInvalidEntry(t *testing.T) {
	database := openCatalog(t)
	entries, err := Parse(strings.NewReader(`[
		{"number":1,"name":"Bulbasaur","attack":49,"defense":49,"poke_type":"grass","image_url":"x"},
		{"number":2,"name":"Ivysaur","attack":0,"defense":63,"poke_type":"grass","image_url":"x"}
	]`))
	require.NoError(t, err)

	res, err := NewSeeder(database).Run(context.Background(), entries, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ivysaur")

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.True(t, errs.Has("attack"))
	assert.Equal(t, 1, res.Pokemon)
}
