package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pokedex_server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		catalog = nil
		flagSeedFile, flagSkipExisting, flagReset = "", false, false
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func useSQLite(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pokedex.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", path)
	return path
}

func TestTypesCommand(t *testing.T) {
	out, err := execute(t, "types")
	require.NoError(t, err)
	assert.Equal(t, models.PokeTypes(), strings.Fields(out))
}

func TestMigrateCommand(t *testing.T) {
	path := useSQLite(t)

	_, err := execute(t, "migrate", "--env-file", "missing.env")
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)

	_, err = execute(t, "migrate", "--reset", "--env-file", "missing.env")
	assert.NoError(t, err)
}

func TestSeedCommand(t *testing.T) {
	useSQLite(t)

	_, err := execute(t, "seed", "--env-file", "missing.env")
	require.NoError(t, err)

	// a second plain run collides with the first
	_, err = execute(t, "seed", "--env-file", "missing.env")
	assert.Error(t, err)

	_, err = execute(t, "seed", "--skip-existing", "--env-file", "missing.env")
	assert.NoError(t, err)
}

func TestSeedCommandReadsFile(t *testing.T) {
	useSQLite(t)
	file := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(file, []byte(
		`[{"number":133,"name":"Eevee","attack":55,"defense":50,"poke_type":"normal","image_url":"x","moves":["Tackle"]}]`,
	), 0o600))

	_, err := execute(t, "seed", "--file", file, "--env-file", "missing.env")
	assert.NoError(t, err)

	_, err = execute(t, "seed", "--file", filepath.Join(t.TempDir(), "nope.json"), "--env-file", "missing.env")
	assert.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	useSQLite(t)

	_, err := execute(t, "check", "--env-file", "missing.env")
	assert.Error(t, err)

	_, err = execute(t, "migrate", "--env-file", "missing.env")
	require.NoError(t, err)
	_, err = execute(t, "check", "--env-file", "missing.env")
	assert.NoError(t, err)
}
