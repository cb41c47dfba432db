package repository

import (
	"errors"
	"fmt"
	"strings"

	"pokedex_server/internal/models"
	"pokedex_server/internal/validation"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound matches every NotFoundError through errors.Is.
var ErrNotFound = errors.New("record not found")

// NotFoundError reports a missing entity, including a missing owner referenced by a create.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(entity string, id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return fmt.Errorf("load %s %d: %w", entity, id, err)
}

// sqliteUniqueColumns maps the column list SQLite reports to our index names.
var sqliteUniqueColumns = map[string]string{
	"pokemons.number": models.IdxPokemonsNumber,
	"pokemons.name":   models.IdxPokemonsName,
	"moves.name":      models.IdxMovesName,

	"poke_moves.pokemon_id, poke_moves.move_id": models.IdxPokeMovesPair,
}

// uniqueViolation returns the name of the unique index err violated, if any.
// The name is empty when the engine did not report it.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName, pgErr.Code == "23505"
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}

	// glebarez/sqlite: "constraint failed: UNIQUE constraint failed: pokemons.name (2067)"
	msg := err.Error()
	_, rest, ok := strings.Cut(msg, "UNIQUE constraint failed: ")
	if !ok {
		return "", false
	}
	if i := strings.LastIndex(rest, " ("); i >= 0 {
		rest = rest[:i]
	}
	return sqliteUniqueColumns[strings.TrimSpace(rest)], true
}

// foreignKeyViolation reports whether err is a broken reference raised at commit.
func foreignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

type fieldMessage struct {
	field   string
	message string
}

// asConflict turns a unique violation into the ValidationError a pre-check would have
// produced, keyed by index name. It returns nil when err is not a unique violation.
func asConflict(err error, messages map[string]fieldMessage) error {
	idx, ok := uniqueViolation(err)
	if !ok {
		return nil
	}
	if m, found := messages[idx]; found {
		return validation.Single(m.field, m.message)
	}
	return validation.Single("base", "record is not unique")
}
