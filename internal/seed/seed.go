// Package seed loads Pokemon, with their items and moves, into the catalog.
// Every record goes through the repositories, so all catalog rules apply to seeded data too.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"pokedex_server/internal/repository"
	"pokedex_server/pkg/colors"

	"gorm.io/gorm"
)

//go:embed starter.json
var starterJSON []byte

// Entry is one Pokemon of a seed file
type Entry struct {
	repository.PokemonInput

	Moves []string               `json:"moves"`
	Items []repository.ItemInput `json:"items"`
}

func (e Entry) label() string {
	if e.Name != nil {
		return *e.Name
	}
	return "<unnamed>"
}

// Options tune a seed run
type Options struct {
	// SkipExisting leaves entries whose number is already in the catalog untouched
	SkipExisting bool
}

// Result counts what a run wrote
type Result struct {
	Pokemon int
	Items   int
	Moves   int
	Skipped int
}

// Parse reads a JSON array of entries. Unknown fields are rejected so typos do not pass silently.
func Parse(r io.Reader) ([]Entry, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var entries []Entry
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return entries, nil
}

// Starter returns the entries bundled with the binary.
func Starter() ([]Entry, error) {
	return Parse(bytes.NewReader(starterJSON))
}

// Seeder writes entries through the catalog repositories
type Seeder struct {
	pokemons *repository.PokemonRepository
	moves    *repository.MoveRepository
	items    *repository.ItemRepository
}

// NewSeeder creates a seeder on db
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		pokemons: repository.NewPokemonRepository(db),
		moves:    repository.NewMoveRepository(db),
		items:    repository.NewItemRepository(db),
	}
}

// Run stores entries in order and stops at the first failure.
// Entries written before the failure stay in the catalog.
func (s *Seeder) Run(ctx context.Context, entries []Entry, opts Options) (Result, error) {
	var res Result
	for i, e := range entries {
		if opts.SkipExisting && e.Number != nil {
			existing, err := s.pokemons.FindByNumber(ctx, *e.Number)
			if err != nil {
				return res, err
			}
			if existing != nil {
				colors.PrintWarning("Skipping #%d %s, already in the catalog", *e.Number, existing.Name)
				res.Skipped++
				continue
			}
		}

		pokemon, err := s.pokemons.Create(ctx, e.PokemonInput)
		if err != nil {
			return res, fmt.Errorf("entry %d (%s): %w", i, e.label(), err)
		}
		res.Pokemon++

		for _, item := range e.Items {
			if _, err := s.items.Create(ctx, pokemon.ID, item); err != nil {
				return res, fmt.Errorf("entry %d (%s) item: %w", i, e.label(), err)
			}
			res.Items++
		}
		for _, name := range e.Moves {
			if _, err := s.moves.Learn(ctx, pokemon.ID, name); err != nil {
				return res, fmt.Errorf("entry %d (%s) move %q: %w", i, e.label(), name, err)
			}
			res.Moves++
		}

		colors.PrintData("🌱", "Seeded #%d %s (%d items, %d moves)", pokemon.Number, pokemon.Name, len(e.Items), len(e.Moves))
	}
	return res, nil
}
