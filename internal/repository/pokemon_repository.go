package repository

import (
	"context"
	"fmt"

	"pokedex_server/internal/models"
	"pokedex_server/internal/validation"

	"gorm.io/gorm"
)

// PokemonRepository mediates every read and write of Pokemon and their cascades.
type PokemonRepository struct {
	db *gorm.DB
}

// NewPokemonRepository creates a new pokemon repository
func NewPokemonRepository(db *gorm.DB) *PokemonRepository {
	return &PokemonRepository{db: db}
}

// List returns all Pokemon in creation order.
func (r *PokemonRepository) List(ctx context.Context) ([]models.Pokemon, error) {
	pokemons := []models.Pokemon{}
	if err := r.db.WithContext(ctx).Order("id").Find(&pokemons).Error; err != nil {
		return nil, fmt.Errorf("list pokemon: %w", err)
	}
	return pokemons, nil
}

// Get returns the Pokemon with id or a NotFoundError.
func (r *PokemonRepository) Get(ctx context.Context, id uint) (*models.Pokemon, error) {
	return findPokemon(r.db.WithContext(ctx), id)
}

// GetWithMoves is Get with the learned moves loaded.
func (r *PokemonRepository) GetWithMoves(ctx context.Context, id uint) (*models.Pokemon, error) {
	var pokemon *models.Pokemon
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := findPokemon(tx, id)
		if err != nil {
			return err
		}
		if p.Moves, err = movesOf(tx, id); err != nil {
			return err
		}
		pokemon = p
		return nil
	})
	return pokemon, err
}

// FindByNumber returns the Pokemon with the given Pokedex number, or nil when there is none.
func (r *PokemonRepository) FindByNumber(ctx context.Context, number int) (*models.Pokemon, error) {
	var pokemons []models.Pokemon
	if err := r.db.WithContext(ctx).Where("number = ?", number).Limit(1).Find(&pokemons).Error; err != nil {
		return nil, fmt.Errorf("find pokemon number %d: %w", number, err)
	}
	if len(pokemons) == 0 {
		return nil, nil
	}
	return &pokemons[0], nil
}

// Create validates in and stores a new Pokemon.
func (r *PokemonRepository) Create(ctx context.Context, in PokemonInput) (*models.Pokemon, error) {
	pokemon := &models.Pokemon{}
	in.applyTo(pokemon)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkPokemon(tx, pokemon); err != nil {
			return err
		}
		if err := tx.Create(pokemon).Error; err != nil {
			return pokemonWriteError(err, pokemon)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pokemon, nil
}

// Update merges the provided fields into the stored Pokemon and re-validates it.
func (r *PokemonRepository) Update(ctx context.Context, id uint, in PokemonInput) (*models.Pokemon, error) {
	var pokemon *models.Pokemon
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := findPokemon(tx, id)
		if err != nil {
			return err
		}
		in.applyTo(p)
		if err := checkPokemon(tx, p); err != nil {
			return err
		}
		if err := tx.Save(p).Error; err != nil {
			return pokemonWriteError(err, p)
		}
		pokemon = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pokemon, nil
}

// Delete removes the Pokemon together with its items and move links.
// Moves themselves are kept, other Pokemon may still know them.
func (r *PokemonRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pokemon, err := findPokemon(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Where("pokemon_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return fmt.Errorf("delete items of pokemon %d: %w", id, err)
		}
		if err := tx.Where("pokemon_id = ?", id).Delete(&models.PokeMove{}).Error; err != nil {
			return fmt.Errorf("delete move links of pokemon %d: %w", id, err)
		}
		if err := tx.Delete(pokemon).Error; err != nil {
			return fmt.Errorf("delete pokemon %d: %w", id, err)
		}
		return nil
	})
}

func findPokemon(tx *gorm.DB, id uint) (*models.Pokemon, error) {
	var pokemon models.Pokemon
	if err := tx.First(&pokemon, id).Error; err != nil {
		return nil, notFound("pokemon", id, err)
	}
	return &pokemon, nil
}

// ensurePokemon fails with NotFoundError unless the Pokemon exists.
func ensurePokemon(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&models.Pokemon{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("check pokemon %d: %w", id, err)
	}
	if count == 0 {
		return &NotFoundError{Entity: "pokemon", ID: id}
	}
	return nil
}

// checkPokemon runs field validation plus the uniqueness pre-check inside tx.
func checkPokemon(tx *gorm.DB, p *models.Pokemon) error {
	errs := validation.Check(p)

	taken := func(column string, value interface{}) (bool, error) {
		var count int64
		err := tx.Model(&models.Pokemon{}).
			Where(column+" = ? AND id <> ?", value, p.ID).
			Count(&count).Error
		return count > 0, err
	}

	if !errs.Has("number") {
		dup, err := taken("number", p.Number)
		if err != nil {
			return fmt.Errorf("check pokemon number: %w", err)
		}
		if dup {
			errs.Add("number", numberTaken(p.Number))
		}
	}
	if !errs.Has("name") {
		dup, err := taken("name", p.Name)
		if err != nil {
			return fmt.Errorf("check pokemon name: %w", err)
		}
		if dup {
			errs.Add("name", nameTaken(p.Name))
		}
	}
	return errs.Err()
}

func numberTaken(n int) string { return fmt.Sprintf("Number '%d' is already taken", n) }
func nameTaken(n string) string { return fmt.Sprintf("Name '%s' is already taken", n) }

func pokemonWriteError(err error, p *models.Pokemon) error {
	verr := asConflict(err, map[string]fieldMessage{
		models.IdxPokemonsNumber: {"number", numberTaken(p.Number)},
		models.IdxPokemonsName:   {"name", nameTaken(p.Name)},
	})
	if verr != nil {
		return verr
	}
	return fmt.Errorf("save pokemon: %w", err)
}
