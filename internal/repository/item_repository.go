package repository

import (
	"context"
	"fmt"

	"pokedex_server/internal/models"
	"pokedex_server/internal/validation"

	"gorm.io/gorm"
)

// ItemRepository handles the items a Pokemon owns.
type ItemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create stores a new item owned by the Pokemon. A missing owner is reported before any field violation.
func (r *ItemRepository) Create(ctx context.Context, pokemonID uint, in ItemInput) (*models.Item, error) {
	item := &models.Item{PokemonID: pokemonID}
	in.applyTo(item)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensurePokemon(tx, pokemonID); err != nil {
			return err
		}
		if err := validation.ValidateItem(item); err != nil {
			return err
		}
		if err := tx.Create(item).Error; err != nil {
			if foreignKeyViolation(err) {
				return &NotFoundError{Entity: "pokemon", ID: pokemonID}
			}
			return fmt.Errorf("create item for pokemon %d: %w", pokemonID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// ListByPokemon returns the items of a Pokemon ordered by id.
func (r *ItemRepository) ListByPokemon(ctx context.Context, pokemonID uint) ([]models.Item, error) {
	items := []models.Item{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensurePokemon(tx, pokemonID); err != nil {
			return err
		}
		if err := tx.Where("pokemon_id = ?", pokemonID).Order("id").Find(&items).Error; err != nil {
			return fmt.Errorf("list items of pokemon %d: %w", pokemonID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Get returns the item with id or a NotFoundError.
func (r *ItemRepository) Get(ctx context.Context, id uint) (*models.Item, error) {
	return findItem(r.db.WithContext(ctx), id)
}

// Update merges the provided fields into the item and re-validates it.
func (r *ItemRepository) Update(ctx context.Context, id uint, in ItemInput) (*models.Item, error) {
	var item *models.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		i, err := findItem(tx, id)
		if err != nil {
			return err
		}
		in.applyTo(i)
		if err := validation.ValidateItem(i); err != nil {
			return err
		}
		if err := tx.Save(i).Error; err != nil {
			return fmt.Errorf("update item %d: %w", id, err)
		}
		item = i
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item.
func (r *ItemRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, err := findItem(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(item).Error; err != nil {
			return fmt.Errorf("delete item %d: %w", id, err)
		}
		return nil
	})
}

func findItem(tx *gorm.DB, id uint) (*models.Item, error) {
	var item models.Item
	if err := tx.First(&item, id).Error; err != nil {
		return nil, notFound("item", id, err)
	}
	return &item, nil
}
