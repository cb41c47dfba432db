package repository

import (
	"context"
	"fmt"

	"pokedex_server/internal/models"
	"pokedex_server/internal/validation"

	"gorm.io/gorm"
)

const duplicateMoveMessage = "Pokemon cannot have the same move more than once"

// MoveRepository handles moves and the pokemon <-> move association.
type MoveRepository struct {
	db *gorm.DB
}

// NewMoveRepository creates a new move repository
func NewMoveRepository(db *gorm.DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// List returns every move ordered by id.
func (r *MoveRepository) List(ctx context.Context) ([]models.Move, error) {
	moves := []models.Move{}
	if err := r.db.WithContext(ctx).Order("id").Find(&moves).Error; err != nil {
		return nil, fmt.Errorf("list moves: %w", err)
	}
	return moves, nil
}

// Get returns the move with id or a NotFoundError.
func (r *MoveRepository) Get(ctx context.Context, id uint) (*models.Move, error) {
	return findMove(r.db.WithContext(ctx), id)
}

// FindByName returns the move called name, or nil when there is none.
func (r *MoveRepository) FindByName(ctx context.Context, name string) (*models.Move, error) {
	return moveByName(r.db.WithContext(ctx), name)
}

// Create stores a new move.
func (r *MoveRepository) Create(ctx context.Context, name string) (*models.Move, error) {
	move := &models.Move{Name: name}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return createMove(tx, move)
	})
	if err != nil {
		return nil, err
	}
	return move, nil
}

// FindOrCreate returns the move called name, creating it first if needed.
func (r *MoveRepository) FindOrCreate(ctx context.Context, name string) (*models.Move, error) {
	var move *models.Move
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := findOrCreateMove(tx, name)
		move = m
		return err
	})
	if err != nil {
		return nil, err
	}
	return move, nil
}

// Rename changes the name of a move, keeping names unique.
func (r *MoveRepository) Rename(ctx context.Context, id uint, name string) (*models.Move, error) {
	var move *models.Move
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := findMove(tx, id)
		if err != nil {
			return err
		}
		m.Name = name
		if err := checkMove(tx, m); err != nil {
			return err
		}
		if err := tx.Save(m).Error; err != nil {
			return moveWriteError(err, m)
		}
		move = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return move, nil
}

// Delete removes a move and every link to it. The Pokemon that knew it are kept.
func (r *MoveRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		move, err := findMove(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Where("move_id = ?", id).Delete(&models.PokeMove{}).Error; err != nil {
			return fmt.Errorf("delete links of move %d: %w", id, err)
		}
		if err := tx.Delete(move).Error; err != nil {
			return fmt.Errorf("delete move %d: %w", id, err)
		}
		return nil
	})
}

// Learn links the move called moveName to the Pokemon, creating the move when it is new.
func (r *MoveRepository) Learn(ctx context.Context, pokemonID uint, moveName string) (*models.PokeMove, error) {
	var link *models.PokeMove
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensurePokemon(tx, pokemonID); err != nil {
			return err
		}
		move, err := findOrCreateMove(tx, moveName)
		if err != nil {
			return err
		}

		pm := &models.PokeMove{PokemonID: pokemonID, MoveID: move.ID}
		if err := validation.ValidatePokeMove(pm); err != nil {
			return err
		}
		var count int64
		err = tx.Model(&models.PokeMove{}).
			Where("pokemon_id = ? AND move_id = ?", pokemonID, move.ID).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("check move link: %w", err)
		}
		if count > 0 {
			return validation.Single("pokemon_id", duplicateMoveMessage)
		}

		if err := tx.Create(pm).Error; err != nil {
			if verr := asConflict(err, map[string]fieldMessage{
				models.IdxPokeMovesPair: {"pokemon_id", duplicateMoveMessage},
			}); verr != nil {
				return verr
			}
			if foreignKeyViolation(err) {
				return &NotFoundError{Entity: "pokemon", ID: pokemonID}
			}
			return fmt.Errorf("link move %d to pokemon %d: %w", move.ID, pokemonID, err)
		}
		pm.Move = move
		link = pm
		return nil
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

// MovesOf returns the moves a Pokemon has learned, in the order they were learned.
func (r *MoveRepository) MovesOf(ctx context.Context, pokemonID uint) ([]models.Move, error) {
	var moves []models.Move
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensurePokemon(tx, pokemonID); err != nil {
			return err
		}
		var err error
		moves, err = movesOf(tx, pokemonID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return moves, nil
}

// Forget removes the link between a Pokemon and a move. The move itself is kept.
func (r *MoveRepository) Forget(ctx context.Context, pokemonID, moveID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensurePokemon(tx, pokemonID); err != nil {
			return err
		}
		res := tx.Where("pokemon_id = ? AND move_id = ?", pokemonID, moveID).Delete(&models.PokeMove{})
		if res.Error != nil {
			return fmt.Errorf("forget move %d of pokemon %d: %w", moveID, pokemonID, res.Error)
		}
		if res.RowsAffected == 0 {
			return &NotFoundError{Entity: "move", ID: moveID}
		}
		return nil
	})
}

func findMove(tx *gorm.DB, id uint) (*models.Move, error) {
	var move models.Move
	if err := tx.First(&move, id).Error; err != nil {
		return nil, notFound("move", id, err)
	}
	return &move, nil
}

func moveByName(tx *gorm.DB, name string) (*models.Move, error) {
	var moves []models.Move
	if err := tx.Where("name = ?", name).Limit(1).Find(&moves).Error; err != nil {
		return nil, fmt.Errorf("find move %q: %w", name, err)
	}
	if len(moves) == 0 {
		return nil, nil
	}
	return &moves[0], nil
}

func findOrCreateMove(tx *gorm.DB, name string) (*models.Move, error) {
	move, err := moveByName(tx, name)
	if err != nil || move != nil {
		return move, err
	}
	move = &models.Move{Name: name}
	if err := createMove(tx, move); err != nil {
		return nil, err
	}
	return move, nil
}

func createMove(tx *gorm.DB, m *models.Move) error {
	if err := checkMove(tx, m); err != nil {
		return err
	}
	if err := tx.Create(m).Error; err != nil {
		return moveWriteError(err, m)
	}
	return nil
}

func checkMove(tx *gorm.DB, m *models.Move) error {
	errs := validation.Check(m)
	if !errs.Has("name") {
		var count int64
		err := tx.Model(&models.Move{}).Where("name = ? AND id <> ?", m.Name, m.ID).Count(&count).Error
		if err != nil {
			return fmt.Errorf("check move name: %w", err)
		}
		if count > 0 {
			errs.Add("name", moveTaken(m.Name))
		}
	}
	return errs.Err()
}

func moveTaken(name string) string { return fmt.Sprintf("Move '%s' already in use", name) }

func moveWriteError(err error, m *models.Move) error {
	if verr := asConflict(err, map[string]fieldMessage{
		models.IdxMovesName: {"name", moveTaken(m.Name)},
	}); verr != nil {
		return verr
	}
	return fmt.Errorf("save move: %w", err)
}

// movesOf loads the moves linked to a Pokemon through poke_moves.
func movesOf(tx *gorm.DB, pokemonID uint) ([]models.Move, error) {
	moves := []models.Move{}
	err := tx.Model(&models.Move{}).
		Select("moves.*").
		Joins("JOIN poke_moves ON poke_moves.move_id = moves.id").
		Where("poke_moves.pokemon_id = ?", pokemonID).
		Order("poke_moves.id").
		Find(&moves).Error
	if err != nil {
		return nil, fmt.Errorf("load moves of pokemon %d: %w", pokemonID, err)
	}
	return moves, nil
}
