package models

import "time"

const IdxPokeMovesPair = "idx_poke_moves_pokemon_move"

// PokeMove links a Pokemon to a Move it has learned. A pair may exist only once.
type PokeMove struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	PokemonID uint      `json:"pokemon_id" gorm:"not null;uniqueIndex:idx_poke_moves_pokemon_move,priority:1" validate:"reference"`
	MoveID    uint      `json:"move_id" gorm:"not null;uniqueIndex:idx_poke_moves_pokemon_move,priority:2;index" validate:"reference"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships. Deletes are cascaded by the repository, the database only restricts.
	Pokemon *Pokemon `json:"-" gorm:"foreignKey:PokemonID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" validate:"-"`
	Move    *Move    `json:"move,omitempty" gorm:"foreignKey:MoveID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" validate:"-"`
}

// TableName specifies the table name for PokeMove model
func (PokeMove) TableName() string {
	return "poke_moves"
}
