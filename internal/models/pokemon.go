package models

import (
	"time"
)

// Unique index names; the repository maps violations of these back to fields.
const (
	IdxPokemonsNumber = "idx_pokemons_number"
	IdxPokemonsName   = "idx_pokemons_name"
)

// Pokemon represents a creature in the catalog
type Pokemon struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Number    int       `json:"number" gorm:"not null;uniqueIndex:idx_pokemons_number" validate:"gt=0"`
	Name      string    `json:"name" gorm:"size:255;not null;uniqueIndex:idx_pokemons_name" validate:"length=3..254"`
	Attack    int       `json:"attack" gorm:"not null" validate:"inrange=1..100"`
	Defense   int       `json:"defense" gorm:"not null" validate:"inrange=1..100"`
	PokeType  string    `json:"poke_type" gorm:"size:32;not null" validate:"poketype"`
	ImageURL  string    `json:"image_url" gorm:"type:text;not null" validate:"present"`
	Captured  bool      `json:"captured" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Loaded on request through poke_moves, never persisted from here
	Moves []Move `json:"moves,omitempty" gorm:"-" validate:"-"`
}

// TableName specifies the table name for Pokemon model
func (Pokemon) TableName() string {
	return "pokemons"
}
