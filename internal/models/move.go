package models

import "time"

const IdxMovesName = "idx_moves_name"

// Move is an attack a Pokemon can learn. Moves are shared between Pokemon through PokeMove.
type Move struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"size:255;not null;uniqueIndex:idx_moves_name" validate:"length=1..254"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Move model
func (Move) TableName() string {
	return "moves"
}
