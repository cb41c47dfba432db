package models

import "time"

// Item belongs to exactly one Pokemon and is removed together with it.
type Item struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	PokemonID uint      `json:"pokemon_id" gorm:"not null;index" validate:"reference"`
	Name      string    `json:"name" gorm:"size:255;not null" validate:"length=1..254"`
	Price     *int      `json:"price" gorm:"not null" validate:"number_present,gte=0"`
	Happiness *int      `json:"happiness" gorm:"not null" validate:"required"`
	ImageURL  string    `json:"image_url" gorm:"type:text;not null" validate:"present"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Pokemon *Pokemon `json:"-" gorm:"foreignKey:PokemonID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" validate:"-"`
}

// TableName specifies the table name for Item model
func (Item) TableName() string {
	return "items"
}
