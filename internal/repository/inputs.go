package repository

import "pokedex_server/internal/models"

// PokemonInput carries the fields of a create or update. Nil fields are left untouched.
type PokemonInput struct {
	Number   *int    `json:"number"`
	Name     *string `json:"name"`
	Attack   *int    `json:"attack"`
	Defense  *int    `json:"defense"`
	PokeType *string `json:"poke_type"`
	ImageURL *string `json:"image_url"`
	Captured *bool   `json:"captured"`
}

func (in PokemonInput) applyTo(p *models.Pokemon) {
	if in.Number != nil {
		p.Number = *in.Number
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Attack != nil {
		p.Attack = *in.Attack
	}
	if in.Defense != nil {
		p.Defense = *in.Defense
	}
	if in.PokeType != nil {
		p.PokeType = *in.PokeType
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.Captured != nil {
		p.Captured = *in.Captured
	}
}

// ItemInput carries the fields of an item create or update. The owner is never changed through it.
type ItemInput struct {
	Name      *string `json:"name"`
	Price     *int    `json:"price"`
	Happiness *int    `json:"happiness"`
	ImageURL  *string `json:"image_url"`
}

func (in ItemInput) applyTo(i *models.Item) {
	if in.Name != nil {
		i.Name = *in.Name
	}
	if in.Price != nil {
		price := *in.Price
		i.Price = &price
	}
	if in.Happiness != nil {
		happiness := *in.Happiness
		i.Happiness = &happiness
	}
	if in.ImageURL != nil {
		i.ImageURL = *in.ImageURL
	}
}
