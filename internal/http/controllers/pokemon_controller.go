package controllers

import (
	"net/http"

	"pokedex_server/internal/models"
	"pokedex_server/internal/repository"
	"pokedex_server/pkg/colors"

	"github.com/gin-gonic/gin"
)

// PokemonController handles pokemon related HTTP requests
type PokemonController struct {
	pokemons *repository.PokemonRepository
}

// NewPokemonController creates a new pokemon controller
func NewPokemonController(pokemons *repository.PokemonRepository) *PokemonController {
	return &PokemonController{pokemons: pokemons}
}

// GetTypes returns the valid Pokemon types in sorted order
func (pc *PokemonController) GetTypes(c *gin.Context) {
	c.JSON(http.StatusOK, models.PokeTypes())
}

// GetPokemons returns every Pokemon
func (pc *PokemonController) GetPokemons(c *gin.Context) {
	pokemons, err := pc.pokemons.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "fetch pokemon")
		return
	}
	c.JSON(http.StatusOK, pokemons)
}

// GetPokemon returns a single Pokemon, with its moves when include_moves=true
func (pc *PokemonController) GetPokemon(c *gin.Context) {
	id, ok := parseID(c, "pokemon")
	if !ok {
		return
	}

	var (
		pokemon *models.Pokemon
		err     error
	)
	if c.Query("include_moves") == "true" {
		pokemon, err = pc.pokemons.GetWithMoves(c.Request.Context(), id)
	} else {
		pokemon, err = pc.pokemons.Get(c.Request.Context(), id)
	}
	if err != nil {
		respondError(c, err, "fetch pokemon")
		return
	}
	c.JSON(http.StatusOK, pokemon)
}

// CreatePokemon creates a new Pokemon
func (pc *PokemonController) CreatePokemon(c *gin.Context) {
	colors.PrintInfo("📥 Received pokemon creation request from %s", c.ClientIP())

	var in repository.PokemonInput
	if !bindJSON(c, &in) {
		return
	}

	pokemon, err := pc.pokemons.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "create pokemon")
		return
	}

	colors.PrintData("🐾", "Pokemon created: #%d %s (id=%d)", pokemon.Number, pokemon.Name, pokemon.ID)
	c.JSON(http.StatusCreated, pokemon)
}

// UpdatePokemon updates the provided fields of a Pokemon. Serves both PUT and PATCH.
func (pc *PokemonController) UpdatePokemon(c *gin.Context) {
	id, ok := parseID(c, "pokemon")
	if !ok {
		return
	}

	var in repository.PokemonInput
	if !bindJSON(c, &in) {
		return
	}

	pokemon, err := pc.pokemons.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err, "update pokemon")
		return
	}

	colors.PrintData("✏️ ", "Pokemon updated: #%d %s (id=%d)", pokemon.Number, pokemon.Name, pokemon.ID)
	c.JSON(http.StatusOK, pokemon)
}

// DeletePokemon deletes a Pokemon together with its items and learned moves
func (pc *PokemonController) DeletePokemon(c *gin.Context) {
	id, ok := parseID(c, "pokemon")
	if !ok {
		return
	}

	if err := pc.pokemons.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete pokemon")
		return
	}

	colors.PrintData("🗑️ ", "Pokemon deleted (id=%d)", id)
	c.Status(http.StatusNoContent)
}
