package controllers

import (
	"net/http"

	"pokedex_server/internal/repository"
	"pokedex_server/pkg/colors"

	"github.com/gin-gonic/gin"
)

// ItemController handles item related HTTP requests
type ItemController struct {
	items *repository.ItemRepository
}

// NewItemController creates a new item controller
func NewItemController(items *repository.ItemRepository) *ItemController {
	return &ItemController{items: items}
}

// GetItems returns the items of a Pokemon
func (ic *ItemController) GetItems(c *gin.Context) {
	pokemonID, ok := parseID(c, "pokemon")
	if !ok {
		return
	}

	items, err := ic.items.ListByPokemon(c.Request.Context(), pokemonID)
	if err != nil {
		respondError(c, err, "fetch items")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateItem creates an item owned by a Pokemon
func (ic *ItemController) CreateItem(c *gin.Context) {
	pokemonID, ok := parseID(c, "pokemon")
	if !ok {
		return
	}

	var in repository.ItemInput
	if !bindJSON(c, &in) {
		return
	}

	item, err := ic.items.Create(c.Request.Context(), pokemonID, in)
	if err != nil {
		respondError(c, err, "create item")
		return
	}

	colors.PrintData("🎒", "Item created: %s for pokemon %d (id=%d)", item.Name, pokemonID, item.ID)
	c.JSON(http.StatusCreated, item)
}

// UpdateItem updates the provided fields of an item
func (ic *ItemController) UpdateItem(c *gin.Context) {
	id, ok := parseID(c, "item")
	if !ok {
		return
	}

	var in repository.ItemInput
	if !bindJSON(c, &in) {
		return
	}

	item, err := ic.items.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err, "update item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem deletes an item
func (ic *ItemController) DeleteItem(c *gin.Context) {
	id, ok := parseID(c, "item")
	if !ok {
		return
	}

	if err := ic.items.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "delete item")
		return
	}

	colors.PrintData("🗑️ ", "Item deleted (id=%d)", id)
	c.Status(http.StatusNoContent)
}
