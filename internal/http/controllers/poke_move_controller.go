package controllers

import (
	"net/http"
	"strconv"

	"pokedex_server/internal/repository"
	"pokedex_server/pkg/colors"

	"github.com/gin-gonic/gin"
)

// PokeMoveController handles the moves a Pokemon has learned
type PokeMoveController struct {
	moves *repository.MoveRepository
}

// NewPokeMoveController creates a new poke move controller
func NewPokeMoveController(moves *repository.MoveRepository) *PokeMoveController {
	return &PokeMoveController{moves: moves}
}

type learnRequest struct {
	Name *string `json:"name"`
}

// GetMoves returns the moves of a Pokemon in the order they were learned
func (pmc *PokeMoveController) GetMoves(c *gin.Context) {
	pokemonID, ok := parseID(c, "pokemon")
	if !ok {
		return
	}

	moves, err := pmc.moves.MovesOf(c.Request.Context(), pokemonID)
	if err != nil {
		respondError(c, err, "fetch moves")
		return
	}
	c.JSON(http.StatusOK, moves)
}

// LearnMove teaches a Pokemon a move by name, creating the move if it is new
func (pmc *PokeMoveController) LearnMove(c *gin.Context) {
	pokemonID, ok := parseID(c, "pokemon")
	if !ok {
		return
	}

	var req learnRequest
	if !bindJSON(c, &req) {
		return
	}
	name := ""
	if req.Name != nil {
		name = *req.Name
	}

	link, err := pmc.moves.Learn(c.Request.Context(), pokemonID, name)
	if err != nil {
		respondError(c, err, "learn move")
		return
	}

	colors.PrintData("⚡", "Pokemon %d learned %s", pokemonID, name)
	c.JSON(http.StatusCreated, link)
}

// ForgetMove removes a move from a Pokemon. The move itself is kept.
func (pmc *PokeMoveController) ForgetMove(c *gin.Context) {
	pokemonID, ok := parseID(c, "pokemon")
	if !ok {
		return
	}
	moveID, err := strconv.ParseUint(c.Param("move_id"), 10, 32)
	if err != nil || moveID == 0 {
		notFound(c, "Move "+c.Param("move_id")+" not found")
		return
	}

	if err := pmc.moves.Forget(c.Request.Context(), pokemonID, uint(moveID)); err != nil {
		respondError(c, err, "forget move")
		return
	}
	c.Status(http.StatusNoContent)
}
