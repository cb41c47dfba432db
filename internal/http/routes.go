package http

import (
	"pokedex_server/internal/http/controllers"
	"pokedex_server/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Endpoint describes a mounted route for the startup listing
type Endpoint struct {
	Method      string
	Path        string
	Description string
}

// Endpoints lists the public API in the order it is printed at startup
var Endpoints = []Endpoint{
	{"GET", "/api/pokemon/types", "List valid Pokemon types"},
	{"GET", "/api/pokemon", "List Pokemon"},
	{"POST", "/api/pokemon", "Create Pokemon"},
	{"GET", "/api/pokemon/:id", "Fetch Pokemon (?include_moves=true)"},
	{"PUT", "/api/pokemon/:id", "Update Pokemon"},
	{"PATCH", "/api/pokemon/:id", "Update Pokemon"},
	{"DELETE", "/api/pokemon/:id", "Delete Pokemon with its items and moves"},
	{"GET", "/api/pokemon/:id/items", "List items of a Pokemon"},
	{"POST", "/api/pokemon/:id/items", "Create item"},
	{"GET", "/api/pokemon/:id/moves", "List learned moves"},
	{"POST", "/api/pokemon/:id/moves", "Learn move by name"},
	{"DELETE", "/api/pokemon/:id/moves/:move_id", "Forget move"},
	{"PUT", "/api/items/:id", "Update item"},
	{"PATCH", "/api/items/:id", "Update item"},
	{"DELETE", "/api/items/:id", "Delete item"},
	{"GET", "/health", "Liveness and database check"},
	{"GET", "/metrics", "Prometheus metrics"},
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, deps Dependencies) {
	// Initialize repositories and controllers
	pokemonController := controllers.NewPokemonController(repository.NewPokemonRepository(deps.DB))
	itemController := controllers.NewItemController(repository.NewItemRepository(deps.DB))
	pokeMoveController := controllers.NewPokeMoveController(repository.NewMoveRepository(deps.DB))
	healthController := controllers.NewHealthController(deps.DB)

	router.GET("/health", healthController.Health)
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := router.Group("/api")
	{
		// gin needs one wildcard name per segment, so nested routes use :id for the owner too
		pokemon := api.Group("/pokemon")
		{
			pokemon.GET("/types", pokemonController.GetTypes)
			pokemon.GET("", pokemonController.GetPokemons)
			pokemon.POST("", pokemonController.CreatePokemon)
			pokemon.GET("/:id", pokemonController.GetPokemon)
			pokemon.PUT("/:id", pokemonController.UpdatePokemon)
			pokemon.PATCH("/:id", pokemonController.UpdatePokemon)
			pokemon.DELETE("/:id", pokemonController.DeletePokemon)

			pokemon.GET("/:id/items", itemController.GetItems)
			pokemon.POST("/:id/items", itemController.CreateItem)

			pokemon.GET("/:id/moves", pokeMoveController.GetMoves)
			pokemon.POST("/:id/moves", pokeMoveController.LearnMove)
			pokemon.DELETE("/:id/moves/:move_id", pokeMoveController.ForgetMove)
		}

		items := api.Group("/items")
		{
			items.PUT("/:id", itemController.UpdateItem)
			items.PATCH("/:id", itemController.UpdateItem)
			items.DELETE("/:id", itemController.DeleteItem)
		}
	}
}
