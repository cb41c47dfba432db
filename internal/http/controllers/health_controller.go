package controllers

import (
	"context"
	"net/http"
	"time"

	"pokedex_server/internal/db"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthController reports liveness and database reachability
type HealthController struct {
	db *gorm.DB
}

// NewHealthController creates a new health controller
func NewHealthController(database *gorm.DB) *HealthController {
	return &HealthController{db: database}
}

// Health answers 200 when the database responds and 503 otherwise
func (hc *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := db.Ping(ctx, hc.db); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success":  false,
			"status":   "degraded",
			"database": "down",
			"message":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"status":   "ok",
		"database": "up",
	})
}
