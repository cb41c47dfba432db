package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"pokedex_server/config"
	"pokedex_server/internal/http/middleware"
	"pokedex_server/internal/metrics"
	"pokedex_server/pkg/colors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Dependencies are the shared resources the routes are built on
type Dependencies struct {
	DB       *gorm.DB
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	server *http.Server
	port   string
}

// NewServer creates a new HTTP server instance
func NewServer(cfg config.ServerConfig, deps Dependencies) *Server {
	// Set Gin to release mode to reduce debug output
	gin.SetMode(gin.ReleaseMode)

	router := NewRouter(cfg, deps)

	return &Server{
		router: router,
		port:   cfg.Port,
		server: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter builds the gin engine with middleware and every route mounted
func NewRouter(cfg config.ServerConfig, deps Dependencies) *gin.Engine {
	router := gin.New()

	// Only add logger middleware if LOG_HTTP is set to true
	if cfg.LogHTTP {
		router.Use(gin.Logger())
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(CORSMiddleware())
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
	}

	SetupRoutes(router, deps)

	// Add global OPTIONS handler for CORS preflight
	router.OPTIONS("/*path", func(c *gin.Context) {
		setCORSHeaders(c)
		c.AbortWithStatus(http.StatusNoContent)
	})

	return router
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	colors.PrintServer("🌐", "HTTP REST API Server starting on port %s", s.port)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	colors.PrintServer("🛑", "HTTP server shutting down")
	return s.server.Shutdown(ctx)
}

func setCORSHeaders(c *gin.Context) {
	origin := c.Request.Header.Get("Origin")
	if origin != "" {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
	} else {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	}

	c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
	c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-Request-ID, accept, origin, Cache-Control, X-Requested-With")
	c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
	c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")
	c.Writer.Header().Set("Access-Control-Max-Age", "86400")
}

// CORSMiddleware handles Cross-Origin Resource Sharing
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		setCORSHeaders(c)

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
