package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pokedex_server/config"
	"pokedex_server/internal/db"
	"pokedex_server/internal/http"
	"pokedex_server/internal/metrics"
	"pokedex_server/pkg/colors"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Print attractive banner
	colors.PrintBanner()

	// Load environment variables from .env file
	loaded, err := config.LoadEnvFiles()
	switch {
	case err != nil:
		colors.PrintError("Failed to read .env file: %v", err)
		log.Fatalf("Configuration failed: %v", err)
	case loaded:
		colors.PrintSuccess("Environment configuration loaded from .env file")
	default:
		colors.PrintWarning("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		colors.PrintError("Invalid configuration: %v", err)
		log.Fatalf("Configuration failed: %v", err)
	}

	// Initialize database connection
	colors.PrintInfo("Initializing database connection...")
	database, err := db.Connect(&cfg.Database)
	if err != nil {
		colors.PrintError("Failed to initialize database: %v", err)
		log.Fatalf("Database initialization failed: %v", err)
	}
	defer db.Close(database)

	if err := db.RunMigrations(database); err != nil {
		colors.PrintError("Failed to run migrations: %v", err)
		log.Fatalf("Database migration failed: %v", err)
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	if err := m.InstrumentGorm(database); err != nil {
		log.Fatalf("Metrics initialization failed: %v", err)
	}

	colors.PrintHeader("POKEDEX SERVER INITIALIZATION")
	colors.PrintServer("🌐", "HTTP Server configured for port %s (REST API Access)", cfg.Server.Port)
	colors.PrintServer("🗄️ ", "Database driver: %s", cfg.Database.Driver)

	server := http.NewServer(cfg.Server, http.Dependencies{
		DB:       database,
		Metrics:  m,
		Gatherer: prometheus.DefaultGatherer,
	})

	colors.PrintSubHeader("Available REST API Endpoints")
	for _, e := range http.Endpoints {
		colors.PrintEndpoint(e.Method, e.Path, e.Description)
	}

	// Set up graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		colors.PrintInfo("Starting HTTP Server for REST API...")
		return server.Start()
	})
	g.Go(func() error {
		<-gctx.Done()
		colors.PrintShutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		colors.PrintError("Server stopped with error: %v", err)
		os.Exit(1)
	}
	colors.PrintSuccess("Pokedex server stopped")
}
