// Package main implements the entry point for the users API server,
// which handles account registration, login, password changes and lookups.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/rmelo/users-api/internal/config"
	"github.com/rmelo/users-api/internal/platform/logger"
)

// main initializes configuration, logging, the database connection and
// the dependency graph, then starts the HTTP server.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// A missing JWT secret or unreachable database is fatal here, before the
// server ever accepts a request.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to build application: %w", err)
	}

	return app, nil
}
