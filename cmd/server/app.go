package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/rmelo/users-api/internal/config"
	"github.com/rmelo/users-api/internal/platform/postgres"
	"github.com/rmelo/users-api/internal/service"
	"github.com/rmelo/users-api/internal/service/auth"
	"github.com/rmelo/users-api/internal/store"
	"github.com/rmelo/users-api/internal/validation"
)

// application holds the shared dependencies of the server: configuration,
// the logger, the database handle, and the wired services.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore      store.UserStore
	accountService service.AccountService
	tokenService   auth.TokenService
}

// newApplication builds the dependency graph: database connection,
// migrations, stores and services.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, logger); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	accountService := service.NewAccountService(
		userStore,
		validation.New(),
		auth.NewBcryptHasher(),
		logger,
	)

	return &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		userStore:      userStore,
		accountService: accountService,
		tokenService:   tokenService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
