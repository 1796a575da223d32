package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rmelo/users-api/internal/api"
	apiMiddleware "github.com/rmelo/users-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	accountHandler := api.NewAccountHandler(app.accountService, app.tokenService)

	r.Post("/register", accountHandler.Register)
	r.Post("/login", accountHandler.Login)
	r.Put("/change-pass", accountHandler.ChangePassword)
	r.Get("/", accountHandler.Search)
	r.Get("/find/{userID}", accountHandler.Get)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
