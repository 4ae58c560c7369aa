package main

import (
	"net/http"

	"github.com/correialeo/meandai/internal/api"
	apiMiddleware "github.com/correialeo/meandai/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// setupRouter builds the HTTP handler: standard middleware, the trace-id
// logger, the combined authentication gate, then the API routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	authHandler := api.NewAuthHandler(app.loginService)
	userHandler := api.NewUserHandler(app.userService)
	healthHandler := api.NewHealthHandler(app.db)

	table := api.NewRouteTable(api.BasePath, api.NewRoutes(authHandler, userHandler, healthHandler))
	gate := apiMiddleware.NewCombinedAuth(app.config.Auth, app.tokenService, table, app.logger)
	r.Use(gate.Authenticate)

	table.Mount(r)

	return r
}
