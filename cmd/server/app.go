package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/correialeo/meandai/internal/config"
	"github.com/correialeo/meandai/internal/platform/postgres"
	"github.com/correialeo/meandai/internal/service"
	"github.com/correialeo/meandai/internal/service/auth"
	"github.com/correialeo/meandai/internal/store"
)

// application holds the shared dependencies built once at startup.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore

	hasher       auth.PasswordHasher
	tokenService auth.TokenService
	loginService *auth.LoginService
	userService  service.UserService
}

// newApplication wires stores and services from the configuration.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.tokenService, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("token service initialized",
		"issuer", cfg.Auth.Issuer,
		"audience", cfg.Auth.Audience,
		"token_lifetime", cfg.Auth.TokenLifetime().String())

	app.hasher, err = auth.NewBcryptHasher(cfg.Auth.BcryptCost, cfg.Auth.HashConcurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.loginService = auth.NewLoginService(app.userStore, app.hasher, app.tokenService, logger)
	app.userService = service.NewUserService(app.userStore, app.hasher, db, logger)

	return app, nil
}

// cleanup releases resources owned by the application. The database is
// closed by run, which opened it.
func (app *application) cleanup() {
	app.logger.Info("application cleanup completed")
}
