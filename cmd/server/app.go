package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jtarver/shoplist-api/internal/config"
	"github.com/jtarver/shoplist-api/internal/platform/logger"
	"github.com/jtarver/shoplist-api/internal/platform/postgres"
	"github.com/jtarver/shoplist-api/internal/platform/supabase"
	"github.com/jtarver/shoplist-api/internal/service/auth"
	"github.com/jtarver/shoplist-api/internal/store"
)

// application holds the wired dependencies for the server. Handlers receive
// the stores and verifier through constructors; nothing reaches for process
// globals, so tests can substitute in-memory fakes.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	db        *sql.DB
	listStore store.ListStore
	itemStore store.ItemStore
	verifier  auth.TokenVerifier
}

// initializeApp loads configuration and sets up application components.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"auth_mode", cfg.Auth.Mode)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	verifier, err := setupVerifier(cfg, appLogger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &application{
		config:    cfg,
		logger:    appLogger,
		db:        db,
		listStore: postgres.NewPostgresListStore(db, appLogger),
		itemStore: postgres.NewPostgresItemStore(db, appLogger),
		verifier:  verifier,
	}, nil
}

// setupVerifier picks the token verification strategy from configuration:
// remote verification against the provider, or local verification of the
// provider's signed access tokens.
func setupVerifier(cfg *config.Config, appLogger *slog.Logger) (auth.TokenVerifier, error) {
	switch cfg.Auth.Mode {
	case config.AuthModeRemote:
		return supabase.NewClient(cfg.Auth.ProviderURL, cfg.Auth.APIKey, appLogger), nil
	case config.AuthModeJWT:
		return supabase.NewJWTVerifier(cfg.Auth.JWTSecret, appLogger), nil
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Auth.Mode)
	}
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
