package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/staffdb/internal/employees/http"
	"github.com/aussiebroadwan/staffdb/internal/employees/service"
	"github.com/aussiebroadwan/staffdb/internal/employees/store"
	"github.com/aussiebroadwan/staffdb/internal/employees/store/drivers/mongo"
	"github.com/aussiebroadwan/staffdb/internal/employees/store/drivers/postgres"
	"github.com/aussiebroadwan/staffdb/internal/employees/store/drivers/sqlite"
	"github.com/aussiebroadwan/staffdb/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the employee record service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db           store.Store
	tokenService *service.TokenService

	server *http.Server
	router *httpapi.Router
}

// New validates cfg, opens the store, applies migrations and builds the
// HTTP server.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "staffdb",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	tokenCfg, err := cfg.TokenConfig()
	if err != nil {
		return nil, err
	}
	app.tokenService, err = service.NewTokenService(tokenCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	if err := app.initDatabase(context.Background()); err != nil {
		return nil, err
	}

	app.initHTTP()
	return app, nil
}

// Handler exposes the routed handler, mostly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("employee service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"driver", app.cfg.DatabaseDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains the HTTP server and closes the store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down employee service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("employee service stopped")
	return nil
}

// initDatabase opens the configured store and applies its migrations.
func (app *Application) initDatabase(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	db, err := openStore(ctx, app.cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

func openStore(ctx context.Context, cfg Config) (store.Store, error) {
	switch cfg.DatabaseDriver {
	case DriverSQLite:
		s, err := sqlite.NewStore(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverPostgres:
		s, err := postgres.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverMongo:
		s, err := mongo.NewStore(ctx, cfg.DatabaseURL, cfg.DBName)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DatabaseDriver)
	}
}

// initHTTP builds the router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.tokenService, BuildVersion, app.db, app.logger)
	router.ApplyRoutes()
	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
