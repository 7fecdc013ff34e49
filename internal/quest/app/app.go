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

	httpapi "github.com/aussiebroadwan/questboard/internal/quest/http"
	"github.com/aussiebroadwan/questboard/internal/quest/service"
	"github.com/aussiebroadwan/questboard/internal/quest/store"
	"github.com/aussiebroadwan/questboard/internal/quest/store/drivers/sqlite"
	"github.com/aussiebroadwan/questboard/pkg/jwtx"
	"github.com/aussiebroadwan/questboard/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application wires the quest service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db         store.Store
	keyManager *jwtx.KeyManager

	identityService   *service.IdentityService
	progressService   *service.ProgressService
	completionService *service.CompletionService
	profileService    *service.ProfileService
	sessionService    *service.SessionService
	reconcileService  *service.ReconcileService

	server *http.Server
	router *httpapi.Router
}

// New builds an Application. logger may be nil, in which case one is built
// from cfg.
func New(cfg Config, logger *slog.Logger) (*Application, error) {
	if logger == nil {
		logger = slogx.New(slogx.Config{
			Service: "quest-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		})
	}
	app := &Application{cfg: cfg, logger: logger}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	km, err := InitSessionKeys(cfg, logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.keyManager = km

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the router.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts background jobs and the HTTP server, and blocks until a signal
// arrives or the server fails.
func (app *Application) Run() error {
	if err := app.reconcileService.Start(); err != nil {
		return fmt.Errorf("start reconciler: %w", err)
	}

	app.logger.Info("quest service starting",
		slog.Int("port", app.cfg.Port),
		slog.String("version", BuildVersion),
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.reconcileService.Stop()
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}
	return nil
}

// Shutdown drains in-flight requests, stops the reconciler and closes the
// database, in that order.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down quest service")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", slog.Any("error", err))
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", slog.Any("error", err))
		}
	}

	if err := app.reconcileService.Stop(); err != nil {
		app.logger.Error("error stopping reconciler", slog.Any("error", err))
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", slog.Any("error", err))
		return err
	}

	app.logger.Info("quest service stopped")
	return nil
}

func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(app.cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied", slog.String("file", app.cfg.DatabaseFile))
	return nil
}

func (app *Application) initServices() {
	policy := app.cfg.Retry.Policy()

	app.identityService = &service.IdentityService{Store: app.db, Retry: policy}
	app.progressService = &service.ProgressService{
		Store:    app.db,
		Identity: app.identityService,
		Retry:    policy,
	}
	app.completionService = &service.CompletionService{
		Store:           app.db,
		Retry:           policy,
		RequireVerified: app.cfg.RequireVerified,
	}
	app.profileService = &service.ProfileService{
		Store:    app.db,
		Identity: app.identityService,
		Retry:    policy,
	}
	app.sessionService = &service.SessionService{
		Store:    app.db,
		Identity: app.identityService,
		Keys:     app.keyManager,
		Issuer:   app.cfg.Issuer,
		TTL:      app.cfg.SessionTTL,
	}

	app.reconcileService = service.NewReconcileService(app.db, app.logger, app.cfg.ReconcileInterval)
	app.reconcileService.Retry = policy
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keyManager,
		app.cfg.RateLimits,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.ProgressService = app.progressService
	router.CompletionService = app.completionService
	router.ProfileService = app.profileService
	router.SessionService = app.sessionService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
