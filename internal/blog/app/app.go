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

	httpapi "github.com/aussiebroadwan/quill/internal/blog/http"
	"github.com/aussiebroadwan/quill/internal/blog/images"
	"github.com/aussiebroadwan/quill/internal/blog/service"
	"github.com/aussiebroadwan/quill/internal/blog/store"
	"github.com/aussiebroadwan/quill/internal/blog/store/drivers/sqlite"
	"github.com/aussiebroadwan/quill/pkg/cryptox"
	"github.com/aussiebroadwan/quill/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// ErrMissingSecret is returned by New when no token secret is configured
// outside the dev environment.
var ErrMissingSecret = errors.New("QUILL_TOKEN_SECRET is required outside the dev environment")

// Application encapsulates the blog service application with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	images *images.Store

	// Services
	tokenService        *service.TokenService
	userService         *service.UserService
	postService         *service.PostService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "blog-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	secret, err := app.tokenSecret()
	if err != nil {
		return nil, err
	}

	imgs, err := images.New(cfg.ImageDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image store: %w", err)
	}
	app.images = imgs

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initServices(secret); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initHTTP(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	return app, nil
}

// Handler returns the root HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("blog service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
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

// Shutdown gracefully shuts down the application. The housekeeping service
// must have been started.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down blog service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("blog service stopped")
	return nil
}

// tokenSecret returns the configured signing secret. In dev a random one is
// generated when none is set, which invalidates tokens on every restart.
func (app *Application) tokenSecret() ([]byte, error) {
	if app.cfg.TokenSecret != "" {
		return []byte(app.cfg.TokenSecret), nil
	}
	if app.cfg.Env != "dev" {
		return nil, ErrMissingSecret
	}

	secret, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token secret: %w", err)
	}
	app.logger.Warn("QUILL_TOKEN_SECRET not set, using a random secret; tokens will not survive a restart")
	return []byte(secret), nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(sqlite.FileDSN(app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices(secret []byte) error {
	pepper, err := cryptox.LoadOrCreatePepper(app.cfg.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}

	app.tokenService, err = service.NewTokenService(secret, app.cfg.TokenIssuer, app.cfg.TokenTTL, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	app.userService = &service.UserService{
		Store:  app.db,
		Hasher: cryptox.NewPasswordHasher(pepper),
		Tokens: app.tokenService,
	}
	app.postService = &service.PostService{
		Store:  app.db,
		Images: app.images,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.images,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.OrphanGrace,
	)
	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() error {
	router := httpapi.NewRouter(
		app.tokenService,
		BuildVersion,
		app.db,
		app.images,
		app.logger,
	)

	// Wire services to router
	router.UserService = app.userService
	router.PostService = app.postService
	router.MaxUploadBytes = app.cfg.MaxUploadBytes
	router.GraphiQL = app.cfg.GraphiQL
	if err := router.ApplyRoutes(); err != nil {
		return fmt.Errorf("failed to build routes: %w", err)
	}

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
	return nil
}
