// Package app assembles the mock server: config, logging, the token store and
// metrics registry, the HTTP router, and the process lifecycle.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sins621/timesheets/internal/mock/console"
	httpapi "github.com/sins621/timesheets/internal/mock/http"
	"github.com/sins621/timesheets/internal/mock/service"
	"github.com/sins621/timesheets/pkg/metrics"
	"github.com/sins621/timesheets/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// Application encapsulates the mock server with all its dependencies. All
// state is in-memory and ephemeral; a restart clears tokens and counters.
type Application struct {
	cfg    Config
	logger *slog.Logger

	metrics *metrics.Registry
	tokens  *service.TokenService

	server  *http.Server
	router  *httpapi.Router
	console *console.Console
}

// New creates an Application with all dependencies initialized. Construction
// cannot fail: there is no database, no key material, nothing external.
func New(cfg Config) *Application {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "timesheets-mock",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		metrics: &metrics.Registry{},
	}

	app.tokens = service.NewTokenService(app.metrics)
	app.initHTTP()

	if !cfg.NoBanner {
		app.console = console.New(os.Stdout)
	}

	return app
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	if app.console != nil {
		app.console.Banner(app.cfg.Port)
	}
	app.logger.Info("mock server starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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

// Shutdown gracefully stops the HTTP server and reports the final counters.
func (app *Application) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	snap := app.metrics.Snapshot()
	if app.console != nil {
		app.console.FinalStats(snap)
	}
	app.logger.Info("mock server stopped",
		"total_requests", snap.TotalRequests,
		"tokens_issued", snap.ActiveTokens,
	)

	return nil
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.logger, app.metrics)
	router.Tokens = app.tokens
	router.Directory = service.DirectoryService{}
	router.Entries = &service.EntryService{}
	router.ApplyRoutes()

	app.router = router
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
