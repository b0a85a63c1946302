// Package app initializes and runs the server: it wires configuration,
// logging, storage and both transport adapters into one HTTP endpoint and
// handles graceful shutdown.
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

	"github.com/mzaytsev/taskmirror/internal/config"
	"github.com/mzaytsev/taskmirror/internal/logging"
	"github.com/mzaytsev/taskmirror/internal/repositories/repomanager"
	"github.com/mzaytsev/taskmirror/internal/service"
	gqltransport "github.com/mzaytsev/taskmirror/internal/transport/graphql"
	resttransport "github.com/mzaytsev/taskmirror/internal/transport/rest"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	rm     repomanager.RepositoryManager
	server *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	rm, err := repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	svc := service.New(rm, logger, cfg)

	gqlServer, err := gqltransport.New(svc, logger)
	if err != nil {
		return nil, fmt.Errorf("schema init error: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("POST /graphql", gqlServer)
	mux.Handle("/", resttransport.New(svc, logger).Handler())

	return &App{
		config: cfg,
		logger: logger,
		rm:     rm,
		server: &http.Server{Addr: cfg.EndpointAddr, Handler: mux},
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	if err := app.rm.RunMigrations(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting server", "addr", app.config.EndpointAddr)
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "shutdown error", "error", err)
	}

	return app.rm.Close()
}
