package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/liftlog/internal/config"
	"github.com/rpggio/liftlog/internal/domain/activity"
	"github.com/rpggio/liftlog/internal/domain/stats"
	"github.com/rpggio/liftlog/internal/domain/workout"
	"github.com/rpggio/liftlog/internal/logging"
	"github.com/rpggio/liftlog/internal/mcp"
	"github.com/rpggio/liftlog/internal/sqlite"
	"github.com/rpggio/liftlog/internal/transport"
	"go.uber.org/multierr"
)

var version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "liftlog: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	logger, logCloser := logging.New(logging.Options{
		Level: cfg.Log.Level,
		Path:  cfg.Log.Path,
		Tee:   cfg.Log.Tee,
		Stdio: cfg.Transport.Mode == "stdio",
	})
	defer func() { err = multierr.Append(err, logCloser.Close()) }()

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		return fmt.Errorf("prepare database path: %w", err)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, db.Close()) }()

	if err := db.RunMigrations(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	entryRepo := sqlite.NewEntryRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)

	store := workout.NewStore(entryRepo, logger)
	if err := store.Load(ctx); err != nil {
		// Unreadable history is not fatal; the log starts empty.
		logger.Warn("starting with an empty log", "error", err)
	} else {
		logger.Info("entries loaded", "count", store.Len())
	}

	services := mcp.Services{
		Workouts: workout.NewService(store, activityRepo, workout.Options{
			Catalog:       cfg.Plans,
			BaseExercises: cfg.Exercises,
		}, logger),
		Stats:    stats.NewService(store, cfg.Stats.Weeks, logger),
		Activity: activity.NewService(activityRepo, logger),
	}

	mcpServer := mcp.NewServer(mcp.Config{
		Services:      services,
		TransportMode: cfg.Transport.Mode,
		Version:       version,
		Logger:        logger,
	})

	if cfg.Transport.Mode == "stdio" {
		return runStdioMode(ctx, logger, mcpServer)
	}
	return runHTTPMode(ctx, logger, mcpServer, services, cfg.Server)
}

func runStdioMode(ctx context.Context, logger *slog.Logger, mcpServer *sdkmcp.Server) error {
	logger.Info("starting stdio transport")

	// Run blocks until stdin closes or ctx is canceled.
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio server: %w", err)
	}
	logger.Info("shutting down")
	return nil
}

func runHTTPMode(ctx context.Context, logger *slog.Logger, mcpServer *sdkmcp.Server, services mcp.Services, cfg config.ServerConfig) error {
	streamable := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: 30 * time.Minute,
		},
	)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           transport.NewServer(mcp.NewHandler(services), streamable, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
