package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/corpomate/cesimdash/internal/api"
	"github.com/corpomate/cesimdash/internal/api/openapi"
	"github.com/corpomate/cesimdash/internal/config"
	"github.com/corpomate/cesimdash/internal/database"
	"github.com/corpomate/cesimdash/internal/importer"
	"github.com/corpomate/cesimdash/internal/results"
	"github.com/corpomate/cesimdash/internal/round"
	"github.com/corpomate/cesimdash/internal/roundimport"
	"github.com/corpomate/cesimdash/internal/team"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	clock := clockwork.NewRealClock()
	pool := db.Pool()

	router := api.NewRouter(api.RouterDeps{
		DBPinger:       db,
		Version:        cfg.Version,
		OpenAPISpec:    openapi.Spec,
		TeamRepo:       team.NewRepository(pool),
		RoundRepo:      round.NewRepository(pool),
		ResultsRepo:    results.NewRepository(pool),
		Importer:       roundimport.NewService(roundimport.NewPostgresStore(db), clock, cfg.MyTeamName),
		Parser:         importer.NewParser(clock),
		HomeTeamName:   cfg.MyTeamName,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting CESIM dashboard server", "port", cfg.Port, "version", cfg.Version, "homeTeam", cfg.MyTeamName)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
