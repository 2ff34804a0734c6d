package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ujwal2946/student-mark-prediction/internal/api"
	"github.com/ujwal2946/student-mark-prediction/internal/config"
	"github.com/ujwal2946/student-mark-prediction/internal/events"
	"github.com/ujwal2946/student-mark-prediction/internal/history"
	"github.com/ujwal2946/student-mark-prediction/internal/scoring"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Storage medium
	medium := openMedium(ctx, cfg, logger)
	defer medium.Close()

	// Trained model (optional)
	var model scoring.Model
	if cfg.Model.Path != "" {
		m, err := scoring.LoadModelFile(cfg.Model.Path)
		if err != nil {
			logger.Warn("failed to load model, using heuristic scorer", "path", cfg.Model.Path, "error", err)
		} else {
			model = m
			logger.Info("model loaded", "name", m.Name())
		}
	}
	scorer := scoring.NewScorer(model, logger)

	// History store
	store := history.New(medium, logger)
	if err := store.Load(ctx); err != nil {
		if errors.Is(err, history.ErrPersist) {
			logger.Warn("could not read saved history, starting empty", "error", err)
		} else {
			logger.Error("failed to load history", "error", err)
			os.Exit(1)
		}
	}
	logger.Info("history loaded", "entries", store.Len())

	// Events (optional)
	var eventsClient events.Client
	if cfg.Events.URL != "" {
		ec, err := events.NewNATSClient(ctx, cfg.Events.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to events, running without publishing", "error", err)
		} else {
			eventsClient = ec
			defer ec.Close()
			logger.Info("connected to events")
		}
	}

	// API server
	router := api.NewRouter(store, scorer, eventsClient, cfg.RevealDelay(), cfg.Server.AdminToken, logger)
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Metrics server
	metricsRouter := api.NewMetricsRouter()
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: metricsRouter,
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port, "scorer", scorer.Kind())
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}

// openMedium builds the history medium named by the config. Postgres and
// redis failures fall back to the file medium so the service still starts.
func openMedium(ctx context.Context, cfg *config.Config, logger *slog.Logger) history.Medium {
	switch cfg.Storage.Backend {
	case "postgres":
		m, err := history.NewPostgresMedium(ctx, cfg.Storage.DatabaseURL)
		if err != nil {
			logger.Warn("failed to connect to postgres, falling back to file storage", "error", err)
			break
		}
		logger.Info("using postgres storage")
		return m
	case "redis":
		m, err := history.NewRedisMedium(ctx, cfg.Storage.RedisAddr)
		if err != nil {
			logger.Warn("failed to connect to redis, falling back to file storage", "error", err)
			break
		}
		logger.Info("using redis storage")
		return m
	}
	logger.Info("using file storage", "path", cfg.Storage.Path)
	return history.NewFileMedium(cfg.Storage.Path)
}
