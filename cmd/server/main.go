package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/clauseguard-server/internal/api"
	"github.com/clauseguard-server/internal/cache"
	"github.com/clauseguard-server/internal/catalog"
	"github.com/clauseguard-server/internal/compare"
	"github.com/clauseguard-server/internal/config"
	"github.com/clauseguard-server/internal/database"
	"github.com/clauseguard-server/internal/domain"
	"github.com/clauseguard-server/internal/engine"
	"github.com/clauseguard-server/internal/feedback"
)

func main() {
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}
	cfg := configManager.GetConfig()

	logger := newLogger(cfg.Logging)

	cat, err := catalog.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load pattern catalog")
	}
	logger.WithField("catalog_version", catalog.Version).Info("Pattern catalog loaded")

	eng := engine.New(cat, cfg.Engine, logger)
	comparer := compare.NewService(eng, logger)

	results, err := cache.New[domain.AnalysisResult](cfg.Cache, "analysis", logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create result cache")
	}
	defer results.Close()

	store, err := openFeedbackStore(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open feedback store")
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down")
		cancel()
	}()

	server := api.NewServer(cfg, eng, comparer, results, store, logger)
	if err := server.Start(ctx); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}

	logger.Info("Server stopped")
}

func newLogger(cfg domain.LoggingConfig) *logrus.Logger {
	logger := logrus.New()
	if cfg.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openFeedbackStore opens the configured feedback backend. For postgres the
// schema is migrated and connectivity verified before the store is handed out.
func openFeedbackStore(cfg *domain.Config, logger *logrus.Logger) (feedback.Store, error) {
	switch cfg.Feedback.Driver {
	case "postgres":
		if err := migrateAndPing(cfg.Feedback, logger); err != nil {
			return nil, err
		}
		return feedback.NewPostgresStoreFromURL(cfg.Feedback.PostgresURL)
	default:
		return feedback.NewSQLiteStore(cfg.Feedback.SQLitePath)
	}
}

func migrateAndPing(cfg domain.FeedbackConfig, logger *logrus.Logger) error {
	runner, err := database.NewMigrationRunner(cfg.PostgresURL, cfg.MigrationsPath, logger)
	if err != nil {
		return fmt.Errorf("creating migration runner: %w", err)
	}
	defer runner.Close()

	if err := runner.Up(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.NewConnection(ctx, cfg.PostgresURL, database.DefaultPoolOptions(), logger)
	if err != nil {
		return err
	}
	defer db.Close()

	return db.Health(ctx)
}
