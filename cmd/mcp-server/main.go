package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/clauseguard-server/internal/catalog"
	"github.com/clauseguard-server/internal/compare"
	"github.com/clauseguard-server/internal/config"
	"github.com/clauseguard-server/internal/engine"
	"github.com/clauseguard-server/internal/feedback"
	"github.com/clauseguard-server/internal/mcp"
	"github.com/clauseguard-server/internal/setup"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "setup" {
		if err := setup.NewCLI().Run(os.Args[2:]); err != nil {
			log.Fatalf("Setup failed: %v", err)
		}
		return
	}

	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}
	cfg := configManager.GetConfig()

	// Stdout carries the MCP protocol, so logs go to stderr.
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	cat, err := catalog.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load pattern catalog")
	}

	eng := engine.New(cat, cfg.Engine, logger)
	comparer := compare.NewService(eng, logger)

	store, err := feedback.NewSQLiteStore(cfg.Feedback.SQLitePath)
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
		logger.Info("Shutdown signal received")
		cancel()
	}()

	server := mcp.NewServer(eng, comparer, store, logger)
	if err := server.Run(ctx); err != nil {
		logger.WithError(err).Fatal("MCP server failed")
	}
}
