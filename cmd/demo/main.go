package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"multimodel/internal/cli"
	"multimodel/internal/config"
	"multimodel/internal/logging"
	"multimodel/internal/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("oceanbase multi-model demo",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit))

	// Initialize the fixture dispatcher and the simulated MCP boundary
	dispatcher := service.NewDispatcher(service.SQLRegistry())
	sim := service.NewMCPSimulator(dispatcher)

	if err := cli.Execute(cfg, sim); err != nil {
		os.Exit(1)
	}
}
