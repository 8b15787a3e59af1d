package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/tendant/content-browser/pkg/contentbrowser/config"
	"github.com/tendant/content-browser/pkg/contentbrowser/source/fsdir"
)

type Config struct {
	ContentRoot string `env:"CONTENT_ROOT" env-default:"./content"`
	OutputDir   string `env:"OUTPUT_DIR" env-default:"./site"`
	Verbose     bool   `env:"VERBOSE" env-default:"true"`
}

func main() {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		slog.Error("Failed to read configuration", "err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	serverConfig, err := config.Load(
		config.WithContentRoot(cfg.ContentRoot),
		config.WithFilesystemStorage("fs", cfg.OutputDir),
		config.WithDefaultStorage("fs"),
		config.WithEventLogging(cfg.Verbose),
	)
	if err != nil {
		logger.Error("Failed to load configuration", "err", err)
		os.Exit(1)
	}

	svc, err := serverConfig.BuildService(logger)
	if err != nil {
		logger.Error("Failed to build service", "err", err)
		os.Exit(1)
	}

	src, err := fsdir.New(fsdir.Config{Root: serverConfig.ContentRoot})
	if err != nil {
		logger.Error("Failed to open content root", "root", serverConfig.ContentRoot, "err", err)
		os.Exit(1)
	}

	result, err := svc.BuildSite(context.Background(), src)
	if err != nil {
		logger.Error("Site build failed", "err", err)
		os.Exit(1)
	}

	logger.Info("Site build complete",
		"generated", result.Generated,
		"failed", result.Failed,
		"output", cfg.OutputDir)
	if result.Failed > 0 {
		logger.Warn("Some items failed", "ids", result.FailedIDs)
	}
}
