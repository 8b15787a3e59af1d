package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/tendant/content-browser/pkg/contentbrowser"
	"github.com/tendant/content-browser/pkg/contentbrowser/config"
)

type Config struct {
	RegistryPath string `env:"REGISTRY_PATH" env-default:""`
	OutputDir    string `env:"OUTPUT_DIR" env-default:""`
}

const usage = `Usage:
  notes add <path> [title]   register a link to an HTML file
  notes list                 list registered links
  notes remove <match>       remove links whose title or path contains <match>
  notes regen                regenerate the link index page
`

func main() {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		slog.Error("Failed to read configuration", "err", err)
		os.Exit(1)
	}

	// Registry and index default to a notes folder in the user's home.
	if cfg.RegistryPath == "" || cfg.OutputDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Error("Failed to resolve home directory", "err", err)
			os.Exit(1)
		}
		if cfg.RegistryPath == "" {
			cfg.RegistryPath = filepath.Join(home, "notes", "notes.json")
		}
		if cfg.OutputDir == "" {
			cfg.OutputDir = filepath.Join(home, "notes")
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	serverConfig, err := config.Load(
		config.WithFileRegistry(cfg.RegistryPath),
		config.WithFilesystemStorage("fs", cfg.OutputDir),
		config.WithDefaultStorage("fs"),
		config.WithEventLogging(false),
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

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "add":
		if len(os.Args) < 3 {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		runAdd(ctx, svc, logger, os.Args[2], argOr(os.Args, 3, ""))
	case "list":
		runList(ctx, svc, logger)
	case "remove":
		if len(os.Args) < 3 {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		runRemove(ctx, svc, logger, os.Args[2])
	case "regen":
		runRegen(ctx, svc, logger)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func runAdd(ctx context.Context, svc contentbrowser.Service, logger *slog.Logger, path, title string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		logger.Error("Failed to resolve path", "path", path, "err", err)
		os.Exit(1)
	}

	// The file's <title> is the fallback when no title was given on the
	// command line. A missing or unreadable file is not fatal; the link
	// falls back to the file name.
	var html []byte
	if title == "" {
		html, _ = os.ReadFile(abs)
	}

	link, err := svc.AddLink(ctx, contentbrowser.AddLinkRequest{
		Path:  abs,
		Title: title,
		HTML:  html,
	})
	if errors.Is(err, contentbrowser.ErrLinkExists) {
		fmt.Printf("Already registered: %s (%s)\n", link.Title, link.Path)
		return
	}
	if err != nil {
		logger.Error("Failed to add link", "path", abs, "err", err)
		os.Exit(1)
	}
	fmt.Printf("Added: %s\n", link.Title)
}

func runList(ctx context.Context, svc contentbrowser.Service, logger *slog.Logger) {
	links, err := svc.ListLinks(ctx)
	if err != nil {
		logger.Error("Failed to list links", "err", err)
		os.Exit(1)
	}
	if len(links) == 0 {
		fmt.Println("No links registered.")
		return
	}
	for _, link := range links {
		fmt.Printf("%s  %s\n    %s\n", link.AddedAt.Format("2006-01-02"), link.Title, link.Path)
	}
	fmt.Printf("%d link(s)\n", len(links))
}

func runRemove(ctx context.Context, svc contentbrowser.Service, logger *slog.Logger, match string) {
	removed, err := svc.RemoveLinks(ctx, match)
	if errors.Is(err, contentbrowser.ErrLinkNotFound) {
		fmt.Printf("No links matching %q\n", match)
		return
	}
	if err != nil {
		logger.Error("Failed to remove links", "match", match, "err", err)
		os.Exit(1)
	}
	fmt.Printf("Removed %d link(s)\n", removed)
}

func runRegen(ctx context.Context, svc contentbrowser.Service, logger *slog.Logger) {
	if err := svc.RegenerateLinkIndex(ctx); err != nil {
		logger.Error("Failed to regenerate index", "err", err)
		os.Exit(1)
	}
	fmt.Println("Index regenerated.")
}

func argOr(args []string, i int, fallback string) string {
	if len(args) > i {
		return args[i]
	}
	return fallback
}
