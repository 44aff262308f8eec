package main

import (
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/tinycards/internal/cli"
	"github.com/at-ishikawa/tinycards/internal/config"
	"github.com/at-ishikawa/tinycards/internal/imageutil"
	"github.com/at-ishikawa/tinycards/internal/session"
	"github.com/at-ishikawa/tinycards/internal/tinycards"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// runTinycardsCLI runs fn with a CLI whose client has the saved session restored.
func runTinycardsCLI(fn func(tinycardsCLI *cli.TinycardsCLI, cfg *config.Config) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	downloader := imageutil.NewDownloader()
	defer downloader.Close()
	client, err := tinycards.NewClient(cfg.API.ClientConfig(), imageutil.NewResolver(downloader))
	if err != nil {
		return fmt.Errorf("tinycards.NewClient > %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close the client", "error", err)
		}
	}()

	tinycardsCLI := cli.NewTinycardsCLI(
		client,
		session.NewStore(cfg.Session.File),
		cli.WithDeckTemplate(cfg.Templates.DeckMarkdownTemplate),
	)
	if err := tinycardsCLI.RestoreSession(); err != nil {
		return fmt.Errorf("tinycardsCLI.RestoreSession > %w", err)
	}
	return fn(tinycardsCLI, cfg)
}
