package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/yeargrid/internal/cli"
	"github.com/julianstephens/yeargrid/internal/config"
	"github.com/julianstephens/yeargrid/internal/constants"
	"github.com/julianstephens/yeargrid/internal/errors"
	"github.com/julianstephens/yeargrid/internal/logger"
	"github.com/julianstephens/yeargrid/internal/prompt"
	"github.com/julianstephens/yeargrid/internal/render"
	"github.com/julianstephens/yeargrid/internal/storage"
	"github.com/julianstephens/yeargrid/internal/wallpaper"
)

var CLI cli.RootCmd

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Render the year as a wallpaper of daily squares, with checkpoints and productive days."),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load()
	errors.Fatal(errors.StageConfig, err)

	if err := logger.Init(logger.Config{Debug: cfg.Debug, DataDir: cfg.DataDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	palette, err := cfg.Palette.Parse()
	errors.Fatal(errors.StagePalette, err)

	store := storage.New(cfg.Storage, cfg.StorePath())
	if err := store.Load(); err != nil {
		errors.Fatal(errors.StageStorage, fmt.Errorf("%s storage at %s: %w", cfg.Storage, cfg.StorePath(), err))
	}
	defer store.Close()

	appCtx := &cli.Context{
		Config:    cfg,
		Palette:   palette,
		Store:     store,
		Prompter:  prompt.New(cfg.Interactive),
		Renderer:  render.New(render.LoadFontSet(cfg.FontPath)),
		Wallpaper: wallpaper.New(),
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(errors.StageRun, err)
	}
}
