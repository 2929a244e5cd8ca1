package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/yeargrid/internal/calendar"
	"github.com/julianstephens/yeargrid/internal/layout"
	"github.com/julianstephens/yeargrid/internal/logger"
	"github.com/julianstephens/yeargrid/internal/models"
	"github.com/julianstephens/yeargrid/internal/prompt"
	"github.com/julianstephens/yeargrid/internal/utils"
	"github.com/julianstephens/yeargrid/internal/wallpaper"
)

// Run executes one pass: optional editor, reflection, layout, render and
// wallpaper. Wallpaper failures are reported but do not fail the run.
func (c *RootCmd) Run(ctx *Context) error {
	today := utils.Today(ctx.now())
	logger.Debug("Starting run", "today", utils.FormatDate(today), "year", ctx.Config.Year)

	if err := ctx.editCheckpoints(c.EditCheckpoints); err != nil {
		return err
	}

	productive, err := ctx.Store.LoadProductiveDays()
	if err != nil {
		return fmt.Errorf("failed to load productive days: %w", err)
	}
	checkpoints, err := ctx.Store.LoadCheckpoints()
	if err != nil {
		return fmt.Errorf("failed to load checkpoints: %w", err)
	}
	logger.Debug("Datasets loaded", "productive", productive.Len(), "checkpoints", len(checkpoints))

	reflection := calendar.NewReflection(today)
	if err := reflection.Run(productive, ctx.Prompter, ctx.Store); err != nil {
		if errors.Is(err, prompt.ErrNonInteractive) {
			logger.Debug("Reflection skipped", "reason", err)
		} else {
			logger.Warn("Reflection failed", "error", err)
		}
	}
	logger.Debug("Reflection finished", "state", reflection.State)

	screen := ctx.Config.Screen
	scene := layout.Build(layout.Input{
		Year:        ctx.Config.Year,
		Today:       today,
		Checkpoints: checkpoints,
		Productive:  productive,
		Note:        ctx.Config.Note,
	}, layout.DefaultGeometry(screen.Width, screen.Height, screen.TaskbarSafe), ctx.Palette, ctx.Renderer)

	if err := ctx.Renderer.Render(scene, ctx.Config.Output); err != nil {
		return fmt.Errorf("failed to render wallpaper: %w", err)
	}
	logger.Info("Wallpaper rendered", "path", ctx.Config.Output, "commands", len(scene.Commands))

	out := ctx.out()
	if ctx.Config.ApplyWallpaper && ctx.Wallpaper != nil {
		if err := wallpaper.ApplyWith(ctx.Wallpaper, ctx.Config.Output); err != nil {
			logger.Warn("Wallpaper not applied", "error", err)
			fmt.Fprintln(out, warningStyle.Render(fmt.Sprintf("Could not apply wallpaper: %v", err)))
		}
	}

	printSummary(out, summary{
		Year:        ctx.Config.Year,
		Stats:       calendar.ComputeYearStats(today, ctx.Config.Year),
		Productive:  productive.Len(),
		Reflection:  reflection,
		Checkpoints: checkpoints,
		Today:       today,
		Output:      ctx.Config.Output,
	})
	fmt.Fprintln(out, successStyle.Render("Wallpaper updated successfully."))
	return nil
}

// editCheckpoints opens the editor when forced or when no checkpoint list
// was ever saved. A submitted list replaces the stored one after a backup.
func (ctx *Context) editCheckpoints(force bool) error {
	exists, err := ctx.Store.CheckpointsExist()
	if err != nil {
		return fmt.Errorf("failed to check checkpoints: %w", err)
	}
	if exists && !force {
		return nil
	}

	var current []models.Checkpoint
	if exists {
		current, err = ctx.Store.LoadCheckpoints()
		if err != nil {
			return fmt.Errorf("failed to load checkpoints: %w", err)
		}
	}

	updated, err := ctx.Prompter.EditCheckpoints(current)
	if err != nil {
		if errors.Is(err, prompt.ErrCanceled) || errors.Is(err, prompt.ErrNonInteractive) {
			logger.Info("Checkpoint editor skipped", "reason", err)
			return nil
		}
		return fmt.Errorf("checkpoint editor failed: %w", err)
	}

	if exists {
		ctx.PerformAutomaticBackup()
	}
	if err := ctx.Store.SaveCheckpoints(updated); err != nil {
		return fmt.Errorf("failed to save checkpoints: %w", err)
	}
	logger.Info("Checkpoints saved", "count", len(updated))
	return nil
}
