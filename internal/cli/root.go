package cli

import (
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/yeargrid/internal/backup"
	"github.com/julianstephens/yeargrid/internal/config"
	"github.com/julianstephens/yeargrid/internal/layout"
	"github.com/julianstephens/yeargrid/internal/logger"
	"github.com/julianstephens/yeargrid/internal/prompt"
	"github.com/julianstephens/yeargrid/internal/storage"
	"github.com/julianstephens/yeargrid/internal/wallpaper"
)

// Renderer measures and draws a scene.
type Renderer interface {
	layout.Measurer
	Render(scene layout.Scene, path string) error
}

// Context carries the collaborators of a run.
type Context struct {
	Config    config.Config
	Palette   config.Palette
	Store     storage.Provider
	Prompter  prompt.Prompter
	Renderer  Renderer
	Wallpaper wallpaper.Setter
	Now       func() time.Time
	Out       io.Writer
}

func (c *Context) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// PerformAutomaticBackup backs up the checkpoint dataset and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath(), c.Config.Storage)
	path, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt the run
		logger.Warn("Automatic backup failed", "error", err)
		return
	}
	logger.Debug("Checkpoints backed up", "path", path)
}

// RootCmd is the only command: render today's calendar and apply it.
type RootCmd struct {
	Version         kong.VersionFlag `help:"Print version and exit."`
	EditCheckpoints bool             `help:"Open the checkpoint editor before rendering." name:"edit-checkpoints"`
}
