package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/julianstephens/yeargrid/internal/constants"
	"github.com/julianstephens/yeargrid/internal/logger"
)

// ErrUnsupported is returned when no way to set the wallpaper is known for
// the running platform.
var ErrUnsupported = errors.New("wallpaper: unsupported platform")

// Setter applies an image file as the desktop background.
type Setter interface {
	Set(ctx context.Context, path string) error
}

// runCommandFunc runs an external program; swapped in tests.
var runCommandFunc = func(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// ApplyWith sets path as the wallpaper through s, bounded by
// constants.WallpaperTimeout.
func ApplyWith(s Setter, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve wallpaper path: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.WallpaperTimeout)
	defer cancel()

	logger.Debug("Applying wallpaper", "path", abs)
	if err := s.Set(ctx, abs); err != nil {
		return fmt.Errorf("failed to apply wallpaper: %w", err)
	}
	return nil
}

type unsupportedSetter struct{}

func (unsupportedSetter) Set(context.Context, string) error {
	return ErrUnsupported
}
