package wallpaper

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/yeargrid/internal/logger"
)

var (
	processesFunc = ps.Processes
	getenvFunc    = os.Getenv
)

// Desktop is a Linux desktop environment we know how to drive.
type Desktop string

const (
	DesktopGNOME   Desktop = "gnome"
	DesktopKDE     Desktop = "kde"
	DesktopXFCE    Desktop = "xfce"
	DesktopSway    Desktop = "sway"
	DesktopUnknown Desktop = "unknown"
)

// shell process name -> desktop
var desktopProcesses = map[string]Desktop{
	"gnome-shell": DesktopGNOME,
	"plasmashell": DesktopKDE,
	"xfdesktop":   DesktopXFCE,
	"sway":        DesktopSway,
}

// DetectDesktop looks for a running desktop shell, then falls back to
// $XDG_CURRENT_DESKTOP.
func DetectDesktop(procs []ps.Process, xdgCurrentDesktop string) Desktop {
	for _, p := range procs {
		if p == nil {
			continue
		}
		if d, ok := desktopProcesses[p.Executable()]; ok {
			return d
		}
	}

	xdg := strings.ToLower(xdgCurrentDesktop)
	switch {
	case strings.Contains(xdg, "gnome"), strings.Contains(xdg, "unity"):
		return DesktopGNOME
	case strings.Contains(xdg, "kde"):
		return DesktopKDE
	case strings.Contains(xdg, "xfce"):
		return DesktopXFCE
	case strings.Contains(xdg, "sway"):
		return DesktopSway
	}
	return DesktopUnknown
}

// LinuxCommands returns the programs to run, in order, for desktop d.
// Unknown desktops fall back to feh, which covers most bare X11 window managers.
func LinuxCommands(d Desktop, path string) [][]string {
	switch d {
	case DesktopGNOME:
		uri := (&url.URL{Scheme: "file", Path: path}).String()
		return [][]string{
			{"gsettings", "set", "org.gnome.desktop.background", "picture-uri", uri},
			{"gsettings", "set", "org.gnome.desktop.background", "picture-uri-dark", uri},
			{"gsettings", "set", "org.gnome.desktop.background", "picture-options", "zoom"},
		}
	case DesktopKDE:
		return [][]string{{"plasma-apply-wallpaperimage", path}}
	case DesktopXFCE:
		return [][]string{{
			"xfconf-query", "-c", "xfce4-desktop",
			"-p", "/backdrop/screen0/monitor0/workspace0/last-image",
			"-s", path,
		}}
	case DesktopSway:
		return [][]string{{"swaymsg", "output", "*", "bg", path, "fill"}}
	default:
		return [][]string{{"feh", "--bg-fill", path}}
	}
}

type linuxSetter struct{}

func (linuxSetter) Set(ctx context.Context, path string) error {
	procs, err := processesFunc()
	if err != nil {
		logger.Debug("Process list unavailable", "error", err)
	}
	d := DetectDesktop(procs, getenvFunc("XDG_CURRENT_DESKTOP"))
	logger.Debug("Detected desktop", "desktop", d)

	for _, argv := range LinuxCommands(d, path) {
		if err := runCommandFunc(ctx, argv[0], argv[1:]...); err != nil {
			return fmt.Errorf("%s desktop: %w", d, err)
		}
	}
	return nil
}

// macOS

func darwinScript(path string) string {
	quoted := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(path)
	return fmt.Sprintf(`tell application "System Events" to tell every desktop to set picture to "%s"`, quoted)
}

type darwinSetter struct{}

func (darwinSetter) Set(ctx context.Context, path string) error {
	return runCommandFunc(ctx, "osascript", "-e", darwinScript(path))
}
