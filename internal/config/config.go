package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/yeargrid/internal/constants"
	"github.com/julianstephens/yeargrid/internal/utils"
)

// Config is the runtime configuration, assembled from defaults, an optional
// YAML file and YEARGRID_* environment variables, in that order.
type Config struct {
	Year           int                       `yaml:"year"`
	DataDir        string                    `yaml:"data_dir"`
	Output         string                    `yaml:"output"`
	Storage        constants.StorageKind     `yaml:"storage"`
	ApplyWallpaper bool                      `yaml:"apply_wallpaper"`
	Interactive    constants.InteractiveMode `yaml:"interactive"`
	Debug          bool                      `yaml:"debug"`
	FontPath       string                    `yaml:"font_path"`
	Note           string                    `yaml:"note"`
	Screen         ScreenConfig              `yaml:"screen"`
	Palette        PaletteConfig             `yaml:"palette"`
}

type ScreenConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	TaskbarSafe int `yaml:"taskbar_safe"`
}

// PaletteConfig holds hex colors (#rrggbb)
type PaletteConfig struct {
	Background   string `yaml:"background"`
	Past         string `yaml:"past"`
	Future       string `yaml:"future"`
	Checkpoint   string `yaml:"checkpoint"`
	Productive   string `yaml:"productive"`
	TodayOutline string `yaml:"today_outline"`
	TextMain     string `yaml:"text_main"`
	TextMuted    string `yaml:"text_muted"`
}

// Palette is the parsed form of PaletteConfig
type Palette struct {
	Background   color.RGBA
	Past         color.RGBA
	Future       color.RGBA
	Checkpoint   color.RGBA
	Productive   color.RGBA
	TodayOutline color.RGBA
	TextMain     color.RGBA
	TextMuted    color.RGBA
}

var userConfigDirFunc = os.UserConfigDir

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Year:           constants.DefaultYear,
		Storage:        constants.StorageText,
		ApplyWallpaper: true,
		Interactive:    constants.InteractiveAuto,
		Note:           constants.DefaultNote,
		Screen: ScreenConfig{
			Width:       constants.DefaultScreenWidth,
			Height:      constants.DefaultScreenHeight,
			TaskbarSafe: constants.DefaultTaskbarSafe,
		},
		Palette: PaletteConfig{
			Background:   "#020617",
			Past:         "#4ade80",
			Future:       "#0b1220",
			Checkpoint:   "#fbbf24",
			Productive:   "#38bdf8",
			TodayOutline: "#22c55e",
			TextMain:     "#e5e7eb",
			TextMuted:    "#94a3b8",
		},
	}
}

// Load builds the configuration. A missing default config file is not an
// error; a missing file named by YEARGRID_CONFIG is.
func Load() (Config, error) {
	cfg := Default()

	path := os.Getenv(constants.EnvPrefix + "CONFIG")
	explicit := path != ""
	if !explicit {
		if dir, err := userConfigDirFunc(); err == nil {
			path = filepath.Join(dir, constants.AppName, constants.ConfigFileName)
		}
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	env := func(key string) string { return os.Getenv(constants.EnvPrefix + key) }

	if v := env("YEAR"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sYEAR: %w", constants.EnvPrefix, err)
		}
		cfg.Year = year
	}
	if v := env("DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := env("OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := env("STORAGE"); v != "" {
		cfg.Storage = constants.StorageKind(v)
	}
	if v := env("FONT"); v != "" {
		cfg.FontPath = v
	}
	if v := env("DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sDEBUG: %w", constants.EnvPrefix, err)
		}
		cfg.Debug = b
	}
	if v := env("APPLY_WALLPAPER"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sAPPLY_WALLPAPER: %w", constants.EnvPrefix, err)
		}
		cfg.ApplyWallpaper = b
	}
	return nil
}

// normalize fills path defaults and makes them absolute. The wallpaper call
// needs an absolute output path.
func (c *Config) normalize() error {
	if c.DataDir == "" {
		dir, err := userConfigDirFunc()
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}
		c.DataDir = filepath.Join(dir, constants.AppName)
	}
	dataDir, err := utils.ExpandPath(c.DataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	c.DataDir = dataDir

	if c.Output == "" {
		c.Output = filepath.Join(c.DataDir, constants.DefaultOutputName)
	}
	output, err := utils.ExpandPath(c.Output)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	c.Output = output

	if c.FontPath != "" {
		fontPath, err := utils.ExpandPath(c.FontPath)
		if err != nil {
			return fmt.Errorf("resolve font path: %w", err)
		}
		c.FontPath = fontPath
	}
	if c.Interactive == "" {
		c.Interactive = constants.InteractiveAuto
	}
	return nil
}

// Validate checks values that would otherwise fail late in the run. Palette
// colors are checked separately by PaletteConfig.Parse.
func (c Config) Validate() error {
	if c.Year < 1 || c.Year > 9999 {
		return fmt.Errorf("year must be between 1 and 9999, got %d", c.Year)
	}
	switch c.Storage {
	case constants.StorageText, constants.StorageSQLite:
	default:
		return fmt.Errorf("unknown storage %q (expected %q or %q)", c.Storage, constants.StorageText, constants.StorageSQLite)
	}
	switch c.Interactive {
	case constants.InteractiveAuto, constants.InteractiveAlways, constants.InteractiveNever:
	default:
		return fmt.Errorf("unknown interactive mode %q", c.Interactive)
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.TaskbarSafe < 0 {
		return fmt.Errorf("taskbar_safe cannot be negative")
	}
	return nil
}

// Parse converts every hex entry into an RGBA color.
func (p PaletteConfig) Parse() (Palette, error) {
	var out Palette
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", p.Background, &out.Background},
		{"past", p.Past, &out.Past},
		{"future", p.Future, &out.Future},
		{"checkpoint", p.Checkpoint, &out.Checkpoint},
		{"productive", p.Productive, &out.Productive},
		{"today_outline", p.TodayOutline, &out.TodayOutline},
		{"text_main", p.TextMain, &out.TextMain},
		{"text_muted", p.TextMuted, &out.TextMuted},
	}
	for _, f := range fields {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("invalid palette color %s=%q: %w", f.name, f.hex, err)
		}
		r, g, b := c.RGB255()
		*f.dst = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return out, nil
}

// StorePath returns the dataset location for the configured backend: the
// data directory for text files, the database file for sqlite.
func (c Config) StorePath() string {
	if c.Storage == constants.StorageSQLite {
		return filepath.Join(c.DataDir, constants.SQLiteFileName)
	}
	return c.DataDir
}
