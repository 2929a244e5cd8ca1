package constants

import "time"

const (
	AppName        = "yeargrid"
	Version        = "v0.1.0"
	EnvPrefix      = "YEARGRID_"
	ConfigFileName = "config.yaml"
	LogFileName    = "yeargrid.log"

	// DateFormat is the on-disk date format for both datasets (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DisplayDateFormat is used for the date line of the stats block
	DisplayDateFormat = "02 January 2006"

	// CheckpointSeparator splits the date from the name in a checkpoint record
	CheckpointSeparator = "|"

	// MaxCheckpoints is the number of rows offered by the checkpoint editor.
	// Storage and layout accept any count.
	MaxCheckpoints = 10

	// YearLength is the fixed denominator for the passed/remaining stats.
	// Leap years are not special-cased.
	YearLength = 365

	DefaultYear        = 2026
	DefaultNote        = "CONSISTENCY > INTENSITY"
	DefaultOutputName  = "calendar_wallpaper.png"
	ProductiveFileName = "productive_days.txt"
	CheckpointFileName = "checkpoints.txt"
	SQLiteFileName     = "yeargrid.db"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "checkpoints-"

	// Screen defaults
	DefaultScreenWidth  = 1920
	DefaultScreenHeight = 1080
	DefaultTaskbarSafe  = 120

	ReflectionQuestion = "Was yesterday productive?"

	WallpaperTimeout = 10 * time.Second
)

// StorageKind selects the persistence backend
type StorageKind string

const (
	StorageText   StorageKind = "text"
	StorageSQLite StorageKind = "sqlite"
)

// InteractiveMode controls whether modal prompts are shown
type InteractiveMode string

const (
	InteractiveAuto   InteractiveMode = "auto"
	InteractiveAlways InteractiveMode = "always"
	InteractiveNever  InteractiveMode = "never"
)
