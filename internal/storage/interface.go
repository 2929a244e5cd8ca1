package storage

import (
	"errors"
	"time"

	"github.com/julianstephens/yeargrid/internal/models"
)

// ErrNotLoaded is returned when a store is used before Load
var ErrNotLoaded = errors.New("storage not loaded")

// Provider persists the two datasets. Malformed records are skipped on load;
// a dataset that does not exist yet loads as empty.
type Provider interface {
	// Lifecycle
	Load() error
	Close() error
	// GetConfigPath returns the location of the checkpoint dataset, used for backups
	GetConfigPath() string

	// Productive days
	LoadProductiveDays() (*models.ProductiveDays, error)
	AppendProductiveDay(day time.Time) error

	// Checkpoints
	LoadCheckpoints() ([]models.Checkpoint, error)
	// SaveCheckpoints replaces the whole list, keeping the given order
	SaveCheckpoints(cps []models.Checkpoint) error
	// CheckpointsExist reports whether a checkpoint list was ever saved
	CheckpointsExist() (bool, error)
}
