package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/yeargrid/internal/logger"
	"github.com/julianstephens/yeargrid/internal/migration"
	"github.com/julianstephens/yeargrid/internal/models"
	"github.com/julianstephens/yeargrid/internal/utils"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const metaCheckpointsSaved = "checkpoints_saved"

// SQLiteStore keeps both datasets in one SQLite database. Records are stored
// as text and go through the same parsers as the flat files, so a bad row is
// skipped rather than failing the load.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

// Load opens the database, creating it and applying migrations as needed.
func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// one process, one connection
	db.SetMaxOpenConns(1)
	s.db = db

	if err := s.runMigrations(); err != nil {
		s.db.Close()
		s.db = nil
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *SQLiteStore) runMigrations() error {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return err
	}
	applied, err := migration.NewRunner(s.db, sub).ApplyMigrations(func(msg string) {
		logger.Debug(msg, "db", s.path)
	})
	if err != nil {
		return err
	}
	if applied > 0 {
		logger.Info("Database schema updated", "applied", applied)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) LoadProductiveDays() (*models.ProductiveDays, error) {
	if s.db == nil {
		return nil, ErrNotLoaded
	}
	rows, err := s.db.Query("SELECT id, day FROM productive_days ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query productive days: %w", err)
	}
	defer rows.Close()

	days := models.NewProductiveDays()
	for rows.Next() {
		var id int64
		var day string
		if err := rows.Scan(&id, &day); err != nil {
			return nil, fmt.Errorf("failed to scan productive day: %w", err)
		}
		d, ok := ParseProductiveLine(day)
		if !ok {
			logger.Debug("Skipping malformed productive day", "row", id)
			continue
		}
		days.Add(d)
	}
	return days, rows.Err()
}

func (s *SQLiteStore) AppendProductiveDay(day time.Time) error {
	if s.db == nil {
		return ErrNotLoaded
	}
	if _, err := s.db.Exec("INSERT INTO productive_days (day) VALUES (?)", FormatProductiveLine(day)); err != nil {
		return fmt.Errorf("failed to append productive day: %w", err)
	}
	return nil
}

func (s *SQLiteStore) LoadCheckpoints() ([]models.Checkpoint, error) {
	if s.db == nil {
		return nil, ErrNotLoaded
	}
	rows, err := s.db.Query("SELECT position, day, name FROM checkpoints ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query checkpoints: %w", err)
	}
	defer rows.Close()

	cps := []models.Checkpoint{}
	for rows.Next() {
		var pos int
		var day, name string
		if err := rows.Scan(&pos, &day, &name); err != nil {
			return nil, fmt.Errorf("failed to scan checkpoint: %w", err)
		}
		cp, ok := ParseCheckpointRecord(day, name)
		if !ok {
			logger.Debug("Skipping malformed checkpoint", "position", pos)
			continue
		}
		cps = append(cps, cp)
	}
	return cps, rows.Err()
}

// SaveCheckpoints replaces every row in a single transaction.
func (s *SQLiteStore) SaveCheckpoints(cps []models.Checkpoint) error {
	if s.db == nil {
		return ErrNotLoaded
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM checkpoints"); err != nil {
		return fmt.Errorf("failed to clear checkpoints: %w", err)
	}
	for i, cp := range cps {
		if _, err := tx.Exec(
			"INSERT INTO checkpoints (position, day, name) VALUES (?, ?, ?)",
			i, utils.FormatDate(cp.Date), cp.Name,
		); err != nil {
			return fmt.Errorf("failed to insert checkpoint %q: %w", cp.Name, err)
		}
	}
	if _, err := tx.Exec(
		"INSERT INTO meta (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		metaCheckpointsSaved, time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("failed to mark checkpoints saved: %w", err)
	}
	return tx.Commit()
}

func (s *SQLiteStore) CheckpointsExist() (bool, error) {
	if s.db == nil {
		return false, ErrNotLoaded
	}
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM meta WHERE key = ?", metaCheckpointsSaved).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to query meta: %w", err)
	}
	return count > 0, nil
}
