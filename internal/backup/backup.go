package backup

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/yeargrid/internal/constants"
	"github.com/julianstephens/yeargrid/internal/logger"
)

const timestampFormat = "20060102-150405"

// ErrNoSource is returned when there is no checkpoint dataset to back up yet
var ErrNoSource = errors.New("nothing to back up")

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager snapshots the checkpoint dataset before it is overwritten.
// Text stores are copied byte for byte; SQLite stores are written with
// VACUUM INTO so the copy is consistent.
type Manager struct {
	srcPath   string
	kind      constants.StorageKind
	backupDir string
	keep      int
	now       func() time.Time
}

// NewManager creates a backup manager for the dataset at srcPath. Backups go
// to a sibling "backups" directory.
func NewManager(srcPath string, kind constants.StorageKind) *Manager {
	return &Manager{
		srcPath:   srcPath,
		kind:      kind,
		backupDir: filepath.Join(filepath.Dir(srcPath), constants.BackupDirName),
		keep:      constants.MaxBackups,
		now:       time.Now,
	}
}

func (m *Manager) suffix() string {
	if m.kind == constants.StorageSQLite {
		return ".db"
	}
	return ".txt"
}

// CreateBackup writes a new timestamped backup and prunes the oldest ones
// beyond the retention limit.
func (m *Manager) CreateBackup() (string, error) {
	if _, err := os.Stat(m.srcPath); os.IsNotExist(err) {
		return "", ErrNoSource
	}

	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	backupPath, err := m.nextBackupPath()
	if err != nil {
		return "", err
	}

	if m.kind == constants.StorageSQLite {
		err = backupDatabase(m.srcPath, backupPath)
	} else {
		err = copyFile(m.srcPath, backupPath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to back up checkpoints: %w", err)
	}

	if err := m.rotateBackups(); err != nil {
		// a stale extra backup is harmless
		logger.Warn("Failed to rotate old backups", "error", err)
	}

	return backupPath, nil
}

// nextBackupPath picks a free name, adding a counter when two backups land
// in the same second.
func (m *Manager) nextBackupPath() (string, error) {
	timestamp := m.now().Format(timestampFormat)
	name := constants.BackupFilePrefix + timestamp + m.suffix()
	path := filepath.Join(m.backupDir, name)

	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		name = fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, timestamp, counter, m.suffix())
		path = filepath.Join(m.backupDir, name)
	}
}

// backupDatabase copies the database with VACUUM INTO, falling back to a
// plain file copy if the statement is unavailable.
func backupDatabase(srcPath, destPath string) error {
	srcDB, err := sql.Open("sqlite", srcPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer srcDB.Close()

	var count int
	if err := srcDB.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}

	if _, err := srcDB.Exec("VACUUM INTO ?", destPath); err != nil {
		logger.Debug("VACUUM INTO failed, copying file", "error", err)
		srcDB.Close()
		return copyFile(srcPath, destPath)
	}
	return nil
}

// ListBackups returns the backups of this dataset kind, newest first.
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, m.suffix()) {
			continue
		}

		timestamp, counter, ok := parseBackupName(strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), m.suffix()))
		if !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: timestamp.Add(time.Duration(counter)),
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// parseBackupName reads "YYYYMMDD-HHMMSS" with an optional "-N" counter.
func parseBackupName(s string) (time.Time, int, bool) {
	parts := strings.Split(s, "-")
	counter := 0
	if len(parts) == 3 {
		n, err := strconv.Atoi(parts[2])
		if err != nil || n < 1 {
			return time.Time{}, 0, false
		}
		counter = n
		parts = parts[:2]
	}
	if len(parts) != 2 {
		return time.Time{}, 0, false
	}
	ts, err := time.Parse(timestampFormat, parts[0]+"-"+parts[1])
	if err != nil {
		return time.Time{}, 0, false
	}
	return ts, counter, true
}

// rotateBackups removes old backups beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	for i := m.keep; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}
