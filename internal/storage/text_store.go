package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/yeargrid/internal/constants"
	"github.com/julianstephens/yeargrid/internal/logger"
	"github.com/julianstephens/yeargrid/internal/models"
)

// TextStore keeps each dataset in a flat UTF-8 file inside one directory.
type TextStore struct {
	dir    string
	loaded bool
}

func NewTextStore(dir string) *TextStore {
	return &TextStore{dir: dir}
}

func (s *TextStore) Load() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	s.loaded = true
	return nil
}

func (s *TextStore) Close() error {
	s.loaded = false
	return nil
}

func (s *TextStore) GetConfigPath() string {
	return s.checkpointPath()
}

func (s *TextStore) productivePath() string {
	return filepath.Join(s.dir, constants.ProductiveFileName)
}

func (s *TextStore) checkpointPath() string {
	return filepath.Join(s.dir, constants.CheckpointFileName)
}

func (s *TextStore) LoadProductiveDays() (*models.ProductiveDays, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	days := models.NewProductiveDays()
	err := readLines(s.productivePath(), func(n int, line string) {
		d, ok := ParseProductiveLine(line)
		if !ok {
			logger.Debug("Skipping malformed productive day", "file", constants.ProductiveFileName, "line", n)
			return
		}
		days.Add(d)
	})
	if err != nil {
		return nil, err
	}
	return days, nil
}

// AppendProductiveDay writes one line with a single O_APPEND write so that a
// crash cannot damage earlier lines.
func (s *TextStore) AppendProductiveDay(day time.Time) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	f, err := os.OpenFile(s.productivePath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open productive days: %w", err)
	}
	if _, err := f.WriteString(FormatProductiveLine(day) + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("failed to append productive day: %w", err)
	}
	return f.Close()
}

func (s *TextStore) LoadCheckpoints() ([]models.Checkpoint, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	cps := []models.Checkpoint{}
	err := readLines(s.checkpointPath(), func(n int, line string) {
		cp, ok := ParseCheckpointLine(line)
		if !ok {
			logger.Debug("Skipping malformed checkpoint", "file", constants.CheckpointFileName, "line", n)
			return
		}
		cps = append(cps, cp)
	})
	if err != nil {
		return nil, err
	}
	return cps, nil
}

// SaveCheckpoints rewrites the file through a temp file and rename.
func (s *TextStore) SaveCheckpoints(cps []models.Checkpoint) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	tmp, err := os.CreateTemp(s.dir, constants.CheckpointFileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w := bufio.NewWriter(tmp)
	for _, cp := range cps {
		if _, err := w.WriteString(FormatCheckpointLine(cp) + "\n"); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write checkpoints: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write checkpoints: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write checkpoints: %w", err)
	}
	if err := os.Rename(tmpName, s.checkpointPath()); err != nil {
		return fmt.Errorf("failed to replace checkpoints: %w", err)
	}
	return nil
}

func (s *TextStore) CheckpointsExist() (bool, error) {
	_, err := os.Stat(s.checkpointPath())
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// readLines calls fn for each line of path (1-based line numbers). A missing
// file yields no lines and no error.
func readLines(path string, fn func(n int, line string)) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for n := 1; ; n++ {
		line, err := r.ReadString('\n')
		if line != "" {
			fn(n, line)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
		}
	}
}
