package storage

import (
	"strings"
	"time"

	"github.com/julianstephens/yeargrid/internal/constants"
	"github.com/julianstephens/yeargrid/internal/models"
	"github.com/julianstephens/yeargrid/internal/utils"
)

// ParseProductiveLine parses one productive-days record.
func ParseProductiveLine(line string) (time.Time, bool) {
	d, err := utils.ParseDate(strings.TrimSpace(line))
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// FormatProductiveLine is the inverse of ParseProductiveLine, without the newline.
func FormatProductiveLine(d time.Time) string {
	return utils.FormatDate(d)
}

// ParseCheckpointLine parses one "YYYY-MM-DD|name" record. The name is
// everything after the first separator, kept byte for byte apart from the
// line terminator, and may itself contain separators.
func ParseCheckpointLine(line string) (models.Checkpoint, bool) {
	dateStr, name, found := strings.Cut(strings.TrimRight(line, "\r\n"), constants.CheckpointSeparator)
	if !found {
		return models.Checkpoint{}, false
	}
	return ParseCheckpointRecord(dateStr, name)
}

// ParseCheckpointRecord validates an already split record.
func ParseCheckpointRecord(dateStr, name string) (models.Checkpoint, bool) {
	d, err := utils.ParseDate(strings.TrimSpace(dateStr))
	if err != nil {
		return models.Checkpoint{}, false
	}
	cp := models.Checkpoint{Name: name, Date: d}
	if cp.Validate() != nil {
		return models.Checkpoint{}, false
	}
	return cp, true
}

// FormatCheckpointLine is the inverse of ParseCheckpointLine, without the newline.
func FormatCheckpointLine(cp models.Checkpoint) string {
	return utils.FormatDate(cp.Date) + constants.CheckpointSeparator + cp.Name
}
