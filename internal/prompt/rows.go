package prompt

import (
	"fmt"
	"strings"

	"github.com/julianstephens/yeargrid/internal/constants"
	"github.com/julianstephens/yeargrid/internal/models"
	"github.com/julianstephens/yeargrid/internal/utils"
)

// CheckpointRow is one name/date input pair of the editor.
type CheckpointRow struct {
	Name string
	Date string
}

// RowsFromCheckpoints pre-fills exactly constants.MaxCheckpoints rows.
// Checkpoints past the last row are not shown.
func RowsFromCheckpoints(cps []models.Checkpoint) []CheckpointRow {
	rows := make([]CheckpointRow, constants.MaxCheckpoints)
	for i, cp := range cps {
		if i >= len(rows) {
			break
		}
		rows[i] = CheckpointRow{Name: cp.Name, Date: utils.FormatDate(cp.Date)}
	}
	return rows
}

// CheckpointsFromRows converts submitted rows in order. Rows whose trimmed
// name or date is empty are dropped. The first unparseable date rejects the
// whole submission.
func CheckpointsFromRows(rows []CheckpointRow) ([]models.Checkpoint, error) {
	cps := make([]models.Checkpoint, 0, len(rows))
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		date := strings.TrimSpace(row.Date)
		if name == "" || date == "" {
			continue
		}
		d, err := utils.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %s", date)
		}
		cp := models.Checkpoint{Name: name, Date: d}
		if err := cp.Validate(); err != nil {
			return nil, fmt.Errorf("invalid checkpoint %q: %w", name, err)
		}
		cps = append(cps, cp)
	}
	return cps, nil
}

// validateDateField accepts a blank field or a YYYY-MM-DD date.
func validateDateField(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := utils.ParseDate(s); err != nil {
		return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", s)
	}
	return nil
}
