package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Checkpoint is a named milestone tied to a calendar date
type Checkpoint struct {
	Name string    `validate:"required"`
	Date time.Time `validate:"required"`
}

// Validate rejects empty names, zero dates and names holding a line break. A
// bare \r counts as a break since a trailing one reads back as part of a CRLF
// terminator.
func (c Checkpoint) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid checkpoint %q: %w", c.Name, err)
	}
	if strings.ContainsAny(c.Name, "\r\n") {
		return fmt.Errorf("invalid checkpoint %q: name cannot contain line breaks", c.Name)
	}
	return nil
}

// CheckpointDates indexes checkpoints by date. When several share a date the
// first one in input order wins.
func CheckpointDates(cps []Checkpoint) map[time.Time]Checkpoint {
	out := make(map[time.Time]Checkpoint, len(cps))
	for _, cp := range cps {
		key := dateKey(cp.Date)
		if _, ok := out[key]; !ok {
			out[key] = cp
		}
	}
	return out
}

func dateKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
