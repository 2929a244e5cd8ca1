package calendar

import (
	"fmt"
	"time"

	"github.com/julianstephens/yeargrid/internal/constants"
	"github.com/julianstephens/yeargrid/internal/models"
	"github.com/julianstephens/yeargrid/internal/utils"
)

// ReflectionState tracks the once-per-run "was yesterday productive?" prompt.
type ReflectionState int

const (
	ReflectionUnasked ReflectionState = iota
	ReflectionAsked
	ReflectionRecorded
	ReflectionSkipped
	// ReflectionUnsaved means the answer was yes but appending it failed;
	// the day only counts for this run.
	ReflectionUnsaved
)

func (s ReflectionState) String() string {
	switch s {
	case ReflectionAsked:
		return "asked"
	case ReflectionRecorded:
		return "recorded"
	case ReflectionSkipped:
		return "skipped"
	case ReflectionUnsaved:
		return "unsaved"
	default:
		return "unasked"
	}
}

// Asker poses a yes/no question. Dismissing the question answers no.
type Asker interface {
	PromptYesNo(question string) (bool, error)
}

// DayRecorder persists a productive day.
type DayRecorder interface {
	AppendProductiveDay(day time.Time) error
}

// Reflection runs the daily prompt transition for one run.
type Reflection struct {
	State     ReflectionState
	Yesterday time.Time
}

func NewReflection(today time.Time) *Reflection {
	return &Reflection{Yesterday: utils.AddDays(today, -1)}
}

// NeedsPrompt reports whether yesterday is still unrecorded.
func (r *Reflection) NeedsPrompt(days *models.ProductiveDays) bool {
	return r.State == ReflectionUnasked && !days.Has(r.Yesterday)
}

// Run asks about yesterday unless it is already recorded. A yes adds the day
// to days and appends it to rec; a no changes nothing. If the append fails the
// day stays in days and the state is ReflectionUnsaved. Calling Run again on
// the same Reflection is a no-op.
func (r *Reflection) Run(days *models.ProductiveDays, asker Asker, rec DayRecorder) error {
	if !r.NeedsPrompt(days) {
		return nil
	}
	r.State = ReflectionAsked

	yes, err := asker.PromptYesNo(constants.ReflectionQuestion)
	if err != nil {
		r.State = ReflectionSkipped
		return fmt.Errorf("reflection prompt: %w", err)
	}
	if !yes {
		r.State = ReflectionSkipped
		return nil
	}

	days.Add(r.Yesterday)
	if err := rec.AppendProductiveDay(r.Yesterday); err != nil {
		r.State = ReflectionUnsaved
		return fmt.Errorf("record productive day: %w", err)
	}
	r.State = ReflectionRecorded
	return nil
}
