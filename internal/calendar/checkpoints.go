package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/yeargrid/internal/models"
	"github.com/julianstephens/yeargrid/internal/utils"
)

// Upcoming is a checkpoint with its day delta relative to today
type Upcoming struct {
	models.Checkpoint
	Delta int
}

// Label is the panel text for the delta
func (u Upcoming) Label() string {
	return DeltaLabel(u.Delta)
}

// Delta is the signed day difference between cp and today.
func Delta(cp models.Checkpoint, today time.Time) int {
	return utils.DaysBetween(today, cp.Date)
}

// DeltaLabel renders a non-negative delta.
func DeltaLabel(delta int) string {
	switch delta {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("%d days left", delta)
	}
}

// NearestCheckpoint returns the checkpoint with the smallest delta >= 0.
// On equal deltas the earliest in input order wins.
func NearestCheckpoint(cps []models.Checkpoint, today time.Time) (Upcoming, bool) {
	var best Upcoming
	found := false
	for _, cp := range cps {
		delta := Delta(cp, today)
		if delta < 0 {
			continue
		}
		if !found || delta < best.Delta {
			best = Upcoming{Checkpoint: cp, Delta: delta}
			found = true
		}
	}
	return best, found
}

// UpcomingCheckpoints returns every checkpoint with delta >= 0 sorted by date.
// The sort is stable, so same-date checkpoints keep input order.
func UpcomingCheckpoints(cps []models.Checkpoint, today time.Time) []Upcoming {
	sorted := make([]models.Checkpoint, len(cps))
	copy(sorted, cps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	out := make([]Upcoming, 0, len(sorted))
	for _, cp := range sorted {
		if delta := Delta(cp, today); delta >= 0 {
			out = append(out, Upcoming{Checkpoint: cp, Delta: delta})
		}
	}
	return out
}
