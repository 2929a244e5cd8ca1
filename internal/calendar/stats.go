package calendar

import (
	"time"

	"github.com/julianstephens/yeargrid/internal/constants"
	"github.com/julianstephens/yeargrid/internal/utils"
)

// YearStats are the passed/remaining counters shown in the stats block.
type YearStats struct {
	Passed    int
	Remaining int
}

// ComputeYearStats counts Jan 1 through today inclusive, clamped to
// [0, YearLength]. The denominator is always 365, leap years included.
func ComputeYearStats(today time.Time, year int) YearStats {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	passed := utils.DaysBetween(start, today) + 1
	passed = max(0, min(passed, constants.YearLength))
	return YearStats{
		Passed:    passed,
		Remaining: constants.YearLength - passed,
	}
}
