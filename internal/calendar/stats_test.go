package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeYearStats(t *testing.T) {
	tests := []struct {
		name          string
		today         time.Time
		year          int
		wantPassed    int
		wantRemaining int
	}{
		{"jan 1", date(2026, 1, 1), 2026, 1, 364},
		{"jan 2", date(2026, 1, 2), 2026, 2, 363},
		{"dec 31", date(2026, 12, 31), 2026, 365, 0},
		{"day before the year", date(2025, 12, 31), 2026, 0, 365},
		{"long before the year", date(2020, 5, 5), 2026, 0, 365},
		{"after the year", date(2027, 1, 1), 2026, 365, 0},
		{"leap year dec 30 hits the cap", date(2028, 12, 30), 2028, 365, 0},
		{"leap year dec 31 stays clamped", date(2028, 12, 31), 2028, 365, 0},
		{"leap year march 1", date(2028, 3, 1), 2028, 61, 304},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeYearStats(tt.today, tt.year)
			assert.Equal(t, tt.wantPassed, got.Passed)
			assert.Equal(t, tt.wantRemaining, got.Remaining)
		})
	}
}

func TestComputeYearStatsIgnoresClock(t *testing.T) {
	got := ComputeYearStats(time.Date(2026, 1, 1, 23, 59, 0, 0, time.UTC), 2026)
	assert.Equal(t, YearStats{Passed: 1, Remaining: 364}, got)
}
