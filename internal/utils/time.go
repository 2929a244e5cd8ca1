package utils

import (
	"time"

	"github.com/julianstephens/yeargrid/internal/constants"
)

// DateOf strips the clock from t and returns the calendar date at midnight UTC.
// The wall-clock year/month/day of t are kept as-is; only the location changes.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the local wall-clock date of now as a calendar date.
func Today(now time.Time) time.Time {
	return DateOf(now.In(time.Local))
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(constants.DateFormat, s)
}

// FormatDate formats a calendar date in the standard format (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// DaysBetween returns the signed number of calendar days from -> to.
func DaysBetween(from, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)).Hours() / 24)
}

// AddDays returns the calendar date n days after d.
func AddDays(d time.Time, n int) time.Time {
	return DateOf(d).AddDate(0, 0, n)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MondayIndex maps a weekday onto a Monday-first column (Mon=0 .. Sun=6).
func MondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
