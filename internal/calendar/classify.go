package calendar

import (
	"time"

	"github.com/julianstephens/yeargrid/internal/models"
	"github.com/julianstephens/yeargrid/internal/utils"
)

// Classification is the visual category of a day cell
type Classification int

const (
	EmptyPad Classification = iota
	Future
	Past
	Checkpoint
	Productive
)

func (c Classification) String() string {
	switch c {
	case Productive:
		return "productive"
	case Checkpoint:
		return "checkpoint"
	case Past:
		return "past"
	case Future:
		return "future"
	default:
		return "empty"
	}
}

// Classify returns the category of d. Priority: Productive, then Checkpoint,
// then Past (today included), then Future.
func Classify(d, today time.Time, productive *models.ProductiveDays, checkpointDates map[time.Time]models.Checkpoint) Classification {
	d = utils.DateOf(d)
	if productive.Has(d) {
		return Productive
	}
	if _, ok := checkpointDates[d]; ok {
		return Checkpoint
	}
	if !d.After(utils.DateOf(today)) {
		return Past
	}
	return Future
}

// DayCell is a classified grid position. Day is zero for padding cells.
type DayCell struct {
	Date           time.Time
	Day            int
	Week           int
	Weekday        int // Monday-first column, 0..6
	Classification Classification
	Today          bool
}

// MonthCells returns the Monday-first week grid of a month, padding included,
// in row-major order.
func MonthCells(year int, month time.Month, today time.Time, productive *models.ProductiveDays, checkpointDates map[time.Time]models.Checkpoint) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lead := utils.MondayIndex(first.Weekday())
	days := utils.DaysIn(year, month)
	weeks := (lead + days + 6) / 7
	today = utils.DateOf(today)

	cells := make([]DayCell, 0, weeks*7)
	for i := 0; i < weeks*7; i++ {
		cell := DayCell{Week: i / 7, Weekday: i % 7}
		day := i - lead + 1
		if day >= 1 && day <= days {
			cell.Day = day
			cell.Date = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
			cell.Classification = Classify(cell.Date, today, productive, checkpointDates)
			cell.Today = cell.Date.Equal(today)
		}
		cells = append(cells, cell)
	}
	return cells
}
