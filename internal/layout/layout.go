package layout

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"time"

	"github.com/julianstephens/yeargrid/internal/calendar"
	"github.com/julianstephens/yeargrid/internal/config"
	"github.com/julianstephens/yeargrid/internal/constants"
	"github.com/julianstephens/yeargrid/internal/models"
	"github.com/julianstephens/yeargrid/internal/utils"
)

// Input is everything the layout depends on. Today is a calendar date.
type Input struct {
	Year        int
	Today       time.Time
	Checkpoints []models.Checkpoint
	Productive  *models.ProductiveDays
	Note        string
}

// Build lays out the stats block, the twelve month grids, the checkpoint
// panel and the footer note. It performs no I/O.
func Build(in Input, g Geometry, p config.Palette, m Measurer) Scene {
	b := &builder{geo: g, pal: p, measure: m}
	today := utils.DateOf(in.Today)

	b.stats(in.Year, today)
	b.months(in.Year, today, in.Productive, models.CheckpointDates(in.Checkpoints))
	b.panel(in.Checkpoints, today)
	if in.Note != "" {
		b.text(image.Pt(g.SideMargin, g.Height-g.TaskbarSafe-g.FooterOffset), in.Note, FontMid, false)
	}

	return Scene{
		Width:      g.Width,
		Height:     g.Height,
		Background: p.Background,
		Commands:   b.cmds,
	}
}

type builder struct {
	geo     Geometry
	pal     config.Palette
	measure Measurer
	cmds    []Command
}

func (b *builder) text(at image.Point, s string, role FontRole, main bool) {
	c := b.pal.TextMuted
	if main {
		c = b.pal.TextMain
	}
	b.cmds = append(b.cmds, TextCommand{At: at, Text: s, Color: c, Role: role})
}

func (b *builder) stats(year int, today time.Time) {
	x := b.geo.SideMargin
	stats := calendar.ComputeYearStats(today, year)
	passed := strconv.Itoa(stats.Passed)

	b.text(image.Pt(x, 40), passed, FontBig, true)
	b.text(image.Pt(x+b.measure.TextWidth(FontBig, passed)+12, 58), "days passed", FontMid, false)
	b.text(image.Pt(x, 120), fmt.Sprintf("%d days remaining", stats.Remaining), FontMid, false)
	b.text(image.Pt(x, 155), fmt.Sprintf("Ends on 31 Dec %d", year), FontMid, false)
	b.text(image.Pt(x, 195), today.Weekday().String(), FontMid, true)
	b.text(image.Pt(x, 225), today.Format(constants.DisplayDateFormat), FontSmall, false)
}

func (b *builder) months(year int, today time.Time, productive *models.ProductiveDays, cpDates map[time.Time]models.Checkpoint) {
	g := b.geo
	for m := 1; m <= 12; m++ {
		anchor := g.MonthAnchor(m)
		month := time.Month(m)
		b.text(image.Pt(anchor.X, anchor.Y-g.MonthLabelOffset), month.String(), FontMonth, true)

		for _, cell := range calendar.MonthCells(year, month, today, productive, cpDates) {
			if cell.Classification == calendar.EmptyPad {
				continue
			}
			bounds := g.CellBounds(anchor, cell.Week, cell.Weekday)
			b.cmds = append(b.cmds, RectCommand{
				Bounds: bounds,
				Radius: g.CellRadius,
				Fill:   b.fill(cell.Classification),
				Filled: true,
			})
			if cell.Today {
				b.cmds = append(b.cmds, RectCommand{
					Bounds:       bounds.Inset(-g.TodayRing),
					Radius:       g.TodayRadius,
					Outline:      b.pal.TodayOutline,
					OutlineWidth: g.TodayRing,
				})
			}
		}
	}
}

func (b *builder) fill(c calendar.Classification) color.RGBA {
	switch c {
	case calendar.Productive:
		return b.pal.Productive
	case calendar.Checkpoint:
		return b.pal.Checkpoint
	case calendar.Past:
		return b.pal.Past
	default:
		return b.pal.Future
	}
}

// panel is drawn whenever checkpoints exist, even if all of them are past;
// only the rows for past checkpoints are left out.
func (b *builder) panel(cps []models.Checkpoint, today time.Time) {
	if len(cps) == 0 {
		return
	}
	g := b.geo
	origin := g.PanelOrigin()
	b.text(image.Pt(origin.X, origin.Y-g.PanelTitleOffset), "Checkpoints", FontMid, true)

	off := 0
	for _, u := range calendar.UpcomingCheckpoints(cps, today) {
		b.text(image.Pt(origin.X, origin.Y+off), u.Name, FontMid, true)
		b.text(image.Pt(origin.X, origin.Y+off+g.PanelLabelOffset), u.Label(), FontSmall, false)
		off += g.PanelRowHeight
	}
}
