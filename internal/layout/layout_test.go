package layout

import (
	"image"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/yeargrid/internal/config"
	"github.com/julianstephens/yeargrid/internal/models"
)

// fixedMeasurer treats every rune as 10px wide
type fixedMeasurer struct{}

func (fixedMeasurer) TextWidth(_ FontRole, s string) int {
	return 10 * utf8.RuneCountInString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testPalette(t *testing.T) config.Palette {
	t.Helper()
	p, err := config.Default().Palette.Parse()
	require.NoError(t, err)
	return p
}

func build(t *testing.T, in Input) Scene {
	t.Helper()
	return Build(in, DefaultGeometry(1920, 1080, 120), testPalette(t), fixedMeasurer{})
}

func TestGridPosition(t *testing.T) {
	g := DefaultGeometry(1920, 1080, 120)

	row, col := g.GridPosition(5)
	assert.Equal(t, 1, row)
	assert.Equal(t, 0, col)

	row, col = g.GridPosition(12)
	assert.Equal(t, 2, row)
	assert.Equal(t, 3, col)
}

func TestMonthAnchors(t *testing.T) {
	g := DefaultGeometry(1920, 1080, 120)

	assert.Equal(t, 218, g.MonthWidth())
	assert.Equal(t, 186, g.MonthHeight())
	assert.Equal(t, 992, g.GridWidth())
	assert.Equal(t, image.Pt(464, 200), g.Origin())
	assert.Equal(t, image.Pt(464, 200), g.MonthAnchor(1))
	assert.Equal(t, image.Pt(464+3*258, 200), g.MonthAnchor(4))
	assert.Equal(t, image.Pt(464, 456), g.MonthAnchor(5))
	assert.Equal(t, image.Pt(464+258, 712), g.MonthAnchor(10))
	assert.Equal(t, image.Pt(464+992+80, 210), g.PanelOrigin())
}

func TestBuildCellsAndTodayRing(t *testing.T) {
	today := date(2026, 6, 3)
	scene := build(t, Input{Year: 2026, Today: today, Productive: models.NewProductiveDays()})
	pal := testPalette(t)

	var filled, rings []RectCommand
	for _, r := range scene.Rects() {
		if r.Filled {
			filled = append(filled, r)
		} else {
			rings = append(rings, r)
		}
	}
	assert.Len(t, filled, 365, "one cell per day, none for padding")
	require.Len(t, rings, 1)

	// June 2026 starts on Monday: June 3 sits in week 0, column 2
	g := DefaultGeometry(1920, 1080, 120)
	cell := g.CellBounds(g.MonthAnchor(6), 0, 2)
	assert.Equal(t, cell.Inset(-2), rings[0].Bounds)
	assert.Equal(t, 2, rings[0].OutlineWidth)
	assert.Equal(t, pal.TodayOutline, rings[0].Outline)

	// the today ring follows its cell
	for i, c := range scene.Commands {
		if r, ok := c.(RectCommand); ok && !r.Filled {
			prev := scene.Commands[i-1].(RectCommand)
			assert.Equal(t, cell, prev.Bounds)
			assert.Equal(t, pal.Past, prev.Fill)
		}
	}
}

func TestBuildCellColors(t *testing.T) {
	today := date(2026, 6, 15)
	in := Input{
		Year:        2026,
		Today:       today,
		Productive:  models.NewProductiveDays(date(2026, 1, 5)),
		Checkpoints: []models.Checkpoint{{Name: "cp", Date: date(2026, 1, 6)}},
	}
	scene := build(t, in)
	pal := testPalette(t)
	g := DefaultGeometry(1920, 1080, 120)

	fillAt := func(bounds image.Rectangle) RectCommand {
		for _, r := range scene.Rects() {
			if r.Filled && r.Bounds == bounds {
				return r
			}
		}
		t.Fatalf("no cell at %v", bounds)
		return RectCommand{}
	}

	// January 2026 starts on Thursday (column 3)
	jan := g.MonthAnchor(1)
	assert.Equal(t, pal.Past, fillAt(g.CellBounds(jan, 0, 3)).Fill)       // Jan 1
	assert.Equal(t, pal.Productive, fillAt(g.CellBounds(jan, 1, 0)).Fill) // Jan 5
	assert.Equal(t, pal.Checkpoint, fillAt(g.CellBounds(jan, 1, 1)).Fill) // Jan 6
	dec := g.MonthAnchor(12)
	assert.Equal(t, pal.Future, fillAt(g.CellBounds(dec, 0, 1)).Fill) // Dec 1, a Tuesday
	assert.Equal(t, g.CellRadius, fillAt(g.CellBounds(jan, 0, 3)).Radius)
}

func TestBuildTodayOutsideYear(t *testing.T) {
	pal := testPalette(t)

	before := build(t, Input{Year: 2026, Today: date(2025, 12, 31)})
	after := build(t, Input{Year: 2026, Today: date(2027, 1, 1)})

	for _, tc := range []struct {
		scene Scene
		want  string
	}{{before, "future"}, {after, "past"}} {
		rects := tc.scene.Rects()
		assert.Len(t, rects, 365, "no today ring outside the year")
		for _, r := range rects {
			if tc.want == "future" {
				assert.Equal(t, pal.Future, r.Fill)
			} else {
				assert.Equal(t, pal.Past, r.Fill)
			}
		}
	}

	_, ok := before.FindText("0")
	assert.True(t, ok)
	_, ok = after.FindText("365")
	assert.True(t, ok)
	_, ok = after.FindText("0 days remaining")
	assert.True(t, ok)
}

func TestBuildStatsBlock(t *testing.T) {
	scene := build(t, Input{Year: 2026, Today: date(2026, 2, 10)})

	number, ok := scene.FindText("41")
	require.True(t, ok)
	assert.Equal(t, image.Pt(80, 40), number.At)
	assert.Equal(t, FontBig, number.Role)

	label, ok := scene.FindText("days passed")
	require.True(t, ok)
	assert.Equal(t, image.Pt(80+20+12, 58), label.At)

	for text, at := range map[string]image.Point{
		"324 days remaining": image.Pt(80, 120),
		"Ends on 31 Dec 2026": image.Pt(80, 155),
		"Tuesday":             image.Pt(80, 195),
		"10 February 2026":    image.Pt(80, 225),
	} {
		cmd, ok := scene.FindText(text)
		require.True(t, ok, text)
		assert.Equal(t, at, cmd.At, text)
	}
}

func TestBuildMonthLabels(t *testing.T) {
	scene := build(t, Input{Year: 2026, Today: date(2026, 1, 1)})
	g := DefaultGeometry(1920, 1080, 120)

	may, ok := scene.FindText("May")
	require.True(t, ok)
	assert.Equal(t, image.Pt(g.MonthAnchor(5).X, g.MonthAnchor(5).Y-30), may.At)
	assert.Equal(t, FontMonth, may.Role)
}

func TestBuildPanel(t *testing.T) {
	today := date(2026, 5, 10)
	g := DefaultGeometry(1920, 1080, 120)
	origin := g.PanelOrigin()

	t.Run("absent without checkpoints", func(t *testing.T) {
		scene := build(t, Input{Year: 2026, Today: today})
		_, ok := scene.FindText("Checkpoints")
		assert.False(t, ok)
	})

	t.Run("title only when all are past", func(t *testing.T) {
		scene := build(t, Input{Year: 2026, Today: today, Checkpoints: []models.Checkpoint{{Name: "old", Date: date(2026, 1, 1)}}})
		title, ok := scene.FindText("Checkpoints")
		require.True(t, ok)
		assert.Equal(t, image.Pt(origin.X, origin.Y-48), title.At)
		_, ok = scene.FindText("old")
		assert.False(t, ok)
	})

	t.Run("rows sorted by date with labels", func(t *testing.T) {
		cps := []models.Checkpoint{
			{Name: "Week out", Date: date(2026, 5, 17)},
			{Name: "Now", Date: today},
			{Name: "Gone", Date: date(2026, 5, 9)},
			{Name: "Next", Date: date(2026, 5, 11)},
		}
		scene := build(t, Input{Year: 2026, Today: today, Checkpoints: cps})

		want := []struct {
			name, label string
		}{{"Now", "Today"}, {"Next", "Tomorrow"}, {"Week out", "7 days left"}}
		for i, w := range want {
			name, ok := scene.FindText(w.name)
			require.True(t, ok, w.name)
			assert.Equal(t, image.Pt(origin.X, origin.Y+i*78), name.At)
			assert.Equal(t, FontMid, name.Role)

			label, ok := scene.FindText(w.label)
			require.True(t, ok, w.label)
			assert.Equal(t, image.Pt(origin.X, origin.Y+i*78+30), label.At)
			assert.Equal(t, FontSmall, label.Role)
		}
		_, ok := scene.FindText("Gone")
		assert.False(t, ok)
	})

	t.Run("same date listed twice, one cell color", func(t *testing.T) {
		cps := []models.Checkpoint{
			{Name: "Alpha", Date: date(2026, 6, 1)},
			{Name: "Beta", Date: date(2026, 6, 1)},
		}
		scene := build(t, Input{Year: 2026, Today: today, Checkpoints: cps})
		alpha, ok := scene.FindText("Alpha")
		require.True(t, ok)
		beta, ok := scene.FindText("Beta")
		require.True(t, ok)
		assert.Equal(t, alpha.At.Y+78, beta.At.Y)
	})
}

func TestBuildFooterNote(t *testing.T) {
	scene := build(t, Input{Year: 2026, Today: date(2026, 1, 1), Note: "KEEP GOING"})
	note, ok := scene.FindText("KEEP GOING")
	require.True(t, ok)
	assert.Equal(t, image.Pt(80, 1080-120-60), note.At)

	empty := build(t, Input{Year: 2026, Today: date(2026, 1, 1)})
	assert.Len(t, empty.Texts(), len(scene.Texts())-1)
}

func TestBuildIsDeterministic(t *testing.T) {
	in := Input{
		Year:        2026,
		Today:       date(2026, 7, 4),
		Productive:  models.NewProductiveDays(date(2026, 7, 1), date(2026, 7, 2)),
		Checkpoints: []models.Checkpoint{{Name: "a", Date: date(2026, 9, 1)}},
		Note:        "n",
	}
	first := build(t, in)
	second := build(t, in)

	assert.Equal(t, first, second)
	assert.Equal(t, 1920, first.Width)
	assert.Equal(t, 1080, first.Height)
	assert.Equal(t, testPalette(t).Background, first.Background)
}
