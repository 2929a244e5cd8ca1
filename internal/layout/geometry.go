package layout

import "image"

// Geometry holds the fixed layout constants, in pixels.
type Geometry struct {
	Width       int
	Height      int
	TaskbarSafe int

	Box         int
	Gap         int
	CellRadius  int
	TodayRadius int
	TodayRing   int // outline width, also how far the ring extends past the cell

	TopMargin  int
	SideMargin int
	MonthGapX  int
	MonthGapY  int
	MonthCols  int
	MonthRows  int
	WeekRows   int

	MonthLabelOffset int

	PanelOffsetX     int
	PanelTopOffset   int
	PanelTitleOffset int
	PanelRowHeight   int
	PanelLabelOffset int

	FooterOffset int
}

func DefaultGeometry(width, height, taskbarSafe int) Geometry {
	return Geometry{
		Width:       width,
		Height:      height,
		TaskbarSafe: taskbarSafe,

		Box:         26,
		Gap:         6,
		CellRadius:  6,
		TodayRadius: 8,
		TodayRing:   2,

		TopMargin:  200,
		SideMargin: 80,
		MonthGapX:  40,
		MonthGapY:  70,
		MonthCols:  4,
		MonthRows:  3,
		WeekRows:   6,

		MonthLabelOffset: 30,

		PanelOffsetX:     80,
		PanelTopOffset:   10,
		PanelTitleOffset: 48,
		PanelRowHeight:   78,
		PanelLabelOffset: 30,

		FooterOffset: 60,
	}
}

func (g Geometry) MonthWidth() int {
	return 7*g.Box + 6*g.Gap
}

func (g Geometry) MonthHeight() int {
	return g.WeekRows*g.Box + (g.WeekRows-1)*g.Gap
}

// GridWidth is the width of all month columns plus the gaps between them.
func (g Geometry) GridWidth() int {
	return g.MonthCols*g.MonthWidth() + (g.MonthCols-1)*g.MonthGapX
}

// Origin is the top-left of the month grid, centred horizontally.
func (g Geometry) Origin() image.Point {
	return image.Pt((g.Width-g.GridWidth())/2, g.TopMargin)
}

// GridPosition returns the zero-based row and column of month m (1..12).
func (g Geometry) GridPosition(m int) (row, col int) {
	return (m - 1) / g.MonthCols, (m - 1) % g.MonthCols
}

// MonthAnchor returns the top-left corner of month m (1..12).
func (g Geometry) MonthAnchor(m int) image.Point {
	row, col := g.GridPosition(m)
	o := g.Origin()
	return image.Pt(
		o.X+col*(g.MonthWidth()+g.MonthGapX),
		o.Y+row*(g.MonthHeight()+g.MonthGapY),
	)
}

// CellBounds returns the box of the cell at week row w and weekday column d
// of the month anchored at a.
func (g Geometry) CellBounds(a image.Point, w, d int) image.Rectangle {
	x1 := a.X + d*(g.Box+g.Gap)
	y1 := a.Y + w*(g.Box+g.Gap)
	return image.Rect(x1, y1, x1+g.Box, y1+g.Box)
}

// PanelOrigin is where the first checkpoint row of the side panel starts.
func (g Geometry) PanelOrigin() image.Point {
	o := g.Origin()
	return image.Pt(o.X+g.GridWidth()+g.PanelOffsetX, g.TopMargin+g.PanelTopOffset)
}
