package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/julianstephens/yeargrid/internal/layout"
)

// Renderer draws a layout.Scene onto a bitmap.
type Renderer struct {
	fonts *FontSet
}

func New(fonts *FontSet) *Renderer {
	return &Renderer{fonts: fonts}
}

// TextWidth implements layout.Measurer with the renderer's own faces, so
// measured and drawn text agree.
func (r *Renderer) TextWidth(role layout.FontRole, s string) int {
	return r.fonts.TextWidth(role, s)
}

// Draw paints the scene in command order.
func (r *Renderer) Draw(scene layout.Scene) *image.NRGBA {
	img := imaging.New(scene.Width, scene.Height, scene.Background)
	for _, cmd := range scene.Commands {
		switch c := cmd.(type) {
		case layout.RectCommand:
			if c.Filled {
				fillRoundedRect(img, c.Bounds, c.Radius, c.Fill)
			}
			if c.OutlineWidth > 0 {
				strokeRoundedRect(img, c.Bounds, c.Radius, c.OutlineWidth, c.Outline)
			}
		case layout.TextCommand:
			r.drawText(img, c)
		}
	}
	return img
}

// Render draws the scene and saves it to path; the format follows the file
// extension.
func (r *Renderer) Render(scene layout.Scene, path string) error {
	img := r.Draw(scene)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save wallpaper: %w", err)
	}
	return nil
}

// drawText converts the top-left anchor into a baseline using the face ascent.
func (r *Renderer) drawText(dst draw.Image, c layout.TextCommand) {
	face := r.fonts.Face(c.Role)
	ascent := face.Metrics().Ascent
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.Color),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(c.At.X), Y: fixed.I(c.At.Y) + ascent},
	}
	d.DrawString(c.Text)
}

// kappa places cubic control points for a quarter-circle arc
const kappa = 0.5522847

type point struct{ x, y float32 }

// cubic is one Bézier segment from the previous end point to to.
type cubic struct{ c1, c2, to point }

// path is a closed outline starting at start.
type path struct {
	start point
	segs  []cubic
}

// roundedRectPath traces b clockwise (y down) with corner radius r.
func roundedRectPath(b image.Rectangle, r int) path {
	r = max(0, min(r, b.Dx()/2, b.Dy()/2))
	x0, y0 := float32(b.Min.X), float32(b.Min.Y)
	x1, y1 := float32(b.Max.X), float32(b.Max.Y)
	rf := float32(r)
	k := rf * kappa

	line := func(p point) cubic { return cubic{c1: p, c2: p, to: p} }
	p := path{start: point{x0 + rf, y0}}
	p.segs = append(p.segs,
		line(point{x1 - rf, y0}),
		cubic{point{x1 - rf + k, y0}, point{x1, y0 + rf - k}, point{x1, y0 + rf}},
		line(point{x1, y1 - rf}),
		cubic{point{x1, y1 - rf + k}, point{x1 - rf + k, y1}, point{x1 - rf, y1}},
		line(point{x0 + rf, y1}),
		cubic{point{x0 + rf - k, y1}, point{x0, y1 - rf + k}, point{x0, y1 - rf}},
		line(point{x0, y0 + rf}),
		cubic{point{x0, y0 + rf - k}, point{x0 + rf - k, y0}, point{x0 + rf, y0}},
	)
	return p
}

// reversed walks the same outline the other way round. Opposite windings
// cancel in the rasterizer, which is what cuts the hole of a ring.
func (p path) reversed() path {
	out := path{start: p.start}
	if len(p.segs) == 0 {
		return out
	}
	out.start = p.segs[len(p.segs)-1].to
	for i := len(p.segs) - 1; i >= 0; i-- {
		from := p.start
		if i > 0 {
			from = p.segs[i-1].to
		}
		s := p.segs[i]
		out.segs = append(out.segs, cubic{c1: s.c2, c2: s.c1, to: from})
	}
	return out
}

// fill rasterizes paths lying within area and composites c over dst. The mask
// gets one spare column and row so edges on area.Max stay inside it.
func fill(dst draw.Image, area image.Rectangle, c color.Color, paths ...path) {
	if area.Empty() {
		return
	}
	area.Max = area.Max.Add(image.Pt(1, 1))
	z := vector.NewRasterizer(area.Dx(), area.Dy())
	z.DrawOp = draw.Over
	ox, oy := float32(area.Min.X), float32(area.Min.Y)
	for _, p := range paths {
		z.MoveTo(p.start.x-ox, p.start.y-oy)
		for _, s := range p.segs {
			z.CubeTo(s.c1.x-ox, s.c1.y-oy, s.c2.x-ox, s.c2.y-oy, s.to.x-ox, s.to.y-oy)
		}
		z.ClosePath()
	}
	z.Draw(dst, area, image.NewUniform(c), image.Point{})
}

func fillRoundedRect(dst draw.Image, b image.Rectangle, radius int, c color.Color) {
	fill(dst, b, c, roundedRectPath(b, radius))
}

// strokeRoundedRect paints the ring between b and b inset by width.
func strokeRoundedRect(dst draw.Image, b image.Rectangle, radius, width int, c color.Color) {
	inner := b.Inset(width)
	if inner.Empty() {
		fillRoundedRect(dst, b, radius, c)
		return
	}
	fill(dst, b, c,
		roundedRectPath(b, radius),
		roundedRectPath(inner, max(0, radius-width)).reversed(),
	)
}
