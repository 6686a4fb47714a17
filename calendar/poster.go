package calendar

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/wallcal/render"
)

// Grid geometry as fractions
const (
	PaddingX    = 0.08 // of width, each side
	PaddingY    = 0.06 // of height, top and bottom
	GapFraction = 0.15 // of cell
	CornerRatio = 0.2  // of dot
	MinRounded  = 4.0  // dots smaller than this are drawn square
	WeeksPerRow = 52
)

// grid lays out cols x rows square cells centered in the image
type grid struct {
	cols, rows int
	cell, gap  float64
	dot        float64
	offX, offY float64
}

func newGrid(w, h, cols, rows int) grid {
	gw := float64(w) - 2*float64(w)*PaddingX
	gh := float64(h) - 2*float64(h)*PaddingY
	cell := math.Min(gw/float64(cols), gh/float64(rows))
	gap := cell * GapFraction
	return grid{
		cols: cols,
		rows: rows,
		cell: cell,
		gap:  gap,
		dot:  cell - gap,
		offX: (float64(w) - float64(cols)*cell) / 2,
		offY: (float64(h) - float64(rows)*cell) / 2,
	}
}

// fitGrid picks a column count so n cells fill the padded area as squarely as possible
func fitGrid(w, h, n int) grid {
	if n < 1 {
		n = 1
	}
	gw := float64(w) * (1 - 2*PaddingX)
	gh := float64(h) * (1 - 2*PaddingY)
	cols := int(math.Ceil(math.Sqrt(float64(n) * gw / gh)))
	cols = clampInt(cols, 1, n)
	rows := (n + cols - 1) / cols
	return newGrid(w, h, cols, rows)
}

// origin returns the top-left corner of the dot for cell i
func (g grid) origin(i int) (float64, float64) {
	col, row := i%g.cols, i/g.cols
	return g.offX + float64(col)*g.cell + g.gap/2,
		g.offY + float64(row)*g.cell + g.gap/2
}

// Poster is a rendered calendar
type Poster struct {
	dc *gg.Context
}

// Image returns the poster pixels
func (p *Poster) Image() image.Image {
	return p.dc.Image()
}

// EncodePNG writes the poster as PNG
func (p *Poster) EncodePNG(w io.Writer) error {
	return p.dc.EncodePNG(w)
}

// Render draws the poster for req as of today
func Render(req Request, today Date, pal Palette) (*Poster, error) {
	if req.Width < 1 || req.Height < 1 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidParam, req.Width, req.Height)
	}

	dc := gg.NewContext(req.Width, req.Height)
	dc.SetColor(opaque(pal.Background))
	dc.Clear()

	switch req.Kind {
	case KindLife:
		lived := floorDiv(req.Birth.DaysUntil(today), 7)
		drawDots(dc, newGrid(req.Width, req.Height, WeeksPerRow, req.Lifespan), WeeksPerRow*req.Lifespan, lived, pal)

	case KindYear:
		first := Date{Year: today.Year, Month: 1, Day: 1}
		days := first.DaysUntil(Date{Year: today.Year + 1, Month: 1, Day: 1})
		drawDots(dc, fitGrid(req.Width, req.Height, days), days, first.DaysUntil(today), pal)

	case KindGoal:
		days := req.Start.DaysUntil(req.Deadline) + 1
		drawDots(dc, fitGrid(req.Width, req.Height, days), days, req.Start.DaysUntil(today), pal)
		drawLabel(dc, req, today, pal)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}

	return &Poster{dc: dc}, nil
}

// drawDots paints n cells: those before elapsed as lived, elapsed itself as current
func drawDots(dc *gg.Context, g grid, n, elapsed int, pal Palette) {
	for i := 0; i < n; i++ {
		fill := pal.Future
		switch {
		case i < elapsed:
			fill = pal.Lived
		case i == elapsed:
			fill = pal.Current
		}
		x, y := g.origin(i)
		dc.SetColor(opaque(fill))
		if g.dot < MinRounded {
			dc.DrawRectangle(x, y, g.dot, g.dot)
		} else {
			dc.DrawRoundedRectangle(x, y, g.dot, g.dot, g.dot*CornerRatio)
		}
		dc.Fill()
	}
}

// drawLabel writes the goal name and remaining days into the bottom padding
func drawLabel(dc *gg.Context, req Request, today Date, pal Palette) {
	left := max(today.DaysUntil(req.Deadline), 0)
	label := fmt.Sprintf("%s: %d days left", req.Goal, left)

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(opaque(pal.Lived))
	pad := float64(req.Height) * PaddingY
	dc.DrawStringAnchored(label, float64(req.Width)/2, float64(req.Height)-pad/2, 0.5, 0.5)
}

func opaque(c render.RGB) color.Color {
	return c.WithAlpha(1).NRGBA()
}

// floorDiv rounds toward negative infinity so a future birth date yields negative weeks
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
