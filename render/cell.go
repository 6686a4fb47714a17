package render

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// HalfBlock paints the upper half of a cell with Fg, the lower half shows Bg
const HalfBlock = '▀'

// Cell is one terminal cell carrying two vertically stacked pixels
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Cells maps an image onto a cols x rows half-block grid composited over bg
// Cells are row-major: cells[y*cols + x]
// Images that are not exactly cols x 2*rows are resampled first
func Cells(img *image.RGBA, cols, rows int, bg RGB) []Cell {
	if cols <= 0 || rows <= 0 {
		return nil
	}

	target := image.Rect(0, 0, cols, rows*2)
	src := img
	if img.Bounds() != target {
		src = image.NewRGBA(target)
		xdraw.BiLinear.Scale(src, target, img, img.Bounds(), xdraw.Src, nil)
	}

	cells := make([]Cell, cols*rows)
	for y := 0; y < rows; y++ {
		rowOff := y * cols
		for x := 0; x < cols; x++ {
			cells[rowOff+x] = Cell{
				Rune: HalfBlock,
				Fg:   Over(bg, src.RGBAAt(x, 2*y)),
				Bg:   Over(bg, src.RGBAAt(x, 2*y+1)),
			}
		}
	}
	return cells
}
