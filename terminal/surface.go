package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wallcal/render"
)

// Logical pixels per terminal cell
// 96 columns and up lay out as a wide viewport
const (
	CellWidth  = 8
	CellHeight = 16
)

// DefaultSupersample renders two device columns per cell
const DefaultSupersample = 2

// Surface maps the animator's drawing surface onto the cell grid of a screen
// One device pixel column per cell at supersample 1, more are averaged down
type Surface struct {
	mu sync.Mutex

	screen      tcell.Screen
	background  render.RGB
	supersample int
	raster      *render.Raster
}

// NewSurface creates a surface over screen; supersample <= 0 uses DefaultSupersample
func NewSurface(screen tcell.Screen, background render.RGB, supersample int) *Surface {
	if supersample <= 0 {
		supersample = DefaultSupersample
	}
	return &Surface{
		screen:      screen,
		background:  background,
		supersample: supersample,
		raster:      render.NewRaster(1, 1),
	}
}

// Layout returns the screen size in logical pixels
func (s *Surface) Layout() (width, height float64) {
	cols, rows := s.screen.Size()
	return float64(cols * CellWidth), float64(rows * CellHeight)
}

// PixelRatio maps a cell's logical width onto Supersample device pixels
func (s *Surface) PixelRatio() float64 {
	return float64(s.supersample) / CellWidth
}

func (s *Surface) SetPixelSize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raster.Reset(width, height)
}

func (s *Surface) Context() render.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raster
}

// Present converts the raster to half-block cells and shows them
func (s *Surface) Present() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cols, rows := s.screen.Size()
	cells := render.Cells(s.raster.Image(), cols, rows, s.background)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := cells[y*cols+x]
			s.screen.SetContent(x, y, c.Rune, nil, cellStyle(c))
		}
	}
	s.screen.Show()
}

func cellStyle(c render.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(rgbColor(c.Fg)).
		Background(rgbColor(c.Bg))
}

func rgbColor(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
