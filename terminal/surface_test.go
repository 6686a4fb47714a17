package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wallcal/render"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func solid(c render.RGB) render.RadialGradient {
	return render.RadialGradient{
		Radius: 1000,
		Stops: []render.ColorStop{
			{Offset: 0, Color: c.WithAlpha(1)},
			{Offset: 1, Color: c.WithAlpha(1)},
		},
	}
}

func TestSurface_Layout(t *testing.T) {
	screen := newSimScreen(t, 120, 40)
	s := NewSurface(screen, render.RGBBlack, 0)

	w, h := s.Layout()
	if w != 960 || h != 640 {
		t.Errorf("Expected 960x640 logical pixels, got %vx%v", w, h)
	}
	if s.PixelRatio() != 0.25 {
		t.Errorf("Expected default ratio 0.25, got %v", s.PixelRatio())
	}

	// Device size lands on cols*supersample by rows*2*supersample
	dw, dh := render.DeviceSize(w, h, s.PixelRatio())
	if dw != 240 || dh != 160 {
		t.Errorf("Expected 240x160 device pixels, got %dx%d", dw, dh)
	}
}

func TestSurface_PresentBackground(t *testing.T) {
	screen := newSimScreen(t, 4, 3)
	bg := render.RGB{R: 24, G: 24, B: 24}
	s := NewSurface(screen, bg, 1)
	s.SetPixelSize(4, 6)

	s.Present()

	want := tcell.NewRGBColor(24, 24, 24)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			r, _, style, _ := screen.GetContent(x, y)
			fg, bgc, _ := style.Decompose()
			if r != render.HalfBlock || fg != want || bgc != want {
				t.Errorf("cell (%d,%d): got %q fg=%v bg=%v", x, y, r, fg, bgc)
			}
		}
	}
}

func TestSurface_PresentPaintsCells(t *testing.T) {
	screen := newSimScreen(t, 4, 3)
	s := NewSurface(screen, render.RGBBlack, 2)
	s.SetPixelSize(8, 12)

	red := render.RGB{R: 255}
	g := solid(red)
	g.X, g.Y = 4, 6
	s.Context().FillCircle(4, 6, 1000, g)
	s.Present()

	want := tcell.NewRGBColor(255, 0, 0)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			_, _, style, _ := screen.GetContent(x, y)
			fg, bgc, _ := style.Decompose()
			if fg != want || bgc != want {
				t.Errorf("cell (%d,%d): expected red, got fg=%v bg=%v", x, y, fg, bgc)
			}
		}
	}
}
