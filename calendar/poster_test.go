package calendar

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/lixenwraith/wallcal/render"
)

func rgbAt(img image.Image, x, y int) render.RGB {
	r, g, b, _ := img.At(x, y).RGBA()
	return render.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{14, 7, 2},
		{13, 7, 1},
		{0, 7, 0},
		{-1, 7, -1},
		{-7, 7, -1},
		{-8, 7, -2},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFitGrid_HoldsAllCells(t *testing.T) {
	sizes := [][2]int{{1179, 2556}, {500, 500}, {2000, 300}, {100, 100}}
	for _, sz := range sizes {
		for _, n := range []int{1, 10, 92, 365, 366, 3650} {
			g := fitGrid(sz[0], sz[1], n)
			if g.cols*g.rows < n {
				t.Errorf("%v n=%d: %dx%d grid holds fewer cells", sz, n, g.cols, g.rows)
			}
			if g.offX < 0 || g.offY < 0 {
				t.Errorf("%v n=%d: grid overflows image (offset %v, %v)", sz, n, g.offX, g.offY)
			}
		}
	}
}

func TestRender_Life(t *testing.T) {
	req := Request{Kind: KindLife, Width: 520, Height: 1000, Birth: Date{2000, 1, 1}, Lifespan: 50}
	poster, err := Render(req, Date{2000, 1, 15}, DefaultPalette)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	img := poster.Image()

	if b := img.Bounds(); b.Dx() != 520 || b.Dy() != 1000 {
		t.Fatalf("Expected 520x1000, got %v", b)
	}

	// cell 8.4px from x=41.6, first row centered at y=294.2
	cases := []struct {
		name string
		x, y int
		want render.RGB
	}{
		{"Background", 5, 5, DefaultPalette.Background},
		{"Week 0 lived", 45, 294, DefaultPalette.Lived},
		{"Week 1 lived", 54, 294, DefaultPalette.Lived},
		{"Week 2 current", 62, 294, DefaultPalette.Current},
		{"Week 3 future", 71, 294, DefaultPalette.Future},
		{"Last row future", 45, 705, DefaultPalette.Future},
	}
	for _, c := range cases {
		if got := rgbAt(img, c.x, c.y); got != c.want {
			t.Errorf("%s: pixel (%d,%d) = %v, want %v", c.name, c.x, c.y, got, c.want)
		}
	}
}

func TestRender_LifeBeforeBirth(t *testing.T) {
	req := Request{Kind: KindLife, Width: 520, Height: 1000, Birth: Date{2030, 1, 1}, Lifespan: 50}
	poster, err := Render(req, Date{2029, 12, 31}, DefaultPalette)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := rgbAt(poster.Image(), 45, 294); got != DefaultPalette.Future {
		t.Errorf("Expected first week in the future, got %v", got)
	}
}

func TestRender_Goal(t *testing.T) {
	req := Request{
		Kind: KindGoal, Width: 400, Height: 600,
		Goal: "Ship it", Start: Date{2025, 1, 1}, Deadline: Date{2025, 1, 10},
	}
	poster, err := Render(req, Date{2025, 1, 4}, DefaultPalette)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	img := poster.Image()

	// 3x4 grid of 112px cells from (32, 76)
	cases := []struct {
		name string
		x, y int
		want render.RGB
	}{
		{"Day 0 lived", 88, 132, DefaultPalette.Lived},
		{"Day 2 lived", 312, 132, DefaultPalette.Lived},
		{"Day 3 current", 88, 244, DefaultPalette.Current},
		{"Day 4 future", 200, 244, DefaultPalette.Future},
		{"Day 9 future", 88, 468, DefaultPalette.Future},
		{"Unused cell", 200, 468, DefaultPalette.Background},
	}
	for _, c := range cases {
		if got := rgbAt(img, c.x, c.y); got != c.want {
			t.Errorf("%s: pixel (%d,%d) = %v, want %v", c.name, c.x, c.y, got, c.want)
		}
	}

	labelled := false
	for y := 570; y < 596 && !labelled; y++ {
		for x := 0; x < 400; x++ {
			if rgbAt(img, x, y) != DefaultPalette.Background {
				labelled = true
				break
			}
		}
	}
	if !labelled {
		t.Error("Expected goal label in the bottom margin")
	}
}

func TestRender_YearEncodes(t *testing.T) {
	req := Request{Kind: KindYear, Width: 300, Height: 600}
	poster, err := Render(req, Date{2024, 12, 31}, DefaultPalette)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var buf bytes.Buffer
	if err := poster.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	g := fitGrid(300, 600, 366)
	x, y := g.origin(365)
	cx, cy := int(x+g.dot/2), int(y+g.dot/2)
	if got := rgbAt(img, cx, cy); got != DefaultPalette.Current {
		t.Errorf("Expected Dec 31 of a leap year to be current, got %v", got)
	}
	x, y = g.origin(0)
	if got := rgbAt(img, int(x+g.dot/2), int(y+g.dot/2)); got != DefaultPalette.Lived {
		t.Errorf("Expected Jan 1 lived, got %v", got)
	}
}

func TestRender_RejectsUnknownKind(t *testing.T) {
	if _, err := Render(Request{Kind: "decade", Width: 100, Height: 100}, Date{2025, 1, 1}, DefaultPalette); err == nil {
		t.Error("Expected error for unknown kind")
	}
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette("", "#f0c", "", "#00ff80")
	if err != nil {
		t.Fatalf("ParsePalette failed: %v", err)
	}
	if p.Lived != (render.RGB{R: 255, G: 0, B: 204}) {
		t.Errorf("Expected short hex to expand, got %v", p.Lived)
	}
	if p.Current != (render.RGB{R: 0, G: 255, B: 128}) {
		t.Errorf("Expected #00ff80, got %v", p.Current)
	}
	if p.Background != DefaultPalette.Background || p.Future != DefaultPalette.Future {
		t.Error("Expected empty entries to keep defaults")
	}

	if _, err := ParsePalette("navy", "", "", ""); err == nil {
		t.Error("Expected error for non-hex color")
	}
}
