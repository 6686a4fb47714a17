package calendar

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/wallcal/render"
)

// Palette colors a poster
type Palette struct {
	Background render.RGB
	Lived      render.RGB
	Future     render.RGB
	Current    render.RGB
}

// DefaultPalette is the dark theme of the page
var DefaultPalette = Palette{
	Background: render.RGB{R: 26, G: 26, B: 26},
	Lived:      render.RGB{R: 255, G: 255, B: 255},
	Future:     render.RGB{R: 51, G: 51, B: 51},
	Current:    render.RGB{R: 76, G: 175, B: 80},
}

// ParsePalette overrides DefaultPalette with hex colors; empty strings keep the default
func ParsePalette(background, lived, future, current string) (Palette, error) {
	p := DefaultPalette
	fields := []struct {
		name string
		hex  string
		dst  *render.RGB
	}{
		{"background", background, &p.Background},
		{"lived", lived, &p.Lived},
		{"future", future, &p.Future},
		{"current", current, &p.Current},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := ParseHex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

// ParseHex reads a #rrggbb or #rgb color
func ParseHex(s string) (render.RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return render.RGB{}, err
	}
	r, g, b := c.RGB255()
	return render.RGB{R: r, G: g, B: b}, nil
}
