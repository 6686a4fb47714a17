package render

import (
	"image/color"
	"math"
)

// RGB is an opaque 24-bit color
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// RGBA pairs a color with a straight (non-premultiplied) alpha in [0, 1]
type RGBA struct {
	RGB
	A float64
}

// Transparent is fully transparent black
var Transparent = RGBA{}

// WithAlpha returns c carrying alpha a
func (c RGB) WithAlpha(a float64) RGBA {
	return RGBA{RGB: c, A: a}
}

// NRGBA converts to the image/color non-premultiplied form, clamping alpha
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: clamp(c.A*255.0 + 0.5)}
}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Over composites a premultiplied pixel onto an opaque background
func Over(bg RGB, px color.RGBA) RGB {
	if px.A == 0 {
		return bg
	}
	inv := 1.0 - float64(px.A)/255.0
	return RGB{
		R: clamp(math.Round(float64(px.R) + float64(bg.R)*inv)),
		G: clamp(math.Round(float64(px.G) + float64(bg.G)*inv)),
		B: clamp(math.Round(float64(px.B) + float64(bg.B)*inv)),
	}
}
