package blobfield

import (
	"math/rand/v2"

	"github.com/lixenwraith/wallcal/render"
)

// Palette holds the near-white base colors blobs are drawn from
var Palette = [...]render.RGB{
	{R: 255, G: 255, B: 255},
	{R: 220, G: 220, B: 220},
	{R: 200, G: 200, B: 200},
	{R: 180, G: 180, B: 180},
}

// Blob is one soft light particle
// BaseX/BaseY is the anchor that wraps at viewport edges; X/Y oscillates around it
type Blob struct {
	X, Y          float64
	BaseX, BaseY  float64
	Radius        float64
	CurrentRadius float64

	// SpeedX and SpeedY are seeded per blob but no motion term reads them
	SpeedX, SpeedY float64

	Phase     float64
	Frequency float64
	Opacity   float64
	Color     render.RGB
}

// Source supplies uniform floats in [0, 1)
// *rand.Rand from math/rand and math/rand/v2 both satisfy it
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// BlobCount returns the population for a viewport of the given layout width
func BlobCount(width float64) int {
	if width < NarrowViewport {
		return NarrowBlobCount
	}
	return WideBlobCount
}

// Seed creates the blob population for a width x height viewport
// Draw order per blob: x, y, baseX, baseY, radius, speedX, speedY, phase, frequency, opacity, color
func Seed(src Source, width, height float64) []Blob {
	if src == nil {
		src = globalSource{}
	}

	blobs := make([]Blob, BlobCount(width))
	for i := range blobs {
		blobs[i] = Blob{
			X:         src.Float64() * width,
			Y:         src.Float64() * height,
			BaseX:     src.Float64() * width,
			BaseY:     src.Float64() * height,
			Radius:    uniform(src, RadiusMin, RadiusMax),
			SpeedX:    uniform(src, SpeedMin, SpeedMax),
			SpeedY:    uniform(src, SpeedMin, SpeedMax),
			Phase:     src.Float64() * PhaseMax,
			Frequency: uniform(src, FrequencyMin, FrequencyMax),
			Opacity:   uniform(src, OpacityMin, OpacityMax),
			Color:     pick(src),
		}
	}
	return blobs
}

func uniform(src Source, lo, hi float64) float64 {
	return src.Float64()*(hi-lo) + lo
}

func pick(src Source) render.RGB {
	idx := int(src.Float64() * float64(len(Palette)))
	if idx >= len(Palette) {
		idx = len(Palette) - 1
	}
	return Palette[idx]
}
