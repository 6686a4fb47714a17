package blobfield

import "math"

// Noise is a cheap deterministic stand-in for coherent noise, range [-1, 1]
func Noise(x, y, t float64) float64 {
	return math.Sin(x*NoiseScale+t) * math.Cos(y*NoiseScale+t)
}

// Advance places the blob for clock value t inside a width x height viewport
// Wrapping moves the anchor, not the position, so the orbit continues around the new anchor
func (b *Blob) Advance(t, width, height float64) {
	noiseX := Noise(b.BaseX, b.BaseY, t)
	noiseY := Noise(b.BaseY, b.BaseX, t+NoiseDecorrelation)

	angle := t*b.Frequency + b.Phase
	b.X = b.BaseX + math.Sin(angle)*OrbitAmplitude + noiseX*WobbleAmplitude
	b.Y = b.BaseY + math.Cos(angle)*OrbitAmplitude + noiseY*WobbleAmplitude

	b.CurrentRadius = b.Radius + math.Sin(t*b.Frequency*2)*MorphAmplitude

	margin := b.Radius * WrapMargin
	if b.X < -margin {
		b.BaseX = width + margin
	}
	if b.X > width+margin {
		b.BaseX = -margin
	}
	if b.Y < -margin {
		b.BaseY = height + margin
	}
	if b.Y > height+margin {
		b.BaseY = -margin
	}
}

// DrawRadius is the radius to render with, the nominal one until the first advance
func (b *Blob) DrawRadius() float64 {
	if b.CurrentRadius != 0 {
		return b.CurrentRadius
	}
	return b.Radius
}
