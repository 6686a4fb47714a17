package render

import (
	"image"
	"image/draw"
	"io"
	"math"

	"github.com/fogleman/gg"
)

// Offscreen is a headless drawable surface with a fixed layout box
// Each Present snapshots the raster so callers can read back whole frames
type Offscreen struct {
	width, height float64
	ratio         float64

	raster *Raster
	last   *image.RGBA
	frames int
}

// NewOffscreen creates a surface of width x height logical pixels at the given pixel ratio
func NewOffscreen(width, height, ratio float64) *Offscreen {
	if ratio <= 0 {
		ratio = 1
	}
	return &Offscreen{
		width:  width,
		height: height,
		ratio:  ratio,
		raster: NewRaster(1, 1),
	}
}

// Layout returns the logical size of the surface
func (o *Offscreen) Layout() (width, height float64) {
	return o.width, o.height
}

// SetLayout changes the logical size, as a viewport resize would
func (o *Offscreen) SetLayout(width, height float64) {
	o.width, o.height = width, height
}

func (o *Offscreen) PixelRatio() float64 {
	return o.ratio
}

func (o *Offscreen) SetPixelSize(width, height int) {
	o.raster.Reset(width, height)
}

func (o *Offscreen) Context() Context {
	return o.raster
}

// Raster exposes the live drawing buffer
func (o *Offscreen) Raster() *Raster {
	return o.raster
}

// Present snapshots the current raster
func (o *Offscreen) Present() {
	src := o.raster.Image()
	if o.last == nil || o.last.Bounds() != src.Bounds() {
		o.last = image.NewRGBA(src.Bounds())
	}
	copy(o.last.Pix, src.Pix)
	o.frames++
}

// Frames returns how many times Present was called
func (o *Offscreen) Frames() int {
	return o.frames
}

// Snapshot returns the last presented frame, nil before the first Present
func (o *Offscreen) Snapshot() *image.RGBA {
	return o.last
}

// Flatten composites the last frame onto an opaque background
func (o *Offscreen) Flatten(bg RGB) *image.RGBA {
	src := o.last
	if src == nil {
		src = o.raster.Image()
	}
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), image.NewUniform(RGBA{RGB: bg, A: 1}.NRGBA()), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Over)
	return dst
}

// EncodePNG writes the flattened last frame as PNG
func (o *Offscreen) EncodePNG(w io.Writer, bg RGB) error {
	return gg.NewContextForRGBA(o.Flatten(bg)).EncodePNG(w)
}

// DeviceSize returns the pixel size a surface of this layout and ratio resolves to
func DeviceSize(width, height, ratio float64) (int, int) {
	return int(math.Floor(width * ratio)), int(math.Floor(height * ratio))
}
