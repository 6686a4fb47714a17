package render

import (
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// blurExtent is the kernel reach in standard deviations, matches imaging's kernel radius
const blurExtent = 3.0

// blurSigmaPerPixel is the smallest sigma, in scratch pixels, a downsampled blur keeps
const blurSigmaPerPixel = 8.0

// Raster is a software Context backed by an RGBA image
// Fills under an active blur are rendered to a scratch layer, blurred and composited source-over
type Raster struct {
	dc     *gg.Context
	sx, sy float64
	blur   float64
}

// NewRaster creates a transparent raster of the given device size
func NewRaster(width, height int) *Raster {
	r := &Raster{}
	r.Reset(width, height)
	return r
}

// Reset reallocates the pixel buffer and drops transform and filter state
func (r *Raster) Reset(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	r.dc = gg.NewContext(width, height)
	r.sx, r.sy = 1, 1
	r.blur = 0
}

// Image returns the backing pixel buffer, premultiplied
func (r *Raster) Image() *image.RGBA {
	return r.dc.Image().(*image.RGBA)
}

// Transform returns the current scale factors
func (r *Raster) Transform() (sx, sy float64) {
	return r.sx, r.sy
}

// Blur returns the active blur radius in logical units
func (r *Raster) Blur() float64 {
	return r.blur
}

func (r *Raster) Scale(sx, sy float64) {
	r.sx *= sx
	r.sy *= sy
}

func (r *Raster) ClearRect(x, y, w, h float64) {
	rect := image.Rect(
		int(math.Floor(x*r.sx)), int(math.Floor(y*r.sy)),
		int(math.Ceil((x+w)*r.sx)), int(math.Ceil((y+h)*r.sy)),
	)
	img := r.Image()
	draw.Draw(img, rect.Intersect(img.Bounds()), image.Transparent, image.Point{}, draw.Src)
}

func (r *Raster) SetBlur(radius float64) {
	if radius < 0 {
		radius = 0
	}
	r.blur = radius
}

// FillCircle draws in device space; radii and blur scale with the horizontal factor
func (r *Raster) FillCircle(x, y, radius float64, g RadialGradient) {
	if radius <= 0 {
		return
	}
	cx, cy, cr := x*r.sx, y*r.sy, radius*r.sx
	sigma := r.blur * r.sx

	if sigma <= 0 {
		r.dc.SetFillStyle(pattern(g, r.sx, r.sy, 0, 0))
		r.dc.DrawCircle(cx, cy, cr)
		r.dc.Fill()
		return
	}

	r.fillBlurred(cx, cy, cr, sigma, g, blurScale(sigma))
}

// blurScale returns the downsampling factor for a blur of sigma device pixels
func blurScale(sigma float64) int {
	return max(int(sigma/blurSigmaPerPixel), 1)
}

// fillBlurred renders the circle on a scratch layer k times smaller than device space,
// blurs it there and scales it back up before compositing
func (r *Raster) fillBlurred(cx, cy, cr, sigma float64, g RadialGradient, k int) {
	// Scratch layer covers the circle plus the blur tail so nothing is cut before blurring
	margin := math.Ceil(sigma * blurExtent)
	box := image.Rect(
		int(math.Floor(cx-cr-margin)), int(math.Floor(cy-cr-margin)),
		int(math.Ceil(cx+cr+margin)), int(math.Ceil(cy+cr+margin)),
	)
	if box.Intersect(r.Image().Bounds()).Empty() {
		return
	}

	// Round the box up to whole scratch pixels
	w, h := (box.Dx()+k-1)/k, (box.Dy()+k-1)/k
	box.Max = box.Min.Add(image.Pt(w*k, h*k))

	f := float64(k)
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	layer := gg.NewContext(w, h)
	layer.SetFillStyle(pattern(g, r.sx/f, r.sy/f, ox/f, oy/f))
	layer.DrawCircle((cx-ox)/f, (cy-oy)/f, cr/f)
	layer.Fill()

	var blurred image.Image = imaging.Blur(layer.Image(), sigma/f)
	if k > 1 {
		blurred = imaging.Resize(blurred, box.Dx(), box.Dy(), imaging.Linear)
	}
	r.dc.DrawImage(blurred, box.Min.X, box.Min.Y)
}

// pattern maps a logical gradient into device space shifted by (ox, oy)
func pattern(g RadialGradient, sx, sy, ox, oy float64) gg.Gradient {
	cx, cy := g.X*sx-ox, g.Y*sy-oy
	grad := gg.NewRadialGradient(cx, cy, 0, cx, cy, g.Radius*sx)
	for _, s := range g.Stops {
		grad.AddColorStop(s.Offset, s.Color.NRGBA())
	}
	return grad
}
