package blobfield

import "github.com/lixenwraith/wallcal/render"

// Gradient returns the soft-light fill for a blob: full opacity at the center,
// half at the mid stop, transparent at the rim
func (b *Blob) Gradient() render.RadialGradient {
	return render.RadialGradient{
		X:      b.X,
		Y:      b.Y,
		Radius: b.DrawRadius(),
		Stops: []render.ColorStop{
			{Offset: 0, Color: b.Color.WithAlpha(b.Opacity)},
			{Offset: MidStop, Color: b.Color.WithAlpha(b.Opacity * MidStopFade)},
			{Offset: 1, Color: render.Transparent},
		},
	}
}

// DrawFrame clears the viewport and paints the blobs in slice order under the blur filter
// The filter is reset on return, also when a fill panics
func DrawFrame(ctx render.Context, blobs []Blob, width, height float64) {
	ctx.ClearRect(0, 0, width, height)

	ctx.SetBlur(BlurRadius)
	defer ctx.SetBlur(0)

	for i := range blobs {
		b := &blobs[i]
		ctx.FillCircle(b.X, b.Y, b.DrawRadius(), b.Gradient())
	}
}
