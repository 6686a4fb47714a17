package render

// Context is a 2D drawing target with canvas semantics
// Coordinates are in logical units; Scale maps them to device pixels
type Context interface {
	// Scale multiplies the current transform
	Scale(sx, sy float64)

	// ClearRect resets the covered pixels to transparent
	ClearRect(x, y, w, h float64)

	// SetBlur sets the Gaussian blur radius applied to subsequent fills, 0 disables
	SetBlur(radius float64)

	// FillCircle fills a circle with a radial gradient
	FillCircle(x, y, radius float64, g RadialGradient)
}

// ColorStop is one gradient stop; Offset is in [0, 1]
type ColorStop struct {
	Offset float64
	Color  RGBA
}

// RadialGradient runs from the center (radius 0) to Radius
type RadialGradient struct {
	X, Y   float64
	Radius float64
	Stops  []ColorStop
}
