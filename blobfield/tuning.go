package blobfield

import "math"

// Clock
const (
	TimeStep = 0.001 // clock advance per frame, independent of wall time
)

// Population
const (
	NarrowViewport  = 768.0 // layout widths below this get the reduced population
	NarrowBlobCount = 3
	WideBlobCount   = 5
)

// Seeding ranges, [min, max)
const (
	RadiusMin    = 200.0
	RadiusMax    = 400.0
	SpeedMin     = -0.3
	SpeedMax     = 0.3
	FrequencyMin = 0.001
	FrequencyMax = 0.003
	OpacityMin   = 0.08
	OpacityMax   = 0.15
	PhaseMax     = 2 * math.Pi
)

// Motion
const (
	OrbitAmplitude     = 150.0 // periodic displacement around the anchor
	WobbleAmplitude    = 50.0  // noise displacement
	MorphAmplitude     = 50.0  // radius oscillation
	NoiseScale         = 0.01
	NoiseDecorrelation = 100.0 // time offset between the x and y noise samples
	WrapMargin         = 0.5   // fraction of radius a blob travels past an edge before wrapping
)

// Rendering
const (
	BlurRadius  = 100.0
	MidStop     = 0.5
	MidStopFade = 0.5 // opacity multiplier at the mid stop
)
