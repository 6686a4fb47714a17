package blobfield

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/wallcal/frame"
	"github.com/lixenwraith/wallcal/render"
)

// SnapshotOptions describes a headless render of the field
type SnapshotOptions struct {
	Width, Height float64
	PixelRatio    float64
	Frames        int    // frames drawn, at least one
	Seed          uint64 // 0 uses the process generator
	Static        bool   // draw the reduced-motion frame
	Logger        *log.Logger
}

// Snapshot seeds a field, advances it the requested number of frames and draws
// only the last one; the returned surface holds that single presented frame
func Snapshot(opts SnapshotOptions) *render.Offscreen {
	surface, _ := snapshot(opts)
	return surface
}

func snapshot(opts SnapshotOptions) (*render.Offscreen, *Animator) {
	surface := render.NewOffscreen(opts.Width, opts.Height, opts.PixelRatio)

	var src Source
	if opts.Seed != 0 {
		src = rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	}

	a := New(Options{
		Surface:       surface,
		Scheduler:     frame.NewManual(time.Unix(0, 0), 0),
		Rand:          src,
		ReducedMotion: opts.Static,
		Logger:        opts.Logger,
	})
	defer a.Stop()

	if opts.Static {
		a.Start()
		return surface, a
	}

	// Intermediate frames are never presented, so only the state advances
	for range max(opts.Frames, 1) {
		a.Update()
	}
	a.Draw()
	return surface, a
}
