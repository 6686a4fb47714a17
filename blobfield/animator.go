// Package blobfield animates a field of blurred light blobs on a 2D surface.
//
// An Animator owns the blobs and the animation clock. It sizes itself from the
// surface, seeds the blobs once, and then either runs an update/draw loop on a
// frame.Scheduler or, when reduced motion is requested, draws a single static frame.
// Resizing only changes the drawing surface; blob parameters are never reseeded.
package blobfield

import (
	"log"
	"sync"
	"time"

	"github.com/lixenwraith/wallcal/frame"
	"github.com/lixenwraith/wallcal/render"
)

// Surface is the host drawable the animator paints into
type Surface interface {
	// Layout returns the logical size of the surface
	Layout() (width, height float64)

	// PixelRatio returns device pixels per logical pixel
	PixelRatio() float64

	// SetPixelSize reallocates the backing store, resetting context state
	SetPixelSize(width, height int)

	// Context returns the drawing context of the current backing store
	Context() render.Context
}

// Presenter is implemented by surfaces that need an explicit flip after each frame
type Presenter interface {
	Present()
}

// ResizeNotifier delivers viewport resize notifications until detached
type ResizeNotifier interface {
	OnResize(fn func()) (detach func())
}

// Options configures an Animator
type Options struct {
	Surface       Surface         // nil yields an inert animator
	Scheduler     frame.Scheduler // required unless ReducedMotion
	Resize        ResizeNotifier  // optional
	Rand          Source          // nil uses the process-wide generator
	ReducedMotion bool            // read once at construction
	Logger        *log.Logger     // nil uses log.Default()
}

// Animator runs the blob field simulation
// All methods are safe for concurrent use; callbacks are serialized internally
type Animator struct {
	mu sync.Mutex

	surface       Surface
	sched         frame.Scheduler
	logger        *log.Logger
	reducedMotion bool

	blobs  []Blob
	frames uint64
	draws  uint64

	width, height float64
	ratio         float64

	handle  frame.Handle
	detach  func()
	started bool
	stopped bool
}

// New binds an animator to its surface, sizes it and seeds the blobs
// A missing surface is logged and produces an animator whose methods do nothing
func New(opts Options) *Animator {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	a := &Animator{
		surface:       opts.Surface,
		sched:         opts.Scheduler,
		logger:        logger,
		reducedMotion: opts.ReducedMotion,
	}

	if a.surface == nil {
		logger.Printf("blobfield: background surface not found, animation disabled")
		return a
	}

	if a.sched == nil && !a.reducedMotion {
		logger.Printf("blobfield: no frame scheduler, rendering a static frame")
		a.reducedMotion = true
	}

	a.resize()
	a.blobs = Seed(opts.Rand, a.width, a.height)

	if opts.Resize != nil {
		a.detach = opts.Resize.OnResize(a.Resize)
	}

	return a
}

// Start begins the frame loop, or draws the single static frame under reduced motion
// Only the first call has an effect
func (a *Animator) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.surface == nil || a.started || a.stopped {
		return
	}
	a.started = true

	if a.reducedMotion {
		a.guard(a.draw)
		return
	}

	a.guard(a.step)
	a.handle = a.sched.Schedule(a.frame)
}

// Stop cancels the pending frame and detaches from resize notifications
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopped {
		return
	}
	a.stopped = true

	if a.sched != nil && a.handle != 0 {
		a.sched.Cancel(a.handle)
		a.handle = 0
	}
	if a.detach != nil {
		a.detach()
		a.detach = nil
	}
}

// Resize resynchronizes the backing store with the surface layout box
func (a *Animator) Resize() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.surface == nil {
		return
	}
	a.resize()
}

// Update advances the clock one step and moves every blob
func (a *Animator) Update() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.surface == nil {
		return
	}
	a.update()
}

// Draw renders the current state and presents it
func (a *Animator) Draw() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.surface == nil {
		return
	}
	a.draw()
}

// Time returns the animation clock
func (a *Animator) Time() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.clock()
}

// Frames returns the number of updates applied
func (a *Animator) Frames() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frames
}

// Draws returns the number of completed draw passes
func (a *Animator) Draws() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.draws
}

// Blobs returns a copy of the current blob state
func (a *Animator) Blobs() []Blob {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Blob(nil), a.blobs...)
}

// Viewport returns the stored logical size and pixel ratio
func (a *Animator) Viewport() (width, height, ratio float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.width, a.height, a.ratio
}

// Running reports whether frames are being scheduled
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.started && !a.stopped && !a.reducedMotion
}

// clock derives time from the frame count so n updates yield exactly n*TimeStep
func (a *Animator) clock() float64 {
	return float64(a.frames) * TimeStep
}

func (a *Animator) resize() {
	ratio := a.surface.PixelRatio()
	if ratio <= 0 {
		ratio = 1
	}
	width, height := a.surface.Layout()

	a.surface.SetPixelSize(render.DeviceSize(width, height, ratio))
	a.surface.Context().Scale(ratio, ratio)

	a.width, a.height, a.ratio = width, height, ratio
}

func (a *Animator) update() {
	a.frames++
	t := a.clock()
	for i := range a.blobs {
		a.blobs[i].Advance(t, a.width, a.height)
	}
}

func (a *Animator) draw() {
	DrawFrame(a.surface.Context(), a.blobs, a.width, a.height)
	a.draws++
	if p, ok := a.surface.(Presenter); ok {
		p.Present()
	}
}

func (a *Animator) step() {
	a.update()
	a.draw()
}

// frame is the scheduler callback, it re-arms itself even when the frame body fails
func (a *Animator) frame(time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopped {
		return
	}
	a.guard(a.step)
	a.handle = a.sched.Schedule(a.frame)
}

// guard runs fn and logs a panic instead of propagating it
func (a *Animator) guard(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Printf("blobfield: frame %d failed: %v", a.frames, r)
		}
	}()
	fn()
}
