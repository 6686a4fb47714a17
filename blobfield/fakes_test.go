package blobfield

import (
	"github.com/lixenwraith/wallcal/render"
)

// sequence replays a fixed list of draws, cycling when exhausted
type sequence struct {
	vals []float64
	i    int
}

func (s *sequence) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

type call struct {
	op   string
	args []float64
	grad render.RadialGradient
}

// recorder is a render.Context that logs every call
type recorder struct {
	calls     []call
	failFills int // number of upcoming FillCircle calls that panic
}

func (r *recorder) Scale(sx, sy float64) {
	r.calls = append(r.calls, call{op: "scale", args: []float64{sx, sy}})
}

func (r *recorder) ClearRect(x, y, w, h float64) {
	r.calls = append(r.calls, call{op: "clear", args: []float64{x, y, w, h}})
}

func (r *recorder) SetBlur(radius float64) {
	r.calls = append(r.calls, call{op: "blur", args: []float64{radius}})
}

func (r *recorder) FillCircle(x, y, radius float64, g render.RadialGradient) {
	if r.failFills > 0 {
		r.failFills--
		panic("fill failed")
	}
	r.calls = append(r.calls, call{op: "fill", args: []float64{x, y, radius}, grad: g})
}

func (r *recorder) ops(op string) []call {
	var out []call
	for _, c := range r.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

func (r *recorder) reset() {
	r.calls = nil
}

// stubSurface is a Surface with a mutable layout box
type stubSurface struct {
	width, height float64
	ratio         float64

	ctx      *recorder
	pixelW   int
	pixelH   int
	resets   int
	presents int
}

func newStubSurface(width, height, ratio float64) *stubSurface {
	return &stubSurface{width: width, height: height, ratio: ratio, ctx: &recorder{}}
}

func (s *stubSurface) Layout() (float64, float64) { return s.width, s.height }
func (s *stubSurface) PixelRatio() float64        { return s.ratio }
func (s *stubSurface) Context() render.Context    { return s.ctx }
func (s *stubSurface) Present()                   { s.presents++ }

func (s *stubSurface) SetPixelSize(w, h int) {
	s.pixelW, s.pixelH = w, h
	s.resets++
}

// stubNotifier fires resize callbacks on demand
type stubNotifier struct {
	fn       func()
	detached bool
}

func (n *stubNotifier) OnResize(fn func()) func() {
	n.fn = fn
	return func() {
		n.fn = nil
		n.detached = true
	}
}

func (n *stubNotifier) fire() {
	if n.fn != nil {
		n.fn()
	}
}
