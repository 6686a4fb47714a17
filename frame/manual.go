package frame

import "time"

// Manual is a deterministic scheduler driven by explicit clock advances
// Intended for tests and headless rendering, not safe for concurrent Advance calls
type Manual struct {
	queue

	interval time.Duration
	now      time.Time
	carry    time.Duration
	frames   uint64
}

// NewManual creates a scheduler whose clock starts at start
func NewManual(start time.Time, interval time.Duration) *Manual {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Manual{interval: interval, now: start}
}

// Now returns the simulated clock
func (m *Manual) Now() time.Time {
	return m.now
}

// Frames returns the number of frames delivered so far
func (m *Manual) Frames() uint64 {
	return m.frames
}

// Step advances one interval and delivers one frame, returning the callbacks run
func (m *Manual) Step() int {
	m.now = m.now.Add(m.interval)
	m.frames++
	return m.flush(m.now)
}

// Advance moves the clock by d, delivering one frame per elapsed interval
// Remainders accumulate across calls
func (m *Manual) Advance(d time.Duration) int {
	m.carry += d
	ran := 0
	for m.carry >= m.interval {
		m.carry -= m.interval
		ran += m.Step()
	}
	return ran
}
