package frame

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/wallcal/core"
)

// Loop drives callbacks from a ticker at display rate on a single goroutine
// While paused no frames run, as a repaint loop stalls when the page is hidden
type Loop struct {
	queue

	interval time.Duration
	paused   atomic.Bool
	frames   atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewLoop creates a stopped loop; non-positive interval selects DefaultInterval
func NewLoop(interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Interval returns the frame period
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Start begins ticking
func (l *Loop) Start() {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(l.run)
	}
}

// Stop halts the loop and waits for the running frame to finish
// Must not be called from inside a callback
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		if l.running.CompareAndSwap(true, false) {
			close(l.stopChan)
			l.wg.Wait()
		}
	})
}

// Pause suspends frame delivery, pending callbacks are kept
func (l *Loop) Pause() {
	l.paused.Store(true)
}

// Resume restarts frame delivery
func (l *Loop) Resume() {
	l.paused.Store(false)
}

// Paused reports whether frame delivery is suspended
func (l *Loop) Paused() bool {
	return l.paused.Load()
}

// Frames returns the number of frames delivered so far
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

func (l *Loop) run() {
	defer l.wg.Done()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case now := <-ticker.C:
			if l.paused.Load() {
				continue
			}
			l.flush(now)
			l.frames.Add(1)
		}
	}
}
