// Package frame schedules per-frame callbacks the way a display repaint loop does.
//
// A callback registered with Schedule runs once, on the next frame after it was
// registered. Callbacks that schedule again from inside a frame land on the
// following frame, so a self-rescheduling callback runs exactly once per frame.
package frame

import (
	"sync"
	"time"
)

// DefaultInterval is the refresh period of a 60 Hz display
const DefaultInterval = time.Second / 60

// Handle identifies a scheduled callback, zero is never issued
type Handle uint64

// Callback receives the timestamp of the frame it runs in
type Callback func(now time.Time)

// Scheduler requests a callback before the next repaint and cancels pending requests
type Scheduler interface {
	Schedule(cb Callback) Handle
	Cancel(h Handle)
}

type entry struct {
	handle Handle
	cb     Callback
}

// queue holds pending callbacks and the batch being run
type queue struct {
	mu       sync.Mutex
	seq      Handle
	pending  []entry
	inflight map[Handle]bool
}

func (q *queue) Schedule(cb Callback) Handle {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.seq++
	q.pending = append(q.pending, entry{handle: q.seq, cb: cb})
	return q.seq
}

// Cancel drops a pending callback, or one queued later in the batch currently running
func (q *queue) Cancel(h Handle) {
	if h == 0 {
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	for i, e := range q.pending {
		if e.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	if _, ok := q.inflight[h]; ok {
		q.inflight[h] = false
	}
}

// Pending returns the number of callbacks waiting for the next frame
func (q *queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// flush runs the callbacks registered before this frame and returns how many ran
func (q *queue) flush(now time.Time) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.inflight = make(map[Handle]bool, len(batch))
	for _, e := range batch {
		q.inflight[e.handle] = true
	}
	q.mu.Unlock()

	ran := 0
	for _, e := range batch {
		q.mu.Lock()
		live := q.inflight[e.handle]
		delete(q.inflight, e.handle)
		q.mu.Unlock()

		if !live {
			continue
		}
		e.cb(now)
		ran++
	}
	return ran
}
