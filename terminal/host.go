package terminal

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wallcal/core"
)

// Pauser is a frame source that can be held while the terminal is unfocused
type Pauser interface {
	Pause()
	Resume()
}

// Host pumps screen events: resizes fan out to subscribers, focus changes
// pause the frame source, and quit keys end Run
type Host struct {
	screen tcell.Screen
	pauser Pauser

	mu   sync.Mutex
	subs map[int]func()
	next int

	quit     chan struct{}
	quitOnce sync.Once
}

// NewHost creates a host for screen; pauser may be nil
func NewHost(screen tcell.Screen, pauser Pauser) *Host {
	return &Host{
		screen: screen,
		pauser: pauser,
		subs:   make(map[int]func()),
		quit:   make(chan struct{}),
	}
}

// OnResize registers fn for resize notifications until the returned func is called
func (h *Host) OnResize(fn func()) (detach func()) {
	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Quit ends Run; safe to call more than once
func (h *Host) Quit() {
	h.quitOnce.Do(func() { close(h.quit) })
}

// Done is closed once quit was requested
func (h *Host) Done() <-chan struct{} {
	return h.quit
}

// Run pumps events until a quit key, Quit, or ctx cancellation
// Returns ctx.Err() when cancelled, nil otherwise
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	stop := make(chan struct{})
	defer close(stop)

	core.Go(func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-h.quit:
			return nil
		case ev := <-events:
			h.handle(ev)
		}
	}
}

func (h *Host) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuitKey(ev) {
			h.Quit()
		}

	case *tcell.EventResize:
		h.screen.Sync()
		h.notify()

	case *tcell.EventFocus:
		if h.pauser == nil {
			return
		}
		if ev.Focused {
			h.pauser.Resume()
		} else {
			h.pauser.Pause()
		}
	}
}

func (h *Host) notify() {
	h.mu.Lock()
	fns := make([]func(), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
