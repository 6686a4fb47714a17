package terminal

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/wallcal/core"
)

// ErrNotTerminal is returned when stdout is redirected
var ErrNotTerminal = errors.New("stdout is not a terminal")

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Open initializes the controlling terminal as a tcell screen
// The crash hook is armed so a panic on any goroutine restores the terminal first
func Open() (tcell.Screen, error) {
	if !IsTerminal(os.Stdout) {
		return nil, ErrNotTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	core.SetCrashHook(screen.Fini)
	screen.HideCursor()
	screen.EnableFocus()
	return screen, nil
}
