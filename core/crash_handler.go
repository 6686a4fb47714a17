package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu    sync.Mutex
	crashHook  func()
	crashOut   io.Writer = os.Stderr
	crashExit            = os.Exit
	crashFired bool
)

// SetCrashHook registers cleanup to run before the crash report, e.g. restoring the terminal
// Passing nil clears the hook
func SetCrashHook(fn func()) {
	crashMu.Lock()
	crashHook = fn
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that runs the crash hook and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	hook, out, exit := crashHook, crashOut, crashExit
	first := !crashFired
	crashFired = true
	crashMu.Unlock()

	// A second goroutine crashing while the first reports must not run cleanup twice
	if first && hook != nil {
		hook()
	}

	// Use \r\n for raw mode compatibility to avoid zig-zag output
	fmt.Fprintf(out, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(out, "Stack Trace:\r\n%s\r\n", debug.Stack())

	exit(1)
}

// Go starts fn on its own goroutine; a panic there goes through HandleCrash
// so the registered hook still restores the host before exit
func Go(fn func()) {
	go func() {
		defer func() {
			HandleCrash(recover())
		}()
		fn()
	}()
}
