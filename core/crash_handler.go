// Package core carries the panic handling shared by the frame loop and the CLI.
package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/cellpaint/terminal"
)

// ErrPanic is wrapped by every error produced from a recovered panic
var ErrPanic = errors.New("panic")

// PanicError carries a recovered panic value and the stack at recovery
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) Unwrap() error {
	return ErrPanic
}

// Finalizer is a display that can restore the terminal on crash
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer

	// Replaced in tests
	crashOut  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// RegisterTerminal sets the display finalized by HandleCrash. nil clears it
func RegisterTerminal(t Finalizer) {
	crashMu.Lock()
	crashTerminal = t
	crashMu.Unlock()
}

// HandleCrash restores the terminal, prints the panic and its stack, and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	t := crashTerminal
	crashMu.Unlock()

	if t != nil {
		t.Fini()
	} else {
		terminal.EmergencyReset(os.Stdout)
	}

	stack := debug.Stack()
	if pe, ok := r.(*PanicError); ok {
		stack = pe.Stack
		r = pe.Value
	}
	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", stack)

	crashExit(1)
}

// Go runs fn in a new goroutine; a panic restores the terminal and exits.
// Use this instead of the 'go' keyword for goroutines outside an errgroup
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

// Recover converts a panic in the calling function into an error stored in
// *errp. Must be deferred directly:
//
//	defer core.Recover(&err)
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	*errp = &PanicError{Value: r, Stack: debug.Stack()}
}
