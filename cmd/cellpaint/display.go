package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/lixenwraith/cellpaint/config"
	"github.com/lixenwraith/cellpaint/core"
	"github.com/lixenwraith/cellpaint/engine"
	"github.com/lixenwraith/cellpaint/terminal"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// display bundles a live presenter with its size query, quit watcher and
// teardown
type display struct {
	sink      engine.Sink
	size      func() (int, int)
	watchQuit func(ctx context.Context, stop func())
	close     func()
}

func openDisplay(cfg config.Config) (*display, error) {
	switch cfg.Sink {
	case "tcell":
		return openScreen()
	default:
		return openANSI(cfg.ColorMode)
	}
}

func openScreen() (*display, error) {
	sink, err := terminal.NewScreenSink()
	if err != nil {
		return nil, err
	}
	core.RegisterTerminal(sink)
	return &display{
		sink: sink,
		size: sink.Size,
		watchQuit: func(ctx context.Context, stop func()) {
			core.Go(func() {
				sink.WaitQuit(ctx)
				stop()
			})
		},
		close: func() {
			sink.Fini()
			core.RegisterTerminal(nil)
		},
	}, nil
}

func openANSI(colorMode string) (*display, error) {
	profile, err := terminal.ParseProfile(colorMode, os.Stdout)
	if err != nil {
		return nil, err
	}
	sink := terminal.NewANSISink(os.Stdout, profile)

	// Raw mode so single key presses reach the quit watcher unechoed
	fd := int(os.Stdin.Fd())
	var restore func()
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return nil, fmt.Errorf("raw mode: %w", err)
		}
		restore = func() { term.Restore(fd, state) }
	}

	if err := sink.Init(); err != nil {
		if restore != nil {
			restore()
		}
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	core.RegisterTerminal(sink)

	return &display{
		sink: sink,
		size: terminalSize,
		watchQuit: func(_ context.Context, stop func()) {
			if restore == nil {
				return
			}
			core.Go(func() { readQuitKeys(os.Stdin, stop) })
		},
		close: func() {
			sink.Fini()
			if restore != nil {
				restore()
			}
			core.RegisterTerminal(nil)
		},
	}, nil
}

// readQuitKeys calls stop on q, Escape or Ctrl-C, or when r fails
func readQuitKeys(r *os.File, stop func()) {
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			if isQuitByte(b) {
				stop()
				return
			}
		}
		if err != nil {
			stop()
			return
		}
	}
}

func isQuitByte(b byte) bool {
	switch b {
	case 'q', 'Q', 0x03, 0x1b:
		return true
	}
	return false
}

// terminalSize returns the stdout terminal size, or 80x24 when it is not a tty
func terminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight
	}
	return w, h
}
