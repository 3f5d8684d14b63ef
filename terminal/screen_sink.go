package terminal

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellpaint/palette"
	"github.com/lixenwraith/cellpaint/render"
)

// ScreenSink presents frames through a tcell screen
type ScreenSink struct {
	screen tcell.Screen
	styles [256]tcell.Style
}

// NewScreenSink opens and initialises the default tcell screen
func NewScreenSink() (*ScreenSink, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewScreenSinkFor(screen), nil
}

// NewScreenSinkFor wraps an initialised screen
func NewScreenSinkFor(screen tcell.Screen) *ScreenSink {
	s := &ScreenSink{screen: screen}
	var colors [palette.Count]tcell.Color
	for c := palette.Color(0); c < palette.Count; c++ {
		r, g, b := c.RGB()
		colors[c] = tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	for a := 0; a < 256; a++ {
		attr := palette.Attr(a)
		s.styles[a] = tcell.StyleDefault.Foreground(colors[attr.Fg()]).Background(colors[attr.Bg()])
	}
	return s
}

// Size returns the screen size in cells
func (s *ScreenSink) Size() (int, int) {
	return s.screen.Size()
}

// Present copies b onto the screen and shows it. Cells outside the screen are
// dropped by tcell
func (s *ScreenSink) Present(b *render.Buffer) error {
	width := b.Width()
	for i, c := range b.Cells() {
		r := c.Rune
		if r < ' ' {
			r = ' '
		}
		s.screen.SetContent(i%width, i/width, r, nil, s.styles[c.Attr])
	}
	s.screen.Show()
	return nil
}

// Fini releases the screen and restores the terminal
func (s *ScreenSink) Fini() {
	s.screen.Fini()
}

// WaitQuit blocks until a quit key is pressed or ctx is done. Resize events
// trigger a full resync. Returns nil on quit and ctx.Err() on cancellation
func (s *ScreenSink) WaitQuit(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go s.screen.ChannelEvents(events, quit)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if IsQuitKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
		}
	}
}

// IsQuitKey reports Escape, Ctrl-C and 'q'
func IsQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
