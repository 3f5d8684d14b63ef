package terminal

import (
	"bufio"
	"io"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/lixenwraith/cellpaint/palette"
	"github.com/lixenwraith/cellpaint/render"
)

// ANSISink presents frames as ANSI escape sequences. Only cells that differ
// from the previously presented frame are written, and an SGR sequence is
// emitted only when the colour pair changes
type ANSISink struct {
	mu      sync.Mutex
	w       *bufio.Writer
	profile termenv.Profile

	// SGR parameter strings per packed Attr; empty when the profile has no colour
	styles [256]string

	front  []render.Cell
	known  []bool
	width  int
	height int

	cursorX     int
	cursorY     int
	cursorValid bool

	lastAttr  palette.Attr
	lastValid bool
}

// NewANSISink creates a presenter writing to w with colours degraded to profile
func NewANSISink(w io.Writer, profile termenv.Profile) *ANSISink {
	s := &ANSISink{
		w:       bufio.NewWriterSize(w, 128*1024),
		profile: profile,
	}

	var fg, bg [palette.Count]string
	for c := palette.Color(0); c < palette.Count; c++ {
		col := profile.Color(c.Hex())
		if col == nil {
			continue
		}
		fg[c] = col.Sequence(false)
		bg[c] = col.Sequence(true)
	}
	for a := 0; a < 256; a++ {
		attr := palette.Attr(a)
		parts := make([]string, 0, 2)
		if p := fg[attr.Fg()]; p != "" {
			parts = append(parts, p)
		}
		if p := bg[attr.Bg()]; p != "" {
			parts = append(parts, p)
		}
		s.styles[a] = strings.Join(parts, ";")
	}
	return s
}

// Profile returns the colour profile in use
func (s *ANSISink) Profile() termenv.Profile {
	return s.profile
}

// Init enters the alternate screen, hides the cursor and disables wrapping
func (s *ANSISink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.w.Write(csiAltScreenEnter)
	s.w.Write(csiCursorHide)
	s.w.Write(csiAutoWrapOff)
	s.w.Write(csiClear)
	s.invalidate()
	return s.w.Flush()
}

// Fini restores the terminal state changed by Init
func (s *ANSISink) Fini() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.w.Write(csiSGR0)
	s.w.Write(csiAutoWrapOn)
	s.w.Write(csiCursorShow)
	s.w.Write(csiAltScreenExit)
	s.w.Flush()
}

// Present writes the cells of b that changed since the last call. A size
// change clears the screen and redraws everything
func (s *ANSISink) Present(b *render.Buffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	width, height := b.Width(), b.Height()
	if width != s.width || height != s.height {
		s.resize(width, height)
		s.w.Write(csiSGR0)
		s.w.Write(csiClear)
	}

	cells := b.Cells()
	w := s.w
	dirty := false

	for y := 0; y < height; y++ {
		rowStart := y * width
		x := 0
		for x < width {
			idx := rowStart + x
			if s.known[idx] && cellEqual(cells[idx], s.front[idx]) {
				x++
				continue
			}

			if !s.cursorValid || y != s.cursorY || x < s.cursorX {
				writeCursorPos(w, x, y)
			} else if x > s.cursorX {
				writeCursorForward(w, x-s.cursorX)
			}
			s.cursorX, s.cursorY, s.cursorValid = x, y, true
			dirty = true

			// Contiguous dirty run
			for x < width {
				cidx := rowStart + x
				c := cells[cidx]
				if s.known[cidx] && cellEqual(c, s.front[cidx]) {
					break
				}
				s.writeStyle(c.Attr)
				r := c.Rune
				if r < ' ' {
					r = ' '
				}
				moved := true
				if r < 0x80 {
					w.WriteByte(byte(r))
				} else {
					w.WriteRune(r)
					moved = runewidth.RuneWidth(r) == 1
				}
				s.front[cidx] = c
				s.known[cidx] = true
				s.cursorX++
				x++

				// Wide and zero-width runes leave the terminal cursor somewhere
				// other than one column on; reposition before the next cell
				if !moved {
					s.cursorValid = false
					break
				}
			}
		}
	}

	if !dirty {
		return nil
	}
	w.Write(csiSGR0)
	s.lastValid = false
	return w.Flush()
}

// Redraw forces the next Present to rewrite every cell
func (s *ANSISink) Redraw() {
	s.mu.Lock()
	s.invalidate()
	s.mu.Unlock()
}

func (s *ANSISink) resize(width, height int) {
	size := width * height
	if cap(s.front) < size {
		s.front = make([]render.Cell, size)
		s.known = make([]bool, size)
	} else {
		s.front = s.front[:size]
		s.known = s.known[:size]
	}
	s.width, s.height = width, height
	s.invalidate()
}

func (s *ANSISink) invalidate() {
	clear(s.known)
	s.lastValid = false
	s.cursorValid = false
}

func (s *ANSISink) writeStyle(a palette.Attr) {
	if s.lastValid && a == s.lastAttr {
		return
	}
	s.lastAttr, s.lastValid = a, true
	seq := s.styles[a]
	if seq == "" {
		return
	}
	s.w.Write(csi)
	s.w.WriteString(seq)
	s.w.WriteByte('m')
}

// cellEqual treats control runes as blanks so a cleared cell matches a space
func cellEqual(a, b render.Cell) bool {
	if a.Attr != b.Attr {
		return false
	}
	ra, rb := a.Rune, b.Rune
	if ra < ' ' {
		ra = ' '
	}
	if rb < ' ' {
		rb = ' '
	}
	return ra == rb
}
