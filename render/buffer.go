// Package render is the cell grid and its drawing primitives.
//
// All coordinate-addressed operations clip silently: writes outside
// [0,w)x[0,h) are dropped and reads return the zero cell. Fill-capable
// primitives take a brush.Brush and paint the background component; text
// paints the foreground.
package render

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/cellpaint/brush"
	"github.com/lixenwraith/cellpaint/palette"
)

var ErrSizeMismatch = errors.New("buffer size mismatch")

// Buffer is a fixed-size grid of cells stored row-major in one slice
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer allocates a zeroed grid. Non-positive dimensions give an empty
// buffer on which every operation is a no-op
func NewBuffer(width, height int) *Buffer {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	return &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
}

func (b *Buffer) Width() int     { return b.width }
func (b *Buffer) Height() int    { return b.height }
func (b *Buffer) UnitCount() int { return len(b.cells) }

// Cells exposes the backing slice, row-major. Sinks read it for zero-copy
// export; callers must not retain it across frames
func (b *Buffer) Cells() []Cell {
	return b.cells
}

// inBounds returns true if in grid bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Clear sets every cell to fg = bg = c with a null rune, using exponential copy
func (b *Buffer) Clear(c palette.Color) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Attr: palette.Pack(c, c)}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// ClearBlack clears to black
func (b *Buffer) ClearBlack() {
	b.Clear(palette.Black)
}

// Set writes rune and colours at (x, y). Keep leaves a colour component as is
func (b *Buffer) Set(x, y int, r rune, fg, bg palette.Option) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Attr = dst.Attr.WithFg(fg).WithBg(bg)
}

// SetCell overwrites the whole cell
func (b *Buffer) SetCell(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// SetRune writes the character only
func (b *Buffer) SetRune(x, y int, r rune) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Rune = r
}

// SetFg writes the foreground only
func (b *Buffer) SetFg(x, y int, fg palette.Option) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Attr = dst.Attr.WithFg(fg)
}

// SetBg writes the background only
func (b *Buffer) SetBg(x, y int, bg palette.Option) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Attr = dst.Attr.WithBg(bg)
}

// Get returns the cell at (x, y), or the zero cell (black on black, null rune)
// out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

func (b *Buffer) Fg(x, y int) palette.Color { return b.Get(x, y).Fg() }
func (b *Buffer) Bg(x, y int) palette.Color { return b.Get(x, y).Bg() }

// paint samples br at (x, y) into the background
func (b *Buffer) paint(x, y int, br brush.Brush) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Attr = dst.Attr.WithBg(br.ColorAt(x, y))
}

// Clone returns a deep copy
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{
		cells:  make([]Cell, len(b.cells)),
		width:  b.width,
		height: b.height,
	}
	copy(c.cells, b.cells)
	return c
}

// CopyFrom bulk-copies src into b. Dimensions must match
func (b *Buffer) CopyFrom(src *Buffer) error {
	if src.width != b.width || src.height != b.height {
		return fmt.Errorf("%w: %dx%d into %dx%d", ErrSizeMismatch, src.width, src.height, b.width, b.height)
	}
	copy(b.cells, src.cells)
	return nil
}

// Equal reports whether both buffers have the same size and cells
func (b *Buffer) Equal(o *Buffer) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Resample returns a new width x height buffer sampled nearest-neighbour from b
func (b *Buffer) Resample(width, height int) *Buffer {
	dst := NewBuffer(width, height)
	if len(b.cells) == 0 {
		return dst
	}
	for y := 0; y < dst.height; y++ {
		sy := y * b.height / dst.height
		row := dst.cells[y*dst.width : (y+1)*dst.width]
		for x := range row {
			sx := x * b.width / dst.width
			row[x] = b.cells[sy*b.width+sx]
		}
	}
	return dst
}
