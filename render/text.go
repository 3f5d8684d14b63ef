package render

import (
	"strings"

	"github.com/lixenwraith/cellpaint/brush"
)

// Align selects which end of a text line is anchored at x
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
)

func (a Align) String() string {
	if a == AlignRight {
		return "right"
	}
	return "left"
}

// DrawString writes text starting at (x, y). Lines split on '\n' and line i
// lands on row y+i. Right alignment ends each line at x, so it starts at
// x-len(line). Each written cell gets the rune and a foreground sampled from br.
// The background of every cell is left as it was; paint it first with DrawBox
// or SetBg when text needs its own backdrop
func (b *Buffer) DrawString(x, y int, text string, br brush.Brush, align Align) {
	for i, line := range strings.Split(text, "\n") {
		runes := []rune(line)
		start := x
		if align == AlignRight {
			start = x - len(runes)
		}
		row := y + i
		for j, r := range runes {
			cx := start + j
			if !b.inBounds(cx, row) {
				continue
			}
			dst := &b.cells[row*b.width+cx]
			dst.Rune = r
			dst.Attr = dst.Attr.WithFg(br.ColorAt(cx, row))
		}
	}
}
