package render

import "github.com/lixenwraith/cellpaint/palette"

// BlendMode selects how DrawBuffer combines source colours with the target
type BlendMode uint8

const (
	// DrawOver replaces the packed colours
	DrawOver BlendMode = iota
	// Additive ORs the packed colour bits into the target
	Additive
	// IgnoreBlack replaces colours only where the source background is not black
	IgnoreBlack
)

var blendNames = [...]string{"over", "additive", "ignore-black"}

func (m BlendMode) String() string {
	if int(m) < len(blendNames) {
		return blendNames[m]
	}
	return "unknown"
}

// DrawBuffer composites src onto b with its top-left at (x, y), clipped to the
// overlap. The rune of every overlapped cell is always copied from src
func (b *Buffer) DrawBuffer(src *Buffer, x, y int, mode BlendMode) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+src.width, b.width), min(y+src.height, b.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	for ty := y0; ty < y1; ty++ {
		srow := src.cells[(ty-y)*src.width : (ty-y+1)*src.width]
		drow := b.cells[ty*b.width : (ty+1)*b.width]
		for tx := x0; tx < x1; tx++ {
			s := srow[tx-x]
			d := &drow[tx]
			switch mode {
			case DrawOver:
				d.Attr = s.Attr
			case Additive:
				d.Attr |= s.Attr
			case IgnoreBlack:
				if s.Bg() != palette.Black {
					d.Attr = s.Attr
				}
			}
			d.Rune = s.Rune
		}
	}
}
