package render

import (
	"github.com/lixenwraith/cellpaint/brush"
)

// FloodFill repaints the 4-connected region of cells sharing the background
// colour of the seed. The seed is clamped into the grid. A constant brush
// whose colour equals the seed colour (or is Keep) makes this a no-op.
//
// Scanline fill: each queued seed expands into a horizontal span; rows above
// and below are queued once per run of matching cells. The queue is append-only
// and consumed by index, and a visited mask bounds work even when the brush
// writes the seed colour back
func (b *Buffer) FloodFill(x, y int, br brush.Brush) {
	if len(b.cells) == 0 {
		return
	}
	x = min(max(x, 0), b.width-1)
	y = min(max(y, 0), b.height-1)

	seed := b.cells[y*b.width+x].Bg()
	if c, ok := brush.Constant(br); ok && (!c.Valid || c.Color == seed) {
		return
	}

	visited := make([]bool, len(b.cells))
	match := func(i int) bool {
		return !visited[i] && b.cells[i].Bg() == seed
	}

	queue := []Point{{x, y}}
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		row := p.Y * b.width
		if !match(row + p.X) {
			continue
		}

		left := p.X
		for left > 0 && match(row+left-1) {
			left--
		}
		right := p.X
		for right < b.width-1 && match(row+right+1) {
			right++
		}

		for i := left; i <= right; i++ {
			visited[row+i] = true
			b.paint(i, p.Y, br)
		}

		for _, ny := range [2]int{p.Y - 1, p.Y + 1} {
			if ny < 0 || ny >= b.height {
				continue
			}
			nrow := ny * b.width
			inRun := false
			for i := left; i <= right; i++ {
				if match(nrow + i) {
					if !inRun {
						queue = append(queue, Point{i, ny})
						inRun = true
					}
				} else {
					inRun = false
				}
			}
		}
	}
}
