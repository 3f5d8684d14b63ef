package render

import (
	"math"

	"github.com/lixenwraith/cellpaint/brush"
)

// triangleTolerance is the absolute area slack of the point-in-triangle test.
// Large triangles may show 1-cell gaps or overlaps along edges; this matches
// established output and must not be tightened
const triangleTolerance = 1.0

// DrawLine draws from (x0, y0) to (x1, y1) inclusive with integer Bresenham.
// The major axis is the one with the larger delta; on a tie Y is major
func (b *Buffer) DrawLine(x0, y0, x1, y1 int, br brush.Brush) {
	w := x1 - x0
	h := y1 - y0
	dx1, dy1 := sign(w), sign(h)
	dx2, dy2 := dx1, 0

	longest, shortest := abs(w), abs(h)
	if !(longest > shortest) {
		longest, shortest = shortest, longest
		dx2, dy2 = 0, dy1
	}

	x, y := x0, y0
	numerator := longest >> 1
	for i := 0; i <= longest; i++ {
		b.paint(x, y, br)
		numerator += shortest
		if !(numerator < longest) {
			numerator -= longest
			x += dx1
			y += dy1
		} else {
			x += dx2
			y += dy2
		}
	}
}

// DrawBox fills a w x h rectangle. Negative sizes extend left/up from (x, y)
func (b *Buffer) DrawBox(x, y, w, h int, br brush.Brush) {
	x, y, w, h = normRect(x, y, w, h)
	x0, y0, x1, y1 := b.clipRect(x, y, w, h)
	for j := y0; j < y1; j++ {
		for i := x0; i < x1; i++ {
			b.paint(i, j, br)
		}
	}
}

// DrawBoxBorder fills a rectangle with fill, overpainting a band of thickness
// cells measured inward from each edge with border
func (b *Buffer) DrawBoxBorder(x, y, w, h, thickness int, border, fill brush.Brush) {
	x, y, w, h = normRect(x, y, w, h)
	x0, y0, x1, y1 := b.clipRect(x, y, w, h)
	for j := y0; j < y1; j++ {
		for i := x0; i < x1; i++ {
			lx, ly := i-x, j-y
			d := min(lx, ly, w-1-lx, h-1-ly)
			if d < thickness {
				b.paint(i, j, border)
			} else {
				b.paint(i, j, fill)
			}
		}
	}
}

// DrawCircle fills every cell (x+i, y+j) with i²+j² <= r²
func (b *Buffer) DrawCircle(x, y, r int, br brush.Brush) {
	r2 := r * r
	for j := -r; j <= r; j++ {
		for i := -r; i <= r; i++ {
			if i*i+j*j <= r2 {
				b.paint(x+i, y+j, br)
			}
		}
	}
}

// DrawRing fills a circle of radius r; cells with i²+j² < (r-thickness)² get
// fill, the remaining band gets border
func (b *Buffer) DrawRing(x, y, r, thickness int, border, fill brush.Brush) {
	r2 := r * r
	inner := r - thickness
	inner2 := inner * inner
	if inner <= 0 {
		inner2 = 0
	}
	for j := -r; j <= r; j++ {
		for i := -r; i <= r; i++ {
			d := i*i + j*j
			switch {
			case d < inner2:
				b.paint(x+i, y+j, fill)
			case d <= r2:
				b.paint(x+i, y+j, border)
			}
		}
	}
}

// DrawTriangle draws the three edges
func (b *Buffer) DrawTriangle(p0, p1, p2 Point, br brush.Brush) {
	b.DrawLine(p0.X, p0.Y, p1.X, p1.Y, br)
	b.DrawLine(p1.X, p1.Y, p2.X, p2.Y, br)
	b.DrawLine(p2.X, p2.Y, p0.X, p0.Y, br)
}

// FillTriangle paints every cell of the bounding box whose three sub-triangle
// areas sum to the full area within triangleTolerance
func (b *Buffer) FillTriangle(p0, p1, p2 Point, br brush.Brush) {
	minX := max(min(p0.X, p1.X, p2.X), 0)
	maxX := min(max(p0.X, p1.X, p2.X), b.width-1)
	minY := max(min(p0.Y, p1.Y, p2.Y), 0)
	maxY := min(max(p0.Y, p1.Y, p2.Y), b.height-1)

	full := triangleArea(p0, p1, p2)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := Point{x, y}
			sum := triangleArea(p, p1, p2) + triangleArea(p0, p, p2) + triangleArea(p0, p1, p)
			if math.Abs(sum-full) <= triangleTolerance {
				b.paint(x, y, br)
			}
		}
	}
}

// triangleArea is Heron's formula on Euclidean side lengths. Rounding can push
// the radicand of a degenerate triangle below zero; that is clamped to 0
func triangleArea(a, b, c Point) float64 {
	ab := dist(a, b)
	bc := dist(b, c)
	ca := dist(c, a)
	s := (ab + bc + ca) / 2
	r := s * (s - ab) * (s - bc) * (s - ca)
	if r <= 0 {
		return 0
	}
	return math.Sqrt(r)
}

func dist(a, b Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// normRect flips negative width/height so the rectangle grows right/down
func normRect(x, y, w, h int) (int, int, int, int) {
	if w < 0 {
		w = -w
		x -= w
	}
	if h < 0 {
		h = -h
		y -= h
	}
	return x, y, w, h
}

// clipRect intersects a normalized rectangle with the grid, returning
// half-open bounds
func (b *Buffer) clipRect(x, y, w, h int) (x0, y0, x1, y1 int) {
	x0, y0 = max(x, 0), max(y, 0)
	x1, y1 = min(x+w, b.width), min(y+h, b.height)
	return
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
