package render

import "github.com/lixenwraith/cellpaint/palette"

// Cell is one grid unit: a code point and packed colours
type Cell struct {
	Rune rune
	Attr palette.Attr
}

func (c Cell) Fg() palette.Color { return c.Attr.Fg() }
func (c Cell) Bg() palette.Color { return c.Attr.Bg() }

// Point is an integer cell coordinate
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
