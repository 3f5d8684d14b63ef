package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cellpaint/brush"
	"github.com/lixenwraith/cellpaint/palette"
)

func TestDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []Point
	}{
		{"horizontal", 0, 0, 4, 0, []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}},
		{"diagonal tie is y major", 0, 0, 3, 3, []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"vertical reversed", 2, 3, 2, 0, []Point{{2, 0}, {2, 1}, {2, 2}, {2, 3}}},
		{"steep", 0, 0, 2, 5, []Point{{0, 0}, {0, 1}, {1, 2}, {1, 3}, {2, 4}, {2, 5}}},
		{"single cell", 3, 3, 3, 3, []Point{{3, 3}}},
		{"clipped", -2, 0, 2, 0, []Point{{0, 0}, {1, 0}, {2, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(8, 8)
			b.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1, red)
			assert.Equal(t, tt.want, cellsWithBg(b, palette.Red))
		})
	}
}

func TestDrawLineSamplesBrushPerCell(t *testing.T) {
	b := NewBuffer(4, 1)
	b.DrawLine(0, 0, 3, 0, brush.Checkered(palette.White, palette.Blue))
	assert.Equal(t, []Point{{0, 0}, {2, 0}}, cellsWithBg(b, palette.White))
	assert.Equal(t, []Point{{1, 0}, {3, 0}}, cellsWithBg(b, palette.Blue))
}

func TestBoxScenario(t *testing.T) {
	b := NewBuffer(64, 64)
	b.ClearBlack()
	b.DrawBox(10, 10, 5, 5, red)
	b.DrawBox(12, 12, 2, 2, blue)

	assert.Equal(t, palette.Blue, b.Bg(12, 12))
	assert.Equal(t, palette.Red, b.Bg(10, 10))
	assert.Equal(t, palette.Black, b.Bg(0, 0))
	assert.Equal(t, palette.Red, b.Bg(14, 14))
	assert.Equal(t, palette.Black, b.Bg(15, 15))
	assert.Len(t, cellsWithBg(b, palette.Red), 21)
}

func TestDrawBoxNegativeSize(t *testing.T) {
	b := NewBuffer(8, 8)
	b.DrawBox(5, 5, -2, -2, red)
	assert.Equal(t, []Point{{3, 3}, {4, 3}, {3, 4}, {4, 4}}, cellsWithBg(b, palette.Red))

	c := NewBuffer(8, 8)
	c.DrawBox(3, 3, 2, 2, red)
	assert.True(t, b.Equal(c))
}

func TestDrawBoxClipped(t *testing.T) {
	b := NewBuffer(4, 4)
	b.DrawBox(-10, -10, 100, 100, red)
	assert.Len(t, cellsWithBg(b, palette.Red), 16)
}

func TestDrawBoxBorder(t *testing.T) {
	b := NewBuffer(7, 7)
	b.DrawBoxBorder(1, 1, 5, 5, 1, red, blue)

	tests := []struct {
		x, y int
		want palette.Color
	}{
		{1, 1, palette.Red},
		{5, 5, palette.Red},
		{3, 1, palette.Red},
		{1, 3, palette.Red},
		{2, 2, palette.Blue},
		{3, 3, palette.Blue},
		{4, 4, palette.Blue},
		{0, 0, palette.Black},
		{6, 6, palette.Black},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.Bg(tt.x, tt.y), "(%d,%d)", tt.x, tt.y)
	}
	assert.Len(t, cellsWithBg(b, palette.Red), 16)
	assert.Len(t, cellsWithBg(b, palette.Blue), 9)

	thick := NewBuffer(5, 5)
	thick.DrawBoxBorder(0, 0, 5, 5, 3, red, blue)
	assert.Len(t, cellsWithBg(thick, palette.Red), 25)
}

func TestDrawCircle(t *testing.T) {
	b := NewBuffer(11, 11)
	b.DrawCircle(5, 5, 1, red)
	assert.Equal(t, []Point{{5, 4}, {4, 5}, {5, 5}, {6, 5}, {5, 6}}, cellsWithBg(b, palette.Red))

	b.ClearBlack()
	b.DrawCircle(5, 5, 0, red)
	assert.Equal(t, []Point{{5, 5}}, cellsWithBg(b, palette.Red))

	b.ClearBlack()
	b.DrawCircle(0, 0, 3, red)
	for _, p := range cellsWithBg(b, palette.Red) {
		assert.LessOrEqual(t, p.X*p.X+p.Y*p.Y, 9)
	}
	assert.Equal(t, palette.Red, b.Bg(3, 0))
	assert.Equal(t, palette.Black, b.Bg(3, 1))
}

func TestDrawRing(t *testing.T) {
	b := NewBuffer(9, 9)
	b.DrawRing(4, 4, 3, 1, red, blue)

	tests := []struct {
		i, j int
		want palette.Color
	}{
		{0, 0, palette.Blue},
		{1, 1, palette.Blue},
		{1, 0, palette.Blue},
		{2, 0, palette.Red},
		{3, 0, palette.Red},
		{2, 2, palette.Red},
		{0, -3, palette.Red},
		{3, 1, palette.Black},
		{3, 3, palette.Black},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.Bg(4+tt.i, 4+tt.j), "(%d,%d)", tt.i, tt.j)
	}

	solid := NewBuffer(9, 9)
	solid.DrawRing(4, 4, 2, 5, red, blue)
	assert.Empty(t, cellsWithBg(solid, palette.Blue))
}

func TestTriangles(t *testing.T) {
	a, bb, c := Pt(0, 0), Pt(4, 0), Pt(0, 4)

	t.Run("wireframe", func(t *testing.T) {
		b := NewBuffer(6, 6)
		b.DrawTriangle(a, bb, c, red)
		for _, p := range []Point{{0, 0}, {4, 0}, {0, 4}, {2, 0}, {0, 2}, {2, 2}, {3, 1}} {
			assert.Equal(t, palette.Red, b.Bg(p.X, p.Y), "(%d,%d)", p.X, p.Y)
		}
		assert.Equal(t, palette.Black, b.Bg(1, 1))
	})

	t.Run("filled", func(t *testing.T) {
		b := NewBuffer(6, 6)
		b.FillTriangle(a, bb, c, red)
		for _, p := range []Point{{0, 0}, {1, 1}, {2, 2}, {3, 1}, {0, 4}, {4, 0}} {
			assert.Equal(t, palette.Red, b.Bg(p.X, p.Y), "(%d,%d)", p.X, p.Y)
		}
		for _, p := range []Point{{3, 3}, {4, 4}, {5, 0}, {0, 5}} {
			assert.Equal(t, palette.Black, b.Bg(p.X, p.Y), "(%d,%d)", p.X, p.Y)
		}
	})

	t.Run("off grid does not panic", func(t *testing.T) {
		b := NewBuffer(4, 4)
		b.FillTriangle(Pt(-50, -50), Pt(50, -50), Pt(0, 50), red)
		b.DrawTriangle(Pt(-50, -50), Pt(50, -50), Pt(0, 50), red)
		assert.NotEmpty(t, cellsWithBg(b, palette.Red))
	})

	t.Run("degenerate", func(t *testing.T) {
		b := NewBuffer(6, 6)
		b.FillTriangle(Pt(1, 1), Pt(1, 1), Pt(1, 1), red)
		assert.Equal(t, []Point{{1, 1}}, cellsWithBg(b, palette.Red))
	})
}

func TestDrawString(t *testing.T) {
	b := NewBuffer(10, 4)
	b.ClearBlack()
	b.DrawBox(0, 0, 10, 4, blue)

	b.DrawString(1, 0, "hi\nyou", red, AlignLeft)
	assert.Equal(t, 'h', b.Get(1, 0).Rune)
	assert.Equal(t, 'i', b.Get(2, 0).Rune)
	assert.Equal(t, 'y', b.Get(1, 1).Rune)
	assert.Equal(t, 'u', b.Get(3, 1).Rune)
	assert.Equal(t, palette.Red, b.Fg(1, 0))
	assert.Equal(t, palette.Blue, b.Bg(1, 0), "text must not touch the background")

	b.DrawString(10, 2, "end", green, AlignRight)
	assert.Equal(t, 'e', b.Get(7, 2).Rune)
	assert.Equal(t, 'd', b.Get(9, 2).Rune)
	assert.Equal(t, palette.Green, b.Fg(9, 2))

	// Clipped on both sides without panicking
	b.DrawString(-1, 3, "clip", red, AlignLeft)
	assert.Equal(t, 'l', b.Get(0, 3).Rune)
	b.DrawString(2, 3, "wide", red, AlignRight)
	assert.Equal(t, 'e', b.Get(1, 3).Rune)
	assert.Equal(t, 'd', b.Get(0, 3).Rune)

	// Multi-byte runes count as one cell each
	b.DrawString(0, 0, "é→", red, AlignLeft)
	assert.Equal(t, 'é', b.Get(0, 0).Rune)
	assert.Equal(t, '→', b.Get(1, 0).Rune)
}

func TestFloodFill(t *testing.T) {
	t.Run("fills a black grid", func(t *testing.T) {
		for _, seed := range []Point{{0, 0}, {3, 2}, {9, 6}} {
			b := NewBuffer(10, 7)
			b.FloodFill(seed.X, seed.Y, red)
			assert.Len(t, cellsWithBg(b, palette.Red), 70)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		b := NewBuffer(10, 7)
		b.FloodFill(4, 4, red)
		before := b.Clone()
		b.FloodFill(4, 4, red)
		assert.True(t, before.Equal(b))
	})

	t.Run("bounded by walls", func(t *testing.T) {
		b := NewBuffer(10, 10)
		b.DrawBoxBorder(2, 2, 6, 6, 1, blue, brush.Keep())
		b.FloodFill(4, 4, red)
		assert.Len(t, cellsWithBg(b, palette.Red), 16)
		assert.Equal(t, palette.Black, b.Bg(0, 0))

		b.FloodFill(0, 0, green)
		assert.Len(t, cellsWithBg(b, palette.Green), 100-36)
	})

	t.Run("concave region", func(t *testing.T) {
		b := NewBuffer(7, 5)
		// U shape wall: fill must reach around the inner spur
		b.DrawLine(3, 0, 3, 3, blue)
		b.FloodFill(0, 0, red)
		assert.Len(t, cellsWithBg(b, palette.Red), 35-4)
	})

	t.Run("seed is clamped", func(t *testing.T) {
		b := NewBuffer(5, 5)
		b.FloodFill(-10, 99, red)
		assert.Len(t, cellsWithBg(b, palette.Red), 25)
	})

	t.Run("keep brush is a no-op", func(t *testing.T) {
		b := NewBuffer(5, 5)
		b.FloodFill(2, 2, brush.Keep())
		assert.Len(t, cellsWithBg(b, palette.Black), 25)
	})

	t.Run("pattern brush containing the seed colour terminates", func(t *testing.T) {
		b := NewBuffer(6, 6)
		b.FloodFill(0, 0, brush.Checkered(palette.Black, palette.Yellow))
		assert.Len(t, cellsWithBg(b, palette.Yellow), 18)
		assert.Len(t, cellsWithBg(b, palette.Black), 18)
	})
}

func TestDrawBuffer(t *testing.T) {
	pattern := func() *Buffer {
		s := NewBuffer(4, 3)
		for y := 0; y < 3; y++ {
			for x := 0; x < 4; x++ {
				s.Set(x, y, rune('A'+x+y*4), palette.Color(x+y).Opt(), palette.Color(x*y).Opt())
			}
		}
		return s
	}

	t.Run("draw over equal size copies", func(t *testing.T) {
		src := pattern()
		dst := NewBuffer(4, 3)
		dst.Clear(palette.White)
		dst.DrawBuffer(src, 0, 0, DrawOver)
		assert.True(t, dst.Equal(src))
	})

	t.Run("additive ors attribute bits", func(t *testing.T) {
		src := pattern()
		dst := NewBuffer(4, 3)
		dst.Set(1, 1, 'q', palette.Of(palette.DarkRed), palette.Of(palette.DarkGreen))
		prior := dst.Clone()
		dst.DrawBuffer(src, 0, 0, Additive)
		for y := 0; y < 3; y++ {
			for x := 0; x < 4; x++ {
				want := prior.Get(x, y).Attr | src.Get(x, y).Attr
				assert.Equal(t, want, dst.Get(x, y).Attr)
				assert.Equal(t, src.Get(x, y).Rune, dst.Get(x, y).Rune)
			}
		}
	})

	t.Run("ignore black skips black backgrounds", func(t *testing.T) {
		src := NewBuffer(2, 1)
		src.Set(0, 0, 'a', palette.Of(palette.White), palette.Of(palette.Black))
		src.Set(1, 0, 'b', palette.Of(palette.White), palette.Of(palette.Red))
		dst := NewBuffer(2, 1)
		dst.Clear(palette.Blue)
		dst.DrawBuffer(src, 0, 0, IgnoreBlack)

		assert.Equal(t, palette.Blue, dst.Bg(0, 0))
		assert.Equal(t, palette.Blue, dst.Fg(0, 0))
		assert.Equal(t, 'a', dst.Get(0, 0).Rune)
		assert.Equal(t, palette.Red, dst.Bg(1, 0))
		assert.Equal(t, palette.White, dst.Fg(1, 0))
	})

	t.Run("offset is clipped", func(t *testing.T) {
		src := NewBuffer(3, 3)
		src.Clear(palette.Red)
		dst := NewBuffer(4, 4)
		dst.DrawBuffer(src, 2, -1, DrawOver)
		assert.Equal(t, []Point{{2, 0}, {3, 0}, {2, 1}, {3, 1}}, cellsWithBg(dst, palette.Red))
	})

	t.Run("no overlap leaves target untouched", func(t *testing.T) {
		src := NewBuffer(3, 3)
		src.Clear(palette.Red)
		dst := NewBuffer(4, 4)
		for _, off := range []Point{{4, 0}, {0, 4}, {-3, 0}, {0, -3}, {100, -100}} {
			dst.DrawBuffer(src, off.X, off.Y, DrawOver)
		}
		assert.Len(t, cellsWithBg(dst, palette.Black), 16)
	})
}

func TestBlendModeString(t *testing.T) {
	assert.Equal(t, "over", DrawOver.String())
	assert.Equal(t, "additive", Additive.String())
	assert.Equal(t, "ignore-black", IgnoreBlack.String())
	assert.Equal(t, "unknown", BlendMode(9).String())
	require.Equal(t, "right", AlignRight.String())
}
