package render

import (
	"strconv"

	"github.com/lixenwraith/cellpaint/brush"
	"github.com/lixenwraith/cellpaint/palette"
)

// Segment geometry of one 4x7 digit cell:
//
//	 0
//	1 2
//	 3
//	4 5
//	 6
var segments = [7][2]Point{
	{{0, 0}, {3, 0}},
	{{0, 0}, {0, 3}},
	{{3, 0}, {3, 3}},
	{{0, 3}, {3, 3}},
	{{0, 3}, {0, 6}},
	{{3, 3}, {3, 6}},
	{{0, 6}, {3, 6}},
}

var digitSegments = [10][]int{
	{0, 1, 2, 4, 5, 6},
	{2, 5},
	{0, 2, 3, 4, 6},
	{0, 2, 3, 5, 6},
	{1, 2, 3, 5},
	{0, 1, 3, 5, 6},
	{0, 1, 3, 4, 5, 6},
	{0, 2, 5},
	{0, 1, 2, 3, 4, 5, 6},
	{0, 1, 2, 3, 5, 6},
}

const (
	segmentAdvance = 5
	segmentHeight  = 7
)

// SevenSegment draws an integer as line-drawn digits. Each digit occupies 4x7
// cells with one column of spacing; a negative value gets a leading minus
// glyph. Fore paints segments, Back paints the panel behind them
type SevenSegment struct {
	Location Point
	Fore     brush.Brush
	Back     brush.Brush

	value  int64
	digits int
	glyphs []int // digit values; -1 is the minus sign
}

// NewSevenSegment returns a display zero-padded to at least digits places,
// red on an untouched panel
func NewSevenSegment(at Point, digits int, value int64) *SevenSegment {
	s := &SevenSegment{
		Location: at,
		Fore:     brush.Solid(palette.Red),
		Back:     brush.Keep(),
		value:    value,
		digits:   digits,
	}
	s.update()
	return s
}

func (s *SevenSegment) Value() int64 { return s.value }

func (s *SevenSegment) SetValue(v int64) {
	s.value = v
	s.update()
}

func (s *SevenSegment) Digits() int { return s.digits }

func (s *SevenSegment) SetDigits(n int) {
	s.digits = n
	s.update()
}

// Width is the panel width in cells
func (s *SevenSegment) Width() int {
	if len(s.glyphs) == 0 {
		return 0
	}
	return len(s.glyphs)*segmentAdvance - 1
}

func (s *SevenSegment) update() {
	mag := uint64(s.value)
	if s.value < 0 {
		mag = uint64(-(s.value + 1)) + 1
	}
	text := strconv.FormatUint(mag, 10)

	s.glyphs = s.glyphs[:0]
	if s.value < 0 {
		s.glyphs = append(s.glyphs, -1)
	}
	for i := len(text); i < s.digits; i++ {
		s.glyphs = append(s.glyphs, 0)
	}
	for _, c := range text {
		s.glyphs = append(s.glyphs, int(c-'0'))
	}
}

// Draw renders the display. With AlignRight the panel ends at Location.X
func (s *SevenSegment) Draw(b *Buffer, align Align) {
	origin := s.Location
	if align == AlignRight {
		origin.X -= s.Width()
	}
	b.DrawBox(origin.X, origin.Y, s.Width(), segmentHeight, s.Back)

	for i, g := range s.glyphs {
		at := origin.Add(Point{i * segmentAdvance, 0})
		if g < 0 {
			s.segment(b, at, 3)
			continue
		}
		for _, seg := range digitSegments[g] {
			s.segment(b, at, seg)
		}
	}
}

func (s *SevenSegment) segment(b *Buffer, at Point, seg int) {
	p0 := at.Add(segments[seg][0])
	p1 := at.Add(segments[seg][1])
	b.DrawLine(p0.X, p0.Y, p1.X, p1.Y, s.Fore)
}
