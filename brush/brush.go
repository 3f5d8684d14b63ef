// Package brush provides coordinate-sampled colouring strategies accepted by
// every fill-capable primitive in render.
//
// A Brush answers "what colour goes at (x, y)". Returning palette.Keep leaves
// the target component untouched, so a brush can paint holes.
package brush

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/cellpaint/palette"
	"github.com/lixenwraith/cellpaint/vmath"
)

var (
	ErrNoColors  = errors.New("brush needs at least one color")
	ErrThickness = errors.New("stripe thickness must be at least 1")
)

// Brush samples a colour for an integer cell coordinate
type Brush interface {
	ColorAt(x, y int) palette.Option
}

// Func adapts a plain function to Brush
type Func func(x, y int) palette.Option

func (f Func) ColorAt(x, y int) palette.Option { return f(x, y) }

// SolidBrush paints one colour everywhere
type SolidBrush struct {
	Color palette.Option
}

func (b SolidBrush) ColorAt(_, _ int) palette.Option { return b.Color }

// Solid returns a constant brush
func Solid(c palette.Color) SolidBrush {
	return SolidBrush{Color: palette.Of(c)}
}

// Keep returns the identity brush; every sample leaves the target unchanged
func Keep() SolidBrush {
	return SolidBrush{Color: palette.Keep}
}

// Constant reports the colour of a brush that samples the same value at every
// coordinate. Only SolidBrush is known to be constant
func Constant(b Brush) (palette.Option, bool) {
	switch s := b.(type) {
	case SolidBrush:
		return s.Color, true
	case *SolidBrush:
		return s.Color, true
	}
	return palette.Keep, false
}

// CheckeredBrush alternates two colours cell by cell
type CheckeredBrush struct {
	A, B palette.Option
}

// Checkered returns a brush painting a where x+y is even and b elsewhere
func Checkered(a, b palette.Color) CheckeredBrush {
	return CheckeredBrush{A: palette.Of(a), B: palette.Of(b)}
}

func (b CheckeredBrush) ColorAt(x, y int) palette.Option {
	if (x+y)%2 == 0 {
		return b.A
	}
	return b.B
}

// StripeBrush cycles through colours in bands of Thickness cells along one axis
type StripeBrush struct {
	colors    []palette.Option
	thickness int
	vertical  bool
}

// HStripe returns horizontal bands: the band index depends on y
func HStripe(thickness int, colors ...palette.Color) (*StripeBrush, error) {
	return newStripe(thickness, false, colors)
}

// VStripe returns vertical bands: the band index depends on x
func VStripe(thickness int, colors ...palette.Color) (*StripeBrush, error) {
	return newStripe(thickness, true, colors)
}

func newStripe(thickness int, vertical bool, colors []palette.Color) (*StripeBrush, error) {
	if thickness <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrThickness, thickness)
	}
	opts, err := options(colors)
	if err != nil {
		return nil, err
	}
	return &StripeBrush{colors: opts, thickness: thickness, vertical: vertical}, nil
}

func (b *StripeBrush) ColorAt(x, y int) palette.Option {
	v := y
	if b.vertical {
		v = x
	}
	band := absU(v) / uint64(b.thickness)
	return b.colors[band%uint64(len(b.colors))]
}

// RandomBrush picks a uniformly random colour per sample. It owns its
// generator and is not safe for concurrent use
type RandomBrush struct {
	colors []palette.Option
	rng    *vmath.FastRand
}

// Random returns a random brush seeded from the clock
func Random(colors ...palette.Color) (*RandomBrush, error) {
	return RandomSeeded(uint64(time.Now().UnixNano()), colors...)
}

// RandomSeeded returns a random brush with a fixed seed for reproducible output
func RandomSeeded(seed uint64, colors ...palette.Color) (*RandomBrush, error) {
	opts, err := options(colors)
	if err != nil {
		return nil, err
	}
	return &RandomBrush{colors: opts, rng: vmath.NewFastRand(seed)}, nil
}

func (b *RandomBrush) ColorAt(_, _ int) palette.Option {
	return b.colors[b.rng.Intn(len(b.colors))]
}

func options(colors []palette.Color) ([]palette.Option, error) {
	if len(colors) == 0 {
		return nil, ErrNoColors
	}
	opts := make([]palette.Option, len(colors))
	for i, c := range colors {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %d", palette.ErrUnknownColor, c)
		}
		opts[i] = palette.Of(c)
	}
	return opts, nil
}

// absU is |v| without overflow at math.MinInt
func absU(v int) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}
