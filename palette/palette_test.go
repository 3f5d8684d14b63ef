package palette

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttrPacking(t *testing.T) {
	a := Pack(Yellow, DarkBlue)
	assert.Equal(t, Yellow, a.Fg())
	assert.Equal(t, DarkBlue, a.Bg())
	assert.Equal(t, Attr(0x1E), a)
}

func TestAttrKeepLeavesOtherComponent(t *testing.T) {
	a := Pack(Red, Green)

	assert.Equal(t, a, a.WithFg(Keep), "Keep foreground must not alter attr")
	assert.Equal(t, a, a.WithBg(Keep), "Keep background must not alter attr")

	b := a.WithFg(Of(White))
	assert.Equal(t, White, b.Fg())
	assert.Equal(t, Green, b.Bg())

	c := a.WithBg(Of(Black))
	assert.Equal(t, Red, c.Fg())
	assert.Equal(t, Black, c.Bg())
}

func TestOption(t *testing.T) {
	assert.False(t, Keep.Valid)
	assert.Equal(t, Magenta, Keep.Or(Magenta))
	assert.Equal(t, Cyan, Of(Cyan).Or(Magenta))
	assert.Equal(t, Of(Blue), Blue.Opt())
	assert.Equal(t, "keep", Keep.String())
	assert.Equal(t, "blue", Of(Blue).String())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"black", Black},
		{"Dark-Blue", DarkBlue},
		{"dark_grey", DarkGray},
		{"WHITE", White},
		{"#ff0000", Red},
		{"#f00", Red},
		{"#fe1010", Red},
		{"#000080", DarkBlue},
		{"#c0c0c0", Gray},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Parse("chartreuse")
	assert.ErrorIs(t, err, ErrUnknownColor)
	_, err = Parse("#zzzzzz")
	assert.ErrorIs(t, err, ErrUnknownColor)
}

func TestNearestIsIdentityOnPalette(t *testing.T) {
	for c := Color(0); c < Count; c++ {
		assert.Equal(t, c, Nearest(c.Colorful()), c.String())
	}
	assert.Equal(t, White, Nearest(colorful.Color{R: 0.98, G: 0.99, B: 1}))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff00ff", Magenta.Hex())
	assert.Equal(t, "#000000", Black.Hex())
}
