package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownColor is returned by Parse for names and hex strings it cannot map
var ErrUnknownColor = errors.New("unknown color")

// rgbTable holds the classic console RGB value of each palette entry
var rgbTable = [Count][3]uint8{
	{0, 0, 0},       // Black
	{0, 0, 128},     // DarkBlue
	{0, 128, 0},     // DarkGreen
	{0, 128, 128},   // DarkCyan
	{128, 0, 0},     // DarkRed
	{128, 0, 128},   // DarkMagenta
	{128, 128, 0},   // DarkYellow
	{192, 192, 192}, // Gray
	{128, 128, 128}, // DarkGray
	{0, 0, 255},     // Blue
	{0, 255, 0},     // Green
	{0, 255, 255},   // Cyan
	{255, 0, 0},     // Red
	{255, 0, 255},   // Magenta
	{255, 255, 0},   // Yellow
	{255, 255, 255}, // White
}

// RGB returns the 8-bit channels of c
func (c Color) RGB() (r, g, b uint8) {
	v := rgbTable[c&0x0F]
	return v[0], v[1], v[2]
}

// Colorful converts c to a go-colorful value
func (c Color) Colorful() colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Hex returns c as "#rrggbb"
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// Nearest maps an arbitrary colour to the closest palette entry by CIE Lab distance
func Nearest(col colorful.Color) Color {
	best := Black
	bestDist := -1.0
	for i := Color(0); i < Count; i++ {
		d := col.DistanceLab(i.Colorful())
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// Parse accepts a palette name (case-insensitive, '-', '_' and spaces ignored)
// or a "#rgb"/"#rrggbb" hex string mapped to the nearest entry
func Parse(s string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(key, "#") {
		col, err := colorful.Hex(expandShortHex(key))
		if err != nil {
			return Black, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		return Nearest(col), nil
	}

	key = strings.NewReplacer("-", "", "_", "", " ", "", "grey", "gray").Replace(key)
	for i, name := range colorNames {
		if name == key {
			return Color(i), nil
		}
	}
	return Black, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// expandShortHex turns "#abc" into "#aabbcc"; other inputs pass through
func expandShortHex(s string) string {
	if len(s) != 4 {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}
