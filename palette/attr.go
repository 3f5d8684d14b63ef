package palette

// Attr packs a cell's colours into one byte: low nibble foreground, high
// nibble background. Bit layout matches the console attribute word, so the
// Additive blend is a plain OR
type Attr uint8

const (
	fgMask Attr = 0x0F
	bgMask Attr = 0xF0
)

// Pack builds an Attr from explicit colours
func Pack(fg, bg Color) Attr {
	return Attr(fg&0x0F) | Attr(bg&0x0F)<<4
}

// Fg returns the foreground colour
func (a Attr) Fg() Color {
	return Color(a & fgMask)
}

// Bg returns the background colour
func (a Attr) Bg() Color {
	return Color((a & bgMask) >> 4)
}

// WithFg replaces the foreground nibble; Keep returns a unchanged
func (a Attr) WithFg(o Option) Attr {
	if !o.Valid {
		return a
	}
	return a&bgMask | Attr(o.Color&0x0F)
}

// WithBg replaces the background nibble; Keep returns a unchanged
func (a Attr) WithBg(o Option) Attr {
	if !o.Valid {
		return a
	}
	return a&fgMask | Attr(o.Color&0x0F)<<4
}
