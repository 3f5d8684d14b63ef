// Package palette defines the 16-colour console palette, the nullable colour
// used at drawing API boundaries and the packed foreground/background byte
// stored per grid cell.
package palette

// Color is a console palette entry. The value is the 4-bit attribute nibble:
// bit 0 blue, bit 1 green, bit 2 red, bit 3 intensity
type Color uint8

const (
	Black Color = iota
	DarkBlue
	DarkGreen
	DarkCyan
	DarkRed
	DarkMagenta
	DarkYellow
	Gray
	DarkGray
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	White
)

// Count is the number of palette entries
const Count = 16

var colorNames = [Count]string{
	"black", "darkblue", "darkgreen", "darkcyan",
	"darkred", "darkmagenta", "darkyellow", "gray",
	"darkgray", "blue", "green", "cyan",
	"red", "magenta", "yellow", "white",
}

// String returns the lowercase palette name
func (c Color) String() string {
	if c >= Count {
		return "invalid"
	}
	return colorNames[c]
}

// Valid reports whether c is one of the 16 palette entries
func (c Color) Valid() bool {
	return c < Count
}

// Opt lifts c into an Option that writes c
func (c Color) Opt() Option {
	return Option{Color: c, Valid: true}
}

// Option is a nullable colour. The zero value (Keep) leaves the target
// component unchanged when drawn
type Option struct {
	Color Color
	Valid bool
}

// Keep is the no-op colour
var Keep = Option{}

// Of returns an Option that writes c
func Of(c Color) Option {
	return Option{Color: c, Valid: true}
}

// Or returns the option's colour, or def when it is Keep
func (o Option) Or(def Color) Color {
	if !o.Valid {
		return def
	}
	return o.Color
}

// String renders the option for diagnostics
func (o Option) String() string {
	if !o.Valid {
		return "keep"
	}
	return o.Color.String()
}
