package terminal

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/muesli/termenv"
)

// ErrColorMode is returned for unrecognised colour mode names
var ErrColorMode = errors.New("unknown color mode")

// ColorModes lists the canonical colour mode names
var ColorModes = []string{"auto", "none", "ansi16", "ansi256", "truecolor"}

var colorAliases = map[string]string{
	"":      "auto",
	"ascii": "none",
	"ansi":  "ansi16",
	"24bit": "truecolor",
}

// NormalizeColorMode returns the canonical name for mode, folding case,
// surrounding space and aliases
func NormalizeColorMode(mode string) (string, error) {
	m := strings.ToLower(strings.TrimSpace(mode))
	if alias, ok := colorAliases[m]; ok {
		m = alias
	}
	if !slices.Contains(ColorModes, m) {
		return "", fmt.Errorf("%w: %q", ErrColorMode, mode)
	}
	return m, nil
}

// ParseProfile maps a colour mode name to a termenv profile. "auto" inspects
// the environment and out
func ParseProfile(mode string, out io.Writer) (termenv.Profile, error) {
	m, err := NormalizeColorMode(mode)
	if err != nil {
		return termenv.Ascii, err
	}
	switch m {
	case "none":
		return termenv.Ascii, nil
	case "ansi16":
		return termenv.ANSI, nil
	case "ansi256":
		return termenv.ANSI256, nil
	case "truecolor":
		return termenv.TrueColor, nil
	}
	return termenv.NewOutput(out).EnvColorProfile(), nil
}

// ProfileName is the inverse of ParseProfile for the fixed profiles
func ProfileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi16"
	}
	return "none"
}
