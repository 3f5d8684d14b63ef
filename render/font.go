package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/lixenwraith/cellpaint/brush"
)

// glyphCount is the number of code points a font file can define
const glyphCount = 256

var fontHeader = regexp.MustCompile(`(\d+)x(\d+)`)

// Font is a fixed-size bitmap font drawn as background colour. Glyph i covers
// code point i; undefined glyphs draw nothing but still advance
type Font struct {
	width, height int
	glyphs        [glyphCount][][]bool
	defined       int
}

// ParseFont reads a font: a "WxH" header line, then H rows per glyph in code
// point order starting at 0, where '+' marks a lit cell. Reading stops at EOF
// or after 256 glyphs
func ParseFont(r io.Reader) (*Font, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("%w: font header: %w", ErrFormat, err)
		}
		return nil, fmt.Errorf("%w: empty font", ErrFormat)
	}
	m := fontHeader.FindStringSubmatch(sc.Text())
	if m == nil {
		return nil, fmt.Errorf("%w: font header %q", ErrFormat, strings.TrimSpace(sc.Text()))
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: font size %dx%d", ErrFormat, w, h)
	}

	f := &Font{width: w, height: h}
	for g := 0; g < glyphCount; g++ {
		rows := make([][]bool, 0, h)
		for len(rows) < h && sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			row := make([]bool, len(line))
			for i, c := range line {
				row[i] = c == '+'
			}
			rows = append(rows, row)
		}
		if len(rows) == 0 {
			break
		}
		f.glyphs[g] = rows
		f.defined++
		if len(rows) < h {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: font glyphs: %w", ErrFormat, err)
	}
	return f, nil
}

// LoadFont parses the font file at path
func LoadFont(path string) (*Font, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open font %s: %w", path, err)
	}
	defer file.Close()
	return ParseFont(file)
}

func (f *Font) CharWidth() int  { return f.width }
func (f *Font) CharHeight() int { return f.height }

// Glyphs returns how many glyphs the font defines
func (f *Font) Glyphs() int { return f.defined }

// Measure returns the width in cells of one line of text: one column of
// spacing between printable characters
func (f *Font) Measure(line string) int {
	n := 0
	for _, c := range line {
		if !unicode.IsControl(c) {
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return n*(f.width+1) - 1
}

// Draw renders text at (x, y). Lit glyph cells take a background sampled from
// br. '\n' moves down CharHeight+1 rows. With AlignRight each line ends at x
func (f *Font) Draw(b *Buffer, x, y int, text string, br brush.Brush, align Align) {
	for i, line := range strings.Split(text, "\n") {
		ox := x
		if align == AlignRight {
			ox = x - f.Measure(line)
		}
		oy := y + i*(f.height+1)
		for _, c := range line {
			if unicode.IsControl(c) {
				continue
			}
			if c >= 0 && c < glyphCount {
				for gy, row := range f.glyphs[c] {
					for gx, on := range row {
						if on {
							b.paint(ox+gx, oy+gy, br)
						}
					}
				}
			}
			ox += f.width + 1
		}
	}
}
