package render

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/cellpaint/palette"
)

var ErrFormat = errors.New("invalid buffer data")

// maxUnits caps the cell count accepted by Load
const maxUnits = 1 << 26

const replacementChar = 0xFFFD

// Save writes the grid dump: little-endian int32 width and height, then one
// (int16 attr, uint16 char) record per cell with the column index as the outer
// loop and the row index inner. Runes outside the BMP are written as U+FFFD
func (b *Buffer) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:], uint32(int32(b.width)))
	binary.LittleEndian.PutUint32(hdr[4:], uint32(int32(b.height)))
	if _, err := bw.Write(hdr[:]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	var rec [4]byte
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			c := b.cells[y*b.width+x]
			ch := c.Rune
			if ch < 0 || ch > 0xFFFF {
				ch = replacementChar
			}
			binary.LittleEndian.PutUint16(rec[0:], uint16(c.Attr))
			binary.LittleEndian.PutUint16(rec[2:], uint16(ch))
			if _, err := bw.Write(rec[:]); err != nil {
				return fmt.Errorf("write cell (%d,%d): %w", x, y, err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// Load reads a grid written by Save
func Load(r io.Reader) (*Buffer, error) {
	br := bufio.NewReader(r)
	var hdr [8]byte
	if _, err := io.ReadFull(br, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrFormat, err)
	}
	w := int(int32(binary.LittleEndian.Uint32(hdr[0:])))
	h := int(int32(binary.LittleEndian.Uint32(hdr[4:])))
	if w < 0 || h < 0 || (w > 0 && h > maxUnits/w) {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrFormat, w, h)
	}

	b := NewBuffer(w, h)
	if w == 0 || h == 0 {
		return b, nil
	}

	var rec [4]byte
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if _, err := io.ReadFull(br, rec[:]); err != nil {
				return nil, fmt.Errorf("%w: cell (%d,%d): %w", ErrFormat, x, y, err)
			}
			attr := binary.LittleEndian.Uint16(rec[0:])
			if attr > 0xFF {
				return nil, fmt.Errorf("%w: cell (%d,%d) attribute %#x", ErrFormat, x, y, attr)
			}
			b.cells[y*w+x] = Cell{
				Rune: rune(binary.LittleEndian.Uint16(rec[2:])),
				Attr: palette.Attr(attr),
			}
		}
	}
	return b, nil
}

// SaveFile writes the grid dump to path
func (b *Buffer) SaveFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return b.Save(f)
}

// LoadFile reads a grid dump from path
func LoadFile(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	b, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return b, nil
}
