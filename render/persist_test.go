package render

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cellpaint/palette"
	"github.com/lixenwraith/cellpaint/vmath"
)

func randomBuffer(rng *vmath.FastRand, w, h int) *Buffer {
	b := NewBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.Set(x, y,
				rune(rng.Intn(0xD800)),
				palette.Color(rng.Intn(palette.Count)).Opt(),
				palette.Color(rng.Intn(palette.Count)).Opt())
		}
	}
	return b
}

func TestSaveLoadRoundTrip(t *testing.T) {
	rng := vmath.NewFastRand(1234)
	sizes := []struct{ w, h int }{{1, 1}, {2, 3}, {17, 5}, {64, 48}, {0, 0}}
	for _, sz := range sizes {
		b := randomBuffer(rng, sz.w, sz.h)
		var buf bytes.Buffer
		require.NoError(t, b.Save(&buf))
		assert.Equal(t, 8+4*sz.w*sz.h, buf.Len())

		got, err := Load(&buf)
		require.NoError(t, err)
		assert.True(t, b.Equal(got), "%dx%d", sz.w, sz.h)
	}
}

func TestSaveLayout(t *testing.T) {
	b := NewBuffer(2, 2)
	b.Set(0, 0, 'a', palette.Of(palette.Yellow), palette.Of(palette.DarkBlue))
	b.Set(0, 1, 'b', palette.Of(palette.Black), palette.Of(palette.Black))
	b.Set(1, 0, 'c', palette.Of(palette.White), palette.Of(palette.Black))
	b.Set(1, 1, 0x1F600, palette.Of(palette.Red), palette.Of(palette.Red))

	var buf bytes.Buffer
	require.NoError(t, b.Save(&buf))

	want := []byte{
		2, 0, 0, 0, 2, 0, 0, 0,
		0x1E, 0, 'a', 0, // (0,0)
		0x00, 0, 'b', 0, // (0,1): column index is the outer loop
		0x0F, 0, 'c', 0, // (1,0)
		0xCC, 0, 0xFD, 0xFF, // (1,1): outside the BMP
	}
	assert.Equal(t, want, buf.Bytes())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short header", []byte{1, 0, 0}},
		{"negative width", []byte{0xFF, 0xFF, 0xFF, 0xFF, 1, 0, 0, 0}},
		{"huge", []byte{0xFF, 0xFF, 0, 0, 0xFF, 0xFF, 0, 0}},
		{"truncated cells", []byte{1, 0, 0, 0, 2, 0, 0, 0, 0x1E, 0, 'a', 0}},
		{"attribute overflow", []byte{1, 0, 0, 0, 1, 0, 0, 0, 0x00, 0x01, 'a', 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.bin")
	b := randomBuffer(vmath.NewFastRand(5), 9, 4)
	require.NoError(t, b.SaveFile(path))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, b.Equal(got))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}
