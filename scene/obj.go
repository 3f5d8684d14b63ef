package scene

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/cellpaint/palette"
	"github.com/lixenwraith/cellpaint/vmath"
)

var ErrMeshFormat = errors.New("invalid mesh data")

// ReadOBJ reads the triangle subset of Wavefront OBJ: "v x y z" vertices and
// "f i j k" faces with 1-based indices. Index forms "i/t/n" use the first
// field; negative indices count back from the latest vertex. Other record
// types are ignored. All triangles land in one face with the given colour
func ReadOBJ(r io.Reader, c palette.Color, fill bool) (*Mesh, error) {
	var verts []vmath.Vec3
	face := Face{Color: c, Fill: fill}

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: vertex needs 3 coordinates", ErrMeshFormat, line)
			}
			var p [3]float64
			for i := range p {
				f, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %w", ErrMeshFormat, line, err)
				}
				p[i] = f
			}
			verts = append(verts, vmath.Vec3{X: p[0], Y: p[1], Z: p[2]})

		case "f":
			if len(fields) != 4 {
				return nil, fmt.Errorf("%w: line %d: face needs 3 indices, got %d", ErrMeshFormat, line, len(fields)-1)
			}
			var tri [3]vmath.Vec3
			for i := range tri {
				idx, err := objIndex(fields[i+1], len(verts))
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %w", ErrMeshFormat, line, err)
				}
				tri[i] = verts[idx]
			}
			face.Triangles = append(face.Triangles, Tri(tri[0], tri[1], tri[2]))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read mesh: %w", err)
	}
	return NewMesh(face), nil
}

// objIndex resolves one face index token against n loaded vertices
func objIndex(tok string, n int) (int, error) {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, err
	}
	switch {
	case v > 0 && v <= n:
		return v - 1, nil
	case v < 0 && -v <= n:
		return n + v, nil
	}
	return 0, fmt.Errorf("vertex index %d out of range (have %d)", v, n)
}

// LoadOBJ reads an OBJ file from path
func LoadOBJ(path string, c palette.Color, fill bool) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mesh %s: %w", path, err)
	}
	defer f.Close()
	m, err := ReadOBJ(f, c, fill)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return m, nil
}
