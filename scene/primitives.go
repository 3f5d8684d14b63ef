package scene

import (
	"github.com/lixenwraith/cellpaint/palette"
	"github.com/lixenwraith/cellpaint/vmath"
)

// quad splits the corner loop a-b-c-d into two triangles
func quad(a, b, c, d vmath.Vec3) []Triangle {
	return []Triangle{Tri(a, b, c), Tri(a, c, d)}
}

// NewPlane returns a square of side 2 in the XY plane centred on the origin
func NewPlane(c palette.Color, fill bool) *Mesh {
	return NewMesh(Face{
		Color: c,
		Fill:  fill,
		Triangles: quad(
			vmath.Vec3{X: -1, Y: 1}, vmath.Vec3{X: -1, Y: -1},
			vmath.Vec3{X: 1, Y: -1}, vmath.Vec3{X: 1, Y: 1},
		),
	})
}

// NewCube returns a cube of side 2 centred on the origin, one face per side
func NewCube(c palette.Color, fill bool) *Mesh {
	p := func(x, y, z float64) vmath.Vec3 { return vmath.Vec3{X: x, Y: y, Z: z} }
	sides := [6][]Triangle{
		quad(p(-1, 1, -1), p(-1, -1, -1), p(1, -1, -1), p(1, 1, -1)), // front
		quad(p(1, 1, 1), p(1, -1, 1), p(-1, -1, 1), p(-1, 1, 1)),     // back
		quad(p(-1, 1, 1), p(-1, -1, 1), p(-1, -1, -1), p(-1, 1, -1)), // left
		quad(p(1, 1, -1), p(1, -1, -1), p(1, -1, 1), p(1, 1, 1)),     // right
		quad(p(-1, -1, -1), p(-1, -1, 1), p(1, -1, 1), p(1, -1, -1)), // bottom
		quad(p(-1, 1, 1), p(-1, 1, -1), p(1, 1, -1), p(1, 1, 1)),     // top
	}
	m := NewMesh()
	for _, tris := range sides {
		m.AddFace(Face{Color: c, Fill: fill, Triangles: tris})
	}
	return m
}
