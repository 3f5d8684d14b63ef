package scene

import (
	"github.com/lixenwraith/cellpaint/palette"
	"github.com/lixenwraith/cellpaint/vmath"
)

// Triangle is three homogeneous vertices
type Triangle struct {
	A, B, C vmath.Vec4
}

// Tri builds a triangle from points, promoting each to W = 1
func Tri(a, b, c vmath.Vec3) Triangle {
	return Triangle{a.Vec4(), b.Vec4(), c.Vec4()}
}

// Face is a group of triangles sharing a colour and fill mode
type Face struct {
	Color     palette.Color
	Fill      bool
	Triangles []Triangle
}

// Renderable is anything the scene can draw: faces in model space plus the
// model transform to apply this frame
type Renderable interface {
	Faces() []Face
	Transform() vmath.Mat4
}

// Mesh is the standard Renderable. Model is mutated freely by frame code
type Mesh struct {
	Model vmath.Mat4
	faces []Face
}

// NewMesh returns a mesh with an identity model transform
func NewMesh(faces ...Face) *Mesh {
	return &Mesh{Model: vmath.Identity(), faces: faces}
}

func (m *Mesh) Faces() []Face         { return m.faces }
func (m *Mesh) Transform() vmath.Mat4 { return m.Model }
func (m *Mesh) AddFace(f Face)        { m.faces = append(m.faces, f) }

// TriangleCount sums triangles over all faces
func (m *Mesh) TriangleCount() int {
	n := 0
	for _, f := range m.faces {
		n += len(f.Triangles)
	}
	return n
}

// SetColor recolours every face
func (m *Mesh) SetColor(c palette.Color) {
	for i := range m.faces {
		m.faces[i].Color = c
	}
}

// SetFill switches every face between filled and wireframe
func (m *Mesh) SetFill(fill bool) {
	for i := range m.faces {
		m.faces[i].Fill = fill
	}
}

// Bounds returns the axis-aligned model-space bounding box
func (m *Mesh) Bounds() (lo, hi vmath.Vec3, ok bool) {
	for _, f := range m.faces {
		for _, t := range f.Triangles {
			for _, v := range [3]vmath.Vec4{t.A, t.B, t.C} {
				p := v.Vec3()
				if !ok {
					lo, hi, ok = p, p, true
					continue
				}
				lo = vmath.Vec3{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
				hi = vmath.Vec3{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
			}
		}
	}
	return lo, hi, ok
}

// Normalize returns a transform that centres the mesh on the origin and scales
// its largest extent to 2, so loaded models fit the unit primitives' frame
func (m *Mesh) Normalize() vmath.Mat4 {
	lo, hi, ok := m.Bounds()
	if !ok {
		return vmath.Identity()
	}
	c := lo.Add(hi).Scale(0.5)
	ext := hi.Sub(lo)
	size := max(ext.X, ext.Y, ext.Z)
	s := 1.0
	if size > 0 {
		s = 2 / size
	}
	return vmath.Translation(-c.X, -c.Y, -c.Z).Mul(vmath.Scaling(s, s, s))
}
