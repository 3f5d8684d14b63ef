package scene

import (
	"math"

	"github.com/lixenwraith/cellpaint/brush"
	"github.com/lixenwraith/cellpaint/render"
	"github.com/lixenwraith/cellpaint/vmath"
)

// maxCoord bounds projected coordinates before integer conversion. Vertices
// near the camera plane project to huge values that would stall the rasterizer
const maxCoord = 1 << 15

// Scene is an ordered list of renderables viewed through one camera. Objects
// are drawn in list order with no depth sorting
type Scene struct {
	Camera  *Camera
	Objects []Renderable
}

// New returns an empty scene viewed through cam
func New(cam *Camera) *Scene {
	return &Scene{Camera: cam}
}

// Add appends renderables in draw order
func (s *Scene) Add(r ...Renderable) {
	s.Objects = append(s.Objects, r...)
}

// Render projects every triangle of every object and draws it onto buf with
// its face colour, filled or as wireframe. Returns the number of triangles
// drawn; triangles with a vertex that does not project to a sane cell are
// skipped
func (s *Scene) Render(buf *render.Buffer) int {
	if s.Camera == nil {
		return 0
	}
	w, h := buf.Width(), buf.Height()
	drawn := 0
	for _, obj := range s.Objects {
		model := obj.Transform()
		for _, face := range obj.Faces() {
			br := brush.Solid(face.Color)
			for _, tri := range face.Triangles {
				a, okA := s.project(w, h, tri.A, model)
				b, okB := s.project(w, h, tri.B, model)
				c, okC := s.project(w, h, tri.C, model)
				if !okA || !okB || !okC {
					continue
				}
				if face.Fill {
					buf.FillTriangle(a, b, c, br)
				} else {
					buf.DrawTriangle(a, b, c, br)
				}
				drawn++
			}
		}
	}
	return drawn
}

func (s *Scene) project(w, h int, v vmath.Vec4, model vmath.Mat4) (render.Point, bool) {
	p, ok := s.Camera.Project(w, h, v, model)
	if !ok || math.Abs(p.X) > maxCoord || math.Abs(p.Y) > maxCoord {
		return render.Point{}, false
	}
	return render.Point{X: int(p.X), Y: int(p.Y)}, true
}
