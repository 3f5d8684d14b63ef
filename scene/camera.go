// Package scene is the 3D pipeline: a perspective camera, triangle meshes and
// a scene that projects them onto a render.Buffer.
package scene

import "github.com/lixenwraith/cellpaint/vmath"

// Camera projects homogeneous points to cell coordinates. The projection
// matrix is cached and only rebuilt when the output size or lens changes.
// Not safe for concurrent use; it belongs to the draw loop
type Camera struct {
	// View is applied after projection
	View vmath.Mat4

	fov        float64
	near, far  float64
	cellAspect float64

	projection   vmath.Mat4
	lastW, lastH int
	valid        bool
	rebuilds     int
}

// NewCamera returns a camera with an identity view. fov is the vertical field
// of view in radians
func NewCamera(fov, near, far float64) *Camera {
	return &Camera{
		View:       vmath.Identity(),
		fov:        fov,
		near:       near,
		far:        far,
		cellAspect: 1,
	}
}

func (c *Camera) FOV() float64  { return c.fov }
func (c *Camera) Near() float64 { return c.near }
func (c *Camera) Far() float64  { return c.far }

// SetLens changes field of view and clip planes
func (c *Camera) SetLens(fov, near, far float64) {
	c.fov, c.near, c.far = fov, near, far
	c.valid = false
}

// SetCellAspect sets the width/height ratio of one output cell. Terminal cells
// are roughly twice as tall as wide, so 0.5 keeps circles round there
func (c *Camera) SetCellAspect(a float64) {
	if a <= 0 {
		a = 1
	}
	c.cellAspect = a
	c.valid = false
}

// Projection returns the projection matrix for a width x height target
func (c *Camera) Projection(width, height int) vmath.Mat4 {
	if !c.valid || width != c.lastW || height != c.lastH {
		aspect := 1.0
		if height > 0 {
			aspect = float64(width) / float64(height) * c.cellAspect
		}
		c.projection = vmath.Perspective(c.fov, aspect, c.near, c.far)
		c.lastW, c.lastH = width, height
		c.valid = true
		c.rebuilds++
	}
	return c.projection
}

// Project maps v through model, projection and view (row vectors, in that
// order) and then to cell coordinates: x' = (x/w*0.5+0.5)*width. A zero W is
// treated as 1. ok is false when the result is not finite
func (c *Camera) Project(width, height int, v vmath.Vec4, model vmath.Mat4) (vmath.Vec2, bool) {
	clip := v.MulMat4(model.Mul(c.Projection(width, height).Mul(c.View)))
	w := clip.W
	if w == 0 {
		w = 1
	}
	p := vmath.Vec2{
		X: (clip.X/w*0.5 + 0.5) * float64(width),
		Y: (clip.Y/w*0.5 + 0.5) * float64(height),
	}
	if !p.Finite() {
		return vmath.Vec2{}, false
	}
	return p, true
}
