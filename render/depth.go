package render

import "math"

// DepthFunc is the comparison a depth test applies to (incoming, stored)
type DepthFunc uint8

const (
	DepthLess DepthFunc = iota
	DepthLessEqual
	DepthEqual
	DepthNotEqual
	DepthGreater
	DepthGreaterEqual
	DepthAlways
	DepthNever
)

// Compare reports whether an incoming depth passes against the stored one
func (f DepthFunc) Compare(incoming, stored float64) bool {
	switch f {
	case DepthLess:
		return incoming < stored
	case DepthLessEqual:
		return incoming <= stored
	case DepthEqual:
		return incoming == stored
	case DepthNotEqual:
		return incoming != stored
	case DepthGreater:
		return incoming > stored
	case DepthGreaterEqual:
		return incoming >= stored
	case DepthAlways:
		return true
	}
	return false
}

// DepthBuffer holds one depth per cell. It is a hook for hidden-surface
// removal; nothing in the scene renderer consults it yet
type DepthBuffer struct {
	Func   DepthFunc
	values []float64
	width  int
	height int
}

// NewDepthBuffer returns a buffer cleared to +Inf using DepthLess
func NewDepthBuffer(width, height int) *DepthBuffer {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	d := &DepthBuffer{
		values: make([]float64, width*height),
		width:  width,
		height: height,
	}
	d.Clear()
	return d
}

// Clear resets every stored depth to +Inf
func (d *DepthBuffer) Clear() {
	for i := range d.values {
		d.values[i] = math.Inf(1)
	}
}

// At returns the stored depth, +Inf out of bounds
func (d *DepthBuffer) At(x, y int) float64 {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return math.Inf(1)
	}
	return d.values[y*d.width+x]
}

// Test reports whether depth passes at (x, y). Out of bounds never passes
func (d *DepthBuffer) Test(x, y int, depth float64) bool {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return false
	}
	return d.Func.Compare(depth, d.values[y*d.width+x])
}

// Write stores depth at (x, y) when it passes the test
func (d *DepthBuffer) Write(x, y int, depth float64) bool {
	if !d.Test(x, y, depth) {
		return false
	}
	d.values[y*d.width+x] = depth
	return true
}
