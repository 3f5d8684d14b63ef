package vmath

import "math"

// Mat4 is a 4x4 matrix stored row-major: element (row, col) is m[row*4+col].
// The zero value is the zero matrix, not identity
type Mat4 [16]float64

// Identity returns the identity matrix
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns element (row, col)
func (m Mat4) At(row, col int) float64 {
	return m[row*4+col]
}

// Set writes element (row, col)
func (m *Mat4) Set(row, col int, v float64) {
	m[row*4+col] = v
}

// Mul returns m * n. Not commutative: with row vectors, v * (m * n) applies m first
func (m Mat4) Mul(n Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				r[i*4+j] = r[i*4+j] + m[i*4+k]*n[k*4+j]
			}
		}
	}
	return r
}

// Transpose returns the transposed matrix
func (m Mat4) Transpose() Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[j*4+i] = m[i*4+j]
		}
	}
	return r
}

// ApproxEqual compares element-wise within tol
func (m Mat4) ApproxEqual(n Mat4, tol float64) bool {
	for i := range m {
		if math.Abs(m[i]-n[i]) > tol {
			return false
		}
	}
	return true
}

// Translation returns a row-vector translation matrix (offset in the bottom row)
func Translation(x, y, z float64) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Scaling returns a per-axis scale matrix
func Scaling(x, y, z float64) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = x, y, z
	return m
}

// RotationX returns a rotation about the X axis
func RotationX(rad float64) Mat4 {
	m := Identity()
	m[5] = math.Cos(rad)
	m[6] = -math.Sin(rad)
	m[9] = math.Sin(rad)
	m[10] = math.Cos(rad)
	return m
}

// RotationY returns a rotation about the Y axis
func RotationY(rad float64) Mat4 {
	m := Identity()
	m[0] = math.Cos(rad)
	m[2] = math.Sin(rad)
	m[8] = -math.Sin(rad)
	m[10] = math.Cos(rad)
	return m
}

// RotationZ returns a rotation about the Z axis
func RotationZ(rad float64) Mat4 {
	m := Identity()
	m[0] = math.Cos(rad)
	m[1] = math.Sin(rad)
	m[4] = -math.Sin(rad)
	m[5] = math.Cos(rad)
	return m
}

// Perspective returns a right-handed perspective projection for row vectors.
// fov is the vertical field of view in radians; visible geometry has negative Z.
// Clip W equals -Z, so a point on the camera plane yields W = 0
func Perspective(fov, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(fov/2)
	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = 2 * far * near / (near - far)
	return m
}
