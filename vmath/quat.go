package vmath

import "math"

// Quat is a rotation quaternion
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity is the no-rotation quaternion
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// QuatRotation returns the unit quaternion rotating rad radians about axis.
// axis is expected to be normalized
func QuatRotation(axis Vec3, rad float64) Quat {
	sin := math.Sin(rad * 0.5)
	return Quat{
		X: axis.X * sin,
		Y: axis.Y * sin,
		Z: axis.Z * sin,
		W: math.Cos(rad * 0.5),
	}
}

// Mul returns the Hamilton product a * b
func (a Quat) Mul(b Quat) Quat {
	return Quat{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// Conjugate negates the vector part; for unit quaternions it is the inverse
func (a Quat) Conjugate() Quat {
	return Quat{-a.X, -a.Y, -a.Z, a.W}
}

// Mat4 returns the equivalent rotation matrix.
// Term order is fixed and products are explicitly rounded (no FMA fusion) so
// results stay bit-identical with the reference formula
func (a Quat) Mat4() Mat4 {
	m := Identity()
	m[0] = 1 - 2*(float64(a.Y*a.Y)+float64(a.Z*a.Z))
	m[1] = 2 * (float64(a.X*a.Y) + float64(a.Z*a.W))
	m[2] = 2 * (float64(a.X*a.Z) - float64(a.Y*a.W))
	m[3] = 0
	m[4] = 2 * (float64(a.X*a.Y) - float64(a.Z*a.W))
	m[5] = 1 - 2*(float64(a.X*a.X)+float64(a.Z*a.Z))
	m[6] = 2 * (float64(a.Z*a.Y) + float64(a.X*a.W))
	m[7] = 0
	m[8] = 2 * (float64(a.X*a.Z) + float64(a.Y*a.W))
	m[9] = 2 * (float64(a.Y*a.Z) - float64(a.X*a.W))
	m[10] = 1 - 2*(float64(a.X*a.X)+float64(a.Y*a.Y))
	m[11] = 0
	m[12] = 0
	m[13] = 0
	m[14] = 0
	m[15] = 1
	return m
}
