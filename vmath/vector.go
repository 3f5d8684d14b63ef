// Package vmath provides float64 vector, matrix and quaternion types for the
// 3D pipeline, plus a small xorshift RNG shared by stochastic brushes.
//
// Vectors are row vectors: transforming is v * M, so composed matrices apply
// left to right.
package vmath

import "math"

// Vec2 is a 2D vector
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 is a homogeneous 3D vector; W is the projective component
type Vec4 struct {
	X, Y, Z, W float64
}

// Axis directions
var (
	Up      = Vec3{0, 1, 0}
	Down    = Vec3{0, -1, 0}
	Left    = Vec3{-1, 0, 0}
	Right   = Vec3{1, 0, 0}
	Forward = Vec3{0, 0, 1}
	Back    = Vec3{0, 0, -1}
)

// --- Vec2 ---

func (a Vec2) Add(b Vec2) Vec2         { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2         { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Mul(b Vec2) Vec2         { return Vec2{a.X * b.X, a.Y * b.Y} }
func (a Vec2) Scale(s float64) Vec2    { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Dot(b Vec2) float64      { return a.X*b.X + a.Y*b.Y }
func (a Vec2) LengthSq() float64       { return a.X*a.X + a.Y*a.Y }
func (a Vec2) Length() float64         { return math.Sqrt(a.LengthSq()) }
func (a Vec2) Distance(b Vec2) float64 { return a.Sub(b).Length() }

// Normalize returns the unit vector, zero-safe
func (a Vec2) Normalize() Vec2 {
	l := a.Length()
	if l == 0 {
		return Vec2{}
	}
	return a.Scale(1 / l)
}

// Finite reports whether both components are neither NaN nor infinite
func (a Vec2) Finite() bool {
	return !math.IsNaN(a.X) && !math.IsInf(a.X, 0) && !math.IsNaN(a.Y) && !math.IsInf(a.Y, 0)
}

// --- Vec3 ---

func (a Vec3) Add(b Vec3) Vec3         { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3         { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Mul(b Vec3) Vec3         { return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z} }
func (a Vec3) Scale(s float64) Vec3    { return Vec3{a.X * s, a.Y * s, a.Z * s} }
func (a Vec3) Dot(b Vec3) float64      { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func (a Vec3) LengthSq() float64       { return a.X*a.X + a.Y*a.Y + a.Z*a.Z }
func (a Vec3) Length() float64         { return math.Sqrt(a.LengthSq()) }
func (a Vec3) Distance(b Vec3) float64 { return a.Sub(b).Length() }

// Cross returns a x b
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Normalize returns the unit vector, zero-safe
// Optimization: one division, three multiplies
func (a Vec3) Normalize() Vec3 {
	l := a.Length()
	if l == 0 {
		return Vec3{}
	}
	inv := 1 / l
	return Vec3{a.X * inv, a.Y * inv, a.Z * inv}
}

// Vec4 promotes a point to homogeneous coordinates with W = 1
func (a Vec3) Vec4() Vec4 {
	return Vec4{a.X, a.Y, a.Z, 1}
}

// MulMat4 transforms a as a direction by the upper 3x3 of m
func (a Vec3) MulMat4(m Mat4) Vec3 {
	return Vec3{
		a.X*m[0] + a.Y*m[4] + a.Z*m[8],
		a.X*m[1] + a.Y*m[5] + a.Z*m[9],
		a.X*m[2] + a.Y*m[6] + a.Z*m[10],
	}
}

// --- Vec4 ---

func (a Vec4) Sub(b Vec4) Vec4      { return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }
func (a Vec4) Scale(s float64) Vec4 { return Vec4{a.X * s, a.Y * s, a.Z * s, a.W * s} }
func (a Vec4) Length() float64      { return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z + a.W*a.W) }

// Vec3 drops W without dividing
func (a Vec4) Vec3() Vec3 {
	return Vec3{a.X, a.Y, a.Z}
}

// MulMat4 returns the row vector a * m
func (a Vec4) MulMat4(m Mat4) Vec4 {
	return Vec4{
		a.X*m[0] + a.Y*m[4] + a.Z*m[8] + a.W*m[12],
		a.X*m[1] + a.Y*m[5] + a.Z*m[9] + a.W*m[13],
		a.X*m[2] + a.Y*m[6] + a.Z*m[10] + a.W*m[14],
		a.X*m[3] + a.Y*m[7] + a.Z*m[11] + a.W*m[15],
	}
}
