package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-9

func TestMat4MulIdentity(t *testing.T) {
	m := Translation(1, 2, 3).Mul(RotationZ(0.3))
	assert.Equal(t, m, m.Mul(Identity()))
	assert.Equal(t, m, Identity().Mul(m))
}

func TestMat4MulNotCommutative(t *testing.T) {
	a := Translation(5, 0, 0)
	b := RotationZ(math.Pi / 2)
	assert.False(t, a.Mul(b).ApproxEqual(b.Mul(a), tol))
}

func TestMat4AtSet(t *testing.T) {
	var m Mat4
	m.Set(2, 3, 7)
	assert.Equal(t, 7.0, m.At(2, 3))
	assert.Equal(t, 7.0, m[11])
	assert.Equal(t, m, m.Transpose().Transpose())
	assert.Equal(t, 7.0, m.Transpose().At(3, 2))
}

func TestRowVectorTranslation(t *testing.T) {
	v := Vec4{1, 1, 1, 1}.MulMat4(Translation(2, 3, 4))
	assert.Equal(t, Vec4{3, 4, 5, 1}, v)

	// Directions ignore translation
	d := Vec3{1, 0, 0}.MulMat4(Translation(2, 3, 4))
	assert.Equal(t, Vec3{1, 0, 0}, d)
}

func TestQuatRotationZeroIsIdentity(t *testing.T) {
	m := QuatRotation(Up, 0).Mat4()
	assert.True(t, m.ApproxEqual(Identity(), tol), "got %v", m)
}

func TestQuatRotationInverse(t *testing.T) {
	tests := []struct {
		name  string
		axis  Vec3
		angle float64
	}{
		{"up quarter", Up, math.Pi / 2},
		{"right small", Right, 0.1},
		{"forward large", Forward, 2.5},
		{"oblique", Vec3{1, 1, 1}.Normalize(), 1.234},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatRotation(tt.axis, tt.angle).Mul(QuatRotation(tt.axis, -tt.angle))
			assert.True(t, q.Mat4().ApproxEqual(Identity(), tol), "got %v", q.Mat4())

			// Matrix composition agrees with quaternion composition
			mm := QuatRotation(tt.axis, tt.angle).Mat4().Mul(QuatRotation(tt.axis, -tt.angle).Mat4())
			assert.True(t, mm.ApproxEqual(Identity(), tol))
		})
	}
}

func TestQuatMatchesAxisRotation(t *testing.T) {
	// About Z, the quaternion matrix equals the explicit Z rotation
	a := 0.7
	assert.True(t, QuatRotation(Forward, a).Mat4().ApproxEqual(RotationZ(a), tol))
}

func TestQuatConjugate(t *testing.T) {
	q := QuatRotation(Right, 0.8)
	r := q.Mul(q.Conjugate())
	assert.InDelta(t, 1, r.W, tol)
	assert.InDelta(t, 0, r.X, tol)
	assert.Equal(t, Quat{0, 0, 0, 1}, QuatIdentity())
}

func TestVectorOps(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}
	assert.Equal(t, Vec3{0, 0, 1}, a.Cross(b))
	assert.Equal(t, 0.0, a.Dot(b))
	assert.InDelta(t, math.Sqrt2, a.Distance(b), tol)
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
	assert.InDelta(t, 1, Vec3{3, 4, 12}.Normalize().Length(), tol)
	assert.Equal(t, Vec4{1, 2, 3, 1}, Vec3{1, 2, 3}.Vec4())

	v := Vec2{3, 4}
	assert.Equal(t, 5.0, v.Length())
	n := v.Normalize()
	assert.InDelta(t, 0.6, n.X, tol)
	assert.InDelta(t, 0.8, n.Y, tol)
	assert.True(t, v.Finite())
	assert.False(t, Vec2{math.NaN(), 0}.Finite())
	assert.False(t, Vec2{0, math.Inf(1)}.Finite())
}

func TestPerspectiveDepthToW(t *testing.T) {
	p := Perspective(math.Pi/2, 1, 0.1, 100)
	v := Vec4{0, 0, -10, 1}.MulMat4(p)
	assert.InDelta(t, 10, v.W, tol)
	assert.InDelta(t, 1, p[0], tol)
	assert.InDelta(t, 1, p[5], tol)
}

func TestFastRand(t *testing.T) {
	r := NewFastRand(0)
	for i := 0; i < 1000; i++ {
		n := r.Intn(7)
		assert.True(t, n >= 0 && n < 7)
	}
	assert.Equal(t, 0, r.Intn(0))

	a, b := NewFastRand(42), NewFastRand(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}
