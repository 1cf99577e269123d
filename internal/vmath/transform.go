// transform.go - affine transform pairs (forward + cached inverse).
package vmath

import "math"

// Transform pairs a 4x4 affine matrix with its inverse, computed once at
// construction so hot-path code never re-inverts.
type Transform struct {
	M, MInv Mat4
}

func NewTransform(m Mat4) Transform {
	return Transform{M: m, MInv: m.Inverse()}
}

func IdentityTransform() Transform {
	return Transform{M: Identity4(), MInv: Identity4()}
}

// Inverse swaps M and MInv; no recomputation needed.
func (t Transform) Inverse() Transform {
	return Transform{M: t.MInv, MInv: t.M}
}

// Compose applies t first, then other (other.M * t.M), composing inverses
// in reverse order (t.MInv * other.MInv).
func (t Transform) Compose(other Transform) Transform {
	return Transform{
		M:    other.M.Mul(t.M),
		MInv: t.MInv.Mul(other.MInv),
	}
}

func (t Transform) TransformPoint(p Vec3) Vec3  { return t.M.TransformPoint(p) }
func (t Transform) TransformVector(v Vec3) Vec3 { return t.M.TransformVector(v) }
func (t Transform) TransformNormal(n Vec3) Vec3 { return TransformNormal(t.MInv, n) }

func LookAt(eye, target, up Vec3) Transform {
	dir := target.Sub(eye).Normalize()
	right := up.Normalize().Cross(dir).Normalize()
	newUp := dir.Cross(right)
	m := Identity4()
	m[0][0], m[1][0], m[2][0] = right.X, right.Y, right.Z
	m[0][1], m[1][1], m[2][1] = newUp.X, newUp.Y, newUp.Z
	m[0][2], m[1][2], m[2][2] = dir.X, dir.Y, dir.Z
	m[0][3], m[1][3], m[2][3] = eye.X, eye.Y, eye.Z
	return NewTransform(m)
}

// Perspective builds a camera-to-screen projective transform with the given
// vertical field of view (degrees) and near/far clip planes.
func Perspective(fovy, near, far float64) Transform {
	invTan := 1 / math.Tan(fovy*math.Pi/360)
	persp := Mat4{
		{invTan, 0, 0, 0},
		{0, invTan, 0, 0},
		{0, 0, far / (far - near), -far * near / (far - near)},
		{0, 0, 1, 0},
	}
	return NewTransform(persp)
}
