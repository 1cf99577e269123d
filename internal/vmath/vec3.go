// vec3.go - 3-component vector/point math shared by every other package.
package vmath

import "math"

// Vec3 is a 3-component real vector, used interchangeably as a point,
// direction, or color basis depending on context.
type Vec3 struct {
	X, Y, Z float64
}

func NewVec3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Mul(b Vec3) Vec3 { return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z} }
func (a Vec3) Scale(s float64) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }
func (a Vec3) Neg() Vec3 { return Vec3{-a.X, -a.Y, -a.Z} }

func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) LengthSquared() float64 { return a.Dot(a) }
func (a Vec3) Length() float64        { return math.Sqrt(a.LengthSquared()) }

// Normalize returns a unit vector. The zero vector normalizes to itself.
func (a Vec3) Normalize() Vec3 {
	l := a.Length()
	if l == 0 {
		return a
	}
	return a.Scale(1 / l)
}

// Axis returns the component on axis 0=X, 1=Y, 2=Z.
func (a Vec3) Axis(axis int) float64 {
	switch axis {
	case 0:
		return a.X
	case 1:
		return a.Y
	default:
		return a.Z
	}
}

func (a Vec3) SetAxis(axis int, v float64) Vec3 {
	switch axis {
	case 0:
		a.X = v
	case 1:
		a.Y = v
	default:
		a.Z = v
	}
	return a
}

func Min(a, b Vec3) Vec3 {
	return Vec3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)}
}

func Max(a, b Vec3) Vec3 {
	return Vec3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)}
}

// CoordinateSystem builds an orthonormal basis (v2, v3) around a unit vector
// v1, picking whichever axis is least parallel to v1 to seed the cross
// product. Used as the degenerate-tangent fallback in surface interaction
// construction.
func CoordinateSystem(v1 Vec3) (v2, v3 Vec3) {
	if math.Abs(v1.X) > math.Abs(v1.Y) {
		invLen := 1 / math.Sqrt(v1.X*v1.X+v1.Z*v1.Z)
		v2 = Vec3{-v1.Z * invLen, 0, v1.X * invLen}
	} else {
		invLen := 1 / math.Sqrt(v1.Y*v1.Y+v1.Z*v1.Z)
		v2 = Vec3{0, v1.Z * invLen, -v1.Y * invLen}
	}
	v3 = v1.Cross(v2)
	return
}
