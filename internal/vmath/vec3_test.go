package vmath

import (
	"math"
	"testing"
)

func approxVec3(a, b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestVec3CrossIsPerpendicularToBothOperands(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}
	c := a.Cross(b)
	if math.Abs(c.Dot(a)) > 1e-12 || math.Abs(c.Dot(b)) > 1e-12 {
		t.Fatalf("cross product %v not perpendicular to operands", c)
	}
	if !approxVec3(c, Vec3{0, 0, 1}, 1e-12) {
		t.Fatalf("(1,0,0) x (0,1,0) = %v, want (0,0,1)", c)
	}
}

func TestVec3NormalizeProducesUnitLength(t *testing.T) {
	v := Vec3{3, 4, 0}.Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Fatalf("normalized length = %v, want 1", v.Length())
	}
}

func TestVec3NormalizeZeroVectorIsIdentity(t *testing.T) {
	v := Vec3{}.Normalize()
	if v != (Vec3{}) {
		t.Fatalf("Normalize(zero) = %v, want zero", v)
	}
}

func TestVec3AxisAndSetAxisRoundTrip(t *testing.T) {
	v := Vec3{1, 2, 3}
	for axis, want := range []float64{1, 2, 3} {
		if got := v.Axis(axis); got != want {
			t.Fatalf("Axis(%d) = %v, want %v", axis, got, want)
		}
	}
	v2 := v.SetAxis(1, 99)
	if v2.Y != 99 || v2.X != 1 || v2.Z != 3 {
		t.Fatalf("SetAxis(1, 99) = %v", v2)
	}
}

func TestCoordinateSystemIsOrthonormal(t *testing.T) {
	v1 := Vec3{0.267, 0.535, 0.802}.Normalize()
	v2, v3 := CoordinateSystem(v1)
	for _, pair := range [][2]Vec3{{v1, v2}, {v1, v3}, {v2, v3}} {
		if math.Abs(pair[0].Dot(pair[1])) > 1e-9 {
			t.Fatalf("basis vectors not orthogonal: %v . %v = %v", pair[0], pair[1], pair[0].Dot(pair[1]))
		}
	}
	for _, v := range []Vec3{v1, v2, v3} {
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("basis vector %v not unit length", v)
		}
	}
}

func TestMinMax(t *testing.T) {
	a := Vec3{1, 5, -2}
	b := Vec3{3, 2, -8}
	if got := Min(a, b); got != (Vec3{1, 2, -8}) {
		t.Fatalf("Min = %v", got)
	}
	if got := Max(a, b); got != (Vec3{3, 5, -2}) {
		t.Fatalf("Max = %v", got)
	}
}
