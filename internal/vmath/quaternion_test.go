package vmath

import (
	"math"
	"testing"
)

func TestQuatFromAxisAngleRotatesExpectedAmount(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, math.Pi/2)
	got := q.Rotate(Vec3{1, 0, 0})
	want := Vec3{0, 0, -1}
	if !approxVec3(got, want, 1e-9) {
		t.Fatalf("rotating (1,0,0) by 90deg around Y = %v, want %v", got, want)
	}
}

func TestQuatRotatePreservesLength(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{1, 2, 3}, 1.234)
	v := Vec3{5, -2, 7}
	got := q.Rotate(v)
	if math.Abs(got.Length()-v.Length()) > 1e-9 {
		t.Fatalf("rotation changed vector length: %v vs %v", got.Length(), v.Length())
	}
}

func TestIdentityQuatRotateIsNoOp(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := IdentityQuat().Rotate(v)
	if !approxVec3(got, v, 1e-12) {
		t.Fatalf("identity rotation changed vector: %v vs %v", got, v)
	}
}

func TestQuatMulComposesRotations(t *testing.T) {
	qx := QuatFromAxisAngle(Vec3{1, 0, 0}, math.Pi/2)
	qy := QuatFromAxisAngle(Vec3{0, 1, 0}, math.Pi/2)
	composed := qy.Mul(qx)
	v := Vec3{0, 0, 1}
	got := composed.Rotate(v)
	want := qy.Rotate(qx.Rotate(v))
	if !approxVec3(got, want, 1e-9) {
		t.Fatalf("composed rotation = %v, want %v (apply qx then qy)", got, want)
	}
}

func TestQuatNormalizeProducesUnitQuat(t *testing.T) {
	q := Quat{1, 2, 3, 4}.Normalize()
	if math.Abs(q.Length()-1) > 1e-12 {
		t.Fatalf("normalized quat length = %v, want 1", q.Length())
	}
}

func TestSlerpEndpointsReturnInputs(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{0, 1, 0}, 0.1)
	b := QuatFromAxisAngle(Vec3{0, 1, 0}, 1.5)
	if got := Slerp(a, b, 0); math.Abs(got.W-a.W) > 1e-9 {
		t.Fatalf("Slerp(a, b, 0) = %v, want a = %v", got, a)
	}
	if got := Slerp(a, b, 1); math.Abs(got.W-b.W) > 1e-9 {
		t.Fatalf("Slerp(a, b, 1) = %v, want b = %v", got, b)
	}
}
