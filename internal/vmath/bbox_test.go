package vmath

import "testing"

func TestEmptyBBoxIsEmpty(t *testing.T) {
	if !EmptyBBox().IsEmpty() {
		t.Fatal("EmptyBBox() should report IsEmpty()")
	}
}

func TestUnionPointGrowsTheBox(t *testing.T) {
	b := EmptyBBox().UnionPoint(Vec3{X: 1, Y: 2, Z: 3})
	if b.IsEmpty() {
		t.Fatal("box with one point should not be empty")
	}
	if b.PMin != (Vec3{1, 2, 3}) || b.PMax != (Vec3{1, 2, 3}) {
		t.Fatalf("single-point box = %+v", b)
	}
	b = b.UnionPoint(Vec3{X: -1, Y: 5, Z: 0})
	if b.PMin != (Vec3{-1, 2, 0}) || b.PMax != (Vec3{1, 5, 3}) {
		t.Fatalf("box after second union = %+v", b)
	}
}

func TestUnionBBoxCombinesTwoBoxes(t *testing.T) {
	a := BBox{PMin: Vec3{0, 0, 0}, PMax: Vec3{1, 1, 1}}
	b := BBox{PMin: Vec3{-1, 2, 0}, PMax: Vec3{0.5, 3, 1}}
	u := UnionBBox(a, b)
	if u.PMin != (Vec3{-1, 0, 0}) || u.PMax != (Vec3{1, 3, 1}) {
		t.Fatalf("UnionBBox = %+v", u)
	}
}

func TestCenterIsMidpoint(t *testing.T) {
	b := BBox{PMin: Vec3{0, 0, 0}, PMax: Vec3{2, 4, 6}}
	if c := b.Center(); c != (Vec3{1, 2, 3}) {
		t.Fatalf("Center() = %v, want (1,2,3)", c)
	}
}

func TestDiagonalIsMaxMinusMin(t *testing.T) {
	b := BBox{PMin: Vec3{-1, -2, -3}, PMax: Vec3{4, 4, 4}}
	if d := b.Diagonal(); d != (Vec3{5, 6, 7}) {
		t.Fatalf("Diagonal() = %v, want (5,6,7)", d)
	}
}
