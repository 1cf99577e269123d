package objloader

import (
	"strings"
	"testing"
)

func TestLoadTriangle(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	tris, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(tris) != 1 {
		t.Fatalf("got %d triangles, want 1", len(tris))
	}
	tri := tris[0]
	if tri.P[0].X != 0 || tri.P[1].X != 1 || tri.P[2].Y != 1 {
		t.Fatalf("unexpected positions: %+v", tri.P)
	}
}

func TestLoadFansQuad(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	tris, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(tris) != 2 {
		t.Fatalf("got %d triangles, want 2 (fan of a quad)", len(tris))
	}
}

func TestLoadNegativeIndices(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	tris, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(tris) != 1 {
		t.Fatalf("got %d triangles, want 1", len(tris))
	}
}

func TestLoadComputesFaceNormalFallback(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	tris, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	n := tris[0].N[0]
	if n.Z <= 0 {
		t.Fatalf("expected +Z-facing normal fallback, got %+v", n)
	}
}

func TestLoadRejectsDegenerateFace(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
f 1 2
`
	if _, err := Load(strings.NewReader(src)); err == nil {
		t.Fatal("expected error for a face with fewer than 3 vertices")
	}
}

func TestLoadRejectsOutOfRangeIndex(t *testing.T) {
	src := `
v 0 0 0
f 1 2 3
`
	if _, err := Load(strings.NewReader(src)); err == nil {
		t.Fatal("expected error for an out-of-range vertex index")
	}
}

func TestLoadSkipsUnknownDirectives(t *testing.T) {
	src := `
o MyObject
v 0 0 0
v 1 0 0
v 0 1 0
usemtl Default
f 1 2 3
`
	tris, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(tris) != 1 {
		t.Fatalf("got %d triangles, want 1", len(tris))
	}
}
