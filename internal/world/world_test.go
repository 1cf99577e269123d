package world

import (
	"testing"

	"github.com/hoptracer/hoptracer/internal/geometry"
	"github.com/hoptracer/hoptracer/internal/vmath"
)

func singleTriangleMesh() *geometry.TriangleMesh {
	tri := geometry.Triangle{
		P: [3]vmath.Vec3{
			{X: -1, Y: -1, Z: 0},
			{X: 1, Y: -1, Z: 0},
			{X: 0, Y: 1, Z: 0},
		},
	}
	return geometry.NewTriangleMesh("quad", []geometry.Triangle{tri})
}

func TestPreprocessEmptyWorldIntersectMisses(t *testing.T) {
	w := New()
	if err := w.Preprocess(); err != nil {
		t.Fatalf("Preprocess: %v", err)
	}
	ray := geometry.NewRay(vmath.Vec3{Z: 5}, vmath.Vec3{Z: -1}, 0, 100)
	if _, ok := w.Intersect(ray); ok {
		t.Fatal("an empty world should never report a hit")
	}
}

func TestPreprocessRejectsDanglingMeshReference(t *testing.T) {
	w := New()
	w.AddInstance("dangling", 0, vmath.IdentityTransform())
	if err := w.Preprocess(); err == nil {
		t.Fatal("expected an error for an instance referencing a missing mesh")
	}
}

func TestIntersectFindsTriangleThroughInstance(t *testing.T) {
	w := New()
	meshID := w.AddMesh(singleTriangleMesh())
	w.AddShape(meshID)
	if err := w.Preprocess(); err != nil {
		t.Fatalf("Preprocess: %v", err)
	}

	hitRay := geometry.NewRay(vmath.Vec3{X: 0, Y: -0.3, Z: 5}, vmath.Vec3{X: 0, Y: 0, Z: -1}, 0, 100)
	hit, ok := w.Intersect(hitRay)
	if !ok {
		t.Fatal("expected a hit through the triangle's interior")
	}
	if hit.ShapeID != 0 {
		t.Fatalf("ShapeID = %d, want 0", hit.ShapeID)
	}
	if !w.IntersectAny(hitRay) {
		t.Fatal("IntersectAny should agree that this ray hits")
	}
}

func TestIntersectMissesOutsideTriangle(t *testing.T) {
	w := New()
	meshID := w.AddMesh(singleTriangleMesh())
	w.AddShape(meshID)
	if err := w.Preprocess(); err != nil {
		t.Fatalf("Preprocess: %v", err)
	}

	missRay := geometry.NewRay(vmath.Vec3{X: 10, Y: 10, Z: 5}, vmath.Vec3{X: 0, Y: 0, Z: -1}, 0, 100)
	if _, ok := w.Intersect(missRay); ok {
		t.Fatal("ray outside the triangle's footprint should not hit")
	}
	if w.IntersectAny(missRay) {
		t.Fatal("IntersectAny should agree that this ray misses")
	}
}

func TestGetBBoxCoversInstance(t *testing.T) {
	w := New()
	meshID := w.AddMesh(singleTriangleMesh())
	w.AddShape(meshID)
	if err := w.Preprocess(); err != nil {
		t.Fatalf("Preprocess: %v", err)
	}
	b := w.GetBBox()
	if b.IsEmpty() {
		t.Fatal("a world with one instance should have a non-empty bbox")
	}
}
