// instance.go - ShapeInstance, a placement of a mesh in world space.
package geometry

import "github.com/hoptracer/hoptracer/internal/vmath"

// ShapeInstance references a mesh by id and carries the world-from-mesh
// transform. A mesh may be instanced many times; the top-level BVH leaf
// stores the instance index, not the mesh index.
type ShapeInstance struct {
	Name          string
	MeshID        int
	WorldFromMesh vmath.Transform

	bbox      vmath.BBox
	bboxValid bool
}

func NewShapeInstance(name string, meshID int, xform vmath.Transform) *ShapeInstance {
	return &ShapeInstance{Name: name, MeshID: meshID, WorldFromMesh: xform}
}

// CacheBBox stores the world-space AABB computed by transforming the mesh's
// eight corner points through WorldFromMesh (a loose but cheap bound).
func (s *ShapeInstance) CacheBBox(meshBBox vmath.BBox) {
	corners := [8]vmath.Vec3{
		{X: meshBBox.PMin.X, Y: meshBBox.PMin.Y, Z: meshBBox.PMin.Z},
		{X: meshBBox.PMax.X, Y: meshBBox.PMin.Y, Z: meshBBox.PMin.Z},
		{X: meshBBox.PMin.X, Y: meshBBox.PMax.Y, Z: meshBBox.PMin.Z},
		{X: meshBBox.PMin.X, Y: meshBBox.PMin.Y, Z: meshBBox.PMax.Z},
		{X: meshBBox.PMax.X, Y: meshBBox.PMax.Y, Z: meshBBox.PMin.Z},
		{X: meshBBox.PMax.X, Y: meshBBox.PMin.Y, Z: meshBBox.PMax.Z},
		{X: meshBBox.PMin.X, Y: meshBBox.PMax.Y, Z: meshBBox.PMax.Z},
		{X: meshBBox.PMax.X, Y: meshBBox.PMax.Y, Z: meshBBox.PMax.Z},
	}
	b := vmath.EmptyBBox()
	for _, c := range corners {
		b = b.UnionPoint(s.WorldFromMesh.TransformPoint(c))
	}
	s.bbox = b
	s.bboxValid = true
}

func (s *ShapeInstance) BBox() vmath.BBox {
	return s.bbox
}

func (s *ShapeInstance) HasBBox() bool { return s.bboxValid }
