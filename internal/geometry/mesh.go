// mesh.go - TriangleMesh, owned by the shape registry until preprocessing.
package geometry

import "github.com/hoptracer/hoptracer/internal/vmath"

// TriangleMesh owns a flat triangle list and per-triangle AABBs until
// World.preprocess folds them into the World's global flat arrays, at which
// point Tris/BBoxes may be released.
type TriangleMesh struct {
	Name   string
	Tris   []Triangle
	bboxes []vmath.BBox

	bbox      vmath.BBox
	bboxValid bool
}

func NewTriangleMesh(name string, tris []Triangle) *TriangleMesh {
	m := &TriangleMesh{Name: name, Tris: tris}
	m.bboxes = make([]vmath.BBox, len(tris))
	for i, t := range tris {
		m.bboxes[i] = t.BBox()
	}
	return m
}

func (m *TriangleMesh) PrimitiveCount() int { return len(m.Tris) }

func (m *TriangleMesh) TriBBox(i int) vmath.BBox { return m.bboxes[i] }

func (m *TriangleMesh) BBox() vmath.BBox {
	if !m.bboxValid {
		b := vmath.EmptyBBox()
		for _, tb := range m.bboxes {
			b = vmath.UnionBBox(b, tb)
		}
		m.bbox = b
		m.bboxValid = true
	}
	return m.bbox
}

func (m *TriangleMesh) Centroid() vmath.Vec3 { return m.BBox().Center() }

// Release drops the per-triangle source data once the World has folded it
// into the global flat arrays during preprocessing.
func (m *TriangleMesh) Release() {
	m.Tris = nil
	m.bboxes = nil
}
