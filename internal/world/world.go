// world.go - the flat, BVH-backed scene representation.
package world

import (
	"fmt"

	"github.com/hoptracer/hoptracer/internal/bvh"
	"github.com/hoptracer/hoptracer/internal/geometry"
	"github.com/hoptracer/hoptracer/internal/vmath"
)

// World owns every mesh and instance in the scene and, after Preprocess,
// the combined top+bottom BVH node array and the flat primitive arrays that
// traversal addresses.
type World struct {
	meshes    []*geometry.TriangleMesh
	instances []*geometry.ShapeInstance

	// Flat arrays, valid only after Preprocess.
	Positions []vmath.Vec3 // len = 3 * totalPrimCount
	Normals   []vmath.Vec3
	UVs       [][2]float64
	MatIDs    []int32 // len = totalPrimCount

	Nodes []bvh.Node

	InstanceInverse    []vmath.Transform // world-to-mesh, per instance
	InstanceBottomRoot []int32           // bottom BVH root index, per instance

	preprocessed bool

	bbox      vmath.BBox
	bboxDirty bool
}

func New() *World {
	return &World{bboxDirty: true}
}

// AddMesh registers a mesh with the World's mesh registry and returns its id.
func (w *World) AddMesh(mesh *geometry.TriangleMesh) int32 {
	id := int32(len(w.meshes))
	w.meshes = append(w.meshes, mesh)
	return id
}

// AddInstance places meshID in world space via xform and returns the new
// instance's index (the index a top-level leaf stores and HitInfo.ShapeID
// refers to).
func (w *World) AddInstance(name string, meshID int32, xform vmath.Transform) int32 {
	inst := geometry.NewShapeInstance(name, int(meshID), xform)
	idx := int32(len(w.instances))
	w.instances = append(w.instances, inst)
	w.bboxDirty = true
	return idx
}

// AddShape registers meshID with an identity-transform instance, matching
// the bare, identity-transform placement shorthand for a mesh with no instance.
func (w *World) AddShape(meshID int32) int32 {
	return w.AddInstance(fmt.Sprintf("shape-%d", meshID), meshID, vmath.IdentityTransform())
}

func (w *World) Mesh(id int32) *geometry.TriangleMesh { return w.meshes[id] }
func (w *World) Instance(idx int32) *geometry.ShapeInstance { return w.instances[idx] }
func (w *World) InstanceCount() int { return len(w.instances) }

// GetBBox lazily recomputes the union of instance AABBs.
func (w *World) GetBBox() vmath.BBox {
	if w.bboxDirty {
		b := vmath.EmptyBBox()
		for _, inst := range w.instances {
			if inst.HasBBox() {
				b = vmath.UnionBBox(b, inst.BBox())
			}
		}
		w.bbox = b
		w.bboxDirty = false
	}
	return w.bbox
}

// Preprocess builds the top-level instance BVH and every per-mesh
// bottom-level BVH, folding triangle data into the World's flat arrays.
// Repeated calls are not supported — the instance/mesh list must be final.
func (w *World) Preprocess() error {
	if w.preprocessed {
		panic("world: Preprocess called more than once")
	}
	for _, inst := range w.instances {
		if int(inst.MeshID) < 0 || int(inst.MeshID) >= len(w.meshes) {
			return fmt.Errorf("world: instance %q references missing mesh id %d", inst.Name, inst.MeshID)
		}
	}
	w.partitionInstances()
	w.partitionMeshes()
	w.preprocessed = true
	w.bboxDirty = true
	return nil
}

// Intersect performs a closest-hit query. It returns (HitInfo{}, false) for
// an empty world or a miss.
func (w *World) Intersect(ray geometry.Ray) (geometry.HitInfo, bool) {
	if len(w.Nodes) == 0 {
		return geometry.HitInfo{}, false
	}
	tmax := ray.TMax
	var hit geometry.HitInfo
	found := false

	test := func(node *bvh.Node, localOrigin, localDir vmath.Vec3, instanceIdx int32, tmaxPtr *float64) bool {
		offset := node.PrimitiveOffset()
		count := int32(node.PrimCount)
		hitThis := false
		for i := int32(0); i < count; i++ {
			primIdx := offset + i
			p0 := w.Positions[primIdx*3+0]
			p1 := w.Positions[primIdx*3+1]
			p2 := w.Positions[primIdx*3+2]
			t, b1, b2, ok := geometry.IntersectTriangle(localOrigin, localDir, p0, p1, p2, ray.TMin, *tmaxPtr)
			if !ok {
				continue
			}
			*tmaxPtr = t
			hit = geometry.HitInfo{T: t, B1: b1, B2: b2, PrimID: primIdx, ShapeID: instanceIdx, WorldDir: ray.Dir}
			hitThis = true
			found = true
		}
		return hitThis
	}

	params := bvh.TwoLevelParams{InstanceBottomRoot: w.InstanceBottomRoot, InstanceInverse: w.InstanceInverse}
	bvh.IntersectTwoLevelClosest(w.Nodes, params, ray.Origin, ray.Dir, ray.TMin, &tmax, test)
	if !found {
		return geometry.HitInfo{}, false
	}
	return hit, true
}

// IntersectAny performs an any-hit query; it returns true iff Intersect
// would have returned a hit, but may report a different (non-closest)
// primitive internally.
func (w *World) IntersectAny(ray geometry.Ray) bool {
	if len(w.Nodes) == 0 {
		return false
	}
	tmax := ray.TMax
	test := func(node *bvh.Node, localOrigin, localDir vmath.Vec3, instanceIdx int32, tmaxPtr *float64) bool {
		offset := node.PrimitiveOffset()
		count := int32(node.PrimCount)
		for i := int32(0); i < count; i++ {
			primIdx := offset + i
			p0 := w.Positions[primIdx*3+0]
			p1 := w.Positions[primIdx*3+1]
			p2 := w.Positions[primIdx*3+2]
			_, _, _, ok := geometry.IntersectTriangle(localOrigin, localDir, p0, p1, p2, ray.TMin, *tmaxPtr)
			if ok {
				return true
			}
		}
		return false
	}
	params := bvh.TwoLevelParams{InstanceBottomRoot: w.InstanceBottomRoot, InstanceInverse: w.InstanceInverse}
	return bvh.IntersectTwoLevelAny(w.Nodes, params, ray.Origin, ray.Dir, ray.TMin, &tmax, test)
}
