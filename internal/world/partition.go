// partition.go - the two BVH-build passes Preprocess runs.
package world

import (
	"github.com/hoptracer/hoptracer/internal/bvh"
	"github.com/hoptracer/hoptracer/internal/geometry"
	"github.com/hoptracer/hoptracer/internal/vmath"
)

// instanceItem pairs an instance's original index with its pointer so the
// builder can reorder items freely while the leaf callback still records
// the correct instance index.
type instanceItem struct {
	idx  int32
	inst *geometry.ShapeInstance
}

type instanceAccessor struct{}

func (instanceAccessor) BBox(it instanceItem) vmath.BBox     { return it.inst.BBox() }
func (instanceAccessor) Centroid(it instanceItem) vmath.Vec3 { return it.inst.BBox().Center() }

// partitionInstances builds the top-level BVH over instance pointers with
// min_leaf_size = 1, so every instance occupies its own leaf.
func (w *World) partitionInstances() {
	for _, inst := range w.instances {
		meshBBox := w.meshes[inst.MeshID].BBox()
		inst.CacheBBox(meshBBox)
	}

	items := make([]instanceItem, len(w.instances))
	for i, inst := range w.instances {
		items[i] = instanceItem{idx: int32(i), inst: inst}
	}

	if len(items) == 0 {
		w.Nodes = nil
		w.InstanceInverse = nil
		w.InstanceBottomRoot = nil
		return
	}

	leafFn := func(node *bvh.Node, items []instanceItem) {
		if len(items) != 1 {
			panic("world: top-level leaf must contain exactly one instance (min_leaf_size = 1)")
		}
		node.SetTopLeaf(items[0].idx)
	}

	w.Nodes = bvh.Build(items, instanceAccessor{}, bvh.InstanceParams(), leafFn)

	w.InstanceInverse = make([]vmath.Transform, len(w.instances))
	w.InstanceBottomRoot = make([]int32, len(w.instances))
	for i, inst := range w.instances {
		w.InstanceInverse[i] = inst.WorldFromMesh.Inverse()
	}
}

type triAccessor struct{ mesh *geometry.TriangleMesh }

func (a triAccessor) BBox(i int) vmath.BBox     { return a.mesh.TriBBox(i) }
func (a triAccessor) Centroid(i int) vmath.Vec3 { return a.mesh.Tris[i].Centroid() }

// partitionMeshes builds one bottom-level BVH per distinct mesh referenced
// by an instance, folding triangles into the World's global flat arrays as
// leaves are created, and wires every referencing instance's bottom root.
func (w *World) partitionMeshes() {
	// Group instance indices by mesh id, preserving first-seen mesh order.
	meshOrder := []int32{}
	seen := map[int32]bool{}
	instancesByMesh := map[int32][]int32{}
	for i, inst := range w.instances {
		mid := int32(inst.MeshID)
		if !seen[mid] {
			seen[mid] = true
			meshOrder = append(meshOrder, mid)
		}
		instancesByMesh[mid] = append(instancesByMesh[mid], int32(i))
	}

	for _, meshID := range meshOrder {
		mesh := w.meshes[meshID]
		n := mesh.PrimitiveCount()
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}

		leafFn := func(node *bvh.Node, items []int) {
			first := int32(len(w.MatIDs))
			for _, localIdx := range items {
				tri := mesh.Tris[localIdx]
				w.Positions = append(w.Positions, tri.P[0], tri.P[1], tri.P[2])
				w.Normals = append(w.Normals, tri.N[0], tri.N[1], tri.N[2])
				w.UVs = append(w.UVs,
					[2]float64{tri.UV[0].X, tri.UV[0].Y},
					[2]float64{tri.UV[1].X, tri.UV[1].Y},
					[2]float64{tri.UV[2].X, tri.UV[2].Y},
				)
				w.MatIDs = append(w.MatIDs, tri.MaterialID)
			}
			node.SetBottomLeaf(first, uint16(len(items)))
		}

		meshNodes := bvh.Build(items, triAccessor{mesh: mesh}, bvh.DefaultParams(), leafFn)

		base := int32(len(w.Nodes))
		for i := range meshNodes {
			if meshNodes[i].IsInterior() {
				meshNodes[i].SetRightChild(meshNodes[i].RightChild() + base)
			}
		}
		w.Nodes = append(w.Nodes, meshNodes...)

		for _, instIdx := range instancesByMesh[meshID] {
			w.InstanceBottomRoot[instIdx] = base
		}
		mesh.Release()
	}
}
