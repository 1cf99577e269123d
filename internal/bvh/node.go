// node.go - the flat BVH node the builder emits and traversal walks.
//
// The layout follows the concrete Go reference (achilleasa/go-pathtrace's
// scene.BvhNode) rather than a packed child-AABB (SIMD-QBVH style) layout:
// a single AABB per node plus a two-purpose int32 field. Each Node owns its
// own bounding box; child AABBs are not duplicated into the parent.
package bvh

import "github.com/hoptracer/hoptracer/internal/vmath"

// NodeType tags whether a Node is interior or a leaf. Leaf nodes are further
// distinguished as bottom-level (PrimCount > 0) or top-level (PrimCount == 0).
type NodeType uint8

const (
	NodeInterior NodeType = 0
	NodeLeaf     NodeType = 1
)

// Node is kept at 64 bytes for cache-line hygiene.
type Node struct {
	PMin, PMax vmath.Vec3 // this node's own AABB

	// Data is a union: right-child node index (interior), primitive offset
	// into the World's flat vertex/normal/UV arrays (bottom leaf), or an
	// instance index (top leaf, PrimCount == 0).
	Data int32

	PrimCount uint16 // 0 iff this is a top-level leaf
	Axis      uint8  // split axis (0/1/2), meaningful for interior nodes
	Type      NodeType

	_pad [8]byte // pads the struct to a 64-byte cache line
}

func (n *Node) IsInterior() bool  { return n.Type == NodeInterior }
func (n *Node) IsTopLeaf() bool   { return n.Type == NodeLeaf && n.PrimCount == 0 }
func (n *Node) IsBottomLeaf() bool { return n.Type == NodeLeaf && n.PrimCount > 0 }

func (n *Node) BBox() vmath.BBox { return vmath.BBox{PMin: n.PMin, PMax: n.PMax} }

func (n *Node) SetBBox(b vmath.BBox) {
	n.PMin, n.PMax = b.PMin, b.PMax
}

// RightChild returns the node index of the right child of an interior node;
// the left child is always index+1 by construction.
func (n *Node) RightChild() int32 { return n.Data }

func (n *Node) SetRightChild(idx int32) { n.Data = idx }

func (n *Node) SetTopLeaf(instanceIdx int32) {
	n.Type = NodeLeaf
	n.Data = instanceIdx
	n.PrimCount = 0
}

func (n *Node) InstanceIndex() int32 { return n.Data }

func (n *Node) SetBottomLeaf(primOffset int32, count uint16) {
	n.Type = NodeLeaf
	n.Data = primOffset
	n.PrimCount = count
}

func (n *Node) PrimitiveOffset() int32 { return n.Data }
