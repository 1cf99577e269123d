// builder.go - generic binary BVH builder.
//
// The original C++ template (item type + accessor + scoring strategy as
// compile-time parameters) is reformulated here as a Go generic function
// parameterized by an Accessor interface; the per-item accessor call is the
// only indirection on the hot path, since
// dynamic dispatch is acceptable there (the per-node slab test and leaf test
// stay monomorphic).
package bvh

import (
	"math"

	"github.com/hoptracer/hoptracer/internal/vmath"
)

// Accessor exposes the bounding box and centroid of an item of type T.
type Accessor[T any] interface {
	BBox(item T) vmath.BBox
	Centroid(item T) vmath.Vec3
}

// LeafFunc populates a freshly reserved leaf node's payload given the items
// that fell into it. If it does not set node.Type, the builder forces
// NodeLeaf after the callback returns.
type LeafFunc[T any] func(node *Node, items []T)

// Params holds the builder's tunable SAH parameters.
type Params struct {
	MinLeafSize   int
	NumSAHSplits  int
	TravCost      float64
	MinSideLength float64
	MinSplitStep  float64
}

// DefaultParams returns sensible defaults for mesh triangles:
// MIN_PRIMS_PER_LEAF = 8, NUM_SAH_SPLITS = 20, BVH_TRAV_COST = 0.25,
// min_side_length = 1e-3, min_split_step = 1e-5.
func DefaultParams() Params {
	return Params{
		MinLeafSize:   8,
		NumSAHSplits:  20,
		TravCost:      0.25,
		MinSideLength: 1e-3,
		MinSplitStep:  1e-5,
	}
}

// InstanceParams is DefaultParams with MinLeafSize = 1, used for the
// top-level instance BVH so every instance occupies its own leaf.
func InstanceParams() Params {
	p := DefaultParams()
	p.MinLeafSize = 1
	return p
}

// Build runs the recursive SAH partitioner over items and returns a flat
// node array in DFS order: node[0] is the root, and an interior node's left
// child is always at index+1.
func Build[T any](items []T, acc Accessor[T], params Params, leafFn LeafFunc[T]) []Node {
	b := &builder[T]{acc: acc, params: params, leafFn: leafFn}
	// Work on a local copy so partitioning never mutates the caller's slice.
	local := make([]T, len(items))
	copy(local, items)
	b.nodes = make([]Node, 0, 2*len(items)+1)
	b.build(local)
	return b.nodes
}

type builder[T any] struct {
	acc    Accessor[T]
	params Params
	leafFn LeafFunc[T]
	nodes  []Node
}

func (b *builder[T]) itemsBBox(items []T) vmath.BBox {
	box := vmath.EmptyBBox()
	for _, it := range items {
		box = vmath.UnionBBox(box, b.acc.BBox(it))
	}
	return box
}

// build recurses over items, appends nodes to b.nodes, and returns the index
// of the node it created for this subtree.
func (b *builder[T]) build(items []T) int {
	nodeIdx := len(b.nodes)
	b.nodes = append(b.nodes, Node{})
	box := b.itemsBBox(items)
	b.nodes[nodeIdx].SetBBox(box)

	if len(items) <= b.params.MinLeafSize {
		b.makeLeaf(nodeIdx, items)
		return nodeIdx
	}

	axis, plane, found := b.chooseSplit(items, box)
	var left, right []T
	if found {
		left, right = partition(items, b.acc, axis, plane)
	}
	if (len(left) == 0 || len(right) == 0) && b.params.MinLeafSize == 1 {
		// One item per leaf: a bag no candidate plane separates is halved by position.
		axis, left, right = box.MaxExtent(), items[:len(items)/2], items[len(items)/2:]
	} else if len(left) == 0 || len(right) == 0 {
		b.makeLeaf(nodeIdx, items)
		return nodeIdx
	}

	b.nodes[nodeIdx].Type = NodeInterior
	b.nodes[nodeIdx].Axis = uint8(axis)

	b.build(left) // left child always lands at nodeIdx+1
	rightIdx := b.build(right)
	b.nodes[nodeIdx].SetRightChild(int32(rightIdx))
	// Re-derive the bbox from the actual children; it covers the same items
	// as the item-bag union computed above, so the box is unchanged.
	childBox := vmath.UnionBBox(b.nodes[nodeIdx+1].BBox(), b.nodes[rightIdx].BBox())
	b.nodes[nodeIdx].SetBBox(childBox)
	return nodeIdx
}

func (b *builder[T]) makeLeaf(nodeIdx int, items []T) {
	node := &b.nodes[nodeIdx]
	b.leafFn(node, items)
	if node.Type != NodeLeaf {
		node.Type = NodeLeaf
	}
}

// chooseSplit evaluates NUM_SAH_SPLITS candidate planes per eligible axis
// and returns the (axis, plane) pair with the lowest SAH score, provided it
// beats the baseline (undivided) score.
func (b *builder[T]) chooseSplit(items []T, box vmath.BBox) (axis int, plane float64, ok bool) {
	baseline := float64(len(items)) * box.HalfArea()
	bestScore := baseline
	found := false

	diag := box.Diagonal()
	for a := 0; a < 3; a++ {
		side := diag.Axis(a)
		if side < b.params.MinSideLength {
			continue
		}
		step := side / float64(b.params.NumSAHSplits)
		if step < b.params.MinSplitStep {
			continue
		}
		pMinA := box.PMin.Axis(a)
		for i := 0; i < b.params.NumSAHSplits; i++ {
			candidate := pMinA + float64(i)*step
			score := b.sahScore(items, a, candidate)
			if score < bestScore {
				bestScore = score
				axis = a
				plane = candidate
				found = true
			}
		}
	}
	return axis, plane, found
}

// sahScore computes BVH_TRAV_COST * (|L|*halfArea(L) + |R|*halfArea(R)) for
// a candidate split plane on the given axis; +Inf if either side is empty.
func (b *builder[T]) sahScore(items []T, axis int, plane float64) float64 {
	leftBox := vmath.EmptyBBox()
	rightBox := vmath.EmptyBBox()
	leftCount, rightCount := 0, 0
	for _, it := range items {
		c := b.acc.Centroid(it)
		ib := b.acc.BBox(it)
		if c.Axis(axis) < plane {
			leftBox = vmath.UnionBBox(leftBox, ib)
			leftCount++
		} else {
			rightBox = vmath.UnionBBox(rightBox, ib)
			rightCount++
		}
	}
	if leftCount == 0 || rightCount == 0 {
		return math.Inf(1)
	}
	return b.params.TravCost * (float64(leftCount)*leftBox.HalfArea() + float64(rightCount)*rightBox.HalfArea())
}

func partition[T any](items []T, acc Accessor[T], axis int, plane float64) (left, right []T) {
	left = make([]T, 0, len(items))
	right = make([]T, 0, len(items))
	for _, it := range items {
		if acc.Centroid(it).Axis(axis) < plane {
			left = append(left, it)
		} else {
			right = append(right, it)
		}
	}
	return left, right
}
