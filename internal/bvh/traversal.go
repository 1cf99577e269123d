// traversal.go - single-level stack-based traversal.
package bvh

import "github.com/hoptracer/hoptracer/internal/vmath"

// MaxStackDepth bounds the traversal stack; this is a
// build invariant the builder must respect for scenes where it matters.
const MaxStackDepth = 32

// InvDir computes the component-wise reciprocal of a ray direction. Zero
// components produce properly-signed +/-Inf per IEEE-754 float division,
// which keeps the slab test correct for axis-aligned rays.
func InvDir(dir vmath.Vec3) vmath.Vec3 {
	return vmath.Vec3{X: 1 / dir.X, Y: 1 / dir.Y, Z: 1 / dir.Z}
}

// LeafTest is invoked on a bottom-level (or, for single-level trees, the
// only kind of) leaf node. It returns true if it recorded a hit; for
// closest-hit it is also expected to tighten tmax via the ray pointer it
// closed over.
type LeafTest func(node *Node) bool

// IntersectClosest walks the tree from node 0, testing every leaf that the
// ray's slabs admit, and returns true iff test ever reported a hit. test is
// expected to clamp tmax on every closer intersection so that later leaf
// visits skip farther primitives.
func IntersectClosest(nodes []Node, origin, invDir vmath.Vec3, tmin, tmax float64, splitSign func(axis uint8) bool, test LeafTest) bool {
	return traverse(nodes, origin, invDir, tmin, tmax, splitSign, test, false)
}

// IntersectAny walks the tree and returns true as soon as test reports a
// hit on any leaf; which primitive is returned is unspecified.
func IntersectAny(nodes []Node, origin, invDir vmath.Vec3, tmin, tmax float64, splitSign func(axis uint8) bool, test LeafTest) bool {
	return traverse(nodes, origin, invDir, tmin, tmax, splitSign, test, true)
}

// traverse is the shared stack machine. negSign(axis) reports whether the
// ray's direction component on that axis is negative, which decides child
// visit order at each interior node.
func traverse(nodes []Node, origin, invDir vmath.Vec3, tmin, tmax float64, negSign func(axis uint8) bool, test LeafTest, anyHit bool) bool {
	if len(nodes) == 0 {
		return false
	}
	var stack [MaxStackDepth]int32
	sp := 0
	current := int32(0)
	found := false

	for {
		node := &nodes[current]
		if node.IsInterior() {
			leftIdx := current + 1
			rightIdx := node.RightChild()
			hitLeft := nodes[leftIdx].BBox().IntersectP(origin, invDir, tmin, tmax)
			hitRight := nodes[rightIdx].BBox().IntersectP(origin, invDir, tmin, tmax)
			switch {
			case hitLeft && hitRight:
				if sp >= MaxStackDepth {
					panic("bvh: traversal stack overflow")
				}
				if negSign(node.Axis) {
					stack[sp] = leftIdx
					sp++
					current = rightIdx
				} else {
					stack[sp] = rightIdx
					sp++
					current = leftIdx
				}
				continue
			case hitLeft:
				current = leftIdx
				continue
			case hitRight:
				current = rightIdx
				continue
			default:
				// fall through to pop below
			}
		} else {
			if test(node) {
				found = true
				if anyHit {
					return true
				}
			}
		}
		if sp == 0 {
			break
		}
		sp--
		current = stack[sp]
	}
	return found
}
