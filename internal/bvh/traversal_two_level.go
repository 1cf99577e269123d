// traversal_two_level.go - two-level traversal: top BVH over instances,
// descending into each instance's bottom BVH in transformed ray space.
package bvh

import "github.com/hoptracer/hoptracer/internal/vmath"

// BottomLeafTest is invoked for a bottom-level leaf (PrimCount > 0). It
// receives the ray in the instance's local space and the instance index, and
// should test primitives at [node.PrimitiveOffset, +PrimCount), clamping
// *tmax on every closer hit (tmax is shared with the world-space ray: the
// direction is never renormalized at instance entry, so t stays consistent
// across the instance transform). Returns true iff it recorded a hit.
type BottomLeafTest func(node *Node, localOrigin, localDir vmath.Vec3, instanceIdx int32, tmax *float64) bool

// TwoLevelParams bundles the data the World's preprocess step produces that
// two-level traversal needs beyond the combined node array.
type TwoLevelParams struct {
	// InstanceBottomRoot[i] is the node index of the root of instance i's
	// mesh BVH within the combined Nodes array.
	InstanceBottomRoot []int32
	// InstanceInverse[i] is the world-to-local transform for instance i.
	InstanceInverse []vmath.Transform
}

func intersectTwoLevel(nodes []Node, p TwoLevelParams, origin, dir vmath.Vec3, tmin float64, tmax *float64, test BottomLeafTest, anyHit bool) bool {
	if len(nodes) == 0 {
		return false
	}

	var stack [MaxStackDepth]int32
	sp := 0
	current := int32(0)
	found := false

	worldOrigin, worldDir := origin, dir
	activeOrigin, activeDir := origin, dir
	activeInvDir := InvDir(dir)

	const noEntry = -1
	bottomEntryDepth := noEntry
	currentInstance := int32(-1)
	var savedOrigin, savedDir, savedInvDir vmath.Vec3

	restoreIfNeeded := func() {
		if bottomEntryDepth != noEntry && sp < bottomEntryDepth {
			activeOrigin, activeDir, activeInvDir = savedOrigin, savedDir, savedInvDir
			bottomEntryDepth = noEntry
			currentInstance = -1
		}
	}

	for {
		node := &nodes[current]
		switch {
		case node.IsInterior():
			leftIdx := current + 1
			rightIdx := node.RightChild()
			hitLeft := nodes[leftIdx].BBox().IntersectP(activeOrigin, activeInvDir, tmin, *tmax)
			hitRight := nodes[rightIdx].BBox().IntersectP(activeOrigin, activeInvDir, tmin, *tmax)
			switch {
			case hitLeft && hitRight:
				if sp >= MaxStackDepth {
					panic("bvh: two-level traversal stack overflow")
				}
				if activeDir.Axis(int(node.Axis)) < 0 {
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
				// pop below
			}
		case node.IsTopLeaf():
			instanceIdx := node.InstanceIndex()
			bottomRoot := p.InstanceBottomRoot[instanceIdx]
			savedOrigin, savedDir, savedInvDir = activeOrigin, activeDir, activeInvDir
			bottomEntryDepth = sp
			currentInstance = instanceIdx

			inv := p.InstanceInverse[instanceIdx]
			activeOrigin = inv.TransformPoint(worldOrigin)
			activeDir = inv.TransformVector(worldDir) // not renormalized: keeps t consistent
			activeInvDir = InvDir(activeDir)

			current = bottomRoot
			continue
		default: // bottom leaf
			if test(node, activeOrigin, activeDir, currentInstance, tmax) {
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
		restoreIfNeeded()
	}
	return found
}

// IntersectTwoLevelClosest returns true iff any primitive in any instance
// was hit, clamping *tmax to the closest t found.
func IntersectTwoLevelClosest(nodes []Node, p TwoLevelParams, origin, dir vmath.Vec3, tmin float64, tmax *float64, test BottomLeafTest) bool {
	return intersectTwoLevel(nodes, p, origin, dir, tmin, tmax, test, false)
}

// IntersectTwoLevelAny returns true as soon as any primitive is hit.
func IntersectTwoLevelAny(nodes []Node, p TwoLevelParams, origin, dir vmath.Vec3, tmin float64, tmax *float64, test BottomLeafTest) bool {
	return intersectTwoLevel(nodes, p, origin, dir, tmin, tmax, test, true)
}
