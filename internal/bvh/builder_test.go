package bvh

import (
	"testing"

	"github.com/hoptracer/hoptracer/internal/vmath"
)

// pointItem is a degenerate (zero-volume) bounded item: a single point. It
// exercises the builder without pulling in a mesh/triangle dependency.
type pointItem struct {
	pos vmath.Vec3
	idx int
}

type pointAccessor struct{}

func (pointAccessor) BBox(p pointItem) vmath.BBox {
	return vmath.BBox{PMin: p.pos, PMax: p.pos}
}
func (pointAccessor) Centroid(p pointItem) vmath.Vec3 { return p.pos }

func leafRecorder(leaves *[][]int) LeafFunc[pointItem] {
	return func(node *Node, items []pointItem) {
		idxs := make([]int, len(items))
		for i, it := range items {
			idxs[i] = it.idx
		}
		*leaves = append(*leaves, idxs)
		node.SetBottomLeaf(int32(items[0].idx), uint16(len(items)))
	}
}

func TestBuildSingleItemIsALeaf(t *testing.T) {
	items := []pointItem{{pos: vmath.Vec3{X: 1, Y: 2, Z: 3}, idx: 0}}
	var leaves [][]int
	nodes := Build(items, pointAccessor{}, DefaultParams(), leafRecorder(&leaves))
	if len(nodes) != 1 {
		t.Fatalf("len(nodes) = %d, want 1", len(nodes))
	}
	if !nodes[0].IsBottomLeaf() {
		t.Fatal("single-item tree should be a bottom leaf")
	}
}

func TestBuildEveryItemEndsUpInExactlyOneLeaf(t *testing.T) {
	items := make([]pointItem, 0, 64)
	for i := 0; i < 64; i++ {
		items = append(items, pointItem{
			pos: vmath.Vec3{X: float64(i % 4), Y: float64(i % 8), Z: float64(i)},
			idx: i,
		})
	}
	var leaves [][]int
	nodes := Build(items, pointAccessor{}, DefaultParams(), leafRecorder(&leaves))
	if len(nodes) == 0 {
		t.Fatal("expected at least one node")
	}

	seen := make(map[int]bool)
	for _, leaf := range leaves {
		for _, idx := range leaf {
			if seen[idx] {
				t.Fatalf("item %d appeared in more than one leaf", idx)
			}
			seen[idx] = true
		}
	}
	if len(seen) != len(items) {
		t.Fatalf("leaves covered %d items, want %d", len(seen), len(items))
	}
}

func TestBuildRootBBoxContainsAllItems(t *testing.T) {
	items := []pointItem{
		{pos: vmath.Vec3{X: -5, Y: 0, Z: 0}, idx: 0},
		{pos: vmath.Vec3{X: 5, Y: 3, Z: -2}, idx: 1},
		{pos: vmath.Vec3{X: 0, Y: -4, Z: 8}, idx: 2},
	}
	var leaves [][]int
	nodes := Build(items, pointAccessor{}, DefaultParams(), leafRecorder(&leaves))
	root := nodes[0].BBox()
	for _, it := range items {
		p := it.pos
		if p.X < root.PMin.X || p.X > root.PMax.X ||
			p.Y < root.PMin.Y || p.Y > root.PMax.Y ||
			p.Z < root.PMin.Z || p.Z > root.PMax.Z {
			t.Fatalf("root bbox %+v does not contain item %v", root, p)
		}
	}
}

func TestBuildLeftChildImmediatelyFollowsParent(t *testing.T) {
	items := make([]pointItem, 0, 32)
	for i := 0; i < 32; i++ {
		items = append(items, pointItem{pos: vmath.Vec3{X: float64(i), Y: 0, Z: 0}, idx: i})
	}
	p := DefaultParams()
	p.MinLeafSize = 1
	var leaves [][]int
	nodes := Build(items, pointAccessor{}, p, leafRecorder(&leaves))
	if nodes[0].IsInterior() {
		right := nodes[0].RightChild()
		if right <= 1 {
			t.Fatalf("right child index %d should be > 1 for a non-trivial split", right)
		}
		if !nodes[1].IsInterior() && !nodes[1].IsBottomLeaf() {
			t.Fatal("node at index 1 (left child) should be a valid node")
		}
	}
}
