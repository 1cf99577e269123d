// bbox.go - axis-aligned bounding boxes.
package vmath

import "math"

// BBox is an axis-aligned bounding box. It is empty iff PMin.Axis(a) >
// PMax.Axis(a) for some axis a.
type BBox struct {
	PMin, PMax Vec3
}

// EmptyBBox returns a BBox in the inverted-infinity state so the first
// UnionPoint/Union call establishes real bounds.
func EmptyBBox() BBox {
	inf := math.Inf(1)
	return BBox{
		PMin: Vec3{inf, inf, inf},
		PMax: Vec3{-inf, -inf, -inf},
	}
}

func (b BBox) IsEmpty() bool {
	return b.PMin.X > b.PMax.X || b.PMin.Y > b.PMax.Y || b.PMin.Z > b.PMax.Z
}

func UnionBBox(a, b BBox) BBox {
	return BBox{PMin: Min(a.PMin, b.PMin), PMax: Max(a.PMax, b.PMax)}
}

func (b BBox) UnionPoint(p Vec3) BBox {
	return BBox{PMin: Min(b.PMin, p), PMax: Max(b.PMax, p)}
}

func (b BBox) Center() Vec3 {
	return b.PMin.Add(b.PMax).Scale(0.5)
}

func (b BBox) Diagonal() Vec3 {
	return b.PMax.Sub(b.PMin)
}

// HalfArea returns bx*by + bx*bz + by*bz, the half surface area used by the
// SAH cost function; the constant factor cancels across candidates so only
// the relative scale matters.
func (b BBox) HalfArea() float64 {
	d := b.Diagonal()
	return d.X*d.Y + d.X*d.Z + d.Y*d.Z
}

// MaxExtent returns the axis (0,1,2) along which the box is longest.
func (b BBox) MaxExtent() int {
	d := b.Diagonal()
	if d.X > d.Y && d.X > d.Z {
		return 0
	}
	if d.Y > d.Z {
		return 1
	}
	return 2
}

// IntersectP runs the slab test against a ray's precomputed inverse
// direction, clamped to [tmin, tmax]. Zero direction components produce
// properly-signed +/-Inf reciprocals, so the test stays correct for
// axis-aligned rays.
func (b BBox) IntersectP(origin Vec3, invDir Vec3, tmin, tmax float64) bool {
	t0, t1 := tmin, tmax
	for axis := 0; axis < 3; axis++ {
		o := origin.Axis(axis)
		id := invDir.Axis(axis)
		tNear := (b.PMin.Axis(axis) - o) * id
		tFar := (b.PMax.Axis(axis) - o) * id
		if tNear > tFar {
			tNear, tFar = tFar, tNear
		}
		if tNear > t0 {
			t0 = tNear
		}
		if tFar < t1 {
			t1 = tFar
		}
		if t0 > t1 {
			return false
		}
	}
	return true
}
