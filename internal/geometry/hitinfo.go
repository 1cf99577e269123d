// hitinfo.go - the minimal record produced by a BVH traversal hit.
package geometry

import "github.com/hoptracer/hoptracer/internal/vmath"

// HitInfo is what two-level BVH traversal hands back on a successful
// closest-hit query. B0 is derived, never stored: B0 = 1 - B1 - B2.
type HitInfo struct {
	T          float64
	B1, B2     float64
	PrimID     int32 // index into the World's flat triangle arrays
	ShapeID    int32 // index into the World's instance array
	WorldDir   vmath.Vec3 // world-space ray direction at intersection time
}

func (h HitInfo) B0() float64 { return 1 - h.B1 - h.B2 }
