// triangle.go - source-representation triangle and Moller-Trumbore intersection.
package geometry

import (
	"math"

	"github.com/hoptracer/hoptracer/internal/vmath"
)

// RayEpsilon is the tolerance used to reject near-parallel rays and to
// widen the barycentric admissibility window, matching the double-precision
// figure a triangle mesh needs for shading and texturing.
const RayEpsilon = 1e-14

// Triangle is the pre-flattening source representation: three positions,
// three normals, three UVs, and a material id. Its BBox/centroid feed the
// BVH builder before World.preprocess folds it into the flat arrays.
type Triangle struct {
	P          [3]vmath.Vec3
	N          [3]vmath.Vec3
	UV         [3]vmath.Vec2
	MaterialID int32
}

func (t Triangle) BBox() vmath.BBox {
	b := vmath.EmptyBBox()
	b = b.UnionPoint(t.P[0])
	b = b.UnionPoint(t.P[1])
	b = b.UnionPoint(t.P[2])
	return b
}

func (t Triangle) Centroid() vmath.Vec3 {
	return t.BBox().Center()
}

// IntersectTriangle runs Moller-Trumbore against three explicit vertex
// positions. On success it returns the hit distance t and the barycentric
// coordinates b1, b2 with ok set; filling a HitInfo is left to the caller.
func IntersectTriangle(origin, dir, p0, p1, p2 vmath.Vec3, tmin, tmax float64) (t, b1, b2 float64, ok bool) {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	pvec := dir.Cross(e2)
	det := e1.Dot(pvec)
	if math.Abs(det) < RayEpsilon {
		return 0, 0, 0, false
	}
	invDet := 1 / det
	tvec := origin.Sub(p0)
	b1 = tvec.Dot(pvec) * invDet
	if b1 < -RayEpsilon || b1 > 1+RayEpsilon {
		return 0, 0, 0, false
	}
	qvec := tvec.Cross(e1)
	b2 = dir.Dot(qvec) * invDet
	if b2 < -RayEpsilon || b1+b2 > 1+RayEpsilon {
		return 0, 0, 0, false
	}
	t = e2.Dot(qvec) * invDet
	if t < tmin || t > tmax {
		return 0, 0, 0, false
	}
	return t, b1, b2, true
}
