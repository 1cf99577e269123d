// ray.go - the Ray type threaded through BVH traversal and intersection.
package geometry

import "github.com/hoptracer/hoptracer/internal/vmath"

// Ray is a parametric line segment: P(t) = Origin + t*Dir, valid for
// t in [TMin, TMax]. TMax is mutable during traversal: closest-hit queries
// tighten it on every successful intersection.
type Ray struct {
	Origin, Dir  vmath.Vec3
	TMin, TMax   float64
}

// NewRay constructs a ray; tmin must be <= tmax.
func NewRay(origin, dir vmath.Vec3, tmin, tmax float64) Ray {
	if tmin > tmax {
		panic("geometry: ray constructed with tmin > tmax")
	}
	return Ray{Origin: origin, Dir: dir, TMin: tmin, TMax: tmax}
}

func (r Ray) At(t float64) vmath.Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}
