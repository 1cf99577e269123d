// sampling.go - hemisphere sampling used by the path tracer and AO
// integrator, both built around the same tangent-frame convention: samples
// are generated in a local frame where Z is the surface normal, then rotated
// into world space by the caller.
package integrator

import (
	"math"

	"github.com/hoptracer/hoptracer/internal/vmath"
)

// CosineSampleHemisphere returns a direction in the local +Z hemisphere with
// density proportional to cos(theta), via Shirley's concentric disk mapping
// lifted to the hemisphere (Malley's method).
func CosineSampleHemisphere(u vmath.Vec2) vmath.Vec3 {
	d := vmath.ConcentricSampleDisk(u)
	z := math.Sqrt(math.Max(0, 1-d.X*d.X-d.Y*d.Y))
	return vmath.Vec3{X: d.X, Y: d.Y, Z: z}
}

// CosineHemispherePDF is the density of CosineSampleHemisphere at cosTheta.
func CosineHemispherePDF(cosTheta float64) float64 {
	return cosTheta / math.Pi
}

// UniformSampleHemisphere returns a direction uniformly distributed over the
// local +Z hemisphere, used by ambient occlusion.
func UniformSampleHemisphere(u vmath.Vec2) vmath.Vec3 {
	z := u.X
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * u.Y
	return vmath.Vec3{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z}
}

// UniformHemispherePDF is constant over the solid angle of a hemisphere.
func UniformHemispherePDF() float64 { return 1 / (2 * math.Pi) }

// ToWorld rotates a local-frame direction (Z = normal) into world space
// using the orthonormal basis (t1, t2, n).
func ToWorld(local vmath.Vec3, n vmath.Vec3) vmath.Vec3 {
	t1, t2 := vmath.CoordinateSystem(n)
	return t1.Scale(local.X).Add(t2.Scale(local.Y)).Add(n.Scale(local.Z))
}
