// interaction.go - SurfaceInteraction, built from a HitInfo by the World.
package geometry

import "github.com/hoptracer/hoptracer/internal/vmath"

// SurfaceInteraction carries everything the integrator needs at a hit
// point: world-space geometry, shading geometry, and a borrowed reference to
// the hit shape instance and material id.
type SurfaceInteraction struct {
	P          vmath.Vec3 // world-space position
	Ng         vmath.Vec3 // geometric normal
	Dpdu, Dpdv vmath.Vec3 // geometric tangent basis

	Ns             vmath.Vec3 // shading normal
	Ss, Ts         vmath.Vec3 // shading tangent basis

	UV vmath.Vec2
	Wo vmath.Vec3 // unit, points away from the surface

	ShapeID    int32
	MaterialID int32
}
