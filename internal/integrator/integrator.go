// integrator.go - the Li(ray) contract every light-transport algorithm and
// debug visualizer implements; the renderer holds one behind an atomic
// pointer so a scene-side integrator swap is visible to workers without a
// lock (see internal/render).
package integrator

import (
	"github.com/hoptracer/hoptracer/internal/geometry"
	"github.com/hoptracer/hoptracer/internal/spectrum"
	"github.com/hoptracer/hoptracer/internal/vmath"
	"github.com/hoptracer/hoptracer/internal/world"
)

// RayEpsilon offsets secondary ray origins off the surface they were spawned
// from, distinct from geometry.RayEpsilon (the Moller-Trumbore tolerance).
const RayEpsilon = 1e-4

// TMax is the far-plane distance used for occlusion and bounce rays that
// have no natural upper bound.
const TMax = 1e30

// Integrator estimates incident radiance along ray within w.
type Integrator interface {
	Li(ray geometry.Ray, w *world.World, rng *vmath.RNG) spectrum.RGB
}

// spawnRay builds a ray leaving p in direction dir, offset by RayEpsilon
// along dir to avoid immediately re-hitting the originating surface.
func spawnRay(p, dir vmath.Vec3) geometry.Ray {
	origin := p.Add(dir.Scale(RayEpsilon))
	return geometry.NewRay(origin, dir, 0, TMax)
}
