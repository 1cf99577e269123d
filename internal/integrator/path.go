// path.go - the core path tracer: an iterative random walk terminated by
// Russian roulette, with a single hardcoded diffuse lobe standing in for a
// full material system (see internal/material's stub boundary).
package integrator

import (
	"github.com/hoptracer/hoptracer/internal/geometry"
	"github.com/hoptracer/hoptracer/internal/spectrum"
	"github.com/hoptracer/hoptracer/internal/vmath"
	"github.com/hoptracer/hoptracer/internal/world"
)

// RRStartDepth is the bounce count after which Russian roulette starts
// culling paths; RRAbsorption is the fixed termination probability applied
// from that depth on.
const (
	RRStartDepth = 3
	RRAbsorption = 0.2
	maxDepth     = 64 // hard backstop; roulette terminates paths long before this
)

// diffuseAlbedo is the hardcoded Lambertian reflectance every surface uses
// in the absence of a real material system.
var diffuseAlbedo = spectrum.Gray(0.8)

// PathTracer implements unidirectional Monte Carlo path tracing against a
// constant white sky; it does not sample direct lighting separately, so
// convergence to bright small lights is slow (a Non-goal to fix here).
type PathTracer struct {
	Background spectrum.RGB
}

func NewPathTracer() *PathTracer {
	return &PathTracer{Background: spectrum.White()}
}

func (p *PathTracer) Li(ray geometry.Ray, w *world.World, rng *vmath.RNG) spectrum.RGB {
	throughput := spectrum.White()
	radiance := spectrum.Black()
	cur := ray

	for depth := 0; depth < maxDepth; depth++ {
		hit, ok := w.Intersect(cur)
		if !ok {
			radiance = radiance.Add(throughput.Mul(p.Background))
			break
		}

		if depth >= RRStartDepth {
			if rng.Float64() < RRAbsorption {
				break
			}
			throughput = throughput.Scale(1 / (1 - RRAbsorption))
		}

		si := w.GetSurfaceInteraction(hit)

		local := CosineSampleHemisphere(rng.Vec2())
		wi := ToWorld(local, si.Ns)
		cosTheta := wi.Dot(si.Ns)
		if cosTheta < 0 {
			wi = wi.Neg()
			cosTheta = -cosTheta
		}
		pdf := CosineHemispherePDF(cosTheta)
		if pdf <= 0 {
			break
		}

		// brdf = albedo/pi (Lambertian); brdf*cosTheta/pdf collapses to
		// albedo under cosine-weighted importance sampling.
		throughput = throughput.Mul(diffuseAlbedo)

		cur = spawnRay(si.P, wi)
	}

	return radiance
}
