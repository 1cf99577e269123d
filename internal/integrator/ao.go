// ao.go - ambient occlusion integrator.
package integrator

import (
	"github.com/hoptracer/hoptracer/internal/geometry"
	"github.com/hoptracer/hoptracer/internal/spectrum"
	"github.com/hoptracer/hoptracer/internal/vmath"
	"github.com/hoptracer/hoptracer/internal/world"
)

// NumAORays is the fixed sample count ambient occlusion shoots per hit.
const NumAORays = 5

// AmbientOcclusion returns white scaled by the fraction of NumAORays
// hemisphere samples that reach the sky unoccluded. It ignores material and
// lighting entirely; it exists as a cheap structural-clarity visualizer.
type AmbientOcclusion struct {
	Background spectrum.RGB
}

// NewAmbientOcclusion defaults Background to the same flat white sky color
// the path tracer misses to, rather than black: a miss is "see sky", not
// "see nothing".
func NewAmbientOcclusion() *AmbientOcclusion {
	return &AmbientOcclusion{Background: spectrum.White()}
}

func (a *AmbientOcclusion) Li(ray geometry.Ray, w *world.World, rng *vmath.RNG) spectrum.RGB {
	hit, ok := w.Intersect(ray)
	if !ok {
		return a.Background
	}
	si := w.GetSurfaceInteraction(hit)

	unoccluded := 0
	for i := 0; i < NumAORays; i++ {
		local := UniformSampleHemisphere(rng.Vec2())
		dir := ToWorld(local, si.Ns)
		if dir.Dot(si.Ns) < 0 {
			dir = dir.Neg()
		}
		shadow := spawnRay(si.P, dir)
		if !w.IntersectAny(shadow) {
			unoccluded++
		}
	}

	frac := float64(unoccluded) / float64(NumAORays)
	return spectrum.White().Scale(frac)
}
