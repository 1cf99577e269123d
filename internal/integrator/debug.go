// debug.go - visualizers that turn hit geometry directly into a color,
// useful for sanity-checking BVH/instance transforms without involving the
// sampler or any material.
package integrator

import (
	"github.com/hoptracer/hoptracer/internal/geometry"
	"github.com/hoptracer/hoptracer/internal/spectrum"
	"github.com/hoptracer/hoptracer/internal/vmath"
	"github.com/hoptracer/hoptracer/internal/world"
)

// Position colors each pixel by its world-space hit point.
type Position struct{}

func (Position) Li(ray geometry.Ray, w *world.World, rng *vmath.RNG) spectrum.RGB {
	hit, ok := w.Intersect(ray)
	if !ok {
		return spectrum.Black()
	}
	si := w.GetSurfaceInteraction(hit)
	return spectrum.RGB{R: si.P.X, G: si.P.Y, B: si.P.Z}
}

// Normal colors each pixel by its shading normal. Remap selects between the
// signed normal (direct, for debugging orientation) and the [0,1]-remapped
// (normal+1)/2 convention most image viewers expect.
type Normal struct {
	Remap bool
}

func (n Normal) Li(ray geometry.Ray, w *world.World, rng *vmath.RNG) spectrum.RGB {
	hit, ok := w.Intersect(ray)
	if !ok {
		return spectrum.Black()
	}
	si := w.GetSurfaceInteraction(hit)
	if !n.Remap {
		return spectrum.RGB{R: si.Ns.X, G: si.Ns.Y, B: si.Ns.Z}
	}
	return spectrum.RGB{
		R: (si.Ns.X + 1) / 2,
		G: (si.Ns.Y + 1) / 2,
		B: (si.Ns.Z + 1) / 2,
	}
}

// UV colors each pixel by its interpolated texture coordinate, blue channel
// always zero.
type UV struct{}

func (UV) Li(ray geometry.Ray, w *world.World, rng *vmath.RNG) spectrum.RGB {
	hit, ok := w.Intersect(ray)
	if !ok {
		return spectrum.Black()
	}
	si := w.GetSurfaceInteraction(hit)
	return spectrum.RGB{R: si.UV.X, G: si.UV.Y, B: 0}
}
