// tile_render.go - the per-tile sampling pipeline a worker runs on each
// claim: optional preview refinement while the tile is young, one full-
// resolution pass, then optional adaptive and firefly top-ups.
package render

import (
	"math"

	"github.com/hoptracer/hoptracer/internal/camera"
	"github.com/hoptracer/hoptracer/internal/film"
	"github.com/hoptracer/hoptracer/internal/integrator"
	"github.com/hoptracer/hoptracer/internal/spectrum"
	"github.com/hoptracer/hoptracer/internal/vmath"
)

func (r *Renderer) renderTile(t Tile, li integrator.Integrator, rng *vmath.RNG) {
	if r.opts.PreviewSPP > 0 && int(t.N()) <= previewPassBudget(t) {
		r.renderPreviewPass(t, li, rng, int(t.N()))
		return
	}

	for y := t.Y; y < t.Y+t.H; y++ {
		for x := t.X; x < t.X+t.W; x++ {
			for s := 0; s < r.opts.SamplesPerPixel; s++ {
				r.film.AddSample(x, y, r.samplePixel(x, y, li, rng))
			}
		}
	}

	if r.opts.AdaptiveSPP > 0 {
		r.adaptivePass(t, li, rng)
	}
	if r.opts.FireflySPP > 0 {
		r.fireflyPass(t, li, rng)
	}
}

// previewPassBudget is the pass count after which a tile leaves preview
// refinement: max(log2(w), log2(h)).
func previewPassBudget(t Tile) int {
	return int(math.Max(log2(float64(t.W)), log2(float64(t.H))))
}

func log2(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Log2(v)
}

// renderPreviewPass subdivides t into blocks of res = max(1, max(w,h)>>pass)
// pixels, shoots PreviewSPP rays per block at the block's center, and writes
// the same averaged color to every pixel the block covers. Each pass first
// resets the pixels it's about to overwrite, matching the quadtree-refine
// policy: later passes use a smaller res and overwrite with sharper blocks.
func (r *Renderer) renderPreviewPass(t Tile, li integrator.Integrator, rng *vmath.RNG, pass int) {
	maxDim := t.W
	if t.H > maxDim {
		maxDim = t.H
	}
	res := maxDim >> uint(pass)
	if res < 1 {
		res = 1
	}

	for by := t.Y; by < t.Y+t.H; by += res {
		for bx := t.X; bx < t.X+t.W; bx += res {
			bw := minInt(res, t.X+t.W-bx)
			bh := minInt(res, t.Y+t.H-by)

			cx := float64(bx) + float64(bw)/2
			cy := float64(by) + float64(bh)/2

			accum := spectrum.Black()
			n := 0
			for s := 0; s < r.opts.PreviewSPP; s++ {
				color := r.sampleAt(cx, cy, li, rng)
				accum = accum.Add(color)
				n++
			}
			avg := accum
			if n > 0 {
				avg = accum.Scale(1 / float64(n))
			}

			var px film.Pixel
			px.AddSample(avg)
			for py := by; py < by+bh && py < t.Y+t.H; py++ {
				for pxx := bx; pxx < bx+bw && pxx < t.X+t.W; pxx++ {
					r.film.SetPixel(pxx, py, px)
				}
			}
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// samplePixel draws one uniform jittered sample within pixel (x, y).
func (r *Renderer) samplePixel(x, y int, li integrator.Integrator, rng *vmath.RNG) spectrum.RGB {
	jitter := rng.Vec2()
	return r.sampleAt(float64(x)+jitter.X, float64(y)+jitter.Y, li, rng)
}

func (r *Renderer) sampleAt(filmX, filmY float64, li integrator.Integrator, rng *vmath.RNG) spectrum.RGB {
	cs := camera.Sample{FilmPoint: vmath.Vec2{X: filmX, Y: filmY}, LensPoint: rng.Vec2()}
	ray, weight := r.cam.Load().GenerateRay(cs)
	return li.Li(ray, r.world, rng).Scale(weight)
}

// adaptivePass shoots floor(v * AdaptiveSPP) extra samples per pixel, where
// v = clamp(stddev/threshold, 0, 1)^exponent, for every pixel that already
// has an independent variance estimate (n > 1).
func (r *Renderer) adaptivePass(t Tile, li integrator.Integrator, rng *vmath.RNG) {
	for y := t.Y; y < t.Y+t.H; y++ {
		for x := t.X; x < t.X+t.W; x++ {
			px := r.film.Get(x, y)
			if px.N <= 1 {
				continue
			}
			v := clamp01(px.StdDev()/r.opts.AdaptiveThreshold)
			v = math.Pow(v, r.opts.AdaptiveExponent)
			extra := int(math.Floor(v * float64(r.opts.AdaptiveSPP)))
			for s := 0; s < extra; s++ {
				r.film.AddSample(x, y, r.samplePixel(x, y, li, rng))
			}
		}
	}
}

// fireflyPass shoots FireflySPP extra samples for any pixel whose stddev
// exceeds FireflyThreshold, a cheap way to wash out isolated bright spikes
// without a real light-transport fix.
func (r *Renderer) fireflyPass(t Tile, li integrator.Integrator, rng *vmath.RNG) {
	for y := t.Y; y < t.Y+t.H; y++ {
		for x := t.X; x < t.X+t.W; x++ {
			px := r.film.Get(x, y)
			if px.N <= 1 || px.StdDev() <= r.opts.FireflyThreshold {
				continue
			}
			for s := 0; s < r.opts.FireflySPP; s++ {
				r.film.AddSample(x, y, r.samplePixel(x, y, li, rng))
			}
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
