// renderer.go - the tiled worker pool: a fixed set of goroutines, managed by
// an errgroup.Group, pull tiles from a shared cursor and mutate the Film.
// Generalized from a hand-rolled done-channel worker lifecycle
// (coprocessor_manager.go) to golang.org/x/sync/errgroup.
package render

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/hoptracer/hoptracer/internal/camera"
	"github.com/hoptracer/hoptracer/internal/film"
	"github.com/hoptracer/hoptracer/internal/integrator"
	"github.com/hoptracer/hoptracer/internal/vmath"
	"github.com/hoptracer/hoptracer/internal/world"
)

// Options controls sampling behavior; see Renderer.Reset for when a change
// to any of these must be accompanied by a Film/tile-counter reset.
type Options struct {
	SamplesPerPixel int
	TileSize        int
	Spiral          bool

	PreviewSPP int // 0 disables preview refinement

	AdaptiveSPP       int // 0 disables adaptive sampling
	AdaptiveThreshold float64
	AdaptiveExponent  float64

	FireflySPP       int // 0 disables firefly sampling
	FireflyThreshold float64
}

// Renderer owns the tile queue, the shared cursor, and the atomic integrator
// pointer every worker dereferences once per tile claim.
type Renderer struct {
	world *world.World
	film  *film.Film
	opts  Options

	cam        atomic.Pointer[camera.Perspective]
	integrator atomic.Pointer[integrator.Integrator]

	tilesMu sync.Mutex
	tiles   []Tile
	cursor  uint64

	done atomic.Bool
}

func New(w *world.World, f *film.Film, cam *camera.Perspective, opts Options, li integrator.Integrator) *Renderer {
	if opts.TileSize <= 0 {
		panic("render: tile size must be positive")
	}
	var tiles []Tile
	if opts.Spiral {
		tiles = BuildTilesSpiral(f.Width(), f.Height(), opts.TileSize)
	} else {
		tiles = BuildTilesLinear(f.Width(), f.Height(), opts.TileSize)
	}
	r := &Renderer{world: w, film: f, opts: opts, tiles: tiles}
	r.cam.Store(cam)
	r.SetIntegrator(li)
	return r
}

// Film returns the Film this renderer accumulates into, for display and
// output code that needs read access to pixel data.
func (r *Renderer) Film() *film.Film { return r.film }

// Camera returns the camera currently generating rays for this renderer.
func (r *Renderer) Camera() *camera.Perspective { return r.cam.Load() }

// SetCamera atomically swaps the renderer's camera; callers must call Reset
// afterward since a camera change invalidates every accumulated sample.
func (r *Renderer) SetCamera(cam *camera.Perspective) { r.cam.Store(cam) }

// SetIntegrator atomically swaps the shared integrator reference; in-flight
// tile renders keep using whatever they already snapshotted.
func (r *Renderer) SetIntegrator(li integrator.Integrator) {
	r.integrator.Store(&li)
}

func (r *Renderer) currentIntegrator() integrator.Integrator {
	return *r.integrator.Load()
}

// Reset clears every tile's pass counter and zeroes the Film, taking both
// locks the way the renderer's reset contract requires for any action that
// invalidates pixels (camera change, integrator change, option change).
func (r *Renderer) Reset() {
	r.tilesMu.Lock()
	defer r.tilesMu.Unlock()
	for i := range r.tiles {
		r.tiles[i].n = 0
	}
	r.cursor = 0
	r.film.Reset()
}

// claim pops the next tile index under the tiles mutex, wrapping modulo the
// tile count; it returns false once a non-interactive render has advanced
// past the tile list length.
func (r *Renderer) claim(interactive bool) (int, bool) {
	r.tilesMu.Lock()
	defer r.tilesMu.Unlock()
	if len(r.tiles) == 0 {
		return 0, false
	}
	cur := r.cursor
	if !interactive && cur >= uint64(len(r.tiles)) {
		return 0, false
	}
	r.cursor++
	return int(cur % uint64(len(r.tiles))), true
}

func (r *Renderer) tileAt(idx int) Tile {
	r.tilesMu.Lock()
	defer r.tilesMu.Unlock()
	return r.tiles[idx]
}

func (r *Renderer) incrementPass(idx int) int32 {
	r.tilesMu.Lock()
	defer r.tilesMu.Unlock()
	r.tiles[idx].n++
	return r.tiles[idx].n
}

// Run launches hardware_concurrency-1 worker goroutines (minimum 1) and
// blocks until the context is canceled (interactive mode) or every worker's
// claim loop runs dry (non-interactive, single-pass batch render).
func (r *Renderer) Run(ctx context.Context, interactive bool) error {
	n := runtime.NumCPU() - 1
	if n < 1 {
		n = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		seed := int64(i) + 1
		g.Go(func() error {
			return r.workerLoop(ctx, interactive, vmath.NewRNG(seed))
		})
	}
	err := g.Wait()
	r.done.Store(true)
	return err
}

func (r *Renderer) workerLoop(ctx context.Context, interactive bool, rng *vmath.RNG) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		idx, ok := r.claim(interactive)
		if !ok {
			return nil
		}
		tile := r.tileAt(idx)
		li := r.currentIntegrator()
		r.renderTile(tile, li, rng)
		r.incrementPass(idx)
	}
}

// Done reports whether the last Run call has returned.
func (r *Renderer) Done() bool { return r.done.Load() }
