// grid.go - the Film: a mutex-guarded Pixel grid shared between render
// workers (writers) and the display thread (reader). Workers hold the lock
// only long enough to fold in one sample; the display thread holds it only
// long enough to copy a snapshot, a tightly packed frameBuffer/
// bufferMutex split.
package film

import (
	"sync"

	"github.com/hoptracer/hoptracer/internal/spectrum"
)

// Film owns every pixel's running statistics for one render.
type Film struct {
	mu     sync.Mutex
	width  int
	height int
	pixels []Pixel
}

func New(width, height int) *Film {
	if width <= 0 || height <= 0 {
		panic("film: width and height must be positive")
	}
	return &Film{
		width:  width,
		height: height,
		pixels: make([]Pixel, width*height),
	}
}

func (f *Film) Width() int  { return f.width }
func (f *Film) Height() int { return f.height }

func (f *Film) index(x, y int) int { return y*f.width + x }

// AddSample folds color into pixel (x, y) under the Film's lock.
func (f *Film) AddSample(x, y int, color spectrum.RGB) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pixels[f.index(x, y)].AddSample(color)
}

// SetPixel overwrites pixel (x, y) outright, used by preview refinement to
// write one averaged block color to every pixel it covers.
func (f *Film) SetPixel(x, y int, p Pixel) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pixels[f.index(x, y)] = p
}

// Get returns a copy of pixel (x, y)'s current state.
func (f *Film) Get(x, y int) Pixel {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pixels[f.index(x, y)]
}

// ResetPixel zeroes a single pixel back to its unsampled state.
func (f *Film) ResetPixel(x, y int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pixels[f.index(x, y)].Reset()
}

// ResetRegion zeroes every pixel in [x, x+w) x [y, y+h), clamped to the
// Film's bounds; used when a tile is invalidated mid-render.
func (f *Film) ResetRegion(x, y, w, h int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	x0, y0 := clampInt(x, 0, f.width), clampInt(y, 0, f.height)
	x1, y1 := clampInt(x+w, 0, f.width), clampInt(y+h, 0, f.height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			f.pixels[f.index(px, py)].Reset()
		}
	}
}

// Reset zeroes every pixel in the Film; part of the renderer's reset
// contract whenever the camera, integrator, or render options change.
func (f *Film) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.pixels {
		f.pixels[i].Reset()
	}
}

// Snapshot copies every pixel's current state into dst, resizing it if
// necessary. The display thread uses this to read a consistent frame
// without holding the Film lock across the whole tone-map pass.
func (f *Film) Snapshot(dst []Pixel) []Pixel {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cap(dst) < len(f.pixels) {
		dst = make([]Pixel, len(f.pixels))
	}
	dst = dst[:len(f.pixels)]
	copy(dst, f.pixels)
	return dst
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
