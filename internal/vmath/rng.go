// rng.go - per-worker random number generation for sampling.
package vmath

import (
	"math"
	"math/rand"
)

// RNG wraps a *rand.Rand so each render worker owns an independent stream;
// math/rand.Rand is not safe for concurrent use, so every worker and every
// tile-preview pass must hold its own instance.
type RNG struct {
	r *rand.Rand
}

func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

func (g *RNG) Float64() float64 { return g.r.Float64() }

// Vec2 returns a sample uniform in [0,1)^2.
func (g *RNG) Vec2() Vec2 { return Vec2{g.r.Float64(), g.r.Float64()} }

// ConcentricSampleDisk maps a [0,1)^2 sample to a unit disk with Shirley's
// concentric mapping, used for lens sampling and cosine-hemisphere sampling.
func ConcentricSampleDisk(u Vec2) Vec2 {
	ox := 2*u.X - 1
	oy := 2*u.Y - 1
	if ox == 0 && oy == 0 {
		return Vec2{0, 0}
	}
	var r, theta float64
	if ox*ox > oy*oy {
		r = ox
		theta = (math.Pi / 4) * (oy / ox)
	} else {
		r = oy
		theta = (math.Pi / 2) - (math.Pi/4)*(ox/oy)
	}
	return Vec2{r * math.Cos(theta), r * math.Sin(theta)}
}
