// film.go - the pixel accumulator: running mean color and online luminance
// variance per pixel, updated sample-by-sample via Welford's recurrence.
package film

import (
	"math"

	"github.com/hoptracer/hoptracer/internal/spectrum"
)

// Pixel holds one pixel's running statistics. Variance must never be
// computed from a rolling sum of squares: the update order below (variance
// from the old mean, then mean) is what keeps Welford's recurrence stable.
type Pixel struct {
	Mean     spectrum.RGB
	Variance float64
	N        float64
}

// AddSample folds one more sample into the running mean and variance.
func (p *Pixel) AddSample(color spectrum.RGB) {
	p.N++
	if p.N > 1 {
		y := color.Luminance() - p.Mean.Luminance()
		p.Variance = p.Variance*(p.N-2)/(p.N-1) + (y*y)/p.N
	}
	p.Mean = p.Mean.Add(color.Sub(p.Mean).Scale(1 / p.N))
}

// Reset zeroes the pixel back to its initial, unsampled state.
func (p *Pixel) Reset() { *p = Pixel{} }

// StdDev returns sqrt(Variance); adaptive and firefly sampling both key off
// this rather than raw variance.
func (p *Pixel) StdDev() float64 {
	if p.Variance <= 0 {
		return 0
	}
	return math.Sqrt(p.Variance)
}
