// channel.go - which Film field the display loop reads per pixel before
// tone-mapping: the running color estimate, a false-colored variance view,
// or a false-colored sample-count view. Switching channels never mutates
// the Film; it only changes what PixelColor reads out of a snapshot.
package display

import (
	"math"

	"github.com/hoptracer/hoptracer/internal/film"
	"github.com/hoptracer/hoptracer/internal/spectrum"
)

type Channel int

const (
	ChannelColor Channel = iota
	ChannelVariance
	ChannelSampleCount
)

// PixelColor extracts the linear-HDR color this channel presents for p,
// before any tone-map curve is applied. Variance and sample-count are both
// normalized into a grayscale ramp so they tone-map through the same path
// as color.
func PixelColor(ch Channel, p film.Pixel, maxSamples float64) spectrum.RGB {
	switch ch {
	case ChannelVariance:
		v := math.Sqrt(math.Max(p.Variance, 0))
		return spectrum.Gray(v)
	case ChannelSampleCount:
		if maxSamples <= 0 {
			return spectrum.Black()
		}
		return spectrum.Gray(p.N / maxSamples)
	default:
		return p.Mean
	}
}
