// compose.go - turns a Film snapshot into a packed RGB byte buffer: select a
// channel, apply the sample-count channel's pass-count normalization, tone
// map, then quantize to 8 bits per channel.
package display

import (
	"github.com/hoptracer/hoptracer/internal/film"
)

// ComposeRGB reads width*height pixels from snapshot (row-major, as returned
// by film.Film.Snapshot) and writes width*height*3 bytes into dst, growing
// it if necessary. maxSamples normalizes the sample-count channel; pass the
// renderer's configured SamplesPerPixel (or the current max tile pass count)
// for a stable scale.
func ComposeRGB(dst []byte, snapshot []film.Pixel, width, height int, ch Channel, curve Curve, maxSamples float64) []byte {
	need := width * height * 3
	if cap(dst) < need {
		dst = make([]byte, need)
	} else {
		dst = dst[:need]
	}
	for i, p := range snapshot {
		if i >= width*height {
			break
		}
		c := curve(PixelColor(ch, p, maxSamples))
		o := i * 3
		dst[o] = toByte(c.R)
		dst[o+1] = toByte(c.G)
		dst[o+2] = toByte(c.B)
	}
	return dst
}

func toByte(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}
