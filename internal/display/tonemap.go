// tonemap.go - the four tone-map curves the display loop can select,
// ported from the original hop renderer's render/tonemap.cpp.
package display

import (
	"math"

	"github.com/hoptracer/hoptracer/internal/scene"
	"github.com/hoptracer/hoptracer/internal/spectrum"
)

// Curve maps a linear HDR color to a displayable [0,1] RGB.
type Curve func(spectrum.RGB) spectrum.RGB

func CurveFor(t scene.Tonemap) Curve {
	switch t {
	case scene.TonemapLinear:
		return Linear
	case scene.TonemapReinhard:
		return Reinhard
	case scene.TonemapFilmic:
		return Filmic
	default:
		return Gamma
	}
}

// Linear clamps to [0,1] with no curve applied.
func Linear(c spectrum.RGB) spectrum.RGB {
	return c.Clamp(0, 1)
}

const gammaExponent = 1 / 2.2

// Gamma applies the standard 1/2.2 power curve after clamping negative
// radiance to zero.
func Gamma(c spectrum.RGB) spectrum.RGB {
	return spectrum.RGB{
		R: math.Pow(math.Max(c.R, 0), gammaExponent),
		G: math.Pow(math.Max(c.G, 0), gammaExponent),
		B: math.Pow(math.Max(c.B, 0), gammaExponent),
	}.Clamp(0, 1)
}

// Reinhard applies c/(1+c) per channel, then gamma-corrects.
func Reinhard(c spectrum.RGB) spectrum.RGB {
	reinhard := func(v float64) float64 {
		v = math.Max(v, 0)
		return v / (1 + v)
	}
	return Gamma(spectrum.RGB{R: reinhard(c.R), G: reinhard(c.G), B: reinhard(c.B)})
}

// Filmic applies the Hable/Uncharted 2 filmic curve, a closer match to
// photographic highlight rolloff than Reinhard.
func Filmic(c spectrum.RGB) spectrum.RGB {
	const (
		a = 0.22
		b = 0.30
		cc = 0.10
		d = 0.20
		e = 0.01
		f = 0.30
		w = 11.2
	)
	curve := func(x float64) float64 {
		return ((x*(a*x+cc*b) + d*e) / (x*(a*x+b) + d*f)) - e/f
	}
	whiteScale := 1 / curve(w)
	apply := func(v float64) float64 {
		v = math.Max(v, 0)
		return curve(v) * whiteScale
	}
	return spectrum.RGB{R: apply(c.R), G: apply(c.G), B: apply(c.B)}.Clamp(0, 1)
}
