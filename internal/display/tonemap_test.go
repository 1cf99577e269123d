package display

import (
	"math"
	"testing"

	"github.com/hoptracer/hoptracer/internal/scene"
	"github.com/hoptracer/hoptracer/internal/spectrum"
)

func TestLinearClamps(t *testing.T) {
	c := Linear(spectrum.RGB{R: 2, G: -1, B: 0.5})
	if c.R != 1 || c.G != 0 || c.B != 0.5 {
		t.Fatalf("Linear(...) = %+v", c)
	}
}

func TestGammaOfOneIsOne(t *testing.T) {
	c := Gamma(spectrum.White())
	if math.Abs(c.R-1) > 1e-9 || math.Abs(c.G-1) > 1e-9 || math.Abs(c.B-1) > 1e-9 {
		t.Fatalf("Gamma(white) = %+v, want white", c)
	}
}

func TestGammaClampsNegativeToZero(t *testing.T) {
	c := Gamma(spectrum.RGB{R: -1, G: -1, B: -1})
	if c.R != 0 || c.G != 0 || c.B != 0 {
		t.Fatalf("Gamma(negative) = %+v, want black", c)
	}
}

func TestReinhardNeverExceedsOne(t *testing.T) {
	c := Reinhard(spectrum.RGB{R: 1000, G: 1000, B: 1000})
	if c.R > 1 || c.G > 1 || c.B > 1 {
		t.Fatalf("Reinhard(huge) = %+v, should stay <= 1", c)
	}
}

func TestFilmicWhitePointMapsNearOne(t *testing.T) {
	c := Filmic(spectrum.RGB{R: 11.2, G: 11.2, B: 11.2})
	if c.R < 0.95 || c.R > 1.0 {
		t.Fatalf("Filmic at the white point = %v, want close to 1", c.R)
	}
}

func TestCurveForDispatchesOnTonemap(t *testing.T) {
	cases := map[scene.Tonemap]float64{
		scene.TonemapLinear:   0.5,
		scene.TonemapGamma:    math.Pow(0.5, gammaExponent),
		scene.TonemapReinhard: math.Pow(0.5/1.5, gammaExponent),
	}
	for tm, want := range cases {
		curve := CurveFor(tm)
		got := curve(spectrum.Gray(0.5))
		if math.Abs(got.R-want) > 1e-6 {
			t.Fatalf("CurveFor(%v)(0.5) = %v, want %v", tm, got.R, want)
		}
	}
}
