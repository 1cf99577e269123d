package display

import (
	"math"
	"testing"

	"github.com/hoptracer/hoptracer/internal/film"
	"github.com/hoptracer/hoptracer/internal/spectrum"
)

func TestPixelColorChannelColorReturnsMean(t *testing.T) {
	p := film.Pixel{Mean: spectrum.RGB{R: 0.2, G: 0.4, B: 0.6}, N: 3}
	got := PixelColor(ChannelColor, p, 10)
	if got != p.Mean {
		t.Fatalf("got %+v, want %+v", got, p.Mean)
	}
}

func TestPixelColorChannelVarianceIsGrayStdDev(t *testing.T) {
	p := film.Pixel{Variance: 4, N: 3}
	got := PixelColor(ChannelVariance, p, 10)
	want := spectrum.Gray(2)
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestPixelColorChannelVarianceClampsNegative(t *testing.T) {
	p := film.Pixel{Variance: -1, N: 3}
	got := PixelColor(ChannelVariance, p, 10)
	if got != spectrum.Black() {
		t.Fatalf("got %+v, want black for negative variance", got)
	}
}

func TestPixelColorChannelSampleCountNormalizes(t *testing.T) {
	p := film.Pixel{N: 5}
	got := PixelColor(ChannelSampleCount, p, 10)
	want := spectrum.Gray(0.5)
	if math.Abs(got.R-want.R) > 1e-9 {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestPixelColorChannelSampleCountZeroMaxIsBlack(t *testing.T) {
	p := film.Pixel{N: 5}
	got := PixelColor(ChannelSampleCount, p, 0)
	if got != spectrum.Black() {
		t.Fatalf("got %+v, want black when maxSamples <= 0", got)
	}
}
