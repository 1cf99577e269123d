package film

import (
	"math"
	"testing"

	"github.com/hoptracer/hoptracer/internal/spectrum"
)

func TestPixelAddSampleMeanConverges(t *testing.T) {
	var p Pixel
	samples := []float64{1, 2, 3, 4, 5}
	for _, s := range samples {
		p.AddSample(spectrum.Gray(s))
	}
	want := 3.0 // mean of 1..5
	if math.Abs(p.Mean.Luminance()-want) > 1e-9 {
		t.Fatalf("mean = %v, want %v", p.Mean.Luminance(), want)
	}
	if p.N != float64(len(samples)) {
		t.Fatalf("N = %v, want %v", p.N, len(samples))
	}
}

func TestPixelAddSampleVarianceMatchesSampleVariance(t *testing.T) {
	var p Pixel
	samples := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	for _, s := range samples {
		p.AddSample(spectrum.Gray(s))
	}

	mean := 0.0
	for _, s := range samples {
		mean += s
	}
	mean /= float64(len(samples))

	var sumSq float64
	for _, s := range samples {
		d := s - mean
		sumSq += d * d
	}
	wantVariance := sumSq / float64(len(samples)-1)

	if math.Abs(p.Variance-wantVariance) > 1e-9 {
		t.Fatalf("variance = %v, want %v", p.Variance, wantVariance)
	}
	if math.Abs(p.StdDev()-math.Sqrt(wantVariance)) > 1e-9 {
		t.Fatalf("stddev = %v, want %v", p.StdDev(), math.Sqrt(wantVariance))
	}
}

func TestPixelSingleSampleHasZeroVariance(t *testing.T) {
	var p Pixel
	p.AddSample(spectrum.Gray(0.5))
	if p.Variance != 0 {
		t.Fatalf("variance after one sample = %v, want 0", p.Variance)
	}
	if p.StdDev() != 0 {
		t.Fatalf("stddev after one sample = %v, want 0", p.StdDev())
	}
}

func TestPixelReset(t *testing.T) {
	var p Pixel
	p.AddSample(spectrum.White())
	p.AddSample(spectrum.Black())
	p.Reset()
	if p != (Pixel{}) {
		t.Fatalf("Reset left non-zero pixel: %+v", p)
	}
}
