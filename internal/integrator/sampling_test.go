package integrator

import (
	"math"
	"testing"

	"github.com/hoptracer/hoptracer/internal/vmath"
)

func TestCosineSampleHemisphereStaysInUpperHemisphereUnitSphere(t *testing.T) {
	corners := []vmath.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0.5, Y: 0.5}, {X: 0.25, Y: 0.75}}
	for _, u := range corners {
		d := CosineSampleHemisphere(u)
		if d.Z < 0 {
			t.Fatalf("CosineSampleHemisphere(%v) = %v, Z must be >= 0", u, d)
		}
		if math.Abs(d.LengthSquared()-1) > 1e-9 {
			t.Fatalf("CosineSampleHemisphere(%v) = %v is not unit length", u, d)
		}
	}
}

func TestCosineHemispherePDFIntegratesToOne(t *testing.T) {
	// Monte Carlo check: averaging pdf / (1/2π) over uniform hemisphere
	// directions estimates the integral of the pdf over the hemisphere,
	// which must be 1 within sampling noise.
	const n = 20000
	rng := vmath.NewRNG(7)
	var sum float64
	for i := 0; i < n; i++ {
		d := UniformSampleHemisphere(rng.Vec2())
		sum += CosineHemispherePDF(d.Z) * 2 * math.Pi
	}
	if got := sum / n; math.Abs(got-1) > 0.02 {
		t.Fatalf("integral of cosine pdf over hemisphere = %v, want 1", got)
	}
}

func TestUniformSampleHemisphereStaysInUpperHemisphereUnitSphere(t *testing.T) {
	rng := vmath.NewRNG(11)
	for i := 0; i < 1000; i++ {
		d := UniformSampleHemisphere(rng.Vec2())
		if d.Z < 0 {
			t.Fatalf("UniformSampleHemisphere = %v, Z must be >= 0", d)
		}
		if math.Abs(d.LengthSquared()-1) > 1e-9 {
			t.Fatalf("UniformSampleHemisphere = %v is not unit length", d)
		}
	}
}

func TestUniformHemispherePDFIsConstant(t *testing.T) {
	want := 1 / (2 * math.Pi)
	if got := UniformHemispherePDF(); math.Abs(got-want) > 1e-12 {
		t.Fatalf("UniformHemispherePDF() = %v, want %v", got, want)
	}
}

func TestToWorldPreservesAxisAlignment(t *testing.T) {
	n := vmath.Vec3{X: 0, Y: 0, Z: 1}
	local := vmath.Vec3{X: 0, Y: 0, Z: 1}
	world := ToWorld(local, n)
	if math.Abs(world.X-n.X) > 1e-9 || math.Abs(world.Y-n.Y) > 1e-9 || math.Abs(world.Z-n.Z) > 1e-9 {
		t.Fatalf("ToWorld of local +Z with n=+Z should return n, got %v", world)
	}
}

func TestToWorldTiltedNormal(t *testing.T) {
	n := vmath.Vec3{X: 1, Y: 0, Z: 0}.Normalize()
	local := vmath.Vec3{X: 0, Y: 0, Z: 1}
	world := ToWorld(local, n)
	if math.Abs(world.Sub(n).Length()) > 1e-9 {
		t.Fatalf("ToWorld of local +Z should equal n regardless of n's direction, got %v want %v", world, n)
	}
}
