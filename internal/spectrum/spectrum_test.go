package spectrum

import (
	"math"
	"testing"
)

func TestWhiteLuminanceIsOne(t *testing.T) {
	if got := White().Luminance(); math.Abs(got-1) > 1e-9 {
		t.Fatalf("White().Luminance() = %v, want 1", got)
	}
}

func TestBlackIsBlack(t *testing.T) {
	if !Black().IsBlack() {
		t.Fatal("Black() should report IsBlack()")
	}
	if White().IsBlack() {
		t.Fatal("White() should not report IsBlack()")
	}
}

func TestClampBoundsEachChannel(t *testing.T) {
	c := RGB{R: -1, G: 0.5, B: 5}.Clamp(0, 1)
	if c != (RGB{R: 0, G: 0.5, B: 1}) {
		t.Fatalf("Clamp(0,1) = %+v", c)
	}
}

func TestHasNaNDetectsNaNAndInf(t *testing.T) {
	if (RGB{R: 1, G: 1, B: 1}).HasNaN() {
		t.Fatal("finite color should not have NaN")
	}
	if !(RGB{R: math.NaN()}).HasNaN() {
		t.Fatal("NaN channel should be detected")
	}
	if !(RGB{R: math.Inf(1)}).HasNaN() {
		t.Fatal("Inf channel should be detected")
	}
}

func TestArithmetic(t *testing.T) {
	a := RGB{R: 1, G: 2, B: 3}
	b := RGB{R: 0.5, G: 0.5, B: 0.5}
	if got := a.Add(b); got != (RGB{1.5, 2.5, 3.5}) {
		t.Fatalf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (RGB{0.5, 1.5, 2.5}) {
		t.Fatalf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != (RGB{2, 4, 6}) {
		t.Fatalf("Scale = %+v", got)
	}
}
