package display

import (
	"testing"

	"github.com/hoptracer/hoptracer/internal/film"
	"github.com/hoptracer/hoptracer/internal/spectrum"
)

func TestComposeRGBProducesExpectedByteCount(t *testing.T) {
	snapshot := []film.Pixel{
		{Mean: spectrum.White()},
		{Mean: spectrum.Black()},
	}
	rgb := ComposeRGB(nil, snapshot, 2, 1, ChannelColor, Linear, 1)
	if len(rgb) != 2*1*3 {
		t.Fatalf("len(rgb) = %d, want %d", len(rgb), 2*1*3)
	}
	if rgb[0] != 255 || rgb[1] != 255 || rgb[2] != 255 {
		t.Fatalf("first pixel = %v, want white", rgb[0:3])
	}
	if rgb[3] != 0 || rgb[4] != 0 || rgb[5] != 0 {
		t.Fatalf("second pixel = %v, want black", rgb[3:6])
	}
}

func TestComposeRGBReusesCapacity(t *testing.T) {
	snapshot := []film.Pixel{{Mean: spectrum.Gray(0.5)}}
	dst := make([]byte, 0, 64)
	rgb := ComposeRGB(dst, snapshot, 1, 1, ChannelColor, Linear, 1)
	if len(rgb) != 3 {
		t.Fatalf("len(rgb) = %d, want 3", len(rgb))
	}
}

func TestToByteRounding(t *testing.T) {
	if toByte(-1) != 0 {
		t.Fatal("toByte(-1) should clamp to 0")
	}
	if toByte(2) != 255 {
		t.Fatal("toByte(2) should clamp to 255")
	}
	if toByte(1) != 255 {
		t.Fatal("toByte(1) should be 255")
	}
}
