// options.go - RenderOptions: the renderer's tunable knobs, validated at
// construction the way the original hop renderer validated its option
// struct before handing it to the Renderer constructor.
package scene

import (
	"fmt"
	"math"
)

// Tonemap names the four curves internal/display implements.
type Tonemap string

const (
	TonemapLinear   Tonemap = "linear"
	TonemapGamma    Tonemap = "gamma"
	TonemapReinhard Tonemap = "reinhard"
	TonemapFilmic   Tonemap = "filmic"
)

// RenderOptions mirrors the fields the original Lua renderer_ctor binding
// read out of its options table (frame size, tile size, spp, preview,
// adaptive/firefly sampling, tonemap curve).
type RenderOptions struct {
	FrameWidth, FrameHeight int
	TileWidth, TileHeight   int
	Spiral                  bool

	SamplesPerPixel int

	Preview    bool
	PreviewSPP int

	AdaptiveSPP       int
	AdaptiveThreshold float64
	AdaptiveExponent  float64

	FireflySPP       int
	FireflyThreshold float64

	Tonemap Tonemap
}

// DefaultRenderOptions mirrors api.cpp's renderer_ctor defaults.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		FrameWidth: 512, FrameHeight: 512,
		TileWidth: 16, TileHeight: 16,
		SamplesPerPixel:   10,
		Preview:           true,
		PreviewSPP:        1,
		AdaptiveThreshold: 1,
		AdaptiveExponent:  1,
		FireflyThreshold:  1,
		Tonemap:           TonemapGamma,
	}
}

// Validate catches configuration errors before a render starts: zero tile
// size, zero spp, non-finite parameters, and inconsistent sampling knobs are
// all reported here rather than discovered mid-render.
func (o RenderOptions) Validate() error {
	if o.FrameWidth <= 0 || o.FrameHeight <= 0 {
		return fmt.Errorf("scene: frame dimensions must be positive, got %dx%d", o.FrameWidth, o.FrameHeight)
	}
	if o.TileWidth <= 0 || o.TileHeight <= 0 {
		return fmt.Errorf("scene: tile dimensions must be positive, got %dx%d", o.TileWidth, o.TileHeight)
	}
	if o.SamplesPerPixel <= 0 {
		return fmt.Errorf("scene: samples_per_pixel must be positive, got %d", o.SamplesPerPixel)
	}
	if o.AdaptiveSPP < 0 || o.FireflySPP < 0 || o.PreviewSPP < 0 {
		return fmt.Errorf("scene: sample counts must not be negative")
	}
	for name, v := range map[string]float64{
		"adaptive_threshold": o.AdaptiveThreshold,
		"adaptive_exponent":  o.AdaptiveExponent,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("scene: %s must be finite, got %v", name, v)
		}
	}
	// firefly_threshold = +Inf is the documented "never triggers" disable
	// value (see the renderer's firefly pass); only NaN and -Inf are errors.
	if math.IsNaN(o.FireflyThreshold) || math.IsInf(o.FireflyThreshold, -1) {
		return fmt.Errorf("scene: firefly_threshold must not be NaN or -Inf, got %v", o.FireflyThreshold)
	}
	switch o.Tonemap {
	case TonemapLinear, TonemapGamma, TonemapReinhard, TonemapFilmic, "":
	default:
		return fmt.Errorf("scene: unknown tonemap %q", o.Tonemap)
	}
	return nil
}
