// main.go - hoptrace entry point: parse flags, load a scene script, hand it
// to a Renderer, and either drive an interactive window or run a fixed-
// sample batch render to a PNG file.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hoptracer/hoptracer/internal/camera"
	"github.com/hoptracer/hoptracer/internal/display"
	"github.com/hoptracer/hoptracer/internal/film"
	"github.com/hoptracer/hoptracer/internal/integrator"
	"github.com/hoptracer/hoptracer/internal/render"
	"github.com/hoptracer/hoptracer/internal/scene"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "hoptrace:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		scenePath = flag.String("scene", "", "path to a Lua scene script (required)")
		out       = flag.String("out", "", "write a single batch render to this PNG path instead of opening a window")
		headless  = flag.Bool("headless", false, "run without a window even if -out is not set; implied by -out")
		integ     = flag.String("integrator", "path", "path, ao, position, normal, or uv")
		scale     = flag.Int("scale", 1, "window pixel scale factor")
	)
	flag.Parse()

	if *scenePath == "" {
		return fmt.Errorf("-scene is required")
	}

	builder, err := scene.Script(*scenePath)
	if err != nil {
		return err
	}
	cam, err := builder.Preprocess()
	if err != nil {
		return err
	}
	renderOpts := builder.RenderOptions()

	f := film.New(renderOpts.FrameWidth, renderOpts.FrameHeight)
	li := resolveIntegrator(*integ)

	batch := *out != "" || *headless

	opts := render.Options{
		SamplesPerPixel:   renderOpts.SamplesPerPixel,
		TileSize:          renderOpts.TileWidth,
		Spiral:            renderOpts.Spiral,
		AdaptiveSPP:       renderOpts.AdaptiveSPP,
		AdaptiveThreshold: renderOpts.AdaptiveThreshold,
		AdaptiveExponent:  renderOpts.AdaptiveExponent,
		FireflySPP:        renderOpts.FireflySPP,
		FireflyThreshold:  renderOpts.FireflyThreshold,
	}
	// Preview refinement exists to keep an interactive window responsive
	// while samples accumulate; a non-interactive batch render claims every
	// tile exactly once, so leaving it on would freeze the output at the
	// coarse first preview block instead of ever reaching SamplesPerPixel.
	if renderOpts.Preview && !batch {
		opts.PreviewSPP = renderOpts.PreviewSPP
	}

	r := render.New(builder.World, f, cam, opts, li)

	if batch {
		return runBatch(r, renderOpts, *out)
	}
	return runInteractive(r, renderOpts, builder, *scale)
}

func resolveIntegrator(name string) integrator.Integrator {
	switch name {
	case "ao":
		return integrator.NewAmbientOcclusion()
	case "position":
		return &integrator.Position{}
	case "normal":
		return &integrator.Normal{Remap: true}
	case "uv":
		return &integrator.UV{}
	default:
		return integrator.NewPathTracer()
	}
}

// runBatch renders exactly one full pass over every tile, non-interactively,
// then writes the result as a PNG if -out was given.
func runBatch(r *render.Renderer, opts scene.RenderOptions, out string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go reportProgress(ctx, cancel, r)

	if err := r.Run(ctx, false); err != nil {
		return err
	}
	if out == "" {
		return nil
	}

	snapshot := r.Film().Snapshot(nil)
	curve := display.CurveFor(opts.Tonemap)
	rgb := display.ComposeRGB(nil, snapshot, opts.FrameWidth, opts.FrameHeight, display.ChannelColor, curve, float64(opts.SamplesPerPixel))
	return writePNG(out, rgb, opts.FrameWidth, opts.FrameHeight)
}

func writePNG(path string, rgb []byte, w, h int) error {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, j := 0, 0; i+3 <= len(rgb) && j+4 <= len(img.Pix); i, j = i+3, j+4 {
		img.Pix[j] = rgb[i]
		img.Pix[j+1] = rgb[i+1]
		img.Pix[j+2] = rgb[i+2]
		img.Pix[j+3] = 0xFF
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// runInteractive opens a window and refreshes it from the Film on a fixed
// tick while the renderer's worker pool runs continuously in the
// background. Trackball drags feed a new camera straight back into the
// Renderer, so a drag takes effect on the very next tile claim.
func runInteractive(r *render.Renderer, opts scene.RenderOptions, builder *scene.Builder, scale int) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	camOpts := builder.CameraOptions()
	win := display.NewWindow(display.Config{
		Width:   opts.FrameWidth,
		Height:  opts.FrameHeight,
		Scale:   scale,
		Title:   "hoptrace",
		Camera:  camOpts,
		Tonemap: opts.Tonemap,
		OnReset: r.Reset,
		OnCameraMoved: func(next camera.Options) {
			next.FilmWidth, next.FilmHeight = camOpts.FilmWidth, camOpts.FilmHeight
			next.FovY, next.Near, next.Far = camOpts.FovY, camOpts.Near, camOpts.Far
			next.LensRadius, next.FocalDistance = camOpts.LensRadius, camOpts.FocalDistance
			cam, err := camera.NewPerspective(next)
			if err != nil {
				return
			}
			r.SetCamera(cam)
		},
	})

	renderErrCh := make(chan error, 1)
	go func() { renderErrCh <- r.Run(ctx, true) }()

	go refreshLoop(ctx, win, r, opts)

	go func() {
		<-win.Closed()
		cancel()
	}()

	if err := win.Run(); err != nil {
		cancel()
		return err
	}
	cancel()
	return <-renderErrCh
}

func refreshLoop(ctx context.Context, win *display.Window, r *render.Renderer, opts scene.RenderOptions) {
	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	var rgb []byte
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := r.Film().Snapshot(nil)
			curve := display.CurveFor(win.Tonemap())
			rgb = display.ComposeRGB(rgb, snap, opts.FrameWidth, opts.FrameHeight, win.Channel(), curve, float64(opts.SamplesPerPixel))
			win.WriteRGB(rgb)
		}
	}
}
