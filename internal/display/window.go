// window.go - Ebiten-backed interactive window, grounded on the original
// engine's EbitenOutput (video_backend_ebiten.go): a packed RGB frame buffer
// behind a sync.RWMutex, an ebiten.Game implementation whose Draw blits that
// buffer into the screen image, and polling-style keyboard/mouse input
// instead of Ebiten's callback hooks.
package display

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
	xdraw "golang.org/x/image/draw"

	"github.com/hoptracer/hoptracer/internal/camera"
	"github.com/hoptracer/hoptracer/internal/scene"
)

// Window is the live preview front-end: it owns the trackball, the
// displayed channel/tonemap selection, and the RGB buffer the render loop
// writes into every frame.
type Window struct {
	width, height int
	scale         int

	bufferMu sync.RWMutex
	rgb      []byte // width*height*3, row-major, top-left origin

	img *ebiten.Image

	trackball *TrackBall
	channel   Channel
	tonemap   scene.Tonemap

	onReset   func()
	onDirty   func(camera.Options)
	closeOnce sync.Once
	closed    chan struct{}

	clipboardOnce sync.Once
	clipboardOK   bool
}

// Config bundles the window's fixed parameters.
type Config struct {
	Width, Height int
	Scale         int
	Title         string
	Camera        camera.Options
	Tonemap       scene.Tonemap
	OnReset       func()              // called when a hotkey or trackball drag invalidates accumulated samples
	OnCameraMoved func(camera.Options) // called with the new camera pose after a trackball drag
}

// NewWindow constructs a Window and configures the Ebiten window, but does
// not block; call Run to start the event loop.
func NewWindow(cfg Config) *Window {
	scale := cfg.Scale
	if scale < 1 {
		scale = 1
	}
	w := &Window{
		width:     cfg.Width,
		height:    cfg.Height,
		scale:     scale,
		rgb:       make([]byte, cfg.Width*cfg.Height*3),
		trackball: NewTrackBall(cfg.Camera),
		channel:   ChannelColor,
		tonemap:   cfg.Tonemap,
		onReset:   cfg.OnReset,
		onDirty:   cfg.OnCameraMoved,
		closed:    make(chan struct{}),
	}
	ebiten.SetWindowSize(cfg.Width*scale, cfg.Height*scale)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)
	return w
}

// WriteRGB copies a full width*height*3 RGB frame into the display buffer.
// Safe to call from a worker goroutine concurrently with Draw.
func (w *Window) WriteRGB(rgb []byte) {
	w.bufferMu.Lock()
	copy(w.rgb, rgb)
	w.bufferMu.Unlock()
}

// Channel reports the currently selected display channel.
func (w *Window) Channel() Channel { return w.channel }

// Tonemap reports the currently selected tone-map curve.
func (w *Window) Tonemap() scene.Tonemap { return w.tonemap }

// Closed reports whether the window has been closed.
func (w *Window) Closed() <-chan struct{} { return w.closed }

// Run starts Ebiten's blocking game loop. It returns once the window closes.
func (w *Window) Run() error {
	return ebiten.RunGame(w)
}

func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() {
		w.close()
		return ebiten.Termination
	}

	w.handleHotkeys()
	w.handleTrackballInput()
	return nil
}

func (w *Window) handleHotkeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		full := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(full)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.trackball.Reset()
		if w.onReset != nil {
			w.onReset()
		}
	}
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	if !(ctrl && shift) && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		w.channel = (w.channel + 1) % 3
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		w.cycleTonemap()
	}
	if ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		w.copyFrameToClipboard()
	}
}

func (w *Window) cycleTonemap() {
	switch w.tonemap {
	case scene.TonemapLinear:
		w.tonemap = scene.TonemapGamma
	case scene.TonemapGamma:
		w.tonemap = scene.TonemapReinhard
	case scene.TonemapReinhard:
		w.tonemap = scene.TonemapFilmic
	default:
		w.tonemap = scene.TonemapLinear
	}
}

// handleTrackballInput maps the left/right/middle mouse buttons onto the
// trackball's rotate/zoom/pan modes and feeds it cursor motion every frame
// a button is held.
func (w *Window) handleTrackballInput() {
	buttons := []struct {
		btn  ebiten.MouseButton
		mode int
	}{
		{ebiten.MouseButtonLeft, 0},
		{ebiten.MouseButtonRight, 1},
		{ebiten.MouseButtonMiddle, 2},
	}

	active := false
	for _, b := range buttons {
		switch {
		case inpututil.IsMouseButtonJustPressed(b.btn):
			w.trackball.OnButtonDown(b.mode)
			active = true
		case ebiten.IsMouseButtonPressed(b.btn):
			active = true
		case inpututil.IsMouseButtonJustReleased(b.btn):
			w.trackball.OnButtonUp()
		}
	}

	if active {
		x, y := ebiten.CursorPosition()
		w.trackball.OnMotion(float64(x), float64(y))
	}

	if w.trackball.Dirty() {
		var opts camera.Options
		w.trackball.Apply(&opts)
		if w.onDirty != nil {
			w.onDirty(opts)
		}
		if w.onReset != nil {
			w.onReset()
		}
	}
}

func (w *Window) Draw(screen *ebiten.Image) {
	if w.img == nil {
		w.img = ebiten.NewImage(w.width, w.height)
	}

	w.bufferMu.RLock()
	pix := rgbToRGBA(w.rgb, w.width, w.height)
	w.bufferMu.RUnlock()
	w.img.WritePixels(pix)

	op := &ebiten.DrawImageOptions{}
	if w.scale > 1 {
		op.GeoM.Scale(float64(w.scale), float64(w.scale))
	}
	screen.DrawImage(w.img, op)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width * w.scale, w.height * w.scale
}

func (w *Window) close() {
	w.closeOnce.Do(func() { close(w.closed) })
}

// rgbToRGBA expands a tightly packed RGB buffer into the RGBA layout
// ebiten.Image.WritePixels requires, filling alpha opaque.
func rgbToRGBA(rgb []byte, width, height int) []byte {
	out := make([]byte, width*height*4)
	for i, j := 0, 0; i+3 <= len(rgb) && j+4 <= len(out); i, j = i+3, j+4 {
		out[j] = rgb[i]
		out[j+1] = rgb[i+1]
		out[j+2] = rgb[i+2]
		out[j+3] = 0xFF
	}
	return out
}

// copyFrameToClipboard pushes the current display buffer onto the system
// clipboard as a PNG-encoded RGBA image via golang.design/x/clipboard,
// upscaled to the window's display scale with x/image/draw so a pasted
// screenshot matches what's on screen rather than the native render
// resolution.
func (w *Window) copyFrameToClipboard() {
	w.clipboardOnce.Do(func() {
		w.clipboardOK = clipboard.Init() == nil
	})
	if !w.clipboardOK {
		return
	}

	w.bufferMu.RLock()
	src := image.NewRGBA(image.Rect(0, 0, w.width, w.height))
	copy(src.Pix, rgbToRGBA(w.rgb, w.width, w.height))
	w.bufferMu.RUnlock()

	dstW, dstH := w.width*w.scale, w.height*w.scale
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	clipboard.Write(clipboard.FmtImage, encodePNG(dst))
}

func encodePNG(img image.Image) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		fmt.Println("hoptrace: clipboard encode failed:", err)
		return nil
	}
	return buf.Bytes()
}
