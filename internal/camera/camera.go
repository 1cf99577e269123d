// camera.go - perspective projective camera with an optional thin lens.
package camera

import (
	"math"

	"github.com/hoptracer/hoptracer/internal/geometry"
	"github.com/hoptracer/hoptracer/internal/vmath"
)

// Options configures a Perspective camera; validated at construction per
// the camera's configuration-error taxonomy.
type Options struct {
	Eye, Target, Up vmath.Vec3
	FovY            float64
	LensRadius      float64
	FocalDistance   float64
	FilmWidth       int
	FilmHeight      int
	Near, Far       float64
}

func (o Options) Validate() error {
	if o.FilmWidth <= 0 || o.FilmHeight <= 0 {
		return errInvalidCamera("film dimensions must be positive")
	}
	if math.IsNaN(o.FovY) || math.IsInf(o.FovY, 0) || o.FovY <= 0 || o.FovY >= 180 {
		return errInvalidCamera("fovy must be a finite value in (0, 180)")
	}
	for _, v := range []vmath.Vec3{o.Eye, o.Target, o.Up} {
		if hasNaN(v) {
			return errInvalidCamera("camera vectors must not contain NaN/Inf")
		}
	}
	if o.LensRadius > 0 && o.FocalDistance <= 0 {
		return errInvalidCamera("focal distance must be positive when lens_radius > 0")
	}
	if o.Near <= 0 || o.Far <= o.Near {
		return errInvalidCamera("near/far clip planes must satisfy 0 < near < far")
	}
	return nil
}

func hasNaN(v vmath.Vec3) bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) ||
		math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

type cameraErr string

func (e cameraErr) Error() string { return string(e) }
func errInvalidCamera(msg string) error { return cameraErr("camera: " + msg) }

// Perspective is the only camera model the core implements: a pinhole with
// optional thin-lens depth of field.
type Perspective struct {
	opts Options

	cameraToWorld      vmath.Transform
	rasterToCamera     vmath.Transform
}

// NewPerspective validates opts and precomputes the raster-to-camera and
// camera-to-world transforms.
func NewPerspective(opts Options) (*Perspective, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	// LookAt already builds the camera-to-world transform directly: its
	// basis columns are the camera's right/up/forward axes and its
	// translation is the eye point.
	c2w := vmath.LookAt(opts.Eye, opts.Target, opts.Up)

	cameraToScreen := vmath.Perspective(opts.FovY, opts.Near, opts.Far)

	aspect := float64(opts.FilmWidth) / float64(opts.FilmHeight)
	var screenMin, screenMax vmath.Vec2
	if aspect > 1 {
		screenMin = vmath.Vec2{X: -aspect, Y: -1}
		screenMax = vmath.Vec2{X: aspect, Y: 1}
	} else {
		screenMin = vmath.Vec2{X: -1, Y: -1 / aspect}
		screenMax = vmath.Vec2{X: 1, Y: 1 / aspect}
	}

	screenToRaster := vmath.Identity4()
	sx := float64(opts.FilmWidth) / (screenMax.X - screenMin.X)
	sy := float64(opts.FilmHeight) / (screenMin.Y - screenMax.Y)
	screenToRaster[0][0] = sx
	screenToRaster[0][3] = -screenMin.X * sx
	screenToRaster[1][1] = sy
	screenToRaster[1][3] = -screenMax.Y * sy

	rasterToScreen := vmath.NewTransform(screenToRaster).Inverse()
	rasterToCamera := rasterToScreen.Compose(cameraToScreen.Inverse())

	return &Perspective{
		opts:           opts,
		cameraToWorld:  c2w,
		rasterToCamera: rasterToCamera,
	}, nil
}

// GenerateRay unprojects the raster sample to a
// camera-space direction, optionally resample the thin lens, then transform
// into world space. The weight slot is reserved for aperture weighting and
// is always 1 for now.
func (c *Perspective) GenerateRay(s Sample) (geometry.Ray, float64) {
	pCamera := c.rasterToCamera.TransformPoint(vmath.Vec3{X: s.FilmPoint.X, Y: s.FilmPoint.Y, Z: 0})

	origin := vmath.Vec3{}
	dir := pCamera.Normalize()

	if c.opts.LensRadius > 0 {
		lens := vmath.ConcentricSampleDisk(s.LensPoint).Scale(c.opts.LensRadius)
		ft := c.opts.FocalDistance / dir.Z
		focus := origin.Add(dir.Scale(ft))
		origin = vmath.Vec3{X: lens.X, Y: lens.Y, Z: 0}
		dir = focus.Sub(origin).Normalize()
	}

	worldOrigin := c.cameraToWorld.TransformPoint(origin)
	worldDir := c.cameraToWorld.TransformVector(dir)

	return geometry.NewRay(worldOrigin, worldDir, 1e-4, math.Inf(1)), 1
}

func (c *Perspective) Options() Options { return c.opts }
