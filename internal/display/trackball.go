// trackball.go - an input-driven camera control, grounded on the original
// hop renderer's TrackBall (camera/trackball.cpp): left-drag rotates,
// middle-drag pans, right-drag zooms, all relative to the camera's own
// right/up axes. The original accumulated eye/target offsets directly; this
// version accumulates the rotation as a quaternion (internal/vmath.Quat)
// composed on every drag sample, which is what a true arcball needs and
// what the quaternion type in this codebase exists for.
package display

import (
	"github.com/hoptracer/hoptracer/internal/camera"
	"github.com/hoptracer/hoptracer/internal/vmath"
)

type dragMode int

const (
	dragNone dragMode = iota
	dragRotate
	dragPan
	dragZoom
)

// TrackBall owns the camera options it's currently driving and reports
// Dirty() so the caller (the display loop) knows to reset the renderer.
type TrackBall struct {
	origEye, origTarget, origUp vmath.Vec3

	eye, target, up vmath.Vec3
	rotation        vmath.Quat

	mode        dragMode
	lastX, lastY float64
	haveLast    bool

	dirty bool

	motionSensitivity float64
	zoomSensitivity   float64
}

func NewTrackBall(opts camera.Options) *TrackBall {
	return &TrackBall{
		origEye: opts.Eye, origTarget: opts.Target, origUp: opts.Up,
		eye: opts.Eye, target: opts.Target, up: opts.Up,
		rotation:          vmath.IdentityQuat(),
		motionSensitivity: 0.01,
		zoomSensitivity:   0.1,
	}
}

// OnButtonDown begins a drag; button follows the left/right/middle
// convention of the original (0 = left/rotate, 1 = right/zoom, 2 =
// middle/pan).
func (tb *TrackBall) OnButtonDown(button int) {
	switch button {
	case 0:
		tb.mode = dragRotate
	case 1:
		tb.mode = dragZoom
	case 2:
		tb.mode = dragPan
	default:
		tb.mode = dragNone
	}
	tb.haveLast = false
}

func (tb *TrackBall) OnButtonUp() {
	tb.mode = dragNone
}

// OnMotion feeds a new cursor position; x, y are in window pixel space.
func (tb *TrackBall) OnMotion(x, y float64) {
	if !tb.haveLast {
		tb.lastX, tb.lastY = x, y
		tb.haveLast = true
		return
	}
	dx, dy := x-tb.lastX, y-tb.lastY
	tb.lastX, tb.lastY = x, y
	if dx == 0 && dy == 0 {
		return
	}

	right := tb.eye.Sub(tb.target).Cross(tb.up).Normalize()
	switch tb.mode {
	case dragRotate:
		qx := vmath.QuatFromAxisAngle(tb.up, -dx*tb.motionSensitivity)
		qy := vmath.QuatFromAxisAngle(right, -dy*tb.motionSensitivity)
		tb.rotation = qy.Mul(qx).Mul(tb.rotation).Normalize()
		offset := tb.origEye.Sub(tb.origTarget)
		tb.eye = tb.target.Add(tb.rotation.Rotate(offset))
		tb.up = tb.rotation.Rotate(tb.origUp).Normalize()
		tb.dirty = true
	case dragPan:
		diff := right.Scale(dx * tb.motionSensitivity).Add(tb.up.Scale(dy * tb.motionSensitivity))
		tb.eye = tb.eye.Add(diff)
		tb.target = tb.target.Add(diff)
		tb.dirty = true
	case dragZoom:
		dir := tb.eye.Sub(tb.target).Normalize()
		sign := signOf(dx + dy)
		tb.eye = tb.eye.Add(dir.Scale(sign * tb.zoomSensitivity))
		tb.dirty = true
	}
}

func signOf(v float64) float64 {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}

// Reset restores the camera to its construction-time eye/target/up.
func (tb *TrackBall) Reset() {
	tb.eye, tb.target, tb.up = tb.origEye, tb.origTarget, tb.origUp
	tb.rotation = vmath.IdentityQuat()
	tb.dirty = true
}

// Dirty reports (and clears) whether the camera moved since the last call.
func (tb *TrackBall) Dirty() bool {
	d := tb.dirty
	tb.dirty = false
	return d
}

// Apply writes the trackball's current eye/target/up into opts.
func (tb *TrackBall) Apply(opts *camera.Options) {
	opts.Eye, opts.Target, opts.Up = tb.eye, tb.target, tb.up
}
