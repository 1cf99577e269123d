package display

import (
	"math"
	"testing"

	"github.com/hoptracer/hoptracer/internal/camera"
	"github.com/hoptracer/hoptracer/internal/vmath"
)

func baseCameraOptions() camera.Options {
	return camera.Options{
		Eye:    vmath.Vec3{X: 0, Y: 0, Z: 5},
		Target: vmath.Vec3{X: 0, Y: 0, Z: 0},
		Up:     vmath.Vec3{X: 0, Y: 1, Z: 0},
	}
}

func TestTrackBallNoMotionIsNotDirty(t *testing.T) {
	tb := NewTrackBall(baseCameraOptions())
	tb.OnButtonDown(0)
	tb.OnMotion(10, 10) // first sample only latches the cursor position
	if tb.Dirty() {
		t.Fatal("first motion sample should not mark the trackball dirty")
	}
}

func TestTrackBallRotateMarksDirtyAndMovesEye(t *testing.T) {
	tb := NewTrackBall(baseCameraOptions())
	tb.OnButtonDown(0)
	tb.OnMotion(0, 0)
	tb.OnMotion(20, 0)
	if !tb.Dirty() {
		t.Fatal("a rotate drag should mark the trackball dirty")
	}
	var opts camera.Options
	tb.Apply(&opts)
	if opts.Eye == baseCameraOptions().Eye {
		t.Fatal("eye should have moved after a rotate drag")
	}
	if math.Abs(opts.Eye.Sub(opts.Target).Length()-5) > 1e-6 {
		t.Fatalf("rotation should preserve eye-to-target distance, got %v", opts.Eye.Sub(opts.Target).Length())
	}
}

func TestTrackBallDirtyClearsAfterRead(t *testing.T) {
	tb := NewTrackBall(baseCameraOptions())
	tb.OnButtonDown(0)
	tb.OnMotion(0, 0)
	tb.OnMotion(20, 0)
	tb.Dirty()
	if tb.Dirty() {
		t.Fatal("Dirty() should clear the flag after being read once")
	}
}

func TestTrackBallResetRestoresOriginalPose(t *testing.T) {
	tb := NewTrackBall(baseCameraOptions())
	tb.OnButtonDown(0)
	tb.OnMotion(0, 0)
	tb.OnMotion(30, 15)
	tb.Reset()

	var opts camera.Options
	tb.Apply(&opts)
	base := baseCameraOptions()
	if opts.Eye.Sub(base.Eye).Length() > 1e-9 {
		t.Fatalf("Reset should restore the original eye, got %v want %v", opts.Eye, base.Eye)
	}
}

func TestTrackBallPanMovesEyeAndTargetTogether(t *testing.T) {
	tb := NewTrackBall(baseCameraOptions())
	tb.OnButtonDown(2) // middle = pan
	tb.OnMotion(0, 0)
	tb.OnMotion(10, 0)

	var opts camera.Options
	tb.Apply(&opts)
	base := baseCameraOptions()
	eyeDelta := opts.Eye.Sub(base.Eye)
	targetDelta := opts.Target.Sub(base.Target)
	if math.Abs(eyeDelta.Sub(targetDelta).Length()) > 1e-9 {
		t.Fatalf("pan should move eye and target by the same delta, got eye=%v target=%v", eyeDelta, targetDelta)
	}
}
