// sample.go - the per-ray sample a tile worker hands the camera.
package camera

import "github.com/hoptracer/hoptracer/internal/vmath"

// Sample is a single film+lens sample request: FilmPoint lives in raster
// space [0,filmW]x[0,filmH], LensPoint is uniform in [0,1)^2.
type Sample struct {
	FilmPoint vmath.Vec2
	LensPoint vmath.Vec2
}
