// material.go - the Material/BSDF boundary, a stub by design.
//
// Material dispatch stays intentionally
// thin: the path tracer never calls GetBSDF, it hardcodes a diffuse lobe.
// The registry exists so a future implementation has somewhere to plug in
// real BSDFs without touching the integrator's contract.
package material

import "github.com/hoptracer/hoptracer/internal/geometry"

// BSDF offers the hemispheric shading contract a real material system needs. It is
// unused by the minimal path tracer but kept as the stable boundary.
type BSDF interface {
	// F evaluates the BSDF for a pair of directions in the local shading frame.
	F(wo, wi [3]float64) [3]float64
	// SampleF imports a new direction and returns (f, wi, pdf).
	SampleF(wo [3]float64, u [2]float64) (f [3]float64, wi [3]float64, pdf float64)
	Pdf(wo, wi [3]float64) float64
}

// Material is a named, registry-held entity that can manufacture a BSDF
// given a SurfaceInteraction. Id 0 is always the default material.
type Material struct {
	ID   int32
	Name string
}

// GetBSDF always returns nil for the minimal stub: real BSDF evaluation
// beyond a minimal stub is a Non-goal.
func (m *Material) GetBSDF(si *geometry.SurfaceInteraction) BSDF { return nil }

// Table is the process-free, explicitly-owned material registry; it
// replaces the original's global MaterialManager singleton with a scene
// object passed by reference.
type Table struct {
	materials []Material
	byName    map[string]int32
}

// NewTable creates a table pre-seeded with the id-0 default material.
func NewTable() *Table {
	t := &Table{byName: make(map[string]int32)}
	t.Add("default")
	return t
}

// Add registers a new material by name, returning its id. Re-adding an
// existing name returns the existing id.
func (t *Table) Add(name string) int32 {
	if id, ok := t.byName[name]; ok {
		return id
	}
	id := int32(len(t.materials))
	t.materials = append(t.materials, Material{ID: id, Name: name})
	t.byName[name] = id
	return id
}

func (t *Table) ByName(name string) (int32, bool) {
	id, ok := t.byName[name]
	return id, ok
}

func (t *Table) Get(id int32) *Material {
	if id < 0 || int(id) >= len(t.materials) {
		return &t.materials[0]
	}
	return &t.materials[id]
}
