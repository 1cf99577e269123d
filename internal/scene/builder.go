// builder.go - the scene assembly command surface: add_mesh, add_instance,
// set_material, set_camera, set_render_options. This is what internal/scene's
// Lua front-end binds to; it's also usable directly from Go without Lua.
package scene

import (
	"fmt"

	"github.com/hoptracer/hoptracer/internal/camera"
	"github.com/hoptracer/hoptracer/internal/geometry"
	"github.com/hoptracer/hoptracer/internal/material"
	"github.com/hoptracer/hoptracer/internal/vmath"
	"github.com/hoptracer/hoptracer/internal/world"
)

// Builder accumulates a scene (world, materials, camera, render options)
// before the caller preprocesses the world and constructs a Renderer.
type Builder struct {
	World     *world.World
	Materials *material.Table

	camOpts camera.Options

	renderOpts RenderOptions
}

func NewBuilder() *Builder {
	return &Builder{
		World:      world.New(),
		Materials:  material.NewTable(),
		camOpts:    camera.Options{FilmWidth: 512, FilmHeight: 512, FovY: 45, Near: 1e-3, Far: 1e4},
		renderOpts: DefaultRenderOptions(),
	}
}

// AddMesh registers a pre-built triangle mesh and returns its mesh id.
func (b *Builder) AddMesh(name string, tris []geometry.Triangle) int32 {
	return b.World.AddMesh(geometry.NewTriangleMesh(name, tris))
}

// AddInstance places meshID in world space via xform.
func (b *Builder) AddInstance(name string, meshID int32, xform vmath.Transform) int32 {
	return b.World.AddInstance(name, meshID, xform)
}

// AddShape is the bare, identity-transform placement shorthand the original
// Lua API's world_add_shape exposed directly on World.
func (b *Builder) AddShape(meshID int32) int32 {
	return b.World.AddShape(meshID)
}

// SetMaterial registers name in the material table, returning its id.
func (b *Builder) SetMaterial(name string) int32 {
	return b.Materials.Add(name)
}

// SetCamera replaces the pending camera options; they take effect the next
// time BuildCamera is called.
func (b *Builder) SetCamera(opts camera.Options) {
	b.camOpts = opts
}

// CameraOptions returns the camera options last passed to SetCamera (or the
// builder's defaults), for callers that need the raw eye/target/up rather
// than the built Perspective (the interactive trackball, in particular).
func (b *Builder) CameraOptions() camera.Options { return b.camOpts }

// BuildCamera validates and constructs the perspective camera from whatever
// options were last passed to SetCamera (or the builder's defaults).
func (b *Builder) BuildCamera() (*camera.Perspective, error) {
	return camera.NewPerspective(b.camOpts)
}

// SetRenderOptions replaces the pending render options.
func (b *Builder) SetRenderOptions(opts RenderOptions) {
	b.renderOpts = opts
}

func (b *Builder) RenderOptions() RenderOptions { return b.renderOpts }

// Preprocess validates the render options and the camera, then builds the
// world's BVHs. It's the single call cmd/hoptrace makes between scene
// assembly and handing everything to the renderer.
func (b *Builder) Preprocess() (*camera.Perspective, error) {
	if err := b.renderOpts.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	cam, err := b.BuildCamera()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if err := b.World.Preprocess(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return cam, nil
}
