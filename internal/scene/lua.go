// lua.go - optional Lua scripting front-end over the Builder command
// surface, ported from the original hop renderer's api.cpp/environment.cpp
// (load_api, Environment::load): a single global Lua state registered with
// Go closures instead of C function pointers, but the same surface — world
// construction, instance placement, camera/render option tables, transform
// constructors.
package scene

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/hoptracer/hoptracer/internal/camera"
	"github.com/hoptracer/hoptracer/internal/objloader"
	"github.com/hoptracer/hoptracer/internal/vmath"
)

const transformUserDataType = "hoptracer.transform"

// Script runs a Lua scene-description file against a fresh Builder and
// returns it once the script completes. Lua's only job is to call the
// registered globals in some order; all real work still happens in Go.
func Script(path string) (*Builder, error) {
	b := NewBuilder()
	L := lua.NewState()
	defer L.Close()

	registerAPI(L, b)

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("scene: lua script %q failed: %w", path, err)
	}
	return b, nil
}

func registerAPI(L *lua.LState, b *Builder) {
	L.NewTypeMetatable(transformUserDataType)

	L.SetGlobal("load_obj", L.NewFunction(luaLoadOBJ(b)))
	L.SetGlobal("add_shape", L.NewFunction(luaAddShape(b)))
	L.SetGlobal("add_instance", L.NewFunction(luaAddInstance(b)))
	L.SetGlobal("set_material", L.NewFunction(luaSetMaterial(b)))
	L.SetGlobal("set_camera", L.NewFunction(luaSetCamera(b)))
	L.SetGlobal("set_render_options", L.NewFunction(luaSetRenderOptions(b)))

	L.SetGlobal("make_translation", L.NewFunction(luaMakeTranslation))
	L.SetGlobal("make_scale", L.NewFunction(luaMakeScale))
	L.SetGlobal("make_rotation_x", L.NewFunction(luaMakeAxisRotation(vmath.Vec3{X: 1})))
	L.SetGlobal("make_rotation_y", L.NewFunction(luaMakeAxisRotation(vmath.Vec3{Y: 1})))
	L.SetGlobal("make_rotation_z", L.NewFunction(luaMakeAxisRotation(vmath.Vec3{Z: 1})))
	L.SetGlobal("make_rotation", L.NewFunction(luaMakeRotation))
	L.SetGlobal("make_lookat", L.NewFunction(luaMakeLookAt))
}

// pushTransform wraps t in a *lua.LUserData tagged with transformUserDataType
// so luaCheckTransform can recover it later without exposing Mat4 internals
// to script authors.
func pushTransform(L *lua.LState, t vmath.Transform) {
	ud := L.NewUserData()
	ud.Value = t
	L.SetMetatable(ud, L.GetTypeMetatable(transformUserDataType))
	L.Push(ud)
}

func checkTransform(L *lua.LState, idx int) vmath.Transform {
	ud, ok := L.CheckUserData(idx).Value.(vmath.Transform)
	if !ok {
		L.ArgError(idx, "transform expected")
	}
	return ud
}

func luaLoadOBJ(b *Builder) lua.LGFunction {
	return func(L *lua.LState) int {
		path := L.CheckString(1)
		tris, err := objloader.LoadFile(path)
		if err != nil {
			L.RaiseError("load_obj: %v", err)
			return 0
		}
		id := b.AddMesh(path, tris)
		L.Push(lua.LNumber(id))
		return 1
	}
}

func luaAddShape(b *Builder) lua.LGFunction {
	return func(L *lua.LState) int {
		meshID := int32(L.CheckInt(1))
		L.Push(lua.LNumber(b.AddShape(meshID)))
		return 1
	}
}

func luaAddInstance(b *Builder) lua.LGFunction {
	return func(L *lua.LState) int {
		meshID := int32(L.CheckInt(1))
		xform := checkTransform(L, 2)
		name := L.OptString(3, fmt.Sprintf("instance-%d", meshID))
		L.Push(lua.LNumber(b.AddInstance(name, meshID, xform)))
		return 1
	}
}

func luaSetMaterial(b *Builder) lua.LGFunction {
	return func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(lua.LNumber(b.SetMaterial(name)))
		return 1
	}
}

func luaSetCamera(b *Builder) lua.LGFunction {
	return func(L *lua.LState) int {
		t := L.CheckTable(1)
		opts := camera.Options{
			Eye:           luaFieldVec3(t, "eye", vmath.Vec3{Z: 1}),
			Target:        luaFieldVec3(t, "target", vmath.Vec3{}),
			Up:            luaFieldVec3(t, "up", vmath.Vec3{Y: 1}),
			FovY:          luaFieldNumber(t, "fov", 45),
			LensRadius:    luaFieldNumber(t, "lens_radius", 0),
			FocalDistance: luaFieldNumber(t, "focal_distance", 1),
			FilmWidth:     int(luaFieldNumber(t, "frame_width", 512)),
			FilmHeight:    int(luaFieldNumber(t, "frame_height", 512)),
			Near:          luaFieldNumber(t, "near", 1e-3),
			Far:           luaFieldNumber(t, "far", 1e4),
		}
		b.SetCamera(opts)
		return 0
	}
}

func luaSetRenderOptions(b *Builder) lua.LGFunction {
	return func(L *lua.LState) int {
		t := L.CheckTable(1)
		opts := RenderOptions{
			FrameWidth:        int(luaFieldNumber(t, "frame_width", 512)),
			FrameHeight:       int(luaFieldNumber(t, "frame_height", 512)),
			TileWidth:         int(luaFieldNumber(t, "tile_width", 16)),
			TileHeight:        int(luaFieldNumber(t, "tile_height", 16)),
			Spiral:            luaFieldBool(t, "spiral", false),
			SamplesPerPixel:   int(luaFieldNumber(t, "spp", 10)),
			Preview:           luaFieldBool(t, "preview", true),
			PreviewSPP:        int(luaFieldNumber(t, "preview_spp", 1)),
			AdaptiveSPP:       int(luaFieldNumber(t, "adaptive_spp", 0)),
			AdaptiveThreshold: luaFieldNumber(t, "adaptive_threshold", 1),
			AdaptiveExponent:  luaFieldNumber(t, "adaptive_exponent", 1),
			FireflySPP:        int(luaFieldNumber(t, "firefly_spp", 0)),
			FireflyThreshold:  luaFieldNumber(t, "firefly_threshold", 1),
			Tonemap:           Tonemap(luaFieldString(t, "tonemap", "gamma")),
		}
		b.SetRenderOptions(opts)
		return 0
	}
}

func luaMakeTranslation(L *lua.LState) int {
	x, y, z := float64(L.CheckNumber(1)), float64(L.CheckNumber(2)), float64(L.CheckNumber(3))
	pushTransform(L, vmath.NewTransform(vmath.Translate4(vmath.Vec3{X: x, Y: y, Z: z})))
	return 1
}

func luaMakeScale(L *lua.LState) int {
	x, y, z := float64(L.CheckNumber(1)), float64(L.CheckNumber(2)), float64(L.CheckNumber(3))
	pushTransform(L, vmath.NewTransform(vmath.Scale4(vmath.Vec3{X: x, Y: y, Z: z})))
	return 1
}

// luaMakeAxisRotation builds the make_rotation_{x,y,z}(deg) globals, each
// bound to its fixed unit axis.
func luaMakeAxisRotation(axis vmath.Vec3) lua.LGFunction {
	return func(L *lua.LState) int {
		deg := float64(L.CheckNumber(1))
		pushTransform(L, vmath.NewTransform(vmath.RotateAxis4(axis, deg)))
		return 1
	}
}

func luaMakeRotation(L *lua.LState) int {
	axis := luaCheckVec3(L, 1)
	deg := float64(L.CheckNumber(2))
	pushTransform(L, vmath.NewTransform(vmath.RotateAxis4(axis, deg)))
	return 1
}

func luaMakeLookAt(L *lua.LState) int {
	eye := luaCheckVec3(L, 1)
	target := luaCheckVec3(L, 2)
	up := luaCheckVec3(L, 3)
	pushTransform(L, vmath.LookAt(eye, target, up))
	return 1
}

// luaCheckVec3 reads a {x, y, z} array-style table, matching the original
// Lua API's Vec3 convention (s.get_vec3).
func luaCheckVec3(L *lua.LState, idx int) vmath.Vec3 {
	t := L.CheckTable(idx)
	return vmath.Vec3{
		X: float64(lua.LVAsNumber(t.RawGetInt(1))),
		Y: float64(lua.LVAsNumber(t.RawGetInt(2))),
		Z: float64(lua.LVAsNumber(t.RawGetInt(3))),
	}
}

func luaFieldVec3(t *lua.LTable, field string, def vmath.Vec3) vmath.Vec3 {
	v := t.RawGetString(field)
	sub, ok := v.(*lua.LTable)
	if !ok {
		return def
	}
	return vmath.Vec3{
		X: float64(lua.LVAsNumber(sub.RawGetInt(1))),
		Y: float64(lua.LVAsNumber(sub.RawGetInt(2))),
		Z: float64(lua.LVAsNumber(sub.RawGetInt(3))),
	}
}

func luaFieldNumber(t *lua.LTable, field string, def float64) float64 {
	v := t.RawGetString(field)
	if v == lua.LNil {
		return def
	}
	return float64(lua.LVAsNumber(v))
}

func luaFieldBool(t *lua.LTable, field string, def bool) bool {
	v := t.RawGetString(field)
	if v == lua.LNil {
		return def
	}
	return lua.LVAsBool(v)
}

func luaFieldString(t *lua.LTable, field string, def string) string {
	v := t.RawGetString(field)
	if v == lua.LNil {
		return def
	}
	return lua.LVAsString(v)
}
