// objloader.go - a minimal Wavefront OBJ parser: scan lines, tokenize,
// append to flat vertex/normal/uv slices, then resolve `f` lines into
// Triangle values. No material (.mtl) support, no polygon fan beyond a
// simple triangle fan for faces with more than three vertices.
//
// There is no OBJ-parsing library anywhere in the reference pack; every
// mesh loader the pack's examples carry (IQM, glTF) hand-rolls the same
// scan/tokenize/flat-slice shape this file follows, so this stays on
// bufio.Scanner rather than reaching for an unprecedented dependency.
package objloader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hoptracer/hoptracer/internal/geometry"
	"github.com/hoptracer/hoptracer/internal/vmath"
)

// LoadFile opens path and parses it as Wavefront OBJ.
func LoadFile(path string) ([]geometry.Triangle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objloader: %w", err)
	}
	defer f.Close()
	return Load(f)
}

type faceIndex struct {
	v, vt, vn int // 0 means "not present"; OBJ indices are 1-based otherwise
}

// Load parses Wavefront OBJ text from r into a flat triangle list, fanning
// any face with more than three vertices from its first vertex.
func Load(r io.Reader) ([]geometry.Triangle, error) {
	var positions []vmath.Vec3
	var normals []vmath.Vec3
	var uvs []vmath.Vec2
	var tris []geometry.Triangle

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("objloader: line %d: %w", lineNo, err)
			}
			positions = append(positions, p)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("objloader: line %d: %w", lineNo, err)
			}
			normals = append(normals, n)
		case "vt":
			uv, err := parseVec2(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("objloader: line %d: %w", lineNo, err)
			}
			uvs = append(uvs, uv)
		case "f":
			faceTris, err := parseFace(fields[1:], positions, normals, uvs, lineNo)
			if err != nil {
				return nil, err
			}
			tris = append(tris, faceTris...)
		default:
			// Unrecognized directives (o, g, s, mtllib, usemtl, ...) are
			// silently skipped; material assignment is out of scope here.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("objloader: %w", err)
	}
	return tris, nil
}

func parseVec3(fields []string) (vmath.Vec3, error) {
	if len(fields) < 3 {
		return vmath.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return vmath.Vec3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return vmath.Vec3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return vmath.Vec3{}, err
	}
	return vmath.Vec3{X: x, Y: y, Z: z}, nil
}

func parseVec2(fields []string) (vmath.Vec2, error) {
	if len(fields) < 2 {
		return vmath.Vec2{}, fmt.Errorf("expected 2 components, got %d", len(fields))
	}
	u, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return vmath.Vec2{}, err
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return vmath.Vec2{}, err
	}
	return vmath.Vec2{X: u, Y: v}, nil
}

func parseFaceIndex(tok string) (faceIndex, error) {
	parts := strings.Split(tok, "/")
	idx := faceIndex{}
	var err error
	idx.v, err = parseIndexPart(parts[0])
	if err != nil {
		return idx, err
	}
	if len(parts) > 1 && parts[1] != "" {
		idx.vt, err = parseIndexPart(parts[1])
		if err != nil {
			return idx, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		idx.vn, err = parseIndexPart(parts[2])
		if err != nil {
			return idx, err
		}
	}
	return idx, nil
}

func parseIndexPart(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// resolveIndex turns a (possibly negative, 1-based) OBJ index into a
// 0-based slice index; negative indices count back from the current end
// of the corresponding attribute list.
func resolveIndex(idx, count int) int {
	if idx > 0 {
		return idx - 1
	}
	return count + idx
}

func parseFace(fields []string, positions, normals []vmath.Vec3, uvs []vmath.Vec2, lineNo int) ([]geometry.Triangle, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("objloader: line %d: face needs at least 3 vertices", lineNo)
	}
	corners := make([]faceIndex, len(fields))
	for i, tok := range fields {
		fi, err := parseFaceIndex(tok)
		if err != nil {
			return nil, fmt.Errorf("objloader: line %d: %w", lineNo, err)
		}
		corners[i] = fi
	}

	vertex := func(fi faceIndex) (vmath.Vec3, vmath.Vec3, vmath.Vec2, error) {
		if fi.v == 0 {
			return vmath.Vec3{}, vmath.Vec3{}, vmath.Vec2{}, fmt.Errorf("objloader: line %d: face vertex missing position index", lineNo)
		}
		pi := resolveIndex(fi.v, len(positions))
		if pi < 0 || pi >= len(positions) {
			return vmath.Vec3{}, vmath.Vec3{}, vmath.Vec2{}, fmt.Errorf("objloader: line %d: position index out of range", lineNo)
		}
		p := positions[pi]

		n := vmath.Vec3{}
		if fi.vn != 0 {
			ni := resolveIndex(fi.vn, len(normals))
			if ni >= 0 && ni < len(normals) {
				n = normals[ni]
			}
		}

		uv := vmath.Vec2{}
		if fi.vt != 0 {
			ti := resolveIndex(fi.vt, len(uvs))
			if ti >= 0 && ti < len(uvs) {
				uv = uvs[ti]
			}
		}
		return p, n, uv, nil
	}

	p0, n0, uv0, err := vertex(corners[0])
	if err != nil {
		return nil, err
	}

	var tris []geometry.Triangle
	for i := 1; i+1 < len(corners); i++ {
		p1, n1, uv1, err := vertex(corners[i])
		if err != nil {
			return nil, err
		}
		p2, n2, uv2, err := vertex(corners[i+1])
		if err != nil {
			return nil, err
		}

		faceNormal := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
		withFallback := func(n vmath.Vec3) vmath.Vec3 {
			if n.LengthSquared() == 0 {
				return faceNormal
			}
			return n
		}

		tris = append(tris, geometry.Triangle{
			P:  [3]vmath.Vec3{p0, p1, p2},
			N:  [3]vmath.Vec3{withFallback(n0), withFallback(n1), withFallback(n2)},
			UV: [3]vmath.Vec2{uv0, uv1, uv2},
		})
	}
	return tris, nil
}
