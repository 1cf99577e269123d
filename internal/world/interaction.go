// interaction.go - surface-attribute interpolation and tangent-basis
// construction at a hit point.
package world

import (
	"math"

	"github.com/hoptracer/hoptracer/internal/geometry"
	"github.com/hoptracer/hoptracer/internal/vmath"
)

// GetSurfaceInteraction interpolates position/normal/UV with barycentrics,
// derives the tangent basis from UV differentials, and transforms the
// result out of instance-local space via the hit instance's world-from-mesh
// transform.
func (w *World) GetSurfaceInteraction(hit geometry.HitInfo) geometry.SurfaceInteraction {
	b0, b1, b2 := hit.B0(), hit.B1, hit.B2
	i0, i1, i2 := hit.PrimID*3+0, hit.PrimID*3+1, hit.PrimID*3+2

	p0, p1, p2 := w.Positions[i0], w.Positions[i1], w.Positions[i2]
	n0, n1, n2 := w.Normals[i0], w.Normals[i1], w.Normals[i2]
	uv0, uv1, uv2 := w.UVs[i0], w.UVs[i1], w.UVs[i2]

	localP := p0.Scale(b0).Add(p1.Scale(b1)).Add(p2.Scale(b2))
	// The geometric normal comes from the triangle's face plane, not the
	// interpolated vertex normals (that's the shading normal, Ns below).
	localNg := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
	localNs := n0.Scale(b0).Add(n1.Scale(b1)).Add(n2.Scale(b2)).Normalize()
	if localNg.Dot(localNs) < 0 {
		localNg = localNg.Neg()
	}
	uv := vmath.Vec2{
		X: b0*uv0[0] + b1*uv1[0] + b2*uv2[0],
		Y: b0*uv0[1] + b1*uv1[1] + b2*uv2[1],
	}

	// UV deltas (u0-u2, v0-v2), (u1-u2, v1-v2) and position deltas solve for
	// dpdu, dpdv via the 2x2 linear system.
	du1, dv1 := uv0[0]-uv2[0], uv0[1]-uv2[1]
	du2, dv2 := uv1[0]-uv2[0], uv1[1]-uv2[1]
	dp1 := p0.Sub(p2)
	dp2 := p1.Sub(p2)

	determinant := du1*dv2 - dv1*du2
	var localDpdu, localDpdv vmath.Vec3
	if math.Abs(determinant) < 1e-12 {
		localDpdu, localDpdv = vmath.CoordinateSystem(localNg)
	} else {
		invDet := 1 / determinant
		localDpdu = dp1.Scale(dv2 * invDet).Sub(dp2.Scale(dv1 * invDet))
		localDpdv = dp2.Scale(du1 * invDet).Sub(dp1.Scale(du2 * invDet))
	}

	inst := w.instances[hit.ShapeID]
	worldFrom := inst.WorldFromMesh

	p := worldFrom.TransformPoint(localP)
	ng := worldFrom.TransformNormal(localNg).Normalize()
	ns := worldFrom.TransformNormal(localNs).Normalize()
	dpdu := worldFrom.TransformVector(localDpdu)
	dpdv := worldFrom.TransformVector(localDpdv)

	ss := dpdu.Normalize()
	ts := ns.Cross(ss)
	if ts.LengthSquared() <= 0 {
		// Degenerate tangent (e.g. zero-area UV triangle): fall back to an
		// arbitrary orthonormal basis around the shading normal.
		ss, ts = vmath.CoordinateSystem(ns)
	} else {
		ts = ts.Normalize()
		ss = ts.Cross(ns).Normalize()
	}

	wo := hit.WorldDir.Scale(-1).Normalize()

	return geometry.SurfaceInteraction{
		P:          p,
		Ng:         ng,
		Dpdu:       dpdu,
		Dpdv:       dpdv,
		Ns:         ns,
		Ss:         ss,
		Ts:         ts,
		UV:         uv,
		Wo:         wo,
		ShapeID:    hit.ShapeID,
		MaterialID: w.MatIDs[hit.PrimID],
	}
}
