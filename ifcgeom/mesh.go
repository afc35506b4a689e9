package ifcgeom

import (
	"github.com/maximelah94/web-ifc/bool3"
	"github.com/maximelah94/web-ifc/earcut"
	v3 "github.com/maximelah94/web-ifc/vec/v3"
)

// Extrude builds an indexed triangle mesh for a swept solid: profile P
// under placement M, swept along direction (in M's local space) by
// distance depth.
func (r *Resolver) Extrude(profile Profile, placement Mat4, direction Point3, depth float64) *Geometry {
	g := &Geometry{}
	ring := profile.Curve
	if len(ring) > 1 && ring[0].Equals(ring[len(ring)-1], 1e-9) {
		ring = ring[:len(ring)-1]
	}
	n := len(ring)
	if n < 3 {
		return g
	}

	shift := direction.MulScalar(depth)
	eckRing := make([]earcut.Point, n)
	bottomLocal := make([]v3.Vec, n)
	topLocal := make([]v3.Vec, n)
	for i, p := range ring {
		eckRing[i] = earcut.Point{X: p.X, Y: p.Y}
		bottomLocal[i] = v3.Vec{X: p.X, Y: p.Y, Z: 0}
		topLocal[i] = bottomLocal[i].Add(shift)
	}
	tris := earcut.Triangulate([][]earcut.Point{eckRing})

	bottomPts := make([]Point3, n)
	topPts := make([]Point3, n)
	for i := 0; i < n; i++ {
		bottomPts[i] = placement.MulPoint(bottomLocal[i])
		topPts[i] = placement.MulPoint(topLocal[i])
	}

	var bottomNormal, topNormal Point3
	if n >= 3 {
		bottomNormal = bool3.ComputeNormal(bottomPts[0], bottomPts[2], bottomPts[1]).Normalize()
		topNormal = bool3.ComputeNormal(topPts[0], topPts[1], topPts[2]).Normalize()
	}

	bottomIdx := make([]int, n)
	for i, p := range bottomPts {
		bottomIdx[i] = g.AddPoint(p, bottomNormal)
	}
	topIdx := make([]int, n)
	for i, p := range topPts {
		topIdx[i] = g.AddPoint(p, topNormal)
	}

	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := tris[i], tris[i+1], tris[i+2]
		// earcut returns counter-clockwise triangles, so the bottom cap
		// reverses them to face against the sweep and the top cap, wound
		// the reverse of the bottom, faces along it: both face outward.
		g.AddFace(bottomIdx[a], bottomIdx[c], bottomIdx[b])
		g.AddFace(topIdx[a], topIdx[b], topIdx[c])
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		pib, pjb := bottomPts[i], bottomPts[j]
		pit, pjt := topPts[i], topPts[j]
		wallNormal := bool3.ComputeNormal(pib, pjb, pit).Normalize()
		i0 := g.AddPoint(pib, wallNormal)
		i1 := g.AddPoint(pjb, wallNormal)
		i2 := g.AddPoint(pit, wallNormal)
		i3 := g.AddPoint(pjt, wallNormal)
		g.AddFace(i0, i1, i2)
		g.AddFace(i1, i3, i2)
	}

	if direction.Dot(v3.Vec{X: 0, Y: 0, Z: 1}) < 0 {
		flipWinding(g)
	}
	return g
}

func flipWinding(g *Geometry) {
	for i := 0; i+2 < len(g.Indices); i += 3 {
		g.Indices[i], g.Indices[i+1] = g.Indices[i+1], g.Indices[i]
	}
}

// TriangulateBounds appends a BRep face's triangles to g. bounds is the
// face's unordered multiset of loops, with exactly one
// OUTER entry.
func (r *Resolver) TriangulateBounds(g *Geometry, bounds []Bound3D) {
	if len(bounds) == 1 && len(bounds[0].Curve) == 3 {
		pts := bounds[0].Curve
		normal := bool3.ComputeNormal(pts[0], pts[1], pts[2]).Normalize()
		i0 := g.AddPoint(pts[0], normal)
		i1 := g.AddPoint(pts[1], normal)
		i2 := g.AddPoint(pts[2], normal)
		g.AddFace(i0, i1, i2)
		return
	}
	if len(bounds) == 1 && len(bounds[0].Curve) == 4 {
		pts := bounds[0].Curve
		normal := bool3.ComputeNormal(pts[0], pts[1], pts[2]).Normalize()
		idx := make([]int, 4)
		for i, p := range pts {
			idx[i] = g.AddPoint(p, normal)
		}
		g.AddFace(idx[0], idx[1], idx[2])
		g.AddFace(idx[0], idx[2], idx[3])
		return
	}

	ordered := orderOuterFirst(bounds)
	if len(ordered) == 0 || len(ordered[0].Curve) < 3 {
		return
	}
	p0, p1, p2 := ordered[0].Curve[0], ordered[0].Curve[1], ordered[0].Curve[2]
	u := p1.Sub(p0).Normalize()
	v := p2.Sub(p0).Normalize()
	n := u.Cross(v).Normalize()
	u = v.Cross(n).Normalize()

	base := len(g.Points)
	var rings [][]earcut.Point
	for _, b := range ordered {
		ring := make([]earcut.Point, len(b.Curve))
		for i, p := range b.Curve {
			g.AddPoint(p, n)
			rel := p.Sub(p0)
			ring[i] = earcut.Point{X: rel.Dot(u), Y: rel.Dot(v)}
		}
		rings = append(rings, ring)
	}

	tris := earcut.Triangulate(rings)
	for i := 0; i+2 < len(tris); i += 3 {
		g.AddFace(base+tris[i], base+tris[i+1], base+tris[i+2])
	}
}

// orderOuterFirst returns bounds with its OUTER entry (if any) moved to the
// front, matching the outer-first, holes-after convention the triangulator
// expects.
func orderOuterFirst(bounds []Bound3D) []Bound3D {
	var outer *Bound3D
	ordered := make([]Bound3D, 0, len(bounds))
	for i := range bounds {
		if bounds[i].Type == OUTER && outer == nil {
			outer = &bounds[i]
			continue
		}
		ordered = append(ordered, bounds[i])
	}
	if outer == nil {
		return bounds
	}
	return append([]Bound3D{*outer}, ordered...)
}
