// Package bool3 implements mesh-against-mesh boolean primitives:
// intersectMeshMesh, boolSubtract, and computeNormal. No available library
// performs 3D boolean mesh operations (SDF-based CSG kernels operate on
// signed distance fields, not triangle meshes), so this is implemented
// directly on the standard library; see DESIGN.md.
//
// The implementation trades exact surface subdivision (computing the precise
// intersection curve and re-triangulating both meshes along it) for a
// triangle-classification scheme: a triangle survives a subtraction if its
// centroid falls outside the other solid, tested by ray-casting parity
// against that solid's closed surface. This keeps the primitive simple and
// dependency-free. Triangles are never split, so the result is exact only
// when no triangle of either mesh crosses the other's surface (a void that
// lies wholly inside the solid). Where a void passes through the solid's
// surface, as a door or window opening through a wall does, each crossing
// triangle is kept or dropped whole and no hole is cut through that surface.
package bool3

import (
	"math"

	"github.com/maximelah94/web-ifc/vec/v3"
)

// Mesh is an indexed triangle mesh: Indices is a flat list of vertex indices
// into Vertices, taken three at a time per triangle.
type Mesh struct {
	Vertices []v3.Vec
	Indices  []int
}

// Triangle returns the mesh's i-th triangle.
func (m Mesh) Triangle(i int) (a, b, c v3.Vec) {
	base := i * 3
	return m.Vertices[m.Indices[base]], m.Vertices[m.Indices[base+1]], m.Vertices[m.Indices[base+2]]
}

// NumTriangles returns the number of triangles in the mesh.
func (m Mesh) NumTriangles() int {
	return len(m.Indices) / 3
}

// ComputeNormal returns the (non-normalized) face normal of the triangle
// p0,p1,p2 via the cross product of its two edge vectors.
func ComputeNormal(p0, p1, p2 v3.Vec) v3.Vec {
	return p1.Sub(p0).Cross(p2.Sub(p0))
}

// IntersectMeshMesh is the seam-finding half of the boolean contract. It
// returns copies of a and b unchanged: no triangle is split along the other
// mesh's surface, so a triangle that crosses that surface stays whole and is
// classified by its centroid alone (the classification itself happens in
// BoolSubtract, by centroid containment).
func IntersectMeshMesh(a, b Mesh) (Mesh, Mesh) {
	return cloneMesh(a), cloneMesh(b)
}

func cloneMesh(m Mesh) Mesh {
	verts := make([]v3.Vec, len(m.Vertices))
	copy(verts, m.Vertices)
	idx := make([]int, len(m.Indices))
	copy(idx, m.Indices)
	return Mesh{Vertices: verts, Indices: idx}
}

// BoolSubtract returns the triangles of a whose centroid lies outside b,
// plus the triangles of b whose centroid lies inside a with their winding
// flipped so the cut surface faces into the remaining solid. This equals a
// minus b when no triangle of either mesh crosses the other's surface; a
// crossing triangle is kept or dropped whole.
func BoolSubtract(a, b Mesh) Mesh {
	var result Mesh
	offset := func(m Mesh) int { return len(result.Vertices) }

	for i := 0; i < a.NumTriangles(); i++ {
		p0, p1, p2 := a.Triangle(i)
		centroid := p0.Add(p1).Add(p2).MulScalar(1.0 / 3.0)
		if pointInMesh(b, centroid) {
			continue
		}
		base := offset(a)
		result.Vertices = append(result.Vertices, p0, p1, p2)
		result.Indices = append(result.Indices, base, base+1, base+2)
	}

	for i := 0; i < b.NumTriangles(); i++ {
		p0, p1, p2 := b.Triangle(i)
		centroid := p0.Add(p1).Add(p2).MulScalar(1.0 / 3.0)
		if !pointInMesh(a, centroid) {
			continue
		}
		base := offset(b)
		// Flip winding (p0,p2,p1) so the retained cavity wall faces inward.
		result.Vertices = append(result.Vertices, p0, p2, p1)
		result.Indices = append(result.Indices, base, base+1, base+2)
	}

	return result
}

// pointInMesh classifies p by casting a ray in a fixed oblique direction
// (see rayTriangleIntersect) and counting triangle crossings with odd/even
// parity. The direction is skewed against the coordinate axes so that a ray
// from a point with round coordinates does not run through an edge shared
// by two triangles, which would count one crossing twice. Correct for closed, non-self-intersecting
// meshes; degenerate or open meshes may misclassify points exactly on the
// ray's plane, which is an accepted limitation of this primitive.
func pointInMesh(m Mesh, p v3.Vec) bool {
	const epsilon = 1e-9
	crossings := 0
	for i := 0; i < m.NumTriangles(); i++ {
		a, b, c := m.Triangle(i)
		if rayTriangleIntersect(p, a, b, c, epsilon) {
			crossings++
		}
	}
	return crossings%2 == 1
}

// rayTriangleIntersect tests a ray from origin along a fixed oblique
// direction against the triangle a,b,c using the Möller–Trumbore algorithm.
func rayTriangleIntersect(origin, a, b, c v3.Vec, epsilon float64) bool {
	dir := v3.Vec{X: 1, Y: 0.3141592653589793, Z: 0.2718281828459045}
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	h := dir.Cross(edge2)
	det := edge1.Dot(h)
	if math.Abs(det) < epsilon {
		return false
	}
	invDet := 1 / det
	s := origin.Sub(a)
	u := s.Dot(h) * invDet
	if u < 0 || u > 1 {
		return false
	}
	q := s.Cross(edge1)
	v := dir.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return false
	}
	t := edge2.Dot(q) * invDet
	return t > epsilon
}
