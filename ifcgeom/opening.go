package ifcgeom

import (
	"math"

	"github.com/maximelah94/web-ifc/bool3"
	"github.com/maximelah94/web-ifc/express"
	"github.com/maximelah94/web-ifc/ifcgeom/voidindex"
	v3 "github.com/maximelah94/web-ifc/vec/v3"
)

// resolveElement resolves an IFC element's local placement and
// product-definition-shape. If it has associated void elements, a
// voidindex.Index narrows them to the ones whose world-space AABB overlaps
// the element's own, each surviving candidate is flattened to world space
// and subtracted in turn via IntersectMeshMesh/BoolSubtract, and the result
// is cached under the element's own express id with an identity transform.
func (r *Resolver) resolveElement(line express.Line, color RGBA, hasColor bool) *ComposedMesh {
	expressID := line.ExpressID
	placement := identity4()
	if ref, ok := r.optionalRef(line, 1); ok {
		placement = r.LocalPlacement(ref)
	}

	var repMesh *ComposedMesh
	if repRef, ok := r.optionalRef(line, 2); ok {
		repMesh = r.GetMesh(repRef)
	}

	voidIDs := r.relVoids[expressID]
	if len(voidIDs) == 0 {
		node := &ComposedMesh{ExpressID: expressID, Transform: placement, Color: color, HasColor: hasColor}
		if repMesh != nil {
			node.Children = append(node.Children, repMesh)
		}
		return node
	}

	elementGeom := &Geometry{}
	if repMesh != nil {
		r.flattenInto(repMesh, placement, elementGeom)
	}
	elementMesh := toBool3Mesh(elementGeom)
	elementMin, elementMax := geometryAABB(elementGeom)

	voidGeoms := make(map[uint32]*Geometry, len(voidIDs))
	index := voidindex.New()
	for _, voidID := range voidIDs {
		voidNode := r.GetMesh(voidID)
		voidGeom := &Geometry{}
		r.flattenInto(voidNode, identity4(), voidGeom)
		voidGeoms[voidID] = voidGeom
		vmin, vmax := geometryAABB(voidGeom)
		index.Insert(voidID, vmin, vmax)
	}

	for _, voidID := range index.Candidates(elementMin, elementMax) {
		voidMesh := toBool3Mesh(voidGeoms[voidID])

		aCut, bCut := bool3.IntersectMeshMesh(elementMesh, voidMesh)
		elementMesh = bool3.BoolSubtract(aCut, bCut)
	}

	r.geometryCache[expressID] = fromBool3Mesh(elementMesh)
	return &ComposedMesh{ExpressID: expressID, Transform: identity4(), HasGeometry: true, Color: color, HasColor: hasColor}
}

// geometryAABB returns the world-space axis-aligned bounding box of g's
// points, fed to voidindex.Index so the boolean-subtraction loop only
// touches voids whose bounding box actually overlaps the element's.
func geometryAABB(g *Geometry) (min, max [3]float64) {
	if len(g.Points) == 0 {
		return min, max
	}
	min = [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, p := range g.Points {
		min[0], max[0] = math.Min(min[0], p.X), math.Max(max[0], p.X)
		min[1], max[1] = math.Min(min[1], p.Y), math.Max(max[1], p.Y)
		min[2], max[2] = math.Min(min[2], p.Z), math.Max(max[2], p.Z)
	}
	return min, max
}

func toBool3Mesh(g *Geometry) bool3.Mesh {
	return bool3.Mesh{
		Vertices: append([]v3.Vec(nil), g.Points...),
		Indices:  append([]int(nil), g.Indices...),
	}
}

// fromBool3Mesh rebuilds per-vertex normals from each triangle's face
// normal; shared vertices take the last triangle's normal, an acceptable
// approximation for the flat-shaded output this core produces elsewhere.
func fromBool3Mesh(m bool3.Mesh) *Geometry {
	normals := make([]Point3, len(m.Vertices))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		n := bool3.ComputeNormal(m.Vertices[a], m.Vertices[b], m.Vertices[c]).Normalize()
		normals[a], normals[b], normals[c] = n, n, n
	}
	return &Geometry{Points: m.Vertices, Normals: normals, Indices: m.Indices}
}
