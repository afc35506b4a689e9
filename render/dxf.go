package render

import (
	"github.com/yofu/dxf"

	"github.com/maximelah94/web-ifc/ifcgeom"
)

// DumpFlatMeshDXF writes a flattened mesh's triangle edges as a DXF
// wireframe: one LINE entity per triangle edge, world-transformed by each
// placed geometry's Mat4. Useful for checking placement composition in a
// CAD viewer without a full triangulated render.
func DumpFlatMeshDXF(flat ifcgeom.FlatMesh, lookup GeometryLookup, path string) error {
	d := dxf.NewDrawing()
	d.Layer("WIREFRAME", false)

	for _, placed := range flat {
		geom, ok := lookup(placed.GeometryExpressID)
		if !ok {
			continue
		}
		world := worldSpaceGeometry(geom, placed.Transform)
		for i := 0; i+2 < len(world.Indices); i += 3 {
			a := world.Points[world.Indices[i]]
			b := world.Points[world.Indices[i+1]]
			c := world.Points[world.Indices[i+2]]
			d.Line(a.X, a.Y, a.Z, b.X, b.Y, b.Z)
			d.Line(b.X, b.Y, b.Z, c.X, c.Y, c.Z)
			d.Line(c.X, c.Y, c.Z, a.X, a.Y, a.Z)
		}
	}

	return d.SaveAs(path)
}
