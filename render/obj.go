package render

import (
	"bufio"
	"fmt"
	"os"

	"github.com/maximelah94/web-ifc/ifcgeom"
)

// DumpMeshOBJ writes every placed geometry of a flattened mesh to a single
// Wavefront OBJ file, with each geometry's vertices pre-transformed to
// world space by its placement. This is the multi-element counterpart to
// ifcgeom.Resolver.DumpMesh's single-geometry debug dump.
func DumpMeshOBJ(flat ifcgeom.FlatMesh, lookup GeometryLookup, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: dumping mesh to %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	vertexBase := 0
	for _, placed := range flat {
		geom, ok := lookup(placed.GeometryExpressID)
		if !ok {
			continue
		}
		world := worldSpaceGeometry(geom, placed.Transform)
		for _, p := range world.Points {
			fmt.Fprintf(w, "v %g %g %g\n", p.X, p.Y, p.Z)
		}
		for i := 0; i+2 < len(world.Indices); i += 3 {
			fmt.Fprintf(w, "f %d %d %d\n",
				vertexBase+world.Indices[i]+1,
				vertexBase+world.Indices[i+1]+1,
				vertexBase+world.Indices[i+2]+1)
		}
		vertexBase += len(world.Points)
	}
	return w.Flush()
}
