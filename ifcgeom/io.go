package ifcgeom

import (
	"bufio"
	"fmt"
	"os"
)

// DumpMesh writes g as a Wavefront OBJ file, a debug utility for inspecting
// a resolved Geometry outside the render package's richer export formats.
func (r *Resolver) DumpMesh(g *Geometry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ifcgeom: dumping mesh to %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, p := range g.Points {
		fmt.Fprintf(w, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	for i := 0; i+2 < len(g.Indices); i += 3 {
		fmt.Fprintf(w, "f %d %d %d\n", g.Indices[i]+1, g.Indices[i+1]+1, g.Indices[i+2]+1)
	}
	return w.Flush()
}
