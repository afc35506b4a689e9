package ifcgeom

// GetFlatMesh traverses the composed tree for expressID depth-first
// pre-order, accumulating transforms starting from Config.Normalize, and
// emits one PlacedGeometry per node that carries geometry, in that
// traversal order.
func (r *Resolver) GetFlatMesh(expressID uint32) FlatMesh {
	root := r.GetMesh(expressID)
	var flat FlatMesh
	r.addComposedMeshToFlatMesh(root, r.Config.Normalize, &flat)
	return flat
}

func (r *Resolver) addComposedMeshToFlatMesh(node *ComposedMesh, parent Mat4, flat *FlatMesh) {
	if node == nil {
		return
	}
	world := parent.Mul(node.Transform)
	if node.HasGeometry {
		*flat = append(*flat, PlacedGeometry{GeometryExpressID: node.ExpressID, Color: node.Color, Transform: world})
	}
	for _, child := range node.Children {
		r.addComposedMeshToFlatMesh(child, world, flat)
	}
}

// GetFlattenedGeometry returns a single Geometry concatenating every placed
// instance under expressID in world space.
func (r *Resolver) GetFlattenedGeometry(expressID uint32) *Geometry {
	g := &Geometry{}
	r.flattenInto(r.GetMesh(expressID), r.Config.Normalize, g)
	return g
}

// flattenInto is the shared traversal GetFlattenedGeometry and the opening
// subtractor use to bake a composed subtree's cached geometries into world
// space inside a single output Geometry.
func (r *Resolver) flattenInto(node *ComposedMesh, parent Mat4, out *Geometry) {
	if node == nil {
		return
	}
	world := parent.Mul(node.Transform)
	if node.HasGeometry {
		if g, ok := r.geometryCache[node.ExpressID]; ok {
			base := len(out.Points)
			for i, p := range g.Points {
				wp := world.MulPoint(p)
				wn := world.MulDir(g.Normals[i]).Normalize()
				out.AddPoint(wp, wn)
			}
			for _, idx := range g.Indices {
				out.Indices = append(out.Indices, base+idx)
			}
		}
	}
	for _, child := range node.Children {
		r.flattenInto(child, world, out)
	}
}
