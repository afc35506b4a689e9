package ifcgeom

import "github.com/maximelah94/web-ifc/express"

// GetMesh resolves the composed mesh for an express id.
func (r *Resolver) GetMesh(expressID uint32) *ComposedMesh {
	return r.GetMeshByLine(r.Loader.ExpressIDToLineID(expressID))
}

// GetMeshByLine dispatches on entity kind to build the composed-mesh node
// for a line. It always rebuilds the node (the node cache is written for
// introspection but never consulted to short-circuit rebuilding, sidestepping
// a known stale-cache bug); the separate geometry cache IS consulted by the
// geometric constructors, so shared sub-trees (mapped items, representation
// maps) still build their Geometry only once.
func (r *Resolver) GetMeshByLine(lineID uint32) *ComposedMesh {
	line := r.Loader.GetLine(lineID)
	expressID := line.ExpressID

	if r.visiting[expressID] {
		r.logf("ifcgeom: cycle detected resolving #%d, returning empty node", expressID)
		return &ComposedMesh{ExpressID: expressID, Transform: identity4()}
	}
	r.visiting[expressID] = true
	defer delete(r.visiting, expressID)

	r.ensureRelVoidsMap()
	r.ensureStyledItemsMap()

	color, hasColor := r.styledItemColor(expressID)

	var node *ComposedMesh
	if express.IsIfcElement(line.IfcType) {
		node = r.resolveElement(line, color, hasColor)
	} else {
		node = r.dispatch(line, color, hasColor)
	}
	r.nodeCache[expressID] = node
	return node
}

func (r *Resolver) dispatch(line express.Line, color RGBA, hasColor bool) *ComposedMesh {
	expressID := line.ExpressID
	switch line.IfcType {
	case express.IfcMappedItem:
		repRef := r.readRef(line, 0)
		transform := r.CartesianTransformationOperator3D(r.readRef(line, 1))
		return &ComposedMesh{
			ExpressID: expressID, Transform: transform, Color: color, HasColor: hasColor,
			Children: []*ComposedMesh{r.GetMesh(repRef)},
		}

	case express.IfcRepresentationMap:
		origin := r.Axis2Placement3D(r.readRef(line, 0))
		repRef := r.readRef(line, 1)
		return &ComposedMesh{
			ExpressID: expressID, Transform: origin, Color: color, HasColor: hasColor,
			Children: []*ComposedMesh{r.GetMesh(repRef)},
		}

	case express.IfcShellBasedSurfaceModel:
		node := &ComposedMesh{ExpressID: expressID, Transform: identity4(), Color: color, HasColor: hasColor}
		r.Loader.MoveToArgumentOffset(line, 0)
		for _, off := range r.Loader.GetSetArgument() {
			shellRef := r.Loader.GetRefArgumentAt(off)
			node.Children = append(node.Children, r.buildBrepNode(shellRef, shellRef, color, hasColor))
		}
		return node

	case express.IfcFacetedBrep:
		outerRef := r.readRef(line, 0)
		return r.buildBrepNode(expressID, outerRef, color, hasColor)

	case express.IfcProductDefinitionShape:
		node := &ComposedMesh{ExpressID: expressID, Transform: identity4(), Color: color, HasColor: hasColor}
		r.Loader.MoveToArgumentOffset(line, 0)
		for _, off := range r.Loader.GetSetArgument() {
			repRef := r.Loader.GetRefArgumentAt(off)
			node.Children = append(node.Children, r.GetMesh(repRef))
		}
		return node

	case express.IfcShapeRepresentation:
		node := &ComposedMesh{ExpressID: expressID, Transform: identity4(), Color: color, HasColor: hasColor}
		if r.readStringArg(line, 0) != "Body" {
			return node
		}
		r.Loader.MoveToArgumentOffset(line, 1)
		for _, off := range r.Loader.GetSetArgument() {
			itemRef := r.Loader.GetRefArgumentAt(off)
			node.Children = append(node.Children, r.GetMesh(itemRef))
		}
		return node

	case express.IfcExtrudedAreaSolid:
		return r.buildExtrusionNode(line, color, hasColor)

	default:
		r.logf("ifcgeom: unrecognized mesh kind %s (#%d)", line.IfcType, expressID)
		return &ComposedMesh{ExpressID: expressID, Transform: identity4()}
	}
}

func (r *Resolver) readStringArg(line express.Line, idx int) string {
	r.Loader.MoveToArgumentOffset(line, idx)
	return r.Loader.GetStringArgument()
}

// buildBrepNode builds a geometry-carrying node for a shell (a closed or
// open shell reference), caching its Geometry under cacheID. cacheID
// differs from the shell's own express id for faceted-brep, whose geometry
// is stored under the faceted-brep's id rather than the shell's.
func (r *Resolver) buildBrepNode(cacheID, shellRef uint32, color RGBA, hasColor bool) *ComposedMesh {
	if _, ok := r.geometryCache[cacheID]; !ok {
		r.geometryCache[cacheID] = r.GetBrep(shellRef)
	}
	return &ComposedMesh{ExpressID: cacheID, Transform: identity4(), HasGeometry: true, Color: color, HasColor: hasColor}
}

func (r *Resolver) buildExtrusionNode(line express.Line, color RGBA, hasColor bool) *ComposedMesh {
	expressID := line.ExpressID
	profile := r.GetProfile(r.readRef(line, 0))
	placement := identity4()
	if ref, ok := r.optionalRef(line, 1); ok {
		placement = r.Axis2Placement3D(ref)
	}
	direction := r.ReadDirection3(r.readRef(line, 2))
	depth := r.readReal(line, 3)

	if _, ok := r.geometryCache[expressID]; !ok {
		r.geometryCache[expressID] = r.Extrude(profile, placement, direction, depth)
	}
	return &ComposedMesh{ExpressID: expressID, Transform: identity4(), HasGeometry: true, Color: color, HasColor: hasColor}
}

// GetBrep builds a Geometry for a closed or open shell by triangulating
// every one of its faces.
func (r *Resolver) GetBrep(shellRef uint32) *Geometry {
	line := r.line(shellRef)
	if line.IfcType != express.IfcClosedShell && line.IfcType != express.IfcOpenShell {
		r.logf("ifcgeom: expected a shell, got %s (#%d)", line.IfcType, shellRef)
		return &Geometry{}
	}
	g := &Geometry{}
	r.Loader.MoveToArgumentOffset(line, 0)
	for _, off := range r.Loader.GetSetArgument() {
		faceRef := r.Loader.GetRefArgumentAt(off)
		r.addFaceToGeometry(g, faceRef)
	}
	return g
}

func (r *Resolver) addFaceToGeometry(g *Geometry, faceRef uint32) {
	line := r.line(faceRef)
	if line.IfcType != express.IfcFace {
		r.logf("ifcgeom: expected %s, got %s (#%d)", express.IfcFace, line.IfcType, faceRef)
		return
	}
	r.Loader.MoveToArgumentOffset(line, 0)
	boundOffsets := r.Loader.GetSetArgument()
	bounds := make([]Bound3D, 0, len(boundOffsets))
	for _, off := range boundOffsets {
		boundRef := r.Loader.GetRefArgumentAt(off)
		bounds = append(bounds, r.GetBound(boundRef))
	}
	r.TriangulateBounds(g, bounds)
}

// GetBound resolves an IfcFaceOuterBound/IfcFaceBound into a Bound3D,
// reversing the loop's point order when its orientation flag is false.
func (r *Resolver) GetBound(boundRef uint32) Bound3D {
	line := r.line(boundRef)
	var kind BoundType
	switch line.IfcType {
	case express.IfcFaceOuterBound:
		kind = OUTER
	case express.IfcFaceBound:
		kind = INNER
	default:
		r.logf("ifcgeom: unrecognized bound kind %s (#%d)", line.IfcType, boundRef)
		return Bound3D{}
	}

	loopRef := r.readRef(line, 0)
	orientation := true
	if v, ok := r.boolArgument(line, 1); ok {
		orientation = v
	}

	var curve Curve3D
	r.ComputeCurve3D(loopRef, &curve)
	if !orientation {
		reverseCurve3D(curve)
	}
	return Bound3D{Curve: curve, Orientation: orientation, Type: kind}
}

func reverseCurve3D(c Curve3D) {
	for i, j := 0, len(c)-1; i < j; i, j = i+1, j-1 {
		c[i], c[j] = c[j], c[i]
	}
}
