package ifcgeom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wallExtrusionSTEP = `DATA;
#1=IFCCARTESIANPOINT('',(0.,0.,0.));
#2=IFCAXIS2PLACEMENT3D(#1,$,$);
#3=IFCLOCALPLACEMENT($,#2);
#4=IFCCARTESIANPOINT('',(0.,0.,0.));
#5=IFCAXIS2PLACEMENT2D(#4,$);
#6=IFCRECTANGLEPROFILEDEF(#5,2.,0.2);
#7=IFCDIRECTION('',(0.,0.,1.));
#8=IFCEXTRUDEDAREASOLID(#6,$,#7,3.);
#9=IFCSHAPEREPRESENTATION('Body',(#8));
#10=IFCPRODUCTDEFINITIONSHAPE((#9));
#11=IFCWALL('',#3,#10);
ENDSEC;`

// uniquePositions counts distinct vertex positions within tolerance, since
// AddPoint stores one entry per (face, corner) use rather than deduplicating.
func uniquePositions(pts []Point3, tolerance float64) int {
	var unique []Point3
	for _, p := range pts {
		found := false
		for _, u := range unique {
			if p.Equals(u, tolerance) {
				found = true
				break
			}
		}
		if !found {
			unique = append(unique, p)
		}
	}
	return len(unique)
}

func TestWallExtrusionProducesRectangularPrism(t *testing.T) {
	loader := mustLoader(t, wallExtrusionSTEP)
	r := NewResolver(loader, DefaultConfig())

	flat := r.GetFlatMesh(11)
	require.Len(t, flat, 1, "expected 1 placed geometry")

	geom, ok := r.GetCachedGeometry(flat[0].GeometryExpressID)
	require.True(t, ok, "expected a cached geometry for #%d", flat[0].GeometryExpressID)
	assert.Equal(t, 12, geom.NumFaces(), "expected 12 triangles (2 caps x 2 + 4 side quads x 2)")
	for _, idx := range geom.Indices {
		assert.True(t, idx >= 0 && idx < geom.NumPoints(), "index %d out of range [0,%d)", idx, geom.NumPoints())
	}
	assert.Equal(t, 8, uniquePositions(geom.Points, 1e-9), "expected 8 distinct corners")
}

func meshVolume(g *Geometry) float64 {
	var vol float64
	for i := 0; i+2 < len(g.Indices); i += 3 {
		a, b, c := g.Points[g.Indices[i]], g.Points[g.Indices[i+1]], g.Points[g.Indices[i+2]]
		vol += a.Dot(b.Cross(c)) / 6
	}
	if vol < 0 {
		vol = -vol
	}
	return vol
}

func TestWallMinusOpeningSubtractsVolume(t *testing.T) {
	// A wall thick enough in all three axes to fully contain the opening,
	// so no opening face crosses the wall's boundary (this core's boolean
	// subtraction classifies whole triangles by centroid containment, with
	// no edge subdivision at the intersection curve).
	src := `DATA;
#1=IFCCARTESIANPOINT('',(0.,0.,0.));
#2=IFCAXIS2PLACEMENT3D(#1,$,$);
#3=IFCLOCALPLACEMENT($,#2);
#4=IFCCARTESIANPOINT('',(0.,0.,0.));
#5=IFCAXIS2PLACEMENT2D(#4,$);
#6=IFCRECTANGLEPROFILEDEF(#5,4.,1.2);
#7=IFCDIRECTION('',(0.,0.,1.));
#8=IFCEXTRUDEDAREASOLID(#6,$,#7,4.);
#9=IFCSHAPEREPRESENTATION('Body',(#8));
#10=IFCPRODUCTDEFINITIONSHAPE((#9));
#11=IFCWALL('',#3,#10);
#12=IFCCARTESIANPOINT('',(0.,0.,2.));
#13=IFCAXIS2PLACEMENT3D(#12,$,$);
#14=IFCLOCALPLACEMENT($,#13);
#15=IFCCARTESIANPOINT('',(0.,0.,0.));
#16=IFCAXIS2PLACEMENT2D(#15,$);
#17=IFCRECTANGLEPROFILEDEF(#16,1.,1.);
#18=IFCDIRECTION('',(0.,0.,1.));
#19=IFCEXTRUDEDAREASOLID(#17,$,#18,1.);
#20=IFCSHAPEREPRESENTATION('Body',(#19));
#21=IFCPRODUCTDEFINITIONSHAPE((#20));
#22=IFCOPENINGELEMENT('',#14,#21);
#23=IFCRELVOIDSELEMENT(#11,#22);
ENDSEC;`
	loader := mustLoader(t, src)
	r := NewResolver(loader, DefaultConfig())

	r.GetMesh(11)
	geom, ok := r.GetCachedGeometry(11)
	require.True(t, ok, "expected a cached geometry for the wall itself after subtraction")

	wallVolume := 4.0 * 1.2 * 4.0
	openingVolume := 1.0 * 1.0 * 1.0
	want := wallVolume - openingVolume
	assert.InDelta(t, want, meshVolume(geom), 1e-6)
}

func TestAxisRepresentationProducesEmptyNode(t *testing.T) {
	src := `DATA;
#1=IFCCARTESIANPOINT('',(0.,0.,0.));
#2=IFCAXIS2PLACEMENT3D(#1,$,$);
#3=IFCLOCALPLACEMENT($,#2);
#4=IFCCARTESIANPOINT('',(0.,0.,0.));
#5=IFCAXIS2PLACEMENT2D(#4,$);
#6=IFCRECTANGLEPROFILEDEF(#5,2.,0.2);
#7=IFCDIRECTION('',(0.,0.,1.));
#8=IFCEXTRUDEDAREASOLID(#6,$,#7,3.);
#9=IFCSHAPEREPRESENTATION('Axis',(#8));
#10=IFCPRODUCTDEFINITIONSHAPE((#9));
#11=IFCWALL('',#3,#10);
ENDSEC;`
	loader := mustLoader(t, src)
	r := NewResolver(loader, DefaultConfig())
	flat := r.GetFlatMesh(11)
	assert.Empty(t, flat, "expected an Axis representation to contribute no placed geometry")
}

func TestMappedItemComposesRepresentationMapTransform(t *testing.T) {
	src := `DATA;
#1=IFCCARTESIANPOINT('',(0.,0.,0.));
#2=IFCAXIS2PLACEMENT2D(#1,$);
#3=IFCRECTANGLEPROFILEDEF(#2,1.,1.);
#4=IFCDIRECTION('',(0.,0.,1.));
#5=IFCEXTRUDEDAREASOLID(#3,$,#4,1.);
#6=IFCSHAPEREPRESENTATION('Body',(#5));
#7=IFCCARTESIANPOINT('',(0.,0.,0.));
#8=IFCAXIS2PLACEMENT3D(#7,$,$);
#9=IFCREPRESENTATIONMAP(#8,#6);
#10=IFCCARTESIANPOINT('',(5.,0.,0.));
#11=IFCCARTESIANTRANSFORMATIONOPERATOR3D($,$,$,#10,$);
#12=IFCMAPPEDITEM(#9,#11);
#13=IFCSHAPEREPRESENTATION('Body',(#12));
#14=IFCPRODUCTDEFINITIONSHAPE((#13));
#15=IFCCARTESIANPOINT('',(0.,0.,0.));
#16=IFCAXIS2PLACEMENT3D(#15,$,$);
#17=IFCLOCALPLACEMENT($,#16);
#18=IFCWALL('',#17,#14);
ENDSEC;`
	loader := mustLoader(t, src)
	r := NewResolver(loader, DefaultConfig())
	flat := r.GetFlatMesh(18)
	require.Len(t, flat, 1, "expected 1 placed geometry")
	origin := flat[0].Transform.MulPoint(Point3{})
	assert.True(t, origin.Equals(Point3{X: 5}, 1e-9), "expected the mapped item's world origin to carry the (5,0,0) translation, got %+v", origin)
}
