package ifcgeom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maximelah94/web-ifc/express"
)

func mustLoader(t *testing.T, src string) *express.Loader {
	t.Helper()
	l, err := express.NewLoader([]byte(src))
	require.NoError(t, err, "NewLoader")
	return l
}

func TestAxis2Placement3DOrthonormalBasis(t *testing.T) {
	src := `DATA;
#1=IFCCARTESIANPOINT('',(1.,2.,3.));
#2=IFCDIRECTION('',(0.,0.,1.));
#3=IFCDIRECTION('',(1.,0.,0.));
#4=IFCAXIS2PLACEMENT3D(#1,#2,#3);
ENDSEC;`
	loader := mustLoader(t, src)
	r := NewResolver(loader, DefaultConfig())
	m := r.Axis2Placement3D(4)

	origin := m.MulPoint(Point3{})
	assert.True(t, origin.Equals(Point3{X: 1, Y: 2, Z: 3}, 1e-9), "expected origin (1,2,3), got %+v", origin)

	x := m.MulDir(Point3{X: 1})
	y := m.MulDir(Point3{Y: 1})
	z := m.MulDir(Point3{Z: 1})
	assert.InDelta(t, 0, x.Dot(y), 1e-9, "expected x orthogonal to y")
	assert.InDelta(t, 0, y.Dot(z), 1e-9, "expected y orthogonal to z")
	assert.InDelta(t, 0, x.Dot(z), 1e-9, "expected x orthogonal to z")
	assert.InDelta(t, 0, x.Cross(y).Sub(z).Length(), 1e-9, "expected right-handed basis (x cross y == z), got %+v", x.Cross(y))
}

func TestLocalPlacementComposesParent(t *testing.T) {
	src := `DATA;
#1=IFCCARTESIANPOINT('',(10.,0.,0.));
#2=IFCAXIS2PLACEMENT3D(#1,$,$);
#3=IFCLOCALPLACEMENT($,#2);
#4=IFCCARTESIANPOINT('',(0.,5.,0.));
#5=IFCAXIS2PLACEMENT3D(#4,$,$);
#6=IFCLOCALPLACEMENT(#3,#5);
ENDSEC;`
	loader := mustLoader(t, src)
	r := NewResolver(loader, DefaultConfig())
	m := r.LocalPlacement(6)
	p := m.MulPoint(Point3{})
	assert.True(t, p.Equals(Point3{X: 10, Y: 5, Z: 0}, 1e-9), "expected (10,5,0), got %+v", p)
}
