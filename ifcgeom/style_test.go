package ifcgeom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorResolutionWithTransparency(t *testing.T) {
	src := `DATA;
#1=IFCCOLOURRGB('',0.8,0.1,0.1);
#2=IFCSURFACESTYLERENDERING(#1,0.25);
#3=IFCSURFACESTYLE('',.BOTH.,(#2));
#4=IFCPRESENTATIONSTYLEASSIGNMENT((#3));
ENDSEC;`
	loader := mustLoader(t, src)
	r := NewResolver(loader, DefaultConfig())

	color, ok := r.GetColor(4)
	require.True(t, ok, "expected a resolved color")
	want := RGBA{R: 0.8, G: 0.1, B: 0.1, A: 0.75}
	assert.Equal(t, want.R, color.R)
	assert.Equal(t, want.G, color.G)
	assert.Equal(t, want.B, color.B)
	assert.InDelta(t, want.A, color.A, 1e-9, "expected alpha (1 - transparency)")
}

func TestStyledItemAttachesColorToWallGeometry(t *testing.T) {
	src := `DATA;
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
#12=IFCCOLOURRGB('',0.2,0.4,0.6);
#13=IFCSURFACESTYLERENDERING(#12,$);
#14=IFCSURFACESTYLE('',.BOTH.,(#13));
#15=IFCPRESENTATIONSTYLEASSIGNMENT((#14));
#16=IFCSTYLEDITEM(#8,(#15));
ENDSEC;`
	loader := mustLoader(t, src)
	r := NewResolver(loader, DefaultConfig())

	flat := r.GetFlatMesh(11)
	require.Len(t, flat, 1, "expected 1 placed geometry")
	want := RGBA{R: 0.2, G: 0.4, B: 0.6, A: 1}
	assert.Equal(t, want, flat[0].Color, "expected the styled item's color to flow through to the placed geometry")
}
