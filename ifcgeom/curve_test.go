package ifcgeom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimmedCircleQuarterArc(t *testing.T) {
	src := `DATA;
#1=IFCCARTESIANPOINT('',(0.,0.));
#2=IFCAXIS2PLACEMENT2D(#1,$);
#3=IFCCIRCLE(#2,5.);
#4=IFCTRIMMEDCURVE(#3,(IFCPARAMETERVALUE(0.)),(IFCPARAMETERVALUE(90.)));
ENDSEC;`
	loader := mustLoader(t, src)
	r := NewResolver(loader, DefaultConfig())

	var curve Curve2D
	r.ComputeCurve2D(4, &curve)

	require.Len(t, curve, circleSampleCount, "expected one sample per step of a trimmed arc")
	assert.True(t, curve[0].Equals(Point2{X: 5, Y: 0}, 1e-9), "expected the 0-degree sample at (5,0), got %+v", curve[0])
	last := curve[len(curve)-1]
	assert.True(t, last.Equals(Point2{X: 0, Y: -5}, 1e-9), "expected the 90-degree sample at (0,-5), got %+v", last)
}

func TestFullCircleClosesItself(t *testing.T) {
	src := `DATA;
#1=IFCCARTESIANPOINT('',(0.,0.));
#2=IFCAXIS2PLACEMENT2D(#1,$);
#3=IFCCIRCLE(#2,5.);
ENDSEC;`
	loader := mustLoader(t, src)
	r := NewResolver(loader, DefaultConfig())

	var curve Curve2D
	r.ComputeCurve2D(3, &curve)

	require.Len(t, curve, circleSampleCount+1, "expected a closed circle to repeat its first point")
	assert.True(t, curve[0].Equals(curve[len(curve)-1], 1e-9), "expected an untrimmed circle to close on itself, got first=%+v last=%+v", curve[0], curve[len(curve)-1])
	for _, p := range curve[:len(curve)-1] {
		assert.InDelta(t, 5.0, p.Length(), 1e-9, "expected every sample at radius 5")
	}
}
