package ifcgeom

import (
	"math"

	"github.com/maximelah94/web-ifc/express"
	v2 "github.com/maximelah94/web-ifc/vec/v2"
)

const circleSampleCount = 10

// ComputeCurve3D dispatches on entity kind and appends 3D points to curve.
// Polyloop/composite-curve/composite-curve-segment all accumulate points
// directly (polyline is 2D here and is handled by ComputeCurve2D, so in 3D
// it falls to the logged default); trimmed-curve and circle are 2D-native and
// are not meaningful in 3D context, so they log and are skipped here (they
// only ever appear as profile curves, resolved through ComputeCurve2D).
func (r *Resolver) ComputeCurve3D(expressID uint32, curve *Curve3D) {
	line := r.line(expressID)
	switch line.IfcType {
	case express.IfcPolyloop:
		r.Loader.MoveToArgumentOffset(line, 0)
		points := r.Loader.GetSetArgument()
		for _, off := range points {
			ref := r.Loader.GetRefArgumentAt(off)
			curve.Add(r.ReadPoint3(ref))
		}

	case express.IfcCompositeCurve:
		r.Loader.MoveToArgumentOffset(line, 0)
		segments := r.Loader.GetSetArgument()
		if selfIntersects, ok := r.boolArgument(line, 1); ok && selfIntersects {
			r.logf("ifcgeom: self-intersecting composite curve #%d", expressID)
		}
		for _, off := range segments {
			ref := r.Loader.GetRefArgumentAt(off)
			r.ComputeCurve3D(ref, curve)
		}

	case express.IfcCompositeCurveSegment:
		// Argument 0 transition, argument 1 same-sense: both skipped,
		// unused by this core. Argument 2 is the parent curve.
		r.ComputeCurve3D(r.readRef(line, 2), curve)

	default:
		r.logf("ifcgeom: unrecognized 3D curve kind %s (#%d)", line.IfcType, expressID)
	}
}

// ComputeCurve2D dispatches on entity kind and appends 2D points to curve.
func (r *Resolver) ComputeCurve2D(expressID uint32, curve *Curve2D) {
	line := r.line(expressID)
	switch line.IfcType {
	case express.IfcPolyline:
		r.Loader.MoveToArgumentOffset(line, 0)
		points := r.Loader.GetSetArgument()
		for _, off := range points {
			ref := r.Loader.GetRefArgumentAt(off)
			curve.Add(r.ReadPoint2(ref))
		}

	case express.IfcCompositeCurve:
		r.Loader.MoveToArgumentOffset(line, 0)
		segments := r.Loader.GetSetArgument()
		if selfIntersects, ok := r.boolArgument(line, 1); ok && selfIntersects {
			r.logf("ifcgeom: self-intersecting composite curve #%d", expressID)
		}
		for _, off := range segments {
			ref := r.Loader.GetRefArgumentAt(off)
			r.ComputeCurve2D(ref, curve)
		}

	case express.IfcCompositeCurveSegment:
		r.ComputeCurve2D(r.readRef(line, 2), curve)

	case express.IfcTrimmedCurve:
		r.computeTrimmedCurve2D(line, curve)

	case express.IfcCircle:
		r.computeCircle2D(line, TrimmingArguments{}, curve)

	default:
		r.logf("ifcgeom: unrecognized 2D curve kind %s (#%d)", line.IfcType, expressID)
	}
}

func (r *Resolver) computeTrimmedCurve2D(line express.Line, curve *Curve2D) {
	basisRef := r.readRef(line, 0)
	start := r.parseTrimSet(line, 1)
	end := r.parseTrimSet(line, 2)
	trim := TrimmingArguments{Exist: true, Start: start, End: end}

	basis := r.line(basisRef)
	if basis.IfcType == express.IfcCircle {
		r.computeCircle2D(basis, trim, curve)
		return
	}
	// Non-circle basis curves ignore trimming in this core (only circle
	// trimming is handled).
	r.ComputeCurve2D(basisRef, curve)
}

// parseTrimSet reads a trim SET argument and applies ParseTrimSelect to its
// (up to) two members, keeping the first one that resolves to a parameter.
func (r *Resolver) parseTrimSet(line express.Line, argIndex int) TrimmingSelect {
	r.Loader.MoveToArgumentOffset(line, argIndex)
	members := r.Loader.GetSetArgument()
	for _, off := range members {
		r.Loader.MoveTo(off)
		sel := r.ParseTrimSelect()
		if sel.HasParam {
			return sel
		}
	}
	return TrimmingSelect{}
}

// ParseTrimSelect reads a trim-select value starting at the loader cursor.
// A select value occupies exactly two tape slots: a type name STRING token
// followed by the wrapped value. If the type name is
// IFCPARAMETERVALUE, the numeric parameter is stored; any other type name
// (i.e. a cartesian-point trim) is logged and left unset.
func (r *Resolver) ParseTrimSelect() TrimmingSelect {
	typeName := r.Loader.GetStringArgument()
	if typeName != "IFCPARAMETERVALUE" {
		r.logf("ifcgeom: unsupported trim select type %q", typeName)
		// Consume the wrapped value token to keep the cursor well-defined
		// even though it is not interpreted.
		r.Loader.GetTokenType()
		return TrimmingSelect{}
	}
	return TrimmingSelect{HasParam: true, Param: r.Loader.GetDoubleArgument()}
}

// computeCircle2D samples an IfcCircle (argument 0: axis2placement2d,
// argument 1: radius) into N points, honoring an optional trim in degrees.
func (r *Resolver) computeCircle2D(line express.Line, trim TrimmingArguments, curve *Curve2D) {
	placementRef := r.readRef(line, 0)
	placement := r.Axis2Placement2D(placementRef)
	radius := r.readReal(line, 1)

	start, end := 0.0, 360.0
	trimmed := false
	if trim.Exist && trim.Start.HasParam && trim.End.HasParam {
		start, end = trim.Start.Param, trim.End.Param
		trimmed = true
	}
	if end < start {
		end += 360
	}

	n := circleSampleCount
	for i := 0; i < n; i++ {
		theta := (start + (float64(i)/float64(n-1))*(end-start)) * math.Pi / 180
		local := v2.Vec{X: radius * math.Cos(theta), Y: -radius * math.Sin(theta)}
		curve.Add(placement.MulPoint(local))
	}
	if !trimmed && n > 0 {
		curve.Add((*curve)[0])
	}
}

// boolArgument reads a STEP logical/enum argument ("T"/"F"/"U" or boolean
// token) as a Go bool, returning ok=false if the argument is unset.
func (r *Resolver) boolArgument(line express.Line, idx int) (bool, bool) {
	r.Loader.MoveToArgumentOffset(line, idx)
	tt := r.Loader.GetTokenType()
	r.Loader.Reverse()
	if tt != express.Enum {
		return false, false
	}
	s := r.Loader.GetStringArgument()
	return s == "T" || s == "TRUE", true
}

func (r *Resolver) readReal(line express.Line, idx int) float64 {
	r.Loader.MoveToArgumentOffset(line, idx)
	return r.Loader.GetDoubleArgument()
}
