package ifcgeom

import (
	"math"

	"github.com/maximelah94/web-ifc/express"
	v2 "github.com/maximelah94/web-ifc/vec/v2"
)

const rectangleCornerCount = 5
const circleProfileSampleCount = 5

// GetProfile dispatches on entity kind to produce a closed 2D Profile.
func (r *Resolver) GetProfile(expressID uint32) Profile {
	line := r.line(expressID)
	switch line.IfcType {
	case express.IfcArbitraryClosedProfileDef:
		var curve Curve2D
		r.ComputeCurve2D(r.readRef(line, 0), &curve)
		return Profile{Kind: line.IfcType, Curve: curve, IsConvex: r.isConvex(curve)}

	case express.IfcRectangleProfileDef:
		return r.rectangleProfile(line)

	case express.IfcCircleProfileDef:
		return r.circleProfile(line)

	default:
		r.logf("ifcgeom: unrecognized profile kind %s (#%d)", line.IfcType, expressID)
		return Profile{}
	}
}

// rectangleProfile reads argument 0 (placement), argument 1 (xdim),
// argument 2 (ydim) and emits a closed five-point rectangle centered at the
// placement origin, transformed by the placement.
func (r *Resolver) rectangleProfile(line express.Line) Profile {
	placementRef := r.readRef(line, 0)
	placement := r.Axis2Placement2D(placementRef)
	xdim := r.readReal(line, 1)
	ydim := r.readReal(line, 2)

	hx, hy := xdim/2, ydim/2
	local := []v2.Vec{
		{X: hx, Y: hy}, {X: -hx, Y: hy}, {X: -hx, Y: -hy}, {X: hx, Y: -hy},
	}
	curve := make(Curve2D, 0, rectangleCornerCount)
	for _, p := range local {
		curve.Add(placement.MulPoint(p))
	}
	curve.Add(curve[0])

	return Profile{Kind: line.IfcType, Curve: curve, IsConvex: true}
}

// circleProfile reads argument 0 (placement), argument 1 (radius) and
// produces five points around a full circle, closing by repeating the
// first point.
func (r *Resolver) circleProfile(line express.Line) Profile {
	placementRef := r.readRef(line, 0)
	placement := r.Axis2Placement2D(placementRef)
	radius := r.readReal(line, 1)

	curve := make(Curve2D, 0, circleProfileSampleCount+1)
	for i := 0; i < circleProfileSampleCount; i++ {
		theta := float64(i) / circleProfileSampleCount * 2 * math.Pi
		local := v2.Vec{X: radius * math.Sin(theta), Y: radius * math.Cos(theta)}
		curve.Add(placement.MulPoint(local))
	}
	curve.Add(curve[0])

	return Profile{Kind: line.IfcType, Curve: curve, IsConvex: true}
}

// isConvex tests that every consecutive triple is convex-or-colinear, with a
// consistent sign.
func (r *Resolver) isConvex(curve Curve2D) bool {
	n := len(curve)
	if n < 3 {
		return true
	}
	sign := 0
	for i := 0; i < n; i++ {
		a := curve[i]
		b := curve[(i+1)%n]
		c := curve[(i+2)%n]
		cross := b.Sub(a).Cross(c.Sub(b))
		switch {
		case cross > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}
