package ifcgeom

import (
	"github.com/maximelah94/web-ifc/express"
	v2 "github.com/maximelah94/web-ifc/vec/v2"
	v3 "github.com/maximelah94/web-ifc/vec/v3"
	"github.com/maximelah94/web-ifc/xform"
)

// ReadPoint2 reads an IfcCartesianPoint's coordinates as a 2D point. The
// entity's argument 0 is its (unused here) STEP label; argument 1 is the
// coordinate SET.
func (r *Resolver) ReadPoint2(expressID uint32) Point2 {
	line := r.line(expressID)
	r.Loader.MoveToArgumentOffset(line, 1)
	coords := r.Loader.GetSetArgument()
	var p v2.Vec
	if len(coords) > 0 {
		p.X = r.Loader.GetDoubleArgumentAt(coords[0])
	}
	if len(coords) > 1 {
		p.Y = r.Loader.GetDoubleArgumentAt(coords[1])
	}
	return p
}

// ReadPoint3 reads an IfcCartesianPoint's coordinates as a 3D point.
func (r *Resolver) ReadPoint3(expressID uint32) Point3 {
	line := r.line(expressID)
	r.Loader.MoveToArgumentOffset(line, 1)
	coords := r.Loader.GetSetArgument()
	var p v3.Vec
	if len(coords) > 0 {
		p.X = r.Loader.GetDoubleArgumentAt(coords[0])
	}
	if len(coords) > 1 {
		p.Y = r.Loader.GetDoubleArgumentAt(coords[1])
	}
	if len(coords) > 2 {
		p.Z = r.Loader.GetDoubleArgumentAt(coords[2])
	}
	return p
}

// ReadDirection2 reads an IfcDirection's ratios as a normalized 2D vector.
func (r *Resolver) ReadDirection2(expressID uint32) Point2 {
	line := r.line(expressID)
	r.Loader.MoveToArgumentOffset(line, 1)
	ratios := r.Loader.GetSetArgument()
	var d v2.Vec
	if len(ratios) > 0 {
		d.X = r.Loader.GetDoubleArgumentAt(ratios[0])
	}
	if len(ratios) > 1 {
		d.Y = r.Loader.GetDoubleArgumentAt(ratios[1])
	}
	return d.Normalize()
}

// ReadDirection3 reads an IfcDirection's ratios as a normalized 3D vector.
func (r *Resolver) ReadDirection3(expressID uint32) Point3 {
	line := r.line(expressID)
	r.Loader.MoveToArgumentOffset(line, 1)
	ratios := r.Loader.GetSetArgument()
	var d v3.Vec
	if len(ratios) > 0 {
		d.X = r.Loader.GetDoubleArgumentAt(ratios[0])
	}
	if len(ratios) > 1 {
		d.Y = r.Loader.GetDoubleArgumentAt(ratios[1])
	}
	if len(ratios) > 2 {
		d.Z = r.Loader.GetDoubleArgumentAt(ratios[2])
	}
	return d.Normalize()
}

// Axis2Placement2D resolves an IfcAxis2Placement2D into a 3x3 transform.
// Argument 0 is the location point, argument 1 the optional x-axis
// direction (defaulting to (1,0)); the y-axis is the x-axis rotated +90°.
func (r *Resolver) Axis2Placement2D(expressID uint32) Mat3 {
	line := r.line(expressID)
	if line.IfcType != express.IfcAxis2Placement2D {
		r.logf("ifcgeom: expected %s, got %s (#%d)", express.IfcAxis2Placement2D, line.IfcType, expressID)
		return identity3()
	}
	loc := r.ReadPoint2(r.readRef(line, 0))
	xAxis := v2.Vec{X: 1, Y: 0}
	if ref, ok := r.optionalRef(line, 1); ok {
		xAxis = r.ReadDirection2(ref)
	}
	yAxis := v2.Vec{X: -xAxis.Y, Y: xAxis.X}
	return newMat3(xAxis, yAxis, loc)
}

// Axis2Placement3D resolves an IfcAxis2Placement3D into a 4x4 transform.
// Argument 0 is the location point, argument 1 the optional z-direction
// (default (0,0,1)), argument 2 the optional x-direction (default (1,0,0));
// the y-axis is z cross x.
func (r *Resolver) Axis2Placement3D(expressID uint32) Mat4 {
	line := r.line(expressID)
	if line.IfcType != express.IfcAxis2Placement3D {
		r.logf("ifcgeom: expected %s, got %s (#%d)", express.IfcAxis2Placement3D, line.IfcType, expressID)
		return identity4()
	}
	loc := r.ReadPoint3(r.readRef(line, 0))
	z := v3.Vec{X: 0, Y: 0, Z: 1}
	if ref, ok := r.optionalRef(line, 1); ok {
		z = r.ReadDirection3(ref)
	}
	x := v3.Vec{X: 1, Y: 0, Z: 0}
	if ref, ok := r.optionalRef(line, 2); ok {
		x = r.ReadDirection3(ref)
	}
	y := z.Cross(x).Normalize()
	return newMat4(x, y, z, loc)
}

// LocalPlacement resolves an IfcLocalPlacement: argument 0 is an optional
// parent local placement (composed on the left), argument 1 the local
// IfcAxis2Placement3D.
func (r *Resolver) LocalPlacement(expressID uint32) Mat4 {
	line := r.line(expressID)
	if line.IfcType != express.IfcLocalPlacement {
		r.logf("ifcgeom: expected %s, got %s (#%d)", express.IfcLocalPlacement, line.IfcType, expressID)
		return identity4()
	}
	parent := identity4()
	if ref, ok := r.optionalRef(line, 0); ok {
		parent = r.LocalPlacement(ref)
	}
	rel := r.Axis2Placement3D(r.readRef(line, 1))
	return parent.Mul(rel)
}

// CartesianTransformationOperator3D resolves a (uniform or non-uniform)
// IfcCartesianTransformationOperator3D into a 4x4 transform. Arguments 0-2
// are the optional axis directions (defaulting to the standard basis),
// argument 3 the origin, argument 4 the (uniform) scale; a non-uniform
// operator additionally reads arguments 5 and 6 as scale2/scale3.
func (r *Resolver) CartesianTransformationOperator3D(expressID uint32) Mat4 {
	line := r.line(expressID)
	nonUniform := line.IfcType == express.IfcCartesianTransformationOperator3DnonU
	if line.IfcType != express.IfcCartesianTransformationOperator3D && !nonUniform {
		r.logf("ifcgeom: expected %s, got %s (#%d)", express.IfcCartesianTransformationOperator3D, line.IfcType, expressID)
		return identity4()
	}

	axis1 := v3.Vec{X: 1, Y: 0, Z: 0}
	if ref, ok := r.optionalRef(line, 0); ok {
		axis1 = r.ReadDirection3(ref)
	}
	axis2 := v3.Vec{X: 0, Y: 1, Z: 0}
	if ref, ok := r.optionalRef(line, 1); ok {
		axis2 = r.ReadDirection3(ref)
	}
	axis3 := v3.Vec{X: 0, Y: 0, Z: 1}
	if ref, ok := r.optionalRef(line, 2); ok {
		axis3 = r.ReadDirection3(ref)
	}
	origin := r.ReadPoint3(r.readRef(line, 3))

	scale1 := 1.0
	if v, ok := r.optionalReal(line, 4); ok {
		scale1 = v
	}
	scale2, scale3 := scale1, scale1
	if nonUniform {
		if v, ok := r.optionalReal(line, 5); ok {
			scale2 = v
		}
		if v, ok := r.optionalReal(line, 6); ok {
			scale3 = v
		}
	}

	return newMat4(axis1.MulScalar(scale1), axis2.MulScalar(scale2), axis3.MulScalar(scale3), origin)
}

func identity3() Mat3                        { return xform.Identity3() }
func identity4() Mat4                        { return xform.Identity4() }
func newMat3(x, y, loc v2.Vec) Mat3          { return xform.NewMat3(x, y, loc) }
func newMat4(x, y, z, loc v3.Vec) Mat4       { return xform.NewMat4(x, y, z, loc) }
