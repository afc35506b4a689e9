// Package xform implements the 2D and 3D affine placement algebra used to
// compose IFC local placements into world-space transforms.
package xform

import (
	"gonum.org/v1/gonum/mat"

	v2 "github.com/maximelah94/web-ifc/vec/v2"
)

// Mat3 is a 3x3 homogeneous affine transform over 2D points: columns are
// {x-axis, y-axis, (location, 1)}.
type Mat3 struct {
	d *mat.Dense
}

// Identity3 returns the 3x3 identity transform.
func Identity3() Mat3 {
	d := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		d.Set(i, i, 1)
	}
	return Mat3{d}
}

// NewMat3 builds a Mat3 from its x-axis, y-axis and location columns.
func NewMat3(xAxis, yAxis, loc v2.Vec) Mat3 {
	d := mat.NewDense(3, 3, []float64{
		xAxis.X, yAxis.X, loc.X,
		xAxis.Y, yAxis.Y, loc.Y,
		0, 0, 1,
	})
	return Mat3{d}
}

// Mul returns a * b (a applied after b).
func (a Mat3) Mul(b Mat3) Mat3 {
	var out mat.Dense
	out.Mul(a.d, b.d)
	return Mat3{&out}
}

// MulPoint applies the transform to a 2D point (implicit homogeneous w=1).
func (a Mat3) MulPoint(p v2.Vec) v2.Vec {
	in := mat.NewVecDense(3, []float64{p.X, p.Y, 1})
	var out mat.VecDense
	out.MulVec(a.d, in)
	return v2.Vec{X: out.AtVec(0), Y: out.AtVec(1)}
}
