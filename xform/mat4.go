package xform

import (
	"gonum.org/v1/gonum/mat"

	v3 "github.com/maximelah94/web-ifc/vec/v3"
)

// Mat4 is a 4x4 homogeneous affine transform over 3D points: columns are
// {x-axis, y-axis, z-axis, (location, 1)}.
type Mat4 struct {
	d *mat.Dense
}

// Identity4 returns the 4x4 identity transform.
func Identity4() Mat4 {
	d := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		d.Set(i, i, 1)
	}
	return Mat4{d}
}

// NewMat4 builds a Mat4 from its x/y/z axis and location columns.
func NewMat4(xAxis, yAxis, zAxis, loc v3.Vec) Mat4 {
	d := mat.NewDense(4, 4, []float64{
		xAxis.X, yAxis.X, zAxis.X, loc.X,
		xAxis.Y, yAxis.Y, zAxis.Y, loc.Y,
		xAxis.Z, yAxis.Z, zAxis.Z, loc.Z,
		0, 0, 0, 1,
	})
	return Mat4{d}
}

// Mul returns a * b (a applied after b).
func (a Mat4) Mul(b Mat4) Mat4 {
	var out mat.Dense
	out.Mul(a.d, b.d)
	return Mat4{&out}
}

// MulPoint applies the transform to a 3D point (implicit homogeneous w=1).
func (a Mat4) MulPoint(p v3.Vec) v3.Vec {
	in := mat.NewVecDense(4, []float64{p.X, p.Y, p.Z, 1})
	var out mat.VecDense
	out.MulVec(a.d, in)
	return v3.Vec{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}

// MulDir applies the transform's rotation/scale part to a direction vector,
// ignoring translation (implicit homogeneous w=0).
func (a Mat4) MulDir(p v3.Vec) v3.Vec {
	in := mat.NewVecDense(4, []float64{p.X, p.Y, p.Z, 0})
	var out mat.VecDense
	out.MulVec(a.d, in)
	return v3.Vec{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}

// Equal reports whether a and b are element-wise equal within tolerance.
func (a Mat4) Equal(b Mat4, tolerance float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if abs(a.d.At(i, j)-b.d.At(i, j)) > tolerance {
				return false
			}
		}
	}
	return true
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
