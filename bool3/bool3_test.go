package bool3

import (
	"math"
	"testing"

	"github.com/maximelah94/web-ifc/vec/v3"
)

func box(min, max v3.Vec) Mesh {
	v := []v3.Vec{
		{min.X, min.Y, min.Z}, {max.X, min.Y, min.Z}, {max.X, max.Y, min.Z}, {min.X, max.Y, min.Z},
		{min.X, min.Y, max.Z}, {max.X, min.Y, max.Z}, {max.X, max.Y, max.Z}, {min.X, max.Y, max.Z},
	}
	quads := [][4]int{
		{0, 1, 2, 3}, // bottom
		{4, 7, 6, 5}, // top
		{0, 4, 5, 1}, // front
		{1, 5, 6, 2}, // right
		{2, 6, 7, 3}, // back
		{3, 7, 4, 0}, // left
	}
	var idx []int
	for _, q := range quads {
		idx = append(idx, q[0], q[1], q[2], q[0], q[2], q[3])
	}
	return Mesh{Vertices: v, Indices: idx}
}

func meshVolume(m Mesh) float64 {
	var vol float64
	for i := 0; i < m.NumTriangles(); i++ {
		a, b, c := m.Triangle(i)
		vol += a.Dot(b.Cross(c)) / 6
	}
	return math.Abs(vol)
}

func TestComputeNormalOfUnitTriangle(t *testing.T) {
	n := ComputeNormal(v3.Vec{}, v3.Vec{X: 1}, v3.Vec{Y: 1})
	if n.Z <= 0 {
		t.Fatalf("expected +Z normal, got %+v", n)
	}
}

func TestPointInMeshBox(t *testing.T) {
	b := box(v3.Vec{}, v3.Vec{X: 2, Y: 2, Z: 2})
	if !pointInMesh(b, v3.Vec{X: 1, Y: 1, Z: 1}) {
		t.Fatalf("expected center point to be inside box")
	}
	if pointInMesh(b, v3.Vec{X: 5, Y: 5, Z: 5}) {
		t.Fatalf("expected far point to be outside box")
	}
}

func TestBoolSubtractVolume(t *testing.T) {
	outer := box(v3.Vec{}, v3.Vec{X: 4, Y: 4, Z: 4})
	inner := box(v3.Vec{X: 1, Y: 1, Z: 1}, v3.Vec{X: 2, Y: 2, Z: 2})

	aCut, bCut := IntersectMeshMesh(outer, inner)
	result := BoolSubtract(aCut, bCut)

	want := meshVolume(outer) - meshVolume(inner)
	got := meshVolume(result)
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("expected volume %v, got %v", want, got)
	}
}
