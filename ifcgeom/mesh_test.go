package ifcgeom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlipWindingSwapsFirstTwoIndicesPerFace(t *testing.T) {
	g := &Geometry{Indices: []int{0, 1, 2, 3, 4, 5}}
	flipWinding(g)
	assert.Equal(t, []int{1, 0, 2, 4, 3, 5}, g.Indices, "expected flipped indices")

	// Flipping twice restores the original order.
	flipWinding(g)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, g.Indices, "expected flipWinding to be its own inverse")
}

func TestExtrudeDirectionPreservesTriangleAndPointCounts(t *testing.T) {
	profile := Profile{
		Curve: Curve2D{
			{X: 0.5, Y: 0.5}, {X: -0.5, Y: 0.5}, {X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {X: 0.5, Y: 0.5},
		},
	}
	r := &Resolver{}

	up := r.Extrude(profile, identity4(), Point3{Z: 1}, 1)
	down := r.Extrude(profile, identity4(), Point3{Z: -1}, 1)

	require.Equal(t, up.NumFaces(), down.NumFaces(), "expected the same triangle count regardless of direction")
	assert.Equal(t, 12, up.NumFaces())
	assert.Equal(t, up.NumPoints(), down.NumPoints(), "expected equal point counts")
}

func TestTriangulateBoundsQuadFace(t *testing.T) {
	r := &Resolver{}
	g := &Geometry{}
	bounds := []Bound3D{{
		Type: OUTER,
		Curve: Curve3D{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		},
	}}
	r.TriangulateBounds(g, bounds)
	require.Equal(t, 2, g.NumFaces(), "expected a 4-point face to triangulate into 2 triangles")
	for _, idx := range g.Indices {
		assert.True(t, idx >= 0 && idx < g.NumPoints(), "index %d out of range [0,%d)", idx, g.NumPoints())
	}
}

func TestTriangulateBoundsFaceWithHole(t *testing.T) {
	r := &Resolver{}
	g := &Geometry{}
	outer := Bound3D{
		Type: OUTER,
		Curve: Curve3D{
			{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}, {X: 10, Y: 10, Z: 0}, {X: 0, Y: 10, Z: 0},
		},
	}
	hole := Bound3D{
		Type: INNER,
		Curve: Curve3D{
			{X: 3, Y: 3, Z: 0}, {X: 7, Y: 3, Z: 0}, {X: 7, Y: 7, Z: 0}, {X: 3, Y: 7, Z: 0},
		},
	}
	r.TriangulateBounds(g, []Bound3D{hole, outer})
	require.NotZero(t, g.NumFaces(), "expected a non-empty triangulation for a face with a hole")
	for _, idx := range g.Indices {
		assert.True(t, idx >= 0 && idx < g.NumPoints(), "index %d out of range [0,%d)", idx, g.NumPoints())
	}
}
