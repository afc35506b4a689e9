// Package ifcgeom resolves a parsed IFC STEP entity graph into triangle
// meshes: placements, curves, profiles, extrusions, BRep face sets, style
// colors, opening subtraction, and flattening into world-space instances.
package ifcgeom

import (
	"github.com/maximelah94/web-ifc/diag"
	"github.com/maximelah94/web-ifc/vec/v2"
	"github.com/maximelah94/web-ifc/vec/v3"
	"github.com/maximelah94/web-ifc/xform"
)

// Point2 and Point3 alias the vector packages' plain coordinate types.
type Point2 = v2.Vec
type Point3 = v3.Vec

// Mat3 and Mat4 alias the column-major affine transforms used for 2D and 3D
// placements, respectively.
type Mat3 = xform.Mat3
type Mat4 = xform.Mat4

// Curve2D and Curve3D are ordered point sequences; Add appends a point.
// Closing a curve (repeating the first point at the tail) is the caller's
// responsibility.
type Curve2D []Point2
type Curve3D []Point3

func (c *Curve2D) Add(p Point2) { *c = append(*c, p) }
func (c *Curve3D) Add(p Point3) { *c = append(*c, p) }

// RGBA is a color with a transparency channel.
type RGBA struct {
	R, G, B, A float64
}

// Profile is a closed 2D curve used as a sweep cross-section, along with its
// convexity flag.
type Profile struct {
	Kind     string
	Curve    Curve2D
	IsConvex bool
}

// BoundType distinguishes a face's single outer loop from its inner
// (hole) loops.
type BoundType int

const (
	OUTER BoundType = iota
	INNER
)

// Bound3D is one loop of a BRep face: a 3D curve, its orientation, and
// whether it is the face's outer boundary or an inner hole.
type Bound3D struct {
	Curve       Curve3D
	Orientation bool
	Type        BoundType
}

// Geometry is an indexed triangle mesh: parallel Points/Normals buffers and
// an Indices buffer taken three at a time per triangle.
type Geometry struct {
	Points  []Point3
	Normals []Point3
	Indices []int
}

// NumPoints returns the number of vertices in the mesh.
func (g *Geometry) NumPoints() int { return len(g.Points) }

// NumFaces returns the number of triangles in the mesh.
func (g *Geometry) NumFaces() int { return len(g.Indices) / 3 }

// AddPoint appends a vertex with its normal and returns its index.
func (g *Geometry) AddPoint(p, n Point3) int {
	g.Points = append(g.Points, p)
	g.Normals = append(g.Normals, n)
	return len(g.Points) - 1
}

// AddFace appends one triangle referencing three already-added point
// indices.
func (g *Geometry) AddFace(a, b, c int) {
	g.Indices = append(g.Indices, a, b, c)
}

// ComposedMesh is a node in the hierarchical intermediate representation:
// an express id, a local transform, an optional resolved color, whether a
// Geometry is cached under this node's express id, and ordered children.
type ComposedMesh struct {
	ExpressID   uint32
	Transform   Mat4
	Color       RGBA
	HasColor    bool
	HasGeometry bool
	Children    []*ComposedMesh
}

// TrimmingSelect is one end of a curve trim: either a parameter value or
// (unsupported in this core) a cartesian point.
type TrimmingSelect struct {
	HasParam bool
	Param    float64
}

// TrimmingArguments bundles a trimmed-curve's two trim selects.
type TrimmingArguments struct {
	Exist bool
	Start TrimmingSelect
	End   TrimmingSelect
}

// RelVoidsMap maps a building element's express id to its associated
// opening elements' express ids.
type RelVoidsMap map[uint32][]uint32

// StyledItemsMap maps a representation item's express id to the express
// ids of its presentation-style-assignments.
type StyledItemsMap map[uint32][]uint32

// PlacedGeometry is one entry of a flattened mesh: a reference to a cached
// Geometry, its resolved color, and its world-space transform.
type PlacedGeometry struct {
	GeometryExpressID uint32
	Color             RGBA
	Transform         Mat4
}

// FlatMesh is a depth-first pre-order list of PlacedGeometry, one per node
// in the composed tree that carries geometry.
type FlatMesh []PlacedGeometry

// Config carries the resolver's external knobs as an explicit value
// threaded through the resolver, rather than a process-global debug-dump
// toggle and normalization transform.
type Config struct {
	// Normalize is applied as the outermost parent transform when
	// flattening: the fixed IFC-Z-up-meters to target-space basis change.
	Normalize Mat4
	// Logger receives one-line diagnostics for unrecognized entity kinds
	// and logged-but-ignored conditions (self-intersecting composite
	// curves, cartesian-point trims, cycles).
	Logger diag.Logger
	// DebugDump replaces the original loader's compile-time
	// DEBUG_DUMP_SVG constant: callers check it before spending time on
	// render's SVG/PNG debug-dump utilities (the DXF wireframe dump is not
	// gated by it).
	DebugDump bool
}

// DefaultConfig returns a Config with an identity Normalize transform and a
// StdLogger.
func DefaultConfig() Config {
	return Config{Normalize: xform.Identity4(), Logger: diag.StdLogger{}}
}
