// Package render bridges resolved ifcgeom meshes to on-disk visualization
// and interchange formats.
package render

import (
	"fmt"

	"github.com/maximelah94/web-ifc/ifcgeom"
	"github.com/maximelah94/web-ifc/step"
)

// STEPOptions configures STEP export.
type STEPOptions struct {
	Author       string // Author name
	Organization string // Organization name
	ProductName  string // Product name (defaults to "ifc_model")
}

func (o STEPOptions) withDefaults() STEPOptions {
	if o.Author == "" {
		o.Author = "Unknown"
	}
	if o.Organization == "" {
		o.Organization = "Unknown"
	}
	if o.ProductName == "" {
		o.ProductName = "ifc_model"
	}
	return o
}

// SaveSTEP writes a single resolved geometry to a STEP AP214 file.
func SaveSTEP(path string, geom *ifcgeom.Geometry) error {
	return SaveSTEPWithOptions(path, geom, STEPOptions{})
}

// SaveSTEPWithOptions writes a single resolved geometry to a STEP AP214
// file with the given author/organization/product-name metadata.
func SaveSTEPWithOptions(path string, geom *ifcgeom.Geometry, opts STEPOptions) error {
	opts = opts.withDefaults()

	writer, err := step.NewWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create STEP writer: %w", err)
	}
	defer writer.Close()

	writer.SetAuthor(opts.Author, opts.Organization)

	if err := writer.WriteGeometry(geom, opts.ProductName); err != nil {
		return fmt.Errorf("failed to write geometry: %w", err)
	}

	fmt.Printf("STEP export completed: %s\n", path)
	return nil
}

// GeometryLookup resolves a geometry's express id to its cached Geometry,
// the shape a resolver's GetCachedGeometry method has.
type GeometryLookup func(expressID uint32) (*ifcgeom.Geometry, bool)

// SaveSTEPFlatMesh writes every placed geometry of a flattened mesh to a
// single merged STEP AP214 product, transforming each geometry's points
// and normals into world space with its placement before merging. This is
// the multi-element counterpart to SaveSTEP, for exporting a whole
// resolved IFC model (or one building element composed of several
// representation items) as one STEP file.
func SaveSTEPFlatMesh(path string, flat ifcgeom.FlatMesh, lookup GeometryLookup, opts STEPOptions) error {
	opts = opts.withDefaults()

	sw, input, err := step.NewStreamWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create STEP stream writer: %w", err)
	}
	sw.SetAuthor(opts.Author, opts.Organization)

	for _, placed := range flat {
		geom, ok := lookup(placed.GeometryExpressID)
		if !ok {
			continue
		}
		input <- worldSpaceGeometry(geom, placed.Transform)
	}

	if err := sw.Finalize(opts.ProductName); err != nil {
		return fmt.Errorf("failed to write flattened mesh: %w", err)
	}

	fmt.Printf("STEP export completed: %s\n", path)
	return nil
}

// worldSpaceGeometry applies m to every point and normal of geom,
// producing a copy (geom's own cached points are left untouched).
func worldSpaceGeometry(geom *ifcgeom.Geometry, m ifcgeom.Mat4) *ifcgeom.Geometry {
	out := &ifcgeom.Geometry{
		Points:  make([]ifcgeom.Point3, len(geom.Points)),
		Normals: make([]ifcgeom.Point3, len(geom.Normals)),
		Indices: append([]int(nil), geom.Indices...),
	}
	for i, p := range geom.Points {
		out.Points[i] = m.MulPoint(p)
	}
	for i, n := range geom.Normals {
		out.Normals[i] = m.MulDir(n).Normalize()
	}
	return out
}
