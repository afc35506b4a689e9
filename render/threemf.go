package render

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/hpinc/go3mf"

	"github.com/maximelah94/web-ifc/ifcgeom"
)

// ThreeMFOptions configures 3MF export, mirroring STEPOptions' shape.
type ThreeMFOptions struct {
	Title    string
	Designer string
}

// ToThreeMF builds an in-memory go3mf.Model from a flattened mesh, merging
// every placed geometry's world-space triangles into a single mesh object
// (placements are baked into vertex positions rather than expressed as
// 3MF build-item transforms, since a FlatMesh has already composed them).
func ToThreeMF(flat ifcgeom.FlatMesh, lookup GeometryLookup, opts ThreeMFOptions) (*go3mf.Model, error) {
	model := &go3mf.Model{Units: go3mf.UnitMillimeter}
	if opts.Title != "" {
		model.Metadata = append(model.Metadata, go3mf.Metadata{Name: xml.Name{Local: "Title"}, Value: opts.Title})
	}
	if opts.Designer != "" {
		model.Metadata = append(model.Metadata, go3mf.Metadata{Name: xml.Name{Local: "Designer"}, Value: opts.Designer})
	}

	mesh := &go3mf.Mesh{}
	builder := go3mf.NewMeshBuilder(mesh)

	for _, placed := range flat {
		geom, ok := lookup(placed.GeometryExpressID)
		if !ok {
			continue
		}
		world := worldSpaceGeometry(geom, placed.Transform)
		indices := make([]uint32, len(world.Points))
		for i, p := range world.Points {
			indices[i] = builder.AddVertex(go3mf.Point3D{float32(p.X), float32(p.Y), float32(p.Z)})
		}
		for i := 0; i+2 < len(world.Indices); i += 3 {
			mesh.Triangles = append(mesh.Triangles, go3mf.Triangle{
				Indices: [3]uint32{
					indices[world.Indices[i]],
					indices[world.Indices[i+1]],
					indices[world.Indices[i+2]],
				},
			})
		}
	}

	object := &go3mf.Object{ID: 1, ObjectType: go3mf.ObjectTypeModel, Mesh: mesh}
	model.Resources.Objects = append(model.Resources.Objects, object)
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: object.ID})

	return model, nil
}

// SaveThreeMF writes a flattened mesh to a 3MF package on disk.
func SaveThreeMF(path string, flat ifcgeom.FlatMesh, lookup GeometryLookup, opts ThreeMFOptions) error {
	model, err := ToThreeMF(flat, lookup, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := go3mf.NewEncoder(f).Encode(model); err != nil {
		return fmt.Errorf("render: encoding 3MF model: %w", err)
	}
	return nil
}
