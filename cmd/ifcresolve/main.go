// Command ifcresolve loads an IFC/STEP file, resolves every building
// element's flattened geometry, and dumps the result in one or more
// interchange formats.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/maximelah94/web-ifc/express"
	"github.com/maximelah94/web-ifc/ifcgeom"
	"github.com/maximelah94/web-ifc/render"
)

func main() {
	var (
		objOut     = flag.String("obj", "", "write the resolved model as Wavefront OBJ to this path")
		stepOut    = flag.String("step", "", "write the resolved model as STEP AP214 to this path")
		threemfOut = flag.String("3mf", "", "write the resolved model as a 3MF package to this path")
		dxfOut     = flag.String("dxf", "", "write the resolved model's wireframe as DXF to this path")
		svgDir     = flag.String("svg", "", "debug-dump every resolved profile outline as SVG into this directory")
		pngDir     = flag.String("png", "", "debug-dump every resolved profile outline as PNG into this directory")
		debugDump  = flag.Bool("debug-dump", false, "enable the -svg/-png debug dumps")
		author     = flag.String("author", "", "author name recorded in STEP/3MF metadata")
		org        = flag.String("org", "", "organization name recorded in STEP metadata")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: ifcresolve [flags] <path-to-ifc-file>")
	}
	path := flag.Arg(0)

	loader, err := express.LoadFile(path)
	if err != nil {
		log.Fatalf("loading %s: %v", path, err)
	}

	cfg := ifcgeom.DefaultConfig()
	cfg.DebugDump = *debugDump
	resolver := ifcgeom.NewResolver(loader, cfg)

	var flat ifcgeom.FlatMesh
	for _, line := range loader.AllLines() {
		if !express.IsIfcElement(line.IfcType) {
			continue
		}
		flat = append(flat, resolver.GetFlatMesh(line.ExpressID)...)
	}
	log.Printf("resolved %d placed geometries from %s", len(flat), path)

	lookup := resolver.GetCachedGeometry

	if *objOut != "" {
		if err := render.DumpMeshOBJ(flat, lookup, *objOut); err != nil {
			log.Fatalf("writing OBJ: %v", err)
		}
	}
	if *stepOut != "" {
		opts := render.STEPOptions{Author: *author, Organization: *org}
		if err := render.SaveSTEPFlatMesh(*stepOut, flat, lookup, opts); err != nil {
			log.Fatalf("writing STEP: %v", err)
		}
	}
	if *threemfOut != "" {
		opts := render.ThreeMFOptions{Designer: *author}
		if err := render.SaveThreeMF(*threemfOut, flat, lookup, opts); err != nil {
			log.Fatalf("writing 3MF: %v", err)
		}
	}
	if *dxfOut != "" {
		if err := render.DumpFlatMeshDXF(flat, lookup, *dxfOut); err != nil {
			log.Fatalf("writing DXF: %v", err)
		}
	}

	if cfg.DebugDump && (*svgDir != "" || *pngDir != "") {
		dumpProfiles(resolver, loader, *svgDir, *pngDir)
	}
}

// dumpProfiles debug-dumps every IfcProfileDef entity's resolved 2D curve as
// SVG and/or PNG, gated on Config.DebugDump the way the original loader's
// DEBUG_DUMP_SVG constant gated its own curve dumps.
func dumpProfiles(resolver *ifcgeom.Resolver, loader *express.Loader, svgDir, pngDir string) {
	for _, line := range loader.AllLines() {
		if !express.IsIfcProfileDef(line.IfcType) {
			continue
		}
		profile := resolver.GetProfile(line.ExpressID)
		if svgDir != "" {
			out := filepath.Join(svgDir, fmt.Sprintf("profile-%d.svg", line.ExpressID))
			if err := render.DumpCurveSVG(profile.Curve, out, 10, 5); err != nil {
				log.Printf("dumping SVG for profile #%d: %v", line.ExpressID, err)
			}
		}
		if pngDir != "" {
			out := filepath.Join(pngDir, fmt.Sprintf("profile-%d.png", line.ExpressID))
			if err := render.DumpProfilePNG(profile.Curve, out, 512, 512, 10, 5); err != nil {
				log.Printf("dumping PNG for profile #%d: %v", line.ExpressID, err)
			}
		}
	}
}
