package render

import (
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/maximelah94/web-ifc/ifcgeom"
)

// DumpCurveSVG writes a 2D curve (a profile outline or a trimmed curve
// sample) as an SVG polyline, in the spirit of the original loader's
// debug-only curve dump. margin pads the viewBox around the curve's
// bounding box; scale maps model units to SVG pixels.
func DumpCurveSVG(curve ifcgeom.Curve2D, path string, scale, margin float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	minX, minY, maxX, maxY := curveBounds2D(curve)
	width := int((maxX-minX)*scale + 2*margin)
	height := int((maxY-minY)*scale + 2*margin)
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	xs := make([]int, len(curve))
	ys := make([]int, len(curve))
	for i, p := range curve {
		xs[i] = int((p.X-minX)*scale + margin)
		// SVG's y axis points down; flip so the dump reads like the model.
		ys[i] = height - int((p.Y-minY)*scale+margin)
	}

	canvas := svg.New(f)
	canvas.Start(width, height)
	canvas.Polyline(xs, ys, "fill:none;stroke:black;stroke-width:1")
	canvas.End()
	return nil
}

func curveBounds2D(curve ifcgeom.Curve2D) (minX, minY, maxX, maxY float64) {
	if len(curve) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = curve[0].X, curve[0].Y
	maxX, maxY = curve[0].X, curve[0].Y
	for _, p := range curve[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, minY, maxX, maxY
}
