package render

import (
	"image"
	"image/color"

	"github.com/llgcode/draw2d/draw2dimg"

	"github.com/maximelah94/web-ifc/ifcgeom"
)

// DumpProfilePNG rasterizes a closed 2D profile outline to a PNG file, the
// raster counterpart to DumpCurveSVG for quick visual sanity checks of a
// resolved IfcProfileDef.
func DumpProfilePNG(curve ifcgeom.Curve2D, path string, width, height int, scale, margin float64) error {
	if len(curve) == 0 {
		return nil
	}
	minX, minY, _, _ := curveBounds2D(curve)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetFillColor(color.White)
	gc.Clear()
	gc.SetStrokeColor(color.Black)
	gc.SetLineWidth(1)

	toPixel := func(p ifcgeom.Point2) (float64, float64) {
		x := (p.X-minX)*scale + margin
		y := float64(height) - ((p.Y-minY)*scale + margin)
		return x, y
	}

	x0, y0 := toPixel(curve[0])
	gc.MoveTo(x0, y0)
	for _, p := range curve[1:] {
		x, y := toPixel(p)
		gc.LineTo(x, y)
	}
	gc.Close()
	gc.FillStroke()

	return draw2dimg.SaveToPngFile(path, img)
}
